package main

import (
	"fmt"

	"commune/internal/model"
	"commune/pkg/config"
	"commune/pkg/database"
	"commune/pkg/logger"

	"gorm.io/gorm"
)

// Seeds the club roster. Identities are pre-provisioned: there is no
// signup flow, so a fresh deployment runs this once before first use.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedMembers(db, log); err != nil {
		log.Error("Failed to seed members: %v", err)
		panic(err)
	}

	log.Info("Members seeded successfully!")
}

func seedMembers(db *gorm.DB, log *logger.Logger) error {
	members := []model.MemberModel{
		{ID: "ava", Name: "Ava", Emoji: "🦊", Color: "#e07a5f"},
		{ID: "ben", Name: "Ben", Emoji: "🐻", Color: "#3d405b"},
		{ID: "chloe", Name: "Chloe", Emoji: "🦉", Color: "#81b29a"},
		{ID: "dan", Name: "Dan", Emoji: "🐙", Color: "#f2cc8f"},
		{ID: "emi", Name: "Emi", Emoji: "🐬", Color: "#6d6875"},
	}

	for _, member := range members {
		var existing model.MemberModel
		result := db.Where("id = ?", member.ID).First(&existing)
		if result.Error == nil {
			log.Info("Member %s already exists, skipping", member.ID)
			continue
		}

		if err := db.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to create member %s: %w", member.ID, err)
		}
		log.Info("Created member: %s (%s)", member.Name, member.ID)
	}

	return nil
}
