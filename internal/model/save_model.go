package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaveModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_saves_user_post" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_post" json:"post_id"`
	MediaType string    `gorm:"type:varchar(20);not null" json:"media_type"`
	MediaData string    `gorm:"type:jsonb;not null" json:"media_data"`
	SavedAt   time.Time `gorm:"autoCreateTime" json:"saved_at"`
}

func (SaveModel) TableName() string {
	return "saves"
}

func (s *SaveModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
