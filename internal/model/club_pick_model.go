package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClubPickModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	MediaKey  string    `gorm:"type:varchar(500);not null;uniqueIndex:idx_picks_week_key" json:"media_key"`
	MediaType string    `gorm:"type:varchar(20);not null" json:"media_type"`
	MediaData string    `gorm:"type:jsonb;not null" json:"media_data"`
	WeekStart string    `gorm:"type:date;not null;index;uniqueIndex:idx_picks_week_key" json:"week_start"`
	CreatedAt time.Time `json:"created_at"`
}

func (ClubPickModel) TableName() string {
	return "club_picks"
}

func (p *ClubPickModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
