package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel rows are immutable after insert and hard-deleted by the
// retention sweep, so there is no gorm soft delete here.
type PostModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID  string    `gorm:"type:varchar(100);not null;index:idx_posts_author_created" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	MediaType string    `gorm:"type:varchar(20);not null" json:"media_type"`
	MediaKey  string    `gorm:"type:varchar(500)" json:"media_key"`
	MediaData string    `gorm:"type:jsonb;not null" json:"media_data"`
	CreatedAt time.Time `gorm:"index;index:idx_posts_author_created" json:"created_at"`

	Reactions []ReactionModel `gorm:"foreignKey:PostID" json:"reactions,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type ReactionModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_post_user" json:"post_id"`
	UserID    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_reactions_post_user" json:"user_id"`
	Emoji     string    `gorm:"type:varchar(20);not null" json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
