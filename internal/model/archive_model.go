package model

import "time"

// ArchiveModel is append-only; the composite primary key carries the
// insert-or-ignore idempotency for the retention sweep.
type ArchiveModel struct {
	UserID     string    `gorm:"type:varchar(100);primary_key" json:"user_id"`
	MediaKey   string    `gorm:"type:varchar(500);primary_key" json:"media_key"`
	MediaType  string    `gorm:"type:varchar(20);not null" json:"media_type"`
	MediaTitle string    `gorm:"type:varchar(500)" json:"media_title"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ArchiveModel) TableName() string {
	return "archive"
}
