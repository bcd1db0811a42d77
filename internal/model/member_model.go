package model

import "time"

type MemberModel struct {
	ID        string    `gorm:"type:varchar(100);primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Emoji     string    `gorm:"type:varchar(20)" json:"emoji"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
