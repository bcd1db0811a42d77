package entity

import "time"

// Member is a pre-provisioned club identity. There is no login flow;
// callers pass the member id with every operation.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
