package entity

import (
	"encoding/json"
	"time"
)

// Save is a per-user bookmark. MediaData is denormalized at save time so
// the bookmark outlives the post it came from.
type Save struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user"`
	PostID    string          `json:"postId"`
	MediaType MediaType       `json:"mediaType"`
	MediaData json.RawMessage `json:"media"`
	SavedAt   time.Time       `json:"savedAt"`
}
