package entity

import (
	"encoding/json"
	"time"
)

type Post struct {
	ID        string          `json:"id"`
	AuthorID  string          `json:"author"`
	Text      string          `json:"text"`
	MediaType MediaType       `json:"mediaType"`
	MediaKey  string          `json:"mediaKey,omitempty"`
	Media     json.RawMessage `json:"media"`
	CreatedAt time.Time       `json:"createdAt"`
	Reactions []Reaction      `json:"reactions"`
}

type Reaction struct {
	ID     string `json:"id"`
	PostID string `json:"-"`
	UserID string `json:"userId"`
	Emoji  string `json:"emoji"`
}
