package entity

import (
	"encoding/json"
	"time"
)

// ClubPick is a weekly generated recommendation. MediaData is a
// denormalized snapshot so picks stay readable after the originating
// posts expire.
type ClubPick struct {
	ID        string          `json:"id"`
	MediaKey  string          `json:"mediaKey"`
	MediaType MediaType       `json:"mediaType"`
	MediaData json.RawMessage `json:"media"`
	WeekStart string          `json:"weekStart"`
	CreatedAt time.Time       `json:"-"`
}

// PickSnapshot is what gets serialized into ClubPick.MediaData.
type PickSnapshot struct {
	Title     string `json:"title"`
	UserCount int    `json:"userCount"`
}

// SynthesisSummary reports one pick synthesis run.
type SynthesisSummary struct {
	Generated int    `json:"generated"`
	WeekStart string `json:"weekStart"`
}
