package entity

import "time"

// ArchiveEntry is a permanent fact: this user once shared this item.
// Keyed by (UserID, MediaKey); timestamps record the original share.
type ArchiveEntry struct {
	UserID     string    `json:"user"`
	MediaType  MediaType `json:"mediaType"`
	MediaKey   string    `json:"mediaKey"`
	MediaTitle string    `json:"mediaTitle"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PopularMedia is an aggregate row from the archive: an item and how many
// distinct users ever shared it.
type PopularMedia struct {
	MediaKey   string    `json:"mediaKey"`
	MediaType  MediaType `json:"mediaType"`
	MediaTitle string    `json:"mediaTitle"`
	UserCount  int       `json:"userCount"`
}

// OverlapItem is a media item shared by both users of an overlap query.
type OverlapItem struct {
	MediaKey   string `json:"mediaKey"`
	MediaTitle string `json:"mediaTitle"`
}

// SweepSummary reports one retention sweep run.
type SweepSummary struct {
	Archived int `json:"archived"`
	Deleted  int `json:"deleted"`
}
