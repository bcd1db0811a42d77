package entity

import "encoding/json"

type MediaType string

const (
	MediaTypeBook    MediaType = "book"
	MediaTypeSpotify MediaType = "spotify"
	MediaTypeMovie   MediaType = "movie"
	MediaTypeArticle MediaType = "article"
	MediaTypePlace   MediaType = "place"
)

// Media is the identifying slice of an externally-produced media
// description. Clients send richer JSON (covers, ratings, embeds); the
// raw payload is stored verbatim on the post, this struct only carries
// what the core needs to title and key the item.
type Media struct {
	Type      MediaType `json:"type"`
	Title     string    `json:"title"`
	ISBN13    string    `json:"isbn13"`
	ISBN      string    `json:"isbn"`
	SpotifyID string    `json:"spotifyId"`
	TMDBID    string    `json:"tmdbId"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
}

// ParseMedia extracts the identifying fields from a raw media payload.
func ParseMedia(raw json.RawMessage) (Media, error) {
	var m Media
	if err := json.Unmarshal(raw, &m); err != nil {
		return Media{}, err
	}
	return m, nil
}

// DisplayTitle prefers the title field, falling back to a place name.
func (m Media) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}
