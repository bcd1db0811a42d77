// Package mediakey derives the canonical identity string that groups all
// posts, archive entries, and saves referring to the same real-world item.
package mediakey

import (
	"net/url"
	"strings"
	"unicode"

	"commune/internal/entity"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Resolve maps a media description to its canonical key. It is total and
// deterministic; media that cannot be identified yields an empty key, which
// callers must treat as "cannot be grouped", never as an error.
func Resolve(m entity.Media) string {
	switch m.Type {
	case entity.MediaTypeBook:
		if isbn := normalizeISBN13(m.ISBN13); isbn != "" {
			return "book-" + isbn
		}
		if isbn := normalizeISBN13(m.ISBN); isbn != "" {
			return "book-" + isbn
		}
		// Weaker identity: distinct editions without an ISBN-13 collide.
		if m.Title != "" {
			return "book-title-" + m.Title
		}
		return ""
	case entity.MediaTypeSpotify:
		if m.SpotifyID == "" {
			return ""
		}
		return "spotify-" + m.SpotifyID
	case entity.MediaTypeMovie:
		if m.TMDBID == "" {
			return ""
		}
		return "tmdb-" + m.TMDBID
	case entity.MediaTypeArticle:
		canonical := canonicalizeURL(m.URL)
		if canonical == "" {
			return ""
		}
		return "article-" + canonical
	case entity.MediaTypePlace:
		name := slugify(m.Name)
		location := slugify(m.Location)
		if name == "" && location == "" {
			return ""
		}
		return "place-" + name + "-" + location
	}
	return ""
}

// normalizeISBN13 strips hyphens and spaces and validates the result as a
// 13-digit ISBN with a 978/979 prefix. Returns "" when invalid.
func normalizeISBN13(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range raw {
		if r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	isbn := b.String()
	if len(isbn) != 13 {
		return ""
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return ""
		}
	}
	if !strings.HasPrefix(isbn, "978") && !strings.HasPrefix(isbn, "979") {
		return ""
	}
	return isbn
}

var trackingParams = map[string]bool{
	"fbclid": true,
	"gclid":  true,
	"ref":    true,
}

func isTrackingParam(name string) bool {
	return trackingParams[name] || strings.HasPrefix(name, "utm_")
}

// canonicalizeURL forces https, strips a leading www., drops known
// tracking query parameters, and removes a trailing slash.
func canonicalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}

	u.Scheme = "https"
	u.Host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	q := u.Query()
	for name := range q {
		if isTrackingParam(name) {
			q.Del(name)
		}
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify decomposes accents away, lowercases, collapses runs of
// non-alphanumerics to single hyphens, and trims edge hyphens.
func slugify(s string) string {
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.ToLower(stripped)

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
