// Package nfo renders Kodi-compatible metadata sidecars for movies, shows,
// and episodes.
package nfo

import (
	"encoding/xml"
	"fmt"
)

// UniqueID identifies the entry in an external database.
type UniqueID struct {
	Type    string `xml:"type,attr"`
	Default bool   `xml:"default,attr,omitempty"`
	Value   string `xml:",chardata"`
}

// Movie is the document rendered into <stem>.nfo next to a movie pointer.
type Movie struct {
	XMLName   xml.Name   `xml:"movie"`
	Title     string     `xml:"title"`
	Year      int        `xml:"year,omitempty"`
	Plot      string     `xml:"plot,omitempty"`
	Genre     string     `xml:"genre,omitempty"`
	Rating    float64    `xml:"rating,omitempty"`
	Thumb     string     `xml:"thumb,omitempty"`
	Fanart    string     `xml:"fanart,omitempty"`
	UniqueIDs []UniqueID `xml:"uniqueid"`
}

// TVShow is the document rendered into tvshow.nfo in a series directory.
type TVShow struct {
	XMLName   xml.Name   `xml:"tvshow"`
	Title     string     `xml:"title"`
	Year      int        `xml:"year,omitempty"`
	Plot      string     `xml:"plot,omitempty"`
	Genre     string     `xml:"genre,omitempty"`
	Rating    float64    `xml:"rating,omitempty"`
	Thumb     string     `xml:"thumb,omitempty"`
	Fanart    string     `xml:"fanart,omitempty"`
	UniqueIDs []UniqueID `xml:"uniqueid"`
}

// Episode is the document rendered next to an episode pointer.
type Episode struct {
	XMLName   xml.Name   `xml:"episodedetails"`
	Title     string     `xml:"title"`
	ShowTitle string     `xml:"showtitle,omitempty"`
	Season    int        `xml:"season"`
	Episode   int        `xml:"episode"`
	Plot      string     `xml:"plot,omitempty"`
	Aired     string     `xml:"aired,omitempty"`
	Rating    float64    `xml:"rating,omitempty"`
	UniqueIDs []UniqueID `xml:"uniqueid"`
}

// IDs builds the uniqueid list, skipping absent ids. The TMDB id is marked
// default when present.
func IDs(tmdbID int64, imdbID string) []UniqueID {
	ids := []UniqueID{}
	if tmdbID != 0 {
		ids = append(ids, UniqueID{Type: "tmdb", Default: true, Value: fmt.Sprintf("%d", tmdbID)})
	}
	if imdbID != "" {
		ids = append(ids, UniqueID{Type: "imdb", Value: imdbID})
	}
	return ids
}

// Render marshals a document with the XML declaration and a trailing newline,
// the byte-exact form written to disk.
func Render(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render nfo: %w", err)
	}
	return append([]byte(xml.Header+string(body)), '\n'), nil
}
