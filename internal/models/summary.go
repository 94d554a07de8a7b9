package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// MovieID is a movie identifier that may arrive as a JSON number or string.
// The upstream text is kept as-is so it can be embedded in a route.
type MovieID struct {
	text    string
	numeric bool
}

func NewMovieID(text string, numeric bool) MovieID {
	return MovieID{text: text, numeric: numeric}
}

func (id MovieID) String() string {
	return id.text
}

func (id MovieID) IsZero() bool {
	return id.text == ""
}

func (id *MovieID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = MovieID{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("movie id: %w", err)
		}
		*id = MovieID{text: s}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("movie id: %w", err)
		}
		*id = MovieID{text: n.String(), numeric: true}
	}
	return nil
}

func (id MovieID) MarshalJSON() ([]byte, error) {
	if id.text == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

// MovieSummary is the minimal record the home grid needs for one tile.
type MovieSummary struct {
	ID            MovieID `json:"id"`
	OriginalTitle string  `json:"original_title"`
	PosterPath    string  `json:"poster_path"`
}

// MoviesPayload is the body served by /api/movies. Results stays nil when the
// field is missing or null.
type MoviesPayload struct {
	Results []MovieSummary `json:"results"`
}
