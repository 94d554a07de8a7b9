// Package view renders the home page poster grid.
package view

import (
	"fmt"
	"html/template"
	"strings"

	"movie-grid/internal/models"

	"github.com/goccy/go-json"
)

// PosterBaseURL is prepended verbatim to every poster_path.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// Navigator turns a route into the click action attached to a tile.
type Navigator interface {
	Navigate(path string) template.JS
}

// LocationNavigator navigates by assigning window.location in the browser.
type LocationNavigator struct{}

func (LocationNavigator) Navigate(path string) template.JS {
	quoted, err := json.Marshal(path)
	if err != nil {
		return template.JS("")
	}
	return template.JS("window.location.assign(" + string(quoted) + ")")
}

// Tile is one grid cell of the home page.
type Tile struct {
	Key      string
	Title    string
	ImageURL string
	Href     string
	OnClick  template.JS
}

// PosterURL returns the displayable image for a poster path.
func PosterURL(posterPath string) string {
	return PosterBaseURL + posterPath
}

// DetailPath is the detail route for a movie. Titles are used as given.
func DetailPath(title string, id models.MovieID) string {
	return "/movies/" + title + "/" + id.String()
}

// NormalizePath percent-encodes the bytes html/template would rewrite inside a
// URL attribute, leaving valid %XX escapes and reserved characters alone. The
// result renders unchanged in an href, so links and click actions share it.
func NormalizePath(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte("-._~!#$&*+,/:;=?@[]", c) >= 0:
			b.WriteByte(c)
		case c == '%' && i+2 < len(path) && isHex(path[i+1]) && isHex(path[i+2]):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// BuildTiles maps movies to tiles in input order. A nil list yields no tiles.
// Ids are neither checked for presence nor deduplicated.
func BuildTiles(movies []models.MovieSummary, nav Navigator) []Tile {
	if len(movies) == 0 {
		return nil
	}

	tiles := make([]Tile, 0, len(movies))
	for _, movie := range movies {
		href := NormalizePath(DetailPath(movie.OriginalTitle, movie.ID))
		tiles = append(tiles, Tile{
			Key:      movie.ID.String(),
			Title:    movie.OriginalTitle,
			ImageURL: PosterURL(movie.PosterPath),
			Href:     href,
			OnClick:  nav.Navigate(href),
		})
	}
	return tiles
}
