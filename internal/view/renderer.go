package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// HomePage is the data rendered by the home template.
type HomePage struct {
	Title string
	Tiles []Tile
}

// ErrorPage is the data rendered by the generic failure template.
type ErrorPage struct {
	Title   string
	Status  int
	Message string
}

// Renderer holds the parsed page templates. It is safe for concurrent use.
type Renderer struct {
	home        *template.Template
	failure     *template.Template
	titleSuffix string
}

func NewRenderer(titleSuffix string) (*Renderer, error) {
	home, err := template.ParseFS(templateFS, "templates/layout.html", "templates/home.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse home template: %w", err)
	}
	failure, err := template.ParseFS(templateFS, "templates/layout.html", "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse error template: %w", err)
	}
	return &Renderer{
		home:        home,
		failure:     failure,
		titleSuffix: titleSuffix,
	}, nil
}

// DocumentTitle formats a page title with the site suffix.
func (r *Renderer) DocumentTitle(page string) string {
	if r.titleSuffix == "" {
		return page
	}
	return page + " | " + r.titleSuffix
}

func (r *Renderer) RenderHome(w io.Writer, tiles []Tile) error {
	return r.home.ExecuteTemplate(w, "layout", HomePage{
		Title: r.DocumentTitle("Home"),
		Tiles: tiles,
	})
}

func (r *Renderer) RenderError(w io.Writer, status int, message string) error {
	return r.failure.ExecuteTemplate(w, "layout", ErrorPage{
		Title:   r.DocumentTitle(fmt.Sprintf("%d", status)),
		Status:  status,
		Message: message,
	})
}
