package handlers

import (
	"bytes"
	"context"

	"movie-grid/internal/services"
	"movie-grid/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HomeLoader supplies the movie list rendered on the home page.
type HomeLoader interface {
	Load(ctx context.Context) services.LoadResult
}

type PageHandler struct {
	loader    HomeLoader
	renderer  *view.Renderer
	navigator view.Navigator
	logger    *logrus.Logger
}

func NewPageHandler(loader HomeLoader, renderer *view.Renderer, navigator view.Navigator, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		loader:    loader,
		renderer:  renderer,
		navigator: navigator,
		logger:    logger,
	}
}

// Home loads the movie list once and renders the poster grid. A failed load is
// handed to the app's error handler unchanged.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	result := h.loader.Load(c.UserContext())
	if !result.OK() {
		return result.Err
	}

	if !result.Present {
		h.logger.Debug("Movies endpoint returned no results field")
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderHome(&buf, view.BuildTiles(result.Movies, h.navigator)); err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
