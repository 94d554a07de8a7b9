package handlers

import (
	"errors"
	"strconv"

	"movie-grid/internal/services"
	"movie-grid/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.CatalogService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetPopularMovies godoc
// @Summary Get popular movies
// @Description List popular movies in the TMDB "popular" shape consumed by the home page
// @Tags movies
// @Produce json
// @Success 200 {object} models.TMDBPopularMoviesResponse "Popular movies"
// @Failure 502 {object} utils.StandardResponse "Upstream unavailable"
// @Router /movies [get]
func (h *MovieHandler) GetPopularMovies(c *fiber.Ctx) error {
	popular, err := h.service.PopularMovies(c.UserContext())
	if err != nil {
		h.logger.WithError(err).WithField("source", h.service.Source()).Error("Failed to get popular movies")
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to retrieve movies")
	}

	return c.Status(fiber.StatusOK).JSON(popular)
}

// SyncMoviesFromTMDB godoc
// @Summary Sync movies from TMDB
// @Description Fetch popular movies from TMDB into the catalog database
// @Tags sync
// @Produce json
// @Param pages query int false "Number of pages to sync (1-10)" default(1)
// @Success 200 {object} utils.StandardResponse "Sync completed successfully"
// @Failure 409 {object} utils.StandardResponse "Catalog database disabled"
// @Failure 500 {object} utils.StandardResponse "Sync failed"
// @Router /sync/movies [post]
func (h *MovieHandler) SyncMoviesFromTMDB(c *fiber.Ctx) error {
	pages, _ := strconv.Atoi(c.Query("pages", "1"))

	h.logger.WithField("pages", pages).Info("Starting TMDB sync")

	syncLog, err := h.service.SyncMoviesFromTMDB(c.UserContext(), pages)
	if errors.Is(err, services.ErrCatalogDisabled) {
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to sync movies from TMDB")
		return utils.ErrorWithDataResponse(c, fiber.StatusInternalServerError, "Failed to sync movies", syncLog)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies synced successfully", syncLog)
}

// GetLastSyncLog godoc
// @Summary Get last sync log
// @Description Get the most recent sync operation log
// @Tags sync
// @Produce json
// @Success 200 {object} utils.StandardResponse "Last sync log"
// @Failure 409 {object} utils.StandardResponse "Catalog database disabled"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve sync log"
// @Router /sync/last-log [get]
func (h *MovieHandler) GetLastSyncLog(c *fiber.Ctx) error {
	syncLog, err := h.service.GetLastSyncLog(c.UserContext())
	if errors.Is(err, services.ErrCatalogDisabled) {
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get last sync log")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve last sync log")
	}

	if syncLog == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, "No sync log found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Last sync log retrieved successfully", syncLog)
}
