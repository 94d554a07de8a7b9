package routes

import (
	"movie-grid/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, pageHandler *handlers.PageHandler, movieHandler *handlers.MovieHandler) {
	// Server-rendered pages
	app.Get("/", pageHandler.Home)

	api := app.Group("/api")

	// Movies list read by the home page
	api.Get("/movies", movieHandler.GetPopularMovies)

	// Catalog sync - only active with MOVIES_SOURCE=database
	sync := api.Group("/sync")
	{
		sync.Post("/movies", movieHandler.SyncMoviesFromTMDB)
		sync.Get("/last-log", movieHandler.GetLastSyncLog)
	}
}
