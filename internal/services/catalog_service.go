package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-grid/internal/config"
	"movie-grid/internal/models"
	"movie-grid/internal/repository"

	"github.com/sirupsen/logrus"
)

// ErrCatalogDisabled is returned by sync operations when the movies API is
// proxied straight to TMDB and no catalog database is configured.
var ErrCatalogDisabled = errors.New("movie catalog database is not configured")

const maxSyncPages = 10

// CatalogService answers /api/movies and keeps the optional catalog in sync.
type CatalogService interface {
	PopularMovies(ctx context.Context) (*models.TMDBPopularMoviesResponse, error)
	SyncMoviesFromTMDB(ctx context.Context, pages int) (*models.SyncLog, error)
	GetLastSyncLog(ctx context.Context) (*models.SyncLog, error)
	Source() string
}

type catalogService struct {
	tmdb   PopularFetcher
	repo   repository.MovieRepository
	source string
	limit  int
	logger *logrus.Logger
}

// NewCatalogService wires the movies API. repo may be nil when cfg selects
// the TMDB source.
func NewCatalogService(tmdb PopularFetcher, repo repository.MovieRepository, cfg config.CatalogConfig, logger *logrus.Logger) CatalogService {
	limit := cfg.Limit
	if limit < 1 {
		limit = 20
	}
	return &catalogService{
		tmdb:   tmdb,
		repo:   repo,
		source: cfg.Source,
		limit:  limit,
		logger: logger,
	}
}

func (s *catalogService) Source() string {
	return s.source
}

func (s *catalogService) PopularMovies(ctx context.Context) (*models.TMDBPopularMoviesResponse, error) {
	if s.source != config.SourceDatabase {
		return s.tmdb.FetchPopular(ctx, 1)
	}
	if s.repo == nil {
		return nil, ErrCatalogDisabled
	}

	movies, total, err := s.repo.FindPopular(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	results := make([]models.TMDBMovieResponse, 0, len(movies))
	for _, m := range movies {
		results = append(results, m.ToTMDB())
	}

	totalPages := int((total + int64(s.limit) - 1) / int64(s.limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return &models.TMDBPopularMoviesResponse{
		Page:         1,
		Results:      results,
		TotalPages:   totalPages,
		TotalResults: int(total),
	}, nil
}

func (s *catalogService) SyncMoviesFromTMDB(ctx context.Context, pages int) (*models.SyncLog, error) {
	if s.repo == nil {
		return nil, ErrCatalogDisabled
	}

	syncLog := &models.SyncLog{
		SyncType: "manual",
		Status:   "failed",
		SyncedAt: time.Now().UTC(),
	}

	if pages < 1 {
		pages = 1
	}
	if pages > maxSyncPages {
		pages = maxSyncPages
	}

	var moviesAdded, moviesUpdated int

	for page := 1; page <= pages; page++ {
		s.logger.WithField("page", page).Info("Fetching TMDB popular movies")

		popular, err := s.tmdb.FetchPopular(ctx, page)
		if err != nil {
			syncLog.ErrorMessage = fmt.Sprintf("failed to fetch page %d: %s", page, err.Error())
			_ = s.repo.CreateSyncLog(ctx, syncLog)
			return syncLog, err
		}

		for _, tmdbMovie := range popular.Results {
			movie := fromTMDB(tmdbMovie)

			existing, err := s.repo.FindByTMDBID(ctx, movie.TMDBID)
			if err != nil {
				s.logger.WithError(err).WithField("tmdb_id", movie.TMDBID).Error("Error checking existing movie")
				continue
			}

			if existing == nil {
				if err := s.repo.Create(ctx, movie); err != nil {
					s.logger.WithError(err).WithField("title", movie.Title).Error("Error creating movie")
					continue
				}
				moviesAdded++
				continue
			}

			movie.ID = existing.ID
			movie.CreatedAt = existing.CreatedAt
			if err := s.repo.Update(ctx, movie); err != nil {
				s.logger.WithError(err).WithField("title", movie.Title).Error("Error updating movie")
				continue
			}
			moviesUpdated++
		}

		if page >= popular.TotalPages {
			break
		}
	}

	syncLog.Status = "success"
	syncLog.MoviesAdded = moviesAdded
	syncLog.MoviesUpdated = moviesUpdated
	if err := s.repo.CreateSyncLog(ctx, syncLog); err != nil {
		s.logger.WithError(err).Warn("Failed to record sync log")
	}

	s.logger.WithFields(logrus.Fields{
		"movies_added":   moviesAdded,
		"movies_updated": moviesUpdated,
	}).Info("Sync completed")

	return syncLog, nil
}

func (s *catalogService) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	if s.repo == nil {
		return nil, ErrCatalogDisabled
	}
	return s.repo.GetLastSyncLog(ctx)
}

func fromTMDB(m models.TMDBMovieResponse) *models.Movie {
	return &models.Movie{
		TMDBID:        m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Overview:      m.Overview,
		ReleaseDate:   m.ReleaseDate,
		PosterPath:    m.PosterPath,
		BackdropPath:  m.BackdropPath,
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		Popularity:    m.Popularity,
		Adult:         m.Adult,
		Language:      m.OriginalLanguage,
	}
}
