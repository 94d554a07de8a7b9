package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"movie-grid/internal/config"
	"movie-grid/internal/models"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// PopularFetcher returns one page of TMDB's popular movies.
type PopularFetcher interface {
	FetchPopular(ctx context.Context, page int) (*models.TMDBPopularMoviesResponse, error)
}

type TMDBClient struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewTMDBClient(cfg config.TMDBConfig, logger *logrus.Logger) *TMDBClient {
	return &TMDBClient{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

func (c *TMDBClient) FetchPopular(ctx context.Context, page int) (*models.TMDBPopularMoviesResponse, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	query.Set("page", strconv.Itoa(page))
	endpoint := c.baseURL + "/movie/popular?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.WithField("page", page).Debug("Fetching TMDB popular movies")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	var popular models.TMDBPopularMoviesResponse
	if err := json.NewDecoder(resp.Body).Decode(&popular); err != nil {
		return nil, fmt.Errorf("failed to decode TMDB response: %w", err)
	}

	return &popular, nil
}
