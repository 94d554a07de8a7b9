package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"movie-grid/internal/models"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// FailureReason classifies why the home page data could not be loaded.
type FailureReason string

const (
	ReasonNetwork FailureReason = "network"
	ReasonStatus  FailureReason = "status"
	ReasonDecode  FailureReason = "decode"
)

// FetchError is returned when the movies endpoint cannot supply a list.
type FetchError struct {
	Reason     FailureReason
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Reason {
	case ReasonStatus:
		return fmt.Sprintf("movies endpoint %s returned status %d", e.URL, e.StatusCode)
	case ReasonDecode:
		return fmt.Sprintf("movies endpoint %s returned malformed JSON: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("movies endpoint %s unreachable: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of one page load. On success Movies holds the
// upstream list in order; Present is false when the upstream omitted it.
type LoadResult struct {
	Movies  []models.MovieSummary
	Present bool
	Err     error
}

func (r LoadResult) OK() bool {
	return r.Err == nil
}

// MovieLoader fetches the movie list that feeds the home page.
type MovieLoader struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewMovieLoader builds a loader for endpoint. The client carries no timeout;
// a load lasts as long as the page request's context.
func NewMovieLoader(endpoint string, logger *logrus.Logger) *MovieLoader {
	return &MovieLoader{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Load issues exactly one GET against the movies endpoint. Failures are
// reported in the result and never retried.
func (l *MovieLoader) Load(ctx context.Context) LoadResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return LoadResult{Err: &FetchError{Reason: ReasonNetwork, URL: l.endpoint, Err: err}}
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return LoadResult{Err: &FetchError{Reason: ReasonNetwork, URL: l.endpoint, Err: err}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LoadResult{Err: &FetchError{
			Reason:     ReasonStatus,
			URL:        l.endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LoadResult{Err: &FetchError{Reason: ReasonNetwork, URL: l.endpoint, StatusCode: resp.StatusCode, Err: err}}
	}

	payload, err := decodeMoviesPayload(body)
	if err != nil {
		return LoadResult{Err: &FetchError{
			Reason:     ReasonDecode,
			URL:        l.endpoint,
			StatusCode: resp.StatusCode,
			Err:        err,
		}}
	}

	l.logger.WithFields(logrus.Fields{
		"endpoint": l.endpoint,
		"movies":   len(payload.Results),
	}).Debug("Loaded home page movies")

	return LoadResult{
		Movies:  payload.Results,
		Present: payload.Results != nil,
	}
}

// decodeMoviesPayload accepts exactly one JSON object. Trailing data and any
// other top-level value, null included, are rejected.
func decodeMoviesPayload(body []byte) (models.MoviesPayload, error) {
	var payload models.MoviesPayload
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload, errors.New("response body is not a JSON object")
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
