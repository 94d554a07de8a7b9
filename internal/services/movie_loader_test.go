package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func moviesServer(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMovieLoader_Success(t *testing.T) {
	var hits int32
	srv := moviesServer(t, http.StatusOK,
		`{"page":1,"results":[{"id":1,"original_title":"Dune","poster_path":"/abc.jpg"},{"id":2,"original_title":"Heat","poster_path":"/h.jpg"}]}`,
		&hits)

	result := NewMovieLoader(srv.URL, quietLogger()).Load(context.Background())

	require.True(t, result.OK())
	assert.True(t, result.Present)
	require.Len(t, result.Movies, 2)
	assert.Equal(t, "1", result.Movies[0].ID.String())
	assert.Equal(t, "Dune", result.Movies[0].OriginalTitle)
	assert.Equal(t, "/abc.jpg", result.Movies[0].PosterPath)
	assert.Equal(t, "Heat", result.Movies[1].OriginalTitle)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestMovieLoader_MissingResultsIsAbsent(t *testing.T) {
	srv := moviesServer(t, http.StatusOK, `{"page":1}`, nil)

	result := NewMovieLoader(srv.URL, quietLogger()).Load(context.Background())

	require.True(t, result.OK())
	assert.False(t, result.Present)
	assert.Nil(t, result.Movies)
}

func TestMovieLoader_EmptyResults(t *testing.T) {
	srv := moviesServer(t, http.StatusOK, `{"results":[]}`, nil)

	result := NewMovieLoader(srv.URL, quietLogger()).Load(context.Background())

	require.True(t, result.OK())
	assert.Empty(t, result.Movies)
}

func TestMovieLoader_ServerErrorIsNotRetried(t *testing.T) {
	var hits int32
	srv := moviesServer(t, http.StatusInternalServerError, `{"status":"fail"}`, &hits)

	result := NewMovieLoader(srv.URL, quietLogger()).Load(context.Background())

	require.False(t, result.OK())
	var fetchErr *FetchError
	require.True(t, errors.As(result.Err, &fetchErr))
	assert.Equal(t, ReasonStatus, fetchErr.Reason)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Error(), "500")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestMovieLoader_MalformedJSON(t *testing.T) {
	srv := moviesServer(t, http.StatusOK, `{"results":[{"id":1,`, nil)

	result := NewMovieLoader(srv.URL, quietLogger()).Load(context.Background())

	var fetchErr *FetchError
	require.True(t, errors.As(result.Err, &fetchErr))
	assert.Equal(t, ReasonDecode, fetchErr.Reason)
}

func TestMovieLoader_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	result := NewMovieLoader(endpoint, quietLogger()).Load(context.Background())

	var fetchErr *FetchError
	require.True(t, errors.As(result.Err, &fetchErr))
	assert.Equal(t, ReasonNetwork, fetchErr.Reason)
	assert.NotNil(t, errors.Unwrap(fetchErr))
}

func TestMovieLoader_CanceledContext(t *testing.T) {
	srv := moviesServer(t, http.StatusOK, `{"results":[]}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewMovieLoader(srv.URL, quietLogger()).Load(ctx)

	require.False(t, result.OK())
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestMovieLoader_RejectsNonObjectBodies(t *testing.T) {
	for name, body := range map[string]string{
		"trailing data": `{"results":[]} trailing`,
		"two objects":   `{"results":[]}{"results":[]}`,
		"null":          `null`,
		"array":         `[{"id":1}]`,
		"empty":         ``,
	} {
		t.Run(name, func(t *testing.T) {
			srv := moviesServer(t, http.StatusOK, body, nil)

			result := NewMovieLoader(srv.URL, quietLogger()).Load(context.Background())

			require.False(t, result.OK())
			var fetchErr *FetchError
			require.True(t, errors.As(result.Err, &fetchErr))
			assert.Equal(t, ReasonDecode, fetchErr.Reason)
			assert.Nil(t, result.Movies)
		})
	}
}
