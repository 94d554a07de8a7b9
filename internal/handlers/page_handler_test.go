package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"movie-grid/internal/services"
	"movie-grid/internal/view"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newPageApp(t *testing.T, loader HomeLoader) *fiber.App {
	t.Helper()

	renderer, err := view.NewRenderer("Next Movies")
	require.NoError(t, err)

	log := quietLogger()
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(renderer, log)})
	app.Get("/", NewPageHandler(loader, renderer, view.LocationNavigator{}, log).Home)
	return app
}

func upstream(t *testing.T, status int, body string, hits *int32) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func getDocument(t *testing.T, app *fiber.App, path string) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return resp, doc
}

func TestHome_RendersTiles(t *testing.T) {
	var hits int32
	endpoint := upstream(t, http.StatusOK, `{"results":[{"id":1,"original_title":"Dune","poster_path":"/abc.jpg"}]}`, &hits)
	app := newPageApp(t, services.NewMovieLoader(endpoint, quietLogger()))

	resp, doc := getDocument(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	tile := doc.Find(".movie")
	require.Equal(t, 1, tile.Length())
	src, _ := tile.Find("img").Attr("src")
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", src)
	href, _ := tile.Find("h4 a").Attr("href")
	assert.Equal(t, "/movies/Dune/1", href)
	onclick, _ := tile.Attr("onclick")
	assert.Equal(t, `window.location.assign("/movies/Dune/1")`, onclick)
}

func TestHome_EmptyAndAbsentLists(t *testing.T) {
	for name, body := range map[string]string{
		"empty":  `{"results":[]}`,
		"absent": `{"page":1}`,
		"null":   `{"results":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			var hits int32
			app := newPageApp(t, services.NewMovieLoader(upstream(t, http.StatusOK, body, &hits), quietLogger()))

			resp, doc := getDocument(t, app, "/")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, 0, doc.Find(".movie").Length())
			assert.Equal(t, 0, doc.Find(".error").Length())
		})
	}
}

func TestHome_UpstreamFailureShowsGenericErrorPage(t *testing.T) {
	var hits int32
	app := newPageApp(t, services.NewMovieLoader(upstream(t, http.StatusInternalServerError, `oops`, &hits), quietLogger()))

	resp, doc := getDocument(t, app, "/")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "500 | Next Movies", doc.Find("title").Text())
	assert.Equal(t, "Internal Server Error", doc.Find(".error p").Text())
	assert.Equal(t, 0, doc.Find(".movie").Length())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

type staticLoader struct {
	result services.LoadResult
}

func (l staticLoader) Load(context.Context) services.LoadResult {
	return l.result
}

func TestHome_DecodeFailureIsServerError(t *testing.T) {
	app := newPageApp(t, staticLoader{result: services.LoadResult{
		Err: &services.FetchError{Reason: services.ReasonDecode, URL: "http://localhost:3000/api/movies"},
	}})

	resp, _ := getDocument(t, app, "/")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestUnknownRouteShowsNotFoundPage(t *testing.T) {
	app := newPageApp(t, staticLoader{})

	resp, doc := getDocument(t, app, "/movies/Dune/1")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 | Next Movies", doc.Find("title").Text())
}
