package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieID_UnmarshalNumberAndString(t *testing.T) {
	var payload MoviesPayload
	body := `{"results":[
		{"id":1,"original_title":"Dune","poster_path":"/abc.jpg"},
		{"id":"tt0816692","original_title":"Interstellar","poster_path":"/i.jpg"},
		{"id":null,"original_title":"Unknown","poster_path":"/u.jpg"}
	]}`

	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Results, 3)

	assert.Equal(t, "1", payload.Results[0].ID.String())
	assert.Equal(t, "tt0816692", payload.Results[1].ID.String())
	assert.True(t, payload.Results[2].ID.IsZero())
	assert.Equal(t, "Dune", payload.Results[0].OriginalTitle)
	assert.Equal(t, "/abc.jpg", payload.Results[0].PosterPath)
}

func TestMovieID_MarshalKeepsUpstreamKind(t *testing.T) {
	out, err := json.Marshal([]MovieID{
		NewMovieID("550", true),
		NewMovieID("abc", false),
		{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[550,"abc",null]`, string(out))
}

func TestMoviesPayload_MissingResults(t *testing.T) {
	var payload MoviesPayload
	require.NoError(t, json.Unmarshal([]byte(`{"page":1}`), &payload))
	assert.Nil(t, payload.Results)
}

func TestMovie_ToTMDB(t *testing.T) {
	m := Movie{ID: 7, TMDBID: 438631, Title: "Dune", OriginalTitle: "Dune", PosterPath: "/d.jpg", Language: "en"}

	got := m.ToTMDB()

	assert.Equal(t, 438631, got.ID)
	assert.Equal(t, "Dune", got.OriginalTitle)
	assert.Equal(t, "/d.jpg", got.PosterPath)
	assert.Equal(t, "en", got.OriginalLanguage)
}
