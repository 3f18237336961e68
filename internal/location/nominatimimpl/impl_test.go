package nominatimimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/location"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Impl {
	cfg := &config.Config{}
	cfg.Location.BaseURL = baseURL + "/"
	cfg.Location.UserAgent = "story-engine-test/1.0"
	cfg.Location.Timeout = 2 * time.Second
	cfg.Location.GlobalInterval = time.Millisecond
	return New(Opts{Config: cfg, Logger: logger.NewNop()})
}

func TestSearchSendsPolicyHeadersAndParsesPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Cafe Central, Wien", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "story-engine-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Café Central, Herrengasse, Wien", "lat": "48.2104", "lon": "16.3655"},
			{"display_name": "", "lat": "1", "lon": "2"},
			{"display_name": "Broken", "lat": "north", "lon": "2"}
		]`))
	}))
	defer srv.Close()

	places, err := newTestClient(srv.URL).Search(context.Background(), "  Cafe Central, Wien ")
	require.NoError(t, err)
	assert.Equal(t, []domain.Place{
		{DisplayName: "Café Central, Herrengasse, Wien", Lat: 48.2104, Lon: 16.3655},
	}, places)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	_, err := newTestClient("http://unused.invalid").Search(context.Background(), "   ")
	assert.ErrorIs(t, err, location.ErrEmptyQuery)
}

func TestSearchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	places, err := newTestClient(srv.URL).Search(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, places)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSearchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "blocked")
	require.Error(t, err)
	assert.ErrorIs(t, err, location.ErrLookup)
	assert.Equal(t, int32(1), calls.Load())
}
