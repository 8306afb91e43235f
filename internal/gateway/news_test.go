package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "in", r.URL.Query().Get("country"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Write([]byte(`{"status":"ok","articles":[{"title":"first"},{"title":"second"}]}`))
	}))
	defer srv.Close()

	h := NewNewsAPIHeadliner("test-key")
	h.BaseURL = srv.URL

	titles, err := h.TopHeadlines(context.Background(), "in", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, titles)
}

func TestTopHeadlinesMissingKey(t *testing.T) {
	h := NewNewsAPIHeadliner("")

	_, err := h.TopHeadlines(context.Background(), "in", 5)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestTopHeadlinesUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	h := NewNewsAPIHeadliner("revoked-key")
	h.BaseURL = srv.URL

	_, err := h.TopHeadlines(context.Background(), "in", 5)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestTopHeadlinesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"rate limited"}`))
	}))
	defer srv.Close()

	h := NewNewsAPIHeadliner("test-key")
	h.BaseURL = srv.URL

	_, err := h.TopHeadlines(context.Background(), "in", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestTopHeadlinesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	h := NewNewsAPIHeadliner("test-key")
	h.BaseURL = srv.URL

	_, err := h.TopHeadlines(context.Background(), "in", 5)
	var terr *TransportError
	assert.True(t, errors.As(err, &terr))
}
