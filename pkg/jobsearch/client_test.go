package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRequiresAPIKey(t *testing.T) {
	c := NewClient("", "", time.Second)
	_, err := c.Search(context.Background(), url.Values{})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestClientSendsRapidAPIHeaders(t *testing.T) {
	var gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"job_title":"Go Developer","employer_name":"ACME"}]}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, time.Second)
	records, err := c.Search(context.Background(), url.Values{"query": {"go"}})
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "jsearch.p.rapidapi.com", gotHost)
	require.Len(t, records, 1)
	assert.Equal(t, "Go Developer", records[0].JobTitle)
	assert.Equal(t, "ACME", records[0].EmployerName)
}

func TestClientPassesUpstreamErrorThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, time.Second)
	_, err := c.Search(context.Background(), url.Values{})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusTooManyRequests, ue.Status)
	assert.Equal(t, map[string]any{"message": "rate limited"}, ue.Details)
}

func TestClientKeepsRawBodyWhenNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, time.Second)
	_, err := c.Search(context.Background(), url.Values{})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "upstream exploded", ue.Details)
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL, 50*time.Millisecond)
	_, err := c.Search(context.Background(), url.Values{})
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}
