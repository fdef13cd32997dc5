package geocoding

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestResolve_Success(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"14.6928","lon":"-17.4467"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "Dakar, Senegal", 5*time.Second, newTestLogger())
	coords, ok := client.Resolve(context.Background(), "Médina")

	require.True(t, ok)
	assert.Equal(t, "Médina, Dakar, Senegal", gotQuery)
	assert.InDelta(t, 14.6928, coords.Latitude, 1e-9)
	assert.InDelta(t, -17.4467, coords.Longitude, 1e-9)
}

func TestResolve_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "Dakar, Senegal", 5*time.Second, newTestLogger())
	_, ok := client.Resolve(context.Background(), "nowhere")

	assert.False(t, ok)
}

func TestResolve_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "Dakar, Senegal", 5*time.Second, newTestLogger())
	_, ok := client.Resolve(context.Background(), "Médina")

	assert.False(t, ok)
}

func TestResolve_UnparseableCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"not-a-float","lon":"-17.4467"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "Dakar, Senegal", 5*time.Second, newTestLogger())
	_, ok := client.Resolve(context.Background(), "Médina")

	assert.False(t, ok)
}

func TestResolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "Dakar, Senegal", 5*time.Second, newTestLogger())
	_, ok := client.Resolve(context.Background(), "Médina")

	assert.False(t, ok)
}

func TestResolve_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "Dakar, Senegal", 20*time.Millisecond, newTestLogger())
	_, ok := client.Resolve(context.Background(), "Médina")

	assert.False(t, ok)
}

func TestResolve_NoRegionConfigured(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`[{"lat":"14.7","lon":"-17.4"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, newTestLogger())
	_, ok := client.Resolve(context.Background(), "Médina")

	require.True(t, ok)
	assert.Equal(t, "Médina", gotQuery)
}
