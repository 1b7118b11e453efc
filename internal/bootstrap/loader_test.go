package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanodia/gridcap/internal/grid"
)

const (
	installedCSV = "Coal,Solar\n210.5,94.2\n"
	historyCSV   = "Month,Coal\n01/2024,210.5\n04/2024,212.0\n"
)

func TestLoader_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/installed.csv":
			_, _ = w.Write([]byte(installedCSV))
		case "/history.csv":
			_, _ = w.Write([]byte(historyCSV))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL+"/installed.csv", srv.URL+"/history.csv")
	result := loader.Fetch(context.Background())

	assert.Empty(t, result.Warnings)
	require.NotNil(t, result.Installed)
	assert.InDelta(t, 210.5, result.Installed[grid.SourceCoal], 1e-9)
	require.Len(t, result.History, 2)
	assert.Equal(t, grid.MonthKey("01/2024"), result.History[0].Month)
}

func TestLoader_Fetch_PartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/installed.csv" {
			_, _ = w.Write([]byte(installedCSV))
			return
		}
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL+"/installed.csv", srv.URL+"/history.csv")
	result := loader.Fetch(context.Background())

	// One file succeeds, the other becomes a warning.
	require.NotNil(t, result.Installed)
	assert.Empty(t, result.History)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "monthly history seed unavailable")
}

func TestLoader_Fetch_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL, "")
	result := loader.Fetch(context.Background())

	assert.Nil(t, result.Installed)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "empty body")
}

func TestLoader_Fetch_SkipsEmptyURLs(t *testing.T) {
	loader := NewLoader("", "")
	result := loader.Fetch(context.Background())

	assert.Nil(t, result.Installed)
	assert.Empty(t, result.History)
	assert.Empty(t, result.Warnings)
}

func TestLoader_Fetch_CancelledContextDiscards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(installedCSV))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(srv.URL, "")
	result := loader.Fetch(ctx)

	// Nothing fetched under a dead context may be applied.
	assert.Nil(t, result.Installed)
	assert.Equal(t, []string{"bootstrap cancelled"}, result.Warnings)
}
