// Package bootstrap seeds initial state from remote static CSV files.
// Fetches are single-attempt with no retry: a failed or empty download
// becomes a warning and the caller falls back to manual-entry defaults.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skanodia/gridcap/internal/csvio"
	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// defaultTimeout bounds each seed fetch.
const defaultTimeout = 15 * time.Second

// Result carries whatever seed data could be fetched, plus a warning per
// file that could not. Both payloads are optional; an empty Result means
// full manual-entry fallback.
type Result struct {
	Installed grid.CapacitySnapshot
	History   []csvio.HistoryRow
	Warnings  []string
}

// Loader fetches the configured seed CSVs.
type Loader struct {
	client       *http.Client
	installedURL string
	historyURL   string
}

// NewLoader builds a Loader for the given seed URLs. Either URL may be
// empty, in which case that file is skipped.
func NewLoader(installedURL, historyURL string) *Loader {
	return &Loader{
		client:       &http.Client{Timeout: defaultTimeout},
		installedURL: installedURL,
		historyURL:   historyURL,
	}
}

// Fetch downloads both seed files concurrently and parses them. The
// fetches honour ctx: a cancelled context abandons the download and the
// partially fetched result is discarded rather than applied. Per-file
// failures are reported as warnings, never as an error.
func (l *Loader) Fetch(ctx context.Context) Result {
	log := logging.FromContext(ctx)

	var installedBody, historyBody string
	var installedWarn, historyWarn string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if l.installedURL == "" {
			return nil
		}
		body, err := l.fetchOne(gctx, l.installedURL)
		if err != nil {
			installedWarn = fmt.Sprintf("installed capacity seed unavailable: %v", err)
			return nil
		}
		installedBody = body
		return nil
	})
	g.Go(func() error {
		if l.historyURL == "" {
			return nil
		}
		body, err := l.fetchOne(gctx, l.historyURL)
		if err != nil {
			historyWarn = fmt.Sprintf("monthly history seed unavailable: %v", err)
			return nil
		}
		historyBody = body
		return nil
	})
	_ = g.Wait()

	// A context torn down mid-fetch must not apply stale state.
	if ctx.Err() != nil {
		log.Debug().
			Str("component", "bootstrap").
			Msg("context cancelled, discarding fetched seed data")
		return Result{Warnings: []string{"bootstrap cancelled"}}
	}

	var result Result
	if installedWarn != "" {
		result.Warnings = append(result.Warnings, installedWarn)
	} else if installedBody != "" {
		result.Installed = csvio.ParseInstalled(csvio.Parse(installedBody))
	}
	if historyWarn != "" {
		result.Warnings = append(result.Warnings, historyWarn)
	} else if historyBody != "" {
		rows, err := csvio.ParseHistory(ctx, csvio.Parse(historyBody))
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("monthly history seed malformed: %v", err))
		} else {
			result.History = rows
		}
	}

	log.Info().
		Str("component", "bootstrap").
		Bool("installed_loaded", result.Installed != nil).
		Int("history_rows", len(result.History)).
		Int("warnings", len(result.Warnings)).
		Msg("bootstrap fetch complete")

	return result
}

// fetchOne performs a single GET and returns the body. Non-OK statuses
// and empty bodies are failures.
func (l *Loader) fetchOne(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("fetching %s: empty body", url)
	}
	return string(body), nil
}
