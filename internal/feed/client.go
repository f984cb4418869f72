// Package feed downloads the main CSV extract and weekly incremental
// spreadsheet files from the mirror.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"rasff-insights-go/internal/dataset"
	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/types"
)

// DefaultBaseURL is the weekly-file mirror root. The weekly path layout is
// <base>/<yy>/rasff-<year>-<week>.xls.
const DefaultBaseURL = "https://www.sirene-diffusion.fr/regia/000-rasff"

const requestTimeout = 10 * time.Second

// Client fetches feed files. Base URL and the http.Client are injectable so
// tests point it at an httptest server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	log     *logger.Logger
}

// NewClient builds a Client against the public mirror with the fixed
// per-request timeout.
func NewClient(log *logger.Logger) *Client {
	if log == nil {
		log = logger.New()
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: requestTimeout},
		log:     log.WithComponent("feed"),
	}
}

// WeeklyURL renders the mirror path for one ISO week.
func (c *Client) WeeklyURL(year, week int) string {
	return fmt.Sprintf("%s/%02d/rasff-%d-%02d.xls", c.BaseURL, year%100, year, week)
}

// FetchWeekly downloads and parses one weekly file. A missing or malformed
// week is an error for that week only; callers decide whether to skip.
func (c *Client) FetchWeekly(ctx context.Context, year, week int) ([]types.RawRecord, error) {
	url := c.WeeklyURL(year, week)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch week %d/%d: %w", year, week, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch week %d/%d: status %d", year, week, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read week %d/%d: %w", year, week, err)
	}
	raws, err := dataset.ParseXLSX(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse week %d/%d: %w", year, week, err)
	}
	return raws, nil
}

// WeekReport records the outcome of one weekly fetch in an update run.
type WeekReport struct {
	Year    int    `json:"year"`
	Week    int    `json:"week"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// UpdateSince fetches everything from startWeek up to (not including) the
// current ISO week. See UpdateRange.
func (c *Client) UpdateSince(ctx context.Context, year, startWeek int) ([]types.RawRecord, []WeekReport) {
	return c.UpdateRange(ctx, year, startWeek, isoWeekNow())
}

// UpdateRange fetches weeks [startWeek, endWeek) and merges the rows.
// Failed weeks are logged, reported and skipped; one bad week never aborts
// the run. No retries per week.
func (c *Client) UpdateRange(ctx context.Context, year, startWeek, endWeek int) ([]types.RawRecord, []WeekReport) {
	var merged []types.RawRecord
	var reports []WeekReport
	for week := startWeek; week < endWeek; week++ {
		wlog := c.log.WithField("year", year).WithField("week", week)
		raws, err := c.FetchWeekly(ctx, year, week)
		if err != nil {
			wlog.WithError(err).Warn("weekly file unavailable, skipping")
			reports = append(reports, WeekReport{Year: year, Week: week, Error: err.Error()})
			continue
		}
		wlog.WithField("records", len(raws)).Info("weekly file loaded")
		reports = append(reports, WeekReport{Year: year, Week: week, Records: len(raws)})
		merged = append(merged, raws...)
	}
	return merged, reports
}

// FetchMainExtract downloads the consolidated CSV and parses it into raw
// records. Unlike weekly files this is the whole dataset, so transient
// failures retry with exponential backoff before giving up.
func (c *Client) FetchMainExtract(ctx context.Context, url string) ([]types.RawRecord, error) {
	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.HTTP.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
		body, err = io.ReadAll(resp.Body)
		return err
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("fetch main extract: %w", err)
	}
	return dataset.LoadCSV(bytes.NewReader(body))
}

func isoWeekNow() int {
	_, week := time.Now().ISOWeek()
	return week
}
