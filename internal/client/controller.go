package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/justgohire/jobboard/internal/models"
)

// Filters is the active filter set forwarded to the list endpoint.
type Filters struct {
	SearchTerm  string
	Location    string
	JobType     string
	SalaryRange string
}

func (f Filters) values() url.Values {
	v := url.Values{}
	v.Set("searchTerm", f.SearchTerm)
	v.Set("location", f.Location)
	v.Set("jobType", f.JobType)
	v.Set("salaryRange", f.SalaryRange)
	return v
}

// Controller holds the fetched job list plus loading and error flags, and
// refreshes the list whenever the filters change or a job was created.
//
// Every refresh carries a sequence number. A refresh that finishes after a
// newer one started is stale and discarded wholesale, so an out-of-order
// response can never overwrite newer state.
type Controller struct {
	baseURL string
	httpc   *http.Client

	mu      sync.Mutex
	seq     uint64
	jobs    []models.Job
	loading bool
	failed  bool
	filters Filters
}

// NewController builds a controller for the API rooted at baseURL
// (e.g. "http://localhost:5000"). A nil client falls back to
// http.DefaultClient.
func NewController(baseURL string, httpc *http.Client) *Controller {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Controller{baseURL: baseURL, httpc: httpc}
}

// Refresh fetches the job list with the current filters. It sets the loading
// flag, clears the error flag, and on completion either replaces the held
// list or marks the error state. If a newer refresh started meanwhile, the
// result is dropped and the newer refresh owns all state transitions.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.failed = false
	filters := c.filters
	c.mu.Unlock()

	jobs, err := c.fetch(ctx, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil // stale response
	}
	c.loading = false
	if err != nil {
		c.failed = true
		return err
	}
	c.jobs = jobs
	return nil
}

// SetFilters replaces the filter set and refreshes.
func (c *Controller) SetFilters(ctx context.Context, f Filters) error {
	c.mu.Lock()
	c.filters = f
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// JobCreated signals that a posting was successfully created; the list is
// re-fetched so the new row shows up.
func (c *Controller) JobCreated(ctx context.Context) error {
	return c.Refresh(ctx)
}

func (c *Controller) fetch(ctx context.Context, filters Filters) ([]models.Job, error) {
	u := c.baseURL + "/api/jobs?" + filters.values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list jobs: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read list response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return []models.Job{}, nil
	}

	var jobs []models.Job
	if err := json.Unmarshal(body, &jobs); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// Jobs returns a copy of the held list.
func (c *Controller) Jobs() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}
