package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"grow-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

// HTTPIndexOptions configures the hosted search service client.
type HTTPIndexOptions struct {
	BaseURL     string
	IndexName   string
	IndexerName string
	APIKey      string
	Timeout     time.Duration
}

// HTTPIndex is the Index implementation backed by the hosted search service's
// REST API.
type HTTPIndex struct {
	client      *resty.Client
	indexName   string
	indexerName string
	log         *logger.Logger
}

const (
	indexerRetries = 2
	indexerBackoff = 500 * time.Millisecond
)

// NewHTTPIndex creates a search service client.
func NewHTTPIndex(opts HTTPIndexOptions, log *logger.Logger) *HTTPIndex {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if opts.APIKey != "" {
		client.SetHeader("api-key", opts.APIKey)
	}
	return &HTTPIndex{
		client:      client,
		indexName:   opts.IndexName,
		indexerName: opts.IndexerName,
		log:         log,
	}
}

// Search implements Index.
func (h *HTTPIndex) Search(ctx context.Context, req Request) (Page, error) {
	var page Page
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&page).
		Post(fmt.Sprintf("/indexes/%s/query", h.indexName))
	if err != nil {
		return Page{}, fmt.Errorf("search request: %w", err)
	}
	if resp.IsError() {
		return Page{}, fmt.Errorf("search service returned %s", resp.Status())
	}
	return page, nil
}

// Continue implements Index.
func (h *HTTPIndex) Continue(ctx context.Context, token ContinuationToken) (Page, error) {
	var page Page
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"continuation": string(token)}).
		SetResult(&page).
		Post(fmt.Sprintf("/indexes/%s/continue", h.indexName))
	if err != nil {
		return Page{}, fmt.Errorf("continue request: %w", err)
	}
	if resp.IsError() {
		return Page{}, fmt.Errorf("search service returned %s", resp.Status())
	}
	return page, nil
}

// RunIndexer implements Index. Conflict and throttling responses are retried
// with linear backoff up to two extra attempts; exhausting them surfaces the
// last failure to the caller, who logs it without failing the triggering
// write.
func (h *HTTPIndex) RunIndexer(ctx context.Context) error {
	var lastErr error
	for attempt := 0; attempt <= indexerRetries; attempt++ {
		if attempt > 0 {
			h.log.WithField("attempt", attempt).Warn("retrying indexer run")
			select {
			case <-time.After(time.Duration(attempt) * indexerBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		resp, err := h.client.R().
			SetContext(ctx).
			Post(fmt.Sprintf("/indexers/%s/run", h.indexerName))
		if err != nil {
			lastErr = fmt.Errorf("indexer request: %w", err)
			continue
		}
		if resp.StatusCode() == http.StatusConflict || resp.StatusCode() == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("indexer busy: %s", resp.Status())
			continue
		}
		if resp.IsError() {
			return fmt.Errorf("indexer run returned %s", resp.Status())
		}
		return nil
	}
	return lastErr
}
