package search

import (
	"context"
	"fmt"

	"grow-backend/internal/database/models"
	apperrors "grow-backend/internal/errors"
)

// PageCursor is the caller-facing infinite-scroll offset: a plain page count
// that grows by one per scroll event. It is unrelated to the backend's
// ContinuationToken; the two pagination layers never mix.
type PageCursor int

// Offset converts the cursor into a skip value for a fixed page size.
func (c PageCursor) Offset(pageSize int) int {
	if c < 0 {
		return 0
	}
	return int(c) * pageSize
}

// DrainAll executes req and follows continuation tokens sequentially until the
// backend reports no further pages, returning the concatenation of all pages
// in order. Draining stops with an error after maxDrainPages pages: a chain
// that long means the backend is handing out tokens in a loop.
//
// Cancellation aborts the whole drain; partial results are never returned.
func DrainAll(ctx context.Context, idx Index, req Request) ([]models.Project, error) {
	page, err := idx.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	projects := page.Projects
	for pages := 1; page.Continuation != ""; pages++ {
		if pages >= maxDrainPages {
			return nil, fmt.Errorf("%w (%d pages)", apperrors.ErrTooManyPages, pages)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err = idx.Continue(ctx, page.Continuation)
		if err != nil {
			return nil, fmt.Errorf("continue search: %w", err)
		}
		projects = append(projects, page.Projects...)
	}
	return projects, nil
}

// HasMorePage is the UI convention for the caller-side cursor: a page holding
// fewer results than the requested size was the last one. This is independent
// of backend continuation tokens.
func HasMorePage(pageSize, returned int) bool {
	return returned >= pageSize
}
