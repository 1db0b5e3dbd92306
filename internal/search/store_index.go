package search

import (
	"context"
	"fmt"

	"grow-backend/internal/database/models"
)

// ProjectSource supplies the full project set for in-process query
// evaluation. The project repository satisfies it.
type ProjectSource interface {
	ListAll(ctx context.Context) ([]models.Project, error)
}

// StoreIndex is an Index that evaluates queries directly over the record
// store. It serves deployments without a hosted search service; every query
// reads fresh data, so RunIndexer has nothing to refresh.
type StoreIndex struct {
	source ProjectSource
}

// NewStoreIndex creates an index over the given source.
func NewStoreIndex(source ProjectSource) *StoreIndex {
	return &StoreIndex{source: source}
}

// Search implements Index.
func (s *StoreIndex) Search(ctx context.Context, req Request) (Page, error) {
	projects, err := s.source.ListAll(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list projects: %w", err)
	}
	matched, err := evalQuery(projects, req)
	if err != nil {
		return Page{}, err
	}
	if req.Top > 0 && len(matched) > req.Top {
		matched = matched[:req.Top]
	}
	return Page{Projects: matched}, nil
}

// Continue implements Index. The store index never hands out continuation
// tokens, so any token is a caller bug.
func (s *StoreIndex) Continue(ctx context.Context, token ContinuationToken) (Page, error) {
	return Page{}, fmt.Errorf("store index issued no continuation token, got %q", token)
}

// RunIndexer implements Index.
func (s *StoreIndex) RunIndexer(ctx context.Context) error {
	return nil
}
