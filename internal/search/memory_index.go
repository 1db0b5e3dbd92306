package search

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"grow-backend/internal/database/models"

	"github.com/google/uuid"
)

// MemoryIndex is an Index over an in-memory project set. It evaluates the
// same query grammar the builder emits, pages with real continuation tokens,
// and is the implementation tests and local development run against.
type MemoryIndex struct {
	mu        sync.Mutex
	projects  []models.Project
	pageLimit int
	pending   map[ContinuationToken][]models.Project
	nextToken int

	// IndexerErr, when set, is returned by every RunIndexer call.
	IndexerErr error
	// IndexerRuns counts RunIndexer invocations.
	IndexerRuns int
}

// NewMemoryIndex creates an empty index. pageLimit caps how many documents a
// single response carries; results beyond it are served via continuation
// tokens. Zero means no per-response cap.
func NewMemoryIndex(pageLimit int) *MemoryIndex {
	return &MemoryIndex{
		pageLimit: pageLimit,
		pending:   map[ContinuationToken][]models.Project{},
	}
}

// Load replaces the indexed project set.
func (m *MemoryIndex) Load(projects ...models.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append([]models.Project{}, projects...)
}

// Upsert adds or replaces one project by id.
func (m *MemoryIndex) Upsert(p models.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == p.ID {
			m.projects[i] = p
			return
		}
	}
	m.projects = append(m.projects, p)
}

// Remove drops one project by id.
func (m *MemoryIndex) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.projects[:0]
	for _, p := range m.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.projects = kept
}

// Search implements Index.
func (m *MemoryIndex) Search(ctx context.Context, req Request) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	m.mu.Lock()
	snapshot := append([]models.Project{}, m.projects...)
	m.mu.Unlock()

	matched, err := evalQuery(snapshot, req)
	if err != nil {
		return Page{}, err
	}
	if req.Top > 0 && len(matched) > req.Top {
		matched = matched[:req.Top]
	}
	return m.paginate(matched), nil
}

// Continue implements Index.
func (m *MemoryIndex) Continue(ctx context.Context, token ContinuationToken) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	m.mu.Lock()
	rest, ok := m.pending[token]
	delete(m.pending, token)
	m.mu.Unlock()
	if !ok {
		return Page{}, fmt.Errorf("unknown continuation token %q", token)
	}
	return m.paginate(rest), nil
}

// RunIndexer implements Index. The memory index is always current, so this
// only records the invocation.
func (m *MemoryIndex) RunIndexer(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IndexerRuns++
	return m.IndexerErr
}

func (m *MemoryIndex) paginate(matched []models.Project) Page {
	if m.pageLimit <= 0 || len(matched) <= m.pageLimit {
		return Page{Projects: matched}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextToken++
	token := ContinuationToken(strconv.Itoa(m.nextToken))
	m.pending[token] = matched[m.pageLimit:]
	return Page{Projects: matched[:m.pageLimit], Continuation: token}
}
