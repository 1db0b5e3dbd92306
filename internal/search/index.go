package search

import (
	"context"

	"grow-backend/internal/database/models"
)

// Index field names, as the search service knows them. These belong to the
// query grammar and are independent of database column names.
const (
	FieldTitle           = "Title"
	FieldDescription     = "Description"
	FieldRequiredSkills  = "RequiredSkills"
	FieldStatus          = "Status"
	FieldCreatedByUserID = "CreatedByUserId"
	FieldCreatedByName   = "CreatedByName"
	FieldParticipantIDs  = "ProjectParticipantsUserIds"
	FieldCreatedDate     = "CreatedDate"
	FieldUpdatedDate     = "UpdatedDate"
	FieldIsRemoved       = "IsRemoved"
)

// Query types understood by the search service.
const (
	QueryTypeSimple = "simple"
	QueryTypeFull   = "full"
)

const (
	// DefaultPageSize is the fixed page size the UI requests; a page with
	// fewer results than this is the last one for the caller's cursor.
	DefaultPageSize = 50

	// aggregateTop approximates "all documents" for narrow aggregate scopes
	// such as unique skills.
	aggregateTop = 5000

	// maxDrainPages bounds continuation draining so a defective backend
	// cannot loop a request forever.
	maxDrainPages = 1000
)

// ContinuationToken is the backend's opaque cursor indicating more result
// pages exist. It is distinct from the caller-facing PageCursor and must never
// leak into caller-side pagination logic.
type ContinuationToken string

// Request is a fully assembled search query.
type Request struct {
	QueryText    string   `json:"query_text"`
	Filter       string   `json:"filter,omitempty"`
	SearchFields []string `json:"search_fields,omitempty"`
	OrderBy      []string `json:"order_by,omitempty"`
	Select       []string `json:"select,omitempty"`
	Top          int      `json:"top"`
	Skip         int      `json:"skip"`
	QueryType    string   `json:"query_type"`
}

// Page is one page of matched projects. An empty Continuation means this is
// the final page.
type Page struct {
	Projects     []models.Project  `json:"projects"`
	Continuation ContinuationToken `json:"continuation,omitempty"`
}

// Index is the search service contract: execute a query, follow a
// continuation token, or ask the service to refresh its index from the
// record store.
type Index interface {
	Search(ctx context.Context, req Request) (Page, error)
	Continue(ctx context.Context, token ContinuationToken) (Page, error)
	RunIndexer(ctx context.Context) error
}
