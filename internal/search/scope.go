package search

import (
	"fmt"

	apperrors "grow-backend/internal/errors"
)

// Scope is a named discovery intent. Each scope maps onto one request shape
// in the scope table below.
type Scope string

const (
	ScopeAllProjects             Scope = "allProjects"
	ScopeCreatedProjectsByUser   Scope = "createdProjectsByUser"
	ScopeJoinedProjects          Scope = "joinedProjects"
	ScopeUniqueSkills            Scope = "uniqueSkills"
	ScopeFilterAsPerTeamSkills   Scope = "filterAsPerTeamSkills"
	ScopeUniqueProjectOwnerNames Scope = "uniqueProjectOwnerNames"
	ScopeSearchProjects          Scope = "searchProjects"
	ScopeFilterTeamProjects      Scope = "filterTeamProjects"
)

// Params carries the caller-side inputs a scope may use. Unused fields are
// ignored by scopes that do not need them.
type Params struct {
	// SearchText is raw user free text, or a semicolon-delimited skill list
	// for the team-skill scopes. Escaping happens here, in the resolver,
	// exactly once.
	SearchText string
	UserID     string
	StatusList string // semicolon-delimited status codes, e.g. "1;2"
	OwnerList  string // semicolon-delimited owner display names
	Top        int
	Skip       int
}

const removedFilter = FieldIsRemoved + " eq false"

var fullProjection = []string{
	FieldTitle, FieldDescription, FieldRequiredSkills, FieldStatus,
	FieldCreatedByUserID, FieldCreatedByName, FieldParticipantIDs,
	FieldCreatedDate, FieldUpdatedDate,
}

// scopeSpec is one row of the scope table: how to derive the query text, the
// filter predicate and the fixed request attributes for a scope.
type scopeSpec struct {
	text         func(Params) string
	filter       func(Params) string
	searchFields []string
	orderBy      []string
	selectFields []string
	queryType    string
	topOverride  int
}

var scopeTable = map[Scope]scopeSpec{
	ScopeAllProjects: {
		text:         func(p Params) string { return orMatchAll(EscapeText(p.SearchText)) },
		filter:       func(Params) string { return removedFilter },
		orderBy:      []string{FieldCreatedDate + " desc"},
		selectFields: fullProjection,
	},
	ScopeCreatedProjectsByUser: {
		text: func(Params) string { return "*" },
		filter: func(p Params) string {
			return fmt.Sprintf("%s eq '%s' and %s", FieldCreatedByUserID, EscapeText(p.UserID), removedFilter)
		},
		orderBy:      []string{FieldCreatedDate + " desc"},
		selectFields: fullProjection,
	},
	ScopeJoinedProjects: {
		// The user id is matched as a term against the delimited participant
		// field; this over-selects, so callers re-verify membership in the
		// post-processor.
		text:         func(p Params) string { return orMatchAll(EscapeText(p.UserID)) },
		filter:       func(Params) string { return removedFilter },
		searchFields: []string{FieldParticipantIDs},
		orderBy:      []string{FieldCreatedDate + " desc"},
		selectFields: fullProjection,
	},
	ScopeUniqueSkills: {
		text:         func(p Params) string { return orMatchAll(EscapeText(p.SearchText)) },
		filter:       func(Params) string { return removedFilter },
		searchFields: []string{FieldRequiredSkills},
		selectFields: []string{FieldRequiredSkills},
		topOverride:  aggregateTop,
	},
	ScopeFilterAsPerTeamSkills: {
		text:         func(p Params) string { return orMatchAll(BuildSkillsQuery(p.SearchText)) },
		filter:       func(Params) string { return removedFilter },
		searchFields: []string{FieldRequiredSkills},
		orderBy:      []string{FieldUpdatedDate + " desc"},
		selectFields: fullProjection,
	},
	ScopeUniqueProjectOwnerNames: {
		text:         func(Params) string { return "*" },
		filter:       func(Params) string { return removedFilter },
		orderBy:      []string{FieldUpdatedDate + " desc"},
		selectFields: []string{FieldCreatedByUserID, FieldCreatedByName},
		topOverride:  aggregateTop,
	},
	ScopeSearchProjects: {
		text:         func(p Params) string { return orMatchAll(EscapeText(p.SearchText)) },
		filter:       combinedFilter,
		searchFields: []string{FieldTitle, FieldDescription, FieldRequiredSkills},
		orderBy:      []string{FieldUpdatedDate + " desc"},
		selectFields: fullProjection,
		queryType:    QueryTypeFull,
	},
	ScopeFilterTeamProjects: {
		text:         func(p Params) string { return orMatchAll(BuildSkillsQuery(p.SearchText)) },
		filter:       combinedFilter,
		searchFields: []string{FieldRequiredSkills},
		orderBy:      []string{FieldUpdatedDate + " desc"},
		selectFields: fullProjection,
	},
}

// KnownScope reports whether s names a defined discovery scope. Transport
// layers use it to reject caller-supplied scope strings before they reach
// BuildRequest.
func KnownScope(s Scope) bool {
	_, ok := scopeTable[s]
	return ok
}

// BuildRequest resolves a scope plus its parameters into a complete backend
// request. An unknown scope is a programming error, not user input.
func BuildRequest(scope Scope, p Params) (Request, error) {
	spec, ok := scopeTable[scope]
	if !ok {
		return Request{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownScope, scope)
	}

	top := p.Top
	if top <= 0 {
		top = DefaultPageSize
	}
	if spec.topOverride > 0 {
		top = spec.topOverride
	}

	queryType := spec.queryType
	if queryType == "" {
		queryType = QueryTypeSimple
	}

	return Request{
		QueryText:    spec.text(p),
		Filter:       spec.filter(p),
		SearchFields: spec.searchFields,
		OrderBy:      spec.orderBy,
		Select:       spec.selectFields,
		Top:          top,
		Skip:         p.Skip,
		QueryType:    queryType,
	}, nil
}

// combinedFilter joins the mandatory removed check with the optional
// status/owner filter bar selection.
func combinedFilter(p Params) string {
	extra := CombineFilters(BuildStatusFilter(p.StatusList), BuildOwnerFilter(p.OwnerList))
	if extra == "" {
		return removedFilter
	}
	return removedFilter + " and " + extra
}

// orMatchAll maps an empty query to the backend's match-all symbol.
func orMatchAll(text string) string {
	if text == "" {
		return "*"
	}
	return text
}
