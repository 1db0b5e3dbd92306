package search

import (
	"fmt"
	"strings"

	"grow-backend/internal/database/models"
)

// reservedChars are the query-grammar characters that must be escaped inside
// free text and interpolated names.
const reservedChars = `_|\@&?*+!-:~'^/(){}<>#[]`

// EscapeText backslash-escapes every reserved query-grammar character in raw
// text. It must be applied exactly once per raw input: escaping is not
// idempotent and a second pass double-escapes.
func EscapeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(reservedChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BuildSkillsQuery turns a semicolon-delimited skill list into a full-text
// query fragment matching any of the skills. An empty input yields an empty
// string, which callers interpret as match-all.
func BuildSkillsQuery(skills string) string {
	return strings.Join(models.SplitTokens(skills), " ")
}

// BuildStatusFilter renders a semicolon-delimited list of status codes as a
// disjunction of equality predicates, e.g. "Status eq 1 or Status eq 2".
// Returns the empty string when the input holds no tokens.
func BuildStatusFilter(statuses string) string {
	tokens := models.SplitTokens(statuses)
	clauses := make([]string, 0, len(tokens))
	for _, code := range tokens {
		clauses = append(clauses, fmt.Sprintf("%s eq %s", FieldStatus, code))
	}
	return strings.Join(clauses, " or ")
}

// BuildOwnerFilter renders a semicolon-delimited list of owner display names
// as a disjunction of equality predicates. Each name is escaped before
// interpolation so it cannot break out of the predicate.
func BuildOwnerFilter(ownerNames string) string {
	tokens := models.SplitTokens(ownerNames)
	clauses := make([]string, 0, len(tokens))
	for _, name := range tokens {
		clauses = append(clauses, fmt.Sprintf("%s eq '%s'", FieldCreatedByName, EscapeText(name)))
	}
	return strings.Join(clauses, " or ")
}

// CombineFilters joins the status and owner filters into one predicate.
// Both present: "(status) and (owner)"; one present: that one parenthesized;
// neither: empty string (no restriction beyond the mandatory removed check).
func CombineFilters(statusFilter, ownerFilter string) string {
	switch {
	case statusFilter != "" && ownerFilter != "":
		return fmt.Sprintf("(%s) and (%s)", statusFilter, ownerFilter)
	case statusFilter != "":
		return fmt.Sprintf("(%s)", statusFilter)
	case ownerFilter != "":
		return fmt.Sprintf("(%s)", ownerFilter)
	default:
		return ""
	}
}
