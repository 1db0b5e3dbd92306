package search

import (
	"sort"
	"strings"

	"grow-backend/internal/database/models"

	"github.com/samber/lo"
)

// Post-processing refines raw result pages in ways the backend query cannot
// express precisely. Every function returns an empty (never nil-panicking)
// result for empty input.

// FilterBySkillIntersection keeps only projects whose required skills actually
// overlap the semicolon-delimited skill query. The backend's OR-style
// full-text match over-selects; screens downstream need confirmed overlap.
func FilterBySkillIntersection(projects []models.Project, skillQuery string) []models.Project {
	wanted := models.SplitTokens(skillQuery)
	if len(wanted) == 0 {
		return []models.Project{}
	}
	return lo.Filter(projects, func(p models.Project, _ int) bool {
		return len(lo.Intersect(p.RequiredSkills, wanted)) > 0
	})
}

// FilterByParticipant keeps only projects the user is genuinely a member of.
// The joined-projects scope matches the user id as a term against a delimited
// field, so one id being a substring of another produces false positives that
// must be re-verified here.
func FilterByParticipant(projects []models.Project, userID string) []models.Project {
	return lo.Filter(projects, func(p models.Project, _ int) bool {
		return p.Participants.Contains(userID)
	})
}

// UniqueSkills flattens all projects' skill lists into a sorted, de-duplicated
// list. searchText "*" keeps every skill; anything else keeps only skills
// containing it, case-insensitively.
func UniqueSkills(projects []models.Project, searchText string) []string {
	needle := strings.ToLower(searchText)
	skills := lo.FlatMap(projects, func(p models.Project, _ int) []string {
		return p.RequiredSkills
	})
	if searchText != "*" {
		skills = lo.Filter(skills, func(s string, _ int) bool {
			return strings.Contains(strings.ToLower(s), needle)
		})
	}
	skills = lo.Uniq(skills)
	sort.Strings(skills)
	return skills
}

// TopOwnerNames picks the display names of the owners with the most projects.
// Count ordering is used only to select the top `limit` owners; the returned
// names are sorted alphabetically.
func TopOwnerNames(projects []models.Project, limit int) []string {
	type ownerGroup struct {
		name  string
		count int
	}

	order := []string{}
	groups := map[string]*ownerGroup{}
	for _, p := range projects {
		g, ok := groups[p.CreatedByUserID]
		if !ok {
			g = &ownerGroup{name: p.CreatedByName}
			groups[p.CreatedByUserID] = g
			order = append(order, p.CreatedByUserID)
		}
		g.count++
	}

	// Stable sort keeps the backend's grouping order as the tie-break on
	// equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].count > groups[order[j]].count
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	names := lo.Map(order, func(id string, _ int) string { return groups[id].name })
	sort.Strings(names)
	return names
}
