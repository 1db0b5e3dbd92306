package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"grow-backend/internal/database/models"
)

// This file evaluates the restricted query grammar the builder emits against
// in-memory projects. It backs MemoryIndex and StoreIndex; the hosted search
// service does its own evaluation server-side.

// evalQuery applies filter, term matching, ordering and the skip window of a
// request to a snapshot of projects.
func evalQuery(projects []models.Project, req Request) ([]models.Project, error) {
	var pred *predicate
	if req.Filter != "" {
		parsed, err := parsePredicate(req.Filter)
		if err != nil {
			return nil, fmt.Errorf("parse filter %q: %w", req.Filter, err)
		}
		pred = parsed
	}

	terms := queryTerms(req.QueryText)
	fields := req.SearchFields
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldRequiredSkills}
	}

	matched := []models.Project{}
	for _, p := range projects {
		if pred != nil {
			ok, err := pred.eval(&p)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		if !matchesTerms(&p, terms, fields) {
			continue
		}
		matched = append(matched, p)
	}

	orderProjects(matched, req.OrderBy)

	if req.Skip > 0 {
		if req.Skip >= len(matched) {
			return []models.Project{}, nil
		}
		matched = matched[req.Skip:]
	}
	return matched, nil
}

// queryTerms splits escaped query text into match terms. "*" and the empty
// string mean match-all (nil terms).
func queryTerms(text string) []string {
	if text == "" || text == "*" {
		return nil
	}
	raw := strings.Fields(text)
	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		terms = append(terms, strings.ToLower(unescape(t)))
	}
	return terms
}

func matchesTerms(p *models.Project, terms, fields []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, f := range fields {
		text := strings.ToLower(fieldText(p, f))
		for _, term := range terms {
			if strings.Contains(text, term) {
				return true
			}
		}
	}
	return false
}

// fieldText renders an index field of a project as searchable text.
func fieldText(p *models.Project, field string) string {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldDescription:
		return p.Description
	case FieldRequiredSkills:
		return strings.Join(p.RequiredSkills, ";")
	case FieldCreatedByUserID:
		return p.CreatedByUserID
	case FieldCreatedByName:
		return p.CreatedByName
	case FieldParticipantIDs:
		return strings.Join(p.Participants.UserIDs(), ";")
	default:
		return ""
	}
}

func orderProjects(projects []models.Project, orderBy []string) {
	if len(orderBy) == 0 {
		return
	}
	field, dir, _ := strings.Cut(strings.TrimSpace(orderBy[0]), " ")
	desc := strings.EqualFold(strings.TrimSpace(dir), "desc")

	less := func(a, b *models.Project) bool {
		switch field {
		case FieldCreatedDate:
			return a.CreatedDate.Before(b.CreatedDate)
		case FieldUpdatedDate:
			return a.UpdatedDate.Before(b.UpdatedDate)
		case FieldTitle:
			return a.Title < b.Title
		default:
			return false
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if desc {
			return less(&projects[j], &projects[i])
		}
		return less(&projects[i], &projects[j])
	})
}

// unescape reverses EscapeText: drops each backslash, keeping the character
// it protected.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// --- predicate grammar ---
//
//	or    := and ('or' and)*
//	and   := unary ('and' unary)*
//	unary := '(' or ')' | IDENT 'eq' value
//	value := 'true' | 'false' | NUMBER | quoted string

type predKind int

const (
	predCompare predKind = iota
	predAnd
	predOr
)

type predicate struct {
	kind        predKind
	left, right *predicate
	field       string
	value       string
}

func (p *predicate) eval(project *models.Project) (bool, error) {
	switch p.kind {
	case predAnd:
		l, err := p.left.eval(project)
		if err != nil || !l {
			return false, err
		}
		return p.right.eval(project)
	case predOr:
		l, err := p.left.eval(project)
		if err != nil || l {
			return l, err
		}
		return p.right.eval(project)
	default:
		return evalCompare(project, p.field, p.value)
	}
}

func evalCompare(p *models.Project, field, value string) (bool, error) {
	switch field {
	case FieldIsRemoved:
		want, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("bad boolean %q for %s", value, field)
		}
		return p.IsRemoved == want, nil
	case FieldStatus:
		code, err := strconv.Atoi(value)
		if err != nil {
			return false, fmt.Errorf("bad status code %q", value)
		}
		return p.Status == models.ProjectStatus(code), nil
	case FieldCreatedByUserID:
		return p.CreatedByUserID == value, nil
	case FieldCreatedByName:
		return p.CreatedByName == value, nil
	default:
		return false, fmt.Errorf("unsupported filter field %q", field)
	}
}

type predParser struct {
	tokens []string
	pos    int
}

func parsePredicate(filter string) (*predicate, error) {
	tokens, err := lexPredicate(filter)
	if err != nil {
		return nil, err
	}
	p := &predParser{tokens: tokens}
	pred, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected token %q", p.tokens[p.pos])
	}
	return pred, nil
}

func (p *predParser) parseOr() (*predicate, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "or" {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &predicate{kind: predOr, left: left, right: right}
	}
	return left, nil
}

func (p *predParser) parseAnd() (*predicate, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == "and" {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &predicate{kind: predAnd, left: left, right: right}
	}
	return left, nil
}

func (p *predParser) parseUnary() (*predicate, error) {
	tok := p.next()
	if tok == "(" {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.next() != ")" {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil
	}
	if tok == "" {
		return nil, fmt.Errorf("unexpected end of filter")
	}
	if p.next() != "eq" {
		return nil, fmt.Errorf("expected eq after %q", tok)
	}
	value := p.next()
	if value == "" {
		return nil, fmt.Errorf("missing value after %s eq", tok)
	}
	if strings.HasPrefix(value, "'") {
		value = unescape(strings.Trim(value, "'"))
	}
	return &predicate{kind: predCompare, field: tok, value: value}, nil
}

func (p *predParser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *predParser) next() string {
	tok := p.peek()
	if tok != "" {
		p.pos++
	}
	return tok
}

// lexPredicate tokenizes a filter string, keeping quoted values (which may
// hold escaped characters, including escaped quotes) as single tokens.
func lexPredicate(filter string) ([]string, error) {
	tokens := []string{}
	i := 0
	for i < len(filter) {
		c := filter[i]
		switch {
		case c == ' ':
			i++
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
			i++
		case c == '\'':
			j := i + 1
			for j < len(filter) {
				if filter[j] == '\\' {
					j += 2
					continue
				}
				if filter[j] == '\'' {
					break
				}
				j++
			}
			if j >= len(filter) {
				return nil, fmt.Errorf("unterminated quoted value")
			}
			tokens = append(tokens, filter[i:j+1])
			i = j + 1
		default:
			j := i
			for j < len(filter) && filter[j] != ' ' && filter[j] != '(' && filter[j] != ')' {
				j++
			}
			tokens = append(tokens, filter[i:j])
			i = j
		}
	}
	return tokens, nil
}
