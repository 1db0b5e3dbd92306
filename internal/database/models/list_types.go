package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringList stores an ordered list of tokens as a single semicolon-joined
// column. Splitting and joining happen only here, at the SQL boundary;
// business logic always sees a real slice.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ";"), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	s, err := columnString(value)
	if err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	*l = SplitTokens(s)
	return nil
}

// Participant is one project member.
type Participant struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// ParticipantList stores project members as a single "id:name;id:name" column,
// the wire format the record store uses for participant mappings.
type ParticipantList []Participant

// Value implements driver.Valuer.
func (l ParticipantList) Value() (driver.Value, error) {
	pairs := make([]string, 0, len(l))
	for _, p := range l {
		pairs = append(pairs, p.UserID+":"+p.DisplayName)
	}
	return strings.Join(pairs, ";"), nil
}

// Scan implements sql.Scanner.
func (l *ParticipantList) Scan(value interface{}) error {
	s, err := columnString(value)
	if err != nil {
		return fmt.Errorf("scan participant list: %w", err)
	}
	out := ParticipantList{}
	for _, pair := range SplitTokens(s) {
		id, name, _ := strings.Cut(pair, ":")
		out = append(out, Participant{UserID: id, DisplayName: name})
	}
	*l = out
	return nil
}

// UserIDs returns the participant ids in list order.
func (l ParticipantList) UserIDs() []string {
	ids := make([]string, 0, len(l))
	for _, p := range l {
		ids = append(ids, p.UserID)
	}
	return ids
}

// Contains reports whether userID is a member.
func (l ParticipantList) Contains(userID string) bool {
	for _, p := range l {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// SplitTokens splits a semicolon-delimited string, trimming whitespace and
// dropping empty tokens. Malformed input (trailing or doubled semicolons)
// degrades to fewer tokens, never an error.
func SplitTokens(s string) []string {
	out := []string{}
	for _, tok := range strings.Split(s, ";") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func columnString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported column type %T", value)
	}
}
