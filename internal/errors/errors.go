package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a business-rule violation: the request was well
// formed and the entity exists, but the operation is not allowed in the
// entity's current state.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// Entity Not Found Errors
var (
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrTeamSkillsNotFound    = &NotFoundError{Entity: "team skill configuration"}
	ErrAcquiredSkillNotFound = &NotFoundError{Entity: "acquired skill record"}
)

// Workflow Conflict Errors
var (
	ErrTeamCapacityReached  = &ConflictError{Reason: "project team has reached its capacity"}
	ErrDuplicateParticipant = &ConflictError{Reason: "user is already a participant of this project"}
	ErrNotParticipant       = &ConflictError{Reason: "user is not a participant of this project"}
	ErrProjectClosed        = &ConflictError{Reason: "project is closed"}
	ErrProjectNotActive     = &ConflictError{Reason: "project is not active"}
	ErrProjectNotJoinable   = &ConflictError{Reason: "project does not accept participants in its current status"}
	ErrNotProjectOwner      = &ConflictError{Reason: "only the project owner may perform this operation"}
	ErrMissingFeedback      = &ValidationError{Field: "participant_feedback", Message: "feedback is required for every current participant"}
)

// Storage Errors
var (
	// ErrConcurrentUpdate is returned by conditional writes when the row
	// version changed between read and write. Callers re-read, re-validate
	// and retry a bounded number of times.
	ErrConcurrentUpdate = errors.New("record was modified concurrently")
)

// Search Errors
var (
	ErrUnknownScope = errors.New("unknown search scope")
	ErrTooManyPages = errors.New("continuation draining exceeded the page bound")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(reason string) error {
	return &ConflictError{Reason: reason}
}
