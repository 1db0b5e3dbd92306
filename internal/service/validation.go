package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "grow-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// asValidationError translates go-playground/validator failures into the
// shared error taxonomy so handlers report them as client errors, never as
// server failures.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return apperrors.NewValidationError(
			strings.ToLower(first.Field()),
			fmt.Sprintf("failed on the '%s' rule", first.Tag()),
		)
	}
	return apperrors.NewValidationError("", err.Error())
}
