package errors

import (
	"errors"

	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

// FromApplicationError maps the application error taxonomy onto problem details.
func FromApplicationError(err error) (ProblemDetail, bool) {
	var validation *apperr.ValidationError
	if errors.As(err, &validation) {
		return NewValidationProblem(map[string]string{validation.Field: validation.Reason}).
			WithDetail(validation.Error()), true
	}
	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		return NewNotFoundProblem(notFound.Entity, notFound.ID), true
	}
	var conflict *apperr.ConflictError
	if errors.As(err, &conflict) {
		return NewConflictProblem(conflict.Field, conflict.Value), true
	}
	return ProblemDetail{}, false
}
