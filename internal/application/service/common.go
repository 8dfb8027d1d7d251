package service

import (
	"strings"
	"time"

	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/google/uuid"
)

// Actor identifies the authenticated user performing an operation, carried
// from the JWT claims into the service layer.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
}

const dateLayout = "2006-01-02"

// parseDate parses an ISO date string; the zero time signals "absent" and is
// caught by validation before it reaches here.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// validationError aggregates ordered validation messages into the single
// joined notification the client shows, keeping the individual messages as
// field errors.
func validationError(errs []string) *apperror.AppError {
	fieldErrors := make([]apperror.FieldError, len(errs))
	for i, e := range errs {
		fieldErrors[i] = apperror.FieldError{Message: e}
	}
	return apperror.NewValidationError(strings.Join(errs, "; "), fieldErrors)
}
