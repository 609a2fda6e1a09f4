package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Domain sentinels wrap an
// apperror kind, so matching on the kind covers every domain.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case apperror.IsNotFound(err):
		NotFound(w, err.Error())
	case apperror.IsInvalidState(err):
		Conflict(w, err.Error())

	// Default
	default:
		slog.Error("unhandled request error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
