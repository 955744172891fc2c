package response

import (
	"errors"
	"net/http"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid staff ID or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidRole):
		Forbidden(w, "Role is not permitted to perform this action")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "WFH request not found")
	case errors.Is(err, request.ErrConflictingDates):
		Conflict(w, "A request already covers one or more of the selected dates")
	case errors.Is(err, request.ErrAlreadyProcessed):
		Conflict(w, "WFH request has already been processed")
	case errors.Is(err, request.ErrNotRequestOwner):
		Forbidden(w, "WFH request belongs to another employee")
	case errors.Is(err, request.ErrNotReportingManager):
		Forbidden(w, "WFH request is outside your reporting line")
	case errors.Is(err, request.ErrManagerReasonRequired):
		BadRequest(w, "Manager reason must be provided", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
