package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/shelftrack/shelftrack-server/internal/errors"
	"github.com/shelftrack/shelftrack-server/internal/store"
)

// APIError is a custom error type that implements huma.StatusError.
// The wire body is a bare {"error": message} object.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to emit domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				if domainErr.Code == domainerrors.CodeInternal {
					// Internal detail stays out of the response body.
					return &APIError{
						status:  http.StatusInternalServerError,
						Message: "internal server error",
					}
				}
				return &APIError{
					status:  domainErr.HTTPStatus(),
					Message: domainErr.Message,
				}
			}

			// Store "not found" errors that escaped the service layer.
			if errors.Is(err, store.ErrBookNotFound) {
				return &APIError{
					status:  http.StatusNotFound,
					Message: err.Error(),
				}
			}
		}

		// Request parsing and schema failures surface as 400, not huma's 422.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		if status >= 500 {
			message = "internal server error"
		}

		return &APIError{
			status:  status,
			Message: message,
		}
	}
}
