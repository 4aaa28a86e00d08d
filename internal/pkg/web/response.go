package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/ferdiebergado/notesvc/internal/pkg/message"
)

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// It includes a general error message and, optionally, a map of field-level
// validation errors. The Errors field is omitted from the response if empty.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The response includes a human-readable message and an optional map of
// field-specific validation errors. The reason is logged using slog at
// Error level with the key "reason" and is never sent to the client.
//
// Example usage:
//
//	Fail(w, http.StatusBadRequest, err, "Invalid input.", map[string]string{
//		"text": "text must be at most 10000 characters long",
//	})
//
// The JSON response has the form:
//
//	{
//	  "message": "Invalid input.",
//	  "errors": {
//	    "text": "text must be at most 10000 characters long"
//	  }
//	}
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "reason", reason)
	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}

// RespondBadRequest fails the request with 400 Bad Request.
func RespondBadRequest(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, reason, msg, errs)
}

// RespondNotFound fails the request with 404 Not Found.
func RespondNotFound(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotFound, reason, msg, errs)
}

// RespondUnprocessableEntity fails the request with 422 Unprocessable Entity.
func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, reason, msg, errs)
}

// RespondRequestEntityTooLarge fails the request with 413 Content Too Large.
func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, msg, errs)
}

// RespondInternalServerError fails the request with 500 Internal Server Error
// and a generic message that hides the reason from the client.
func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, message.ServerError, nil)
}
