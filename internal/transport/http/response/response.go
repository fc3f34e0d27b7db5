// Package response writes JSON replies in the service's uniform envelopes.
package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"riftgate-rest-api/pkg/apierror"
)

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Response] encode failed: %v", err)
	}
}

// OK writes v with a 200 status.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error writes err as the uniform error envelope. Errors that are not an
// *apierror.Error are masked as a generic 500 so internal details never
// reach the client.
func Error(w http.ResponseWriter, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		log.Printf("[Response] unexpected error: %v", err)
		apiErr = apierror.InternalError("Internal server error")
	}
	JSON(w, apiErr.Status, apiErr)
}
