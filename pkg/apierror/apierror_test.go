package apierror

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"bad request", BadRequest("nope"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized},
		{"not found", NotFound("nope"), http.StatusNotFound},
		{"internal", InternalError("nope"), http.StatusInternalServerError},
		{"gateway timeout", GatewayTimeout("nope"), http.StatusGatewayTimeout},
		{"upstream", Upstream(http.StatusTooManyRequests, "nope"), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.want {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.want)
			}
			if tt.err.Message != "nope" {
				t.Errorf("Message = %q, want %q", tt.err.Message, "nope")
			}
			if tt.err.Timestamp.IsZero() {
				t.Error("Timestamp is zero, want set")
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("User not found")
	if got := err.Error(); got != "User not found" {
		t.Errorf("Error() = %q, want %q", got, "User not found")
	}
}

func TestEnvelopeShape(t *testing.T) {
	b := BadRequest("bad input").ToJSON()

	var envelope struct {
		Error     bool   `json:"error"`
		Status    int    `json:"status"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	if !envelope.Error {
		t.Error("error flag = false, want true")
	}
	if envelope.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", envelope.Status, http.StatusBadRequest)
	}
	if envelope.Message != "bad input" {
		t.Errorf("message = %q, want %q", envelope.Message, "bad input")
	}
	if envelope.Timestamp == "" {
		t.Error("timestamp missing from envelope")
	}
}
