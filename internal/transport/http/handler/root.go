package handler

import (
	"net/http"
	"time"

	"riftgate-rest-api/internal/transport/http/response"
)

// RootResponse represents the service info response.
type RootResponse struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// Root handles GET /api/v1/
// Confirms the service is up without touching any upstream. Used for
// liveness probes in Docker/Kubernetes.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	resp := RootResponse{
		Message:   h.appName + " is running",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	}

	response.OK(w, resp)
}
