package handlers

import (
	"context"
	"net/http"
	"time"
)

const version = "0.1.0"

// Check represents the status of a health check.
type Check struct {
	Status  string `json:"status"`            // "pass" or "fail"
	Latency string `json:"latency,omitempty"` // e.g., "2ms"
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string           `json:"status"` // "healthy" or "degraded"
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	Timestamp string           `json:"timestamp"`
}

// Health reports whether the database is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]Check)
	healthy := true

	if h.db != nil {
		start := time.Now()
		if err := h.db.PingContext(ctx); err != nil {
			checks["postgres"] = Check{Status: "fail", Message: "connection failed"}
			healthy = false
		} else {
			checks["postgres"] = Check{Status: "pass", Latency: time.Since(start).String()}
		}
	} else {
		checks["postgres"] = Check{Status: "fail", Message: "not configured"}
		healthy = false
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !healthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	h.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Version:   version,
		Checks:    checks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// TestResponse is returned by the liveness probe used by the website.
type TestResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// Test answers without touching any dependency.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	h.JSON(w, http.StatusOK, TestResponse{
		Message:   "Backend is working!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      r.URL.RequestURI(),
	})
}
