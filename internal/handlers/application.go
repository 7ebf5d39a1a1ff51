package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx/types"

	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
)

type applicationResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	ReceivedAt string          `json:"receivedAt,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Details    string          `json:"details,omitempty"`
}

// SubmitApplication stores an admission form posted by the website.
func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		h.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, applicationResponse{Error: "Invalid JSON", Details: err.Error()})
		return
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		h.JSON(w, http.StatusBadRequest, applicationResponse{Error: "Invalid JSON", Details: err.Error()})
		return
	}

	app := &domain.Application{Payload: types.JSONText(payload)}
	if err := h.applications.Create(r.Context(), app); err != nil {
		h.logger.Error("failed to store application", "error", err)
		h.JSON(w, http.StatusInternalServerError, applicationResponse{Error: "Failed to save application"})
		return
	}
	metrics.ApplicationsReceived.Inc()

	receivedAt := app.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	h.logger.Info("application received", "application_id", app.ID)

	h.JSON(w, http.StatusOK, applicationResponse{
		Success:    true,
		Message:    "Form received successfully!",
		ReceivedAt: receivedAt.UTC().Format(time.RFC3339),
		Data:       payload,
	})
}
