package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"newsdesk/internal/metrics"
	"newsdesk/internal/telegram"
)

const webhookTimeout = 30 * time.Second

type ackResponse struct {
	OK bool `json:"ok"`
}

// TelegramWebhook receives bot updates. Every POST is acknowledged with 200,
// otherwise Telegram keeps redelivering the update.
func (h *Handler) TelegramWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Debug("ignoring malformed update", "error", err)
		h.JSON(w, http.StatusOK, ackResponse{OK: true})
		return
	}

	msg, ok := update.Inbound()
	if !ok {
		h.JSON(w, http.StatusOK, ackResponse{OK: true})
		return
	}

	// The command runs to completion even if Telegram drops the connection.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), webhookTimeout)
	defer cancel()

	out := h.router.Handle(ctx, msg)
	if out.SendErr != nil {
		metrics.RepliesFailed.Inc()
		h.logger.Warn("reply not delivered",
			"update_id", update.UpdateID,
			"command", out.Command,
			"error", out.SendErr,
		)
	}

	h.logger.Debug("update handled",
		"update_id", update.UpdateID,
		"command", out.Command,
		"authorized", out.Authorized,
		"replied", out.Replied(),
	)

	h.JSON(w, http.StatusOK, ackResponse{OK: true})
}
