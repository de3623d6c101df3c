package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vitalroasters/storefront/internal/chat"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat answers a storefront chat message with the rule-based bot.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("failed to decode chat request", "error", err)
		h.writeError(ctx, w, http.StatusBadRequest, "Message is required")
		return
	}
	if req.Message == "" {
		h.writeError(ctx, w, http.StatusBadRequest, "Message is required")
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, chat.Respond(req.Message))
}
