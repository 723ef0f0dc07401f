package http

import (
	"net/http"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/utils"
	"github.com/MKhiriev/go-infaq/models"
)

type webhookResponse struct {
	Success bool   `json:"success"`
	Event   string `json:"event,omitempty"`
	Error   string `json:"error,omitempty"`
}

// webhook applies one sync event. The sender never reads the answer, so
// the status is always 200 and the outcome travels in the body.
func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.SheetSyncPayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		log.Err(err).Str("func", "*Handler.webhook").Msg("invalid webhook body")
		utils.WriteJSON(w, webhookResponse{Error: err.Error()}, http.StatusOK)
		return
	}

	event, err := h.sheet.Apply(r.Context(), payload)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.webhook").
			Str("event", string(payload.Type)).
			Msg("webhook event not applied")
		utils.WriteJSON(w, webhookResponse{Error: err.Error()}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, webhookResponse{Success: true, Event: string(event)}, http.StatusOK)
}
