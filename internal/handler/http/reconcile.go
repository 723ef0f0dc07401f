package http

import (
	"net/http"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/utils"
)

type reconcileResponse struct {
	Success bool `json:"success"`
	Rows    int  `json:"rows"`
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	n, err := h.sheet.Reconcile(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.reconcile").Msg("reconcile failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Int("rows", n).Msg("manual reconcile finished")
	utils.WriteJSON(w, reconcileResponse{Success: true, Rows: n}, http.StatusOK)
}

func (h *Handler) rows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.sheet.Rows(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.rows").Msg("failed to list rows")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.buildInfo.String()))
}
