package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-infaq/internal/logger"
)

const reconcileTokenHeader = "X-Reconcile-Token"

// withReconcileToken guards manual rebuilds with the shared token from the
// configuration. Without a configured token every request passes.
func (h *Handler) withReconcileToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.reconcileToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token := r.Header.Get(reconcileTokenHeader)
		if token == "" {
			log.Err(ErrMissingReconcileToken).Send()
			http.Error(w, ErrMissingReconcileToken.Error(), http.StatusUnauthorized)
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.reconcileToken)) != 1 {
			log.Err(ErrInvalidReconcileToken).Send()
			http.Error(w, ErrInvalidReconcileToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
