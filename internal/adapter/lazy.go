package adapter

import (
	"sync"

	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/store"
)

// LazyBackend defers building the [HTTPBackend] until the first Get. Every
// Get returns the same handle (or the same construction error).
type LazyBackend struct {
	get func() (*HTTPBackend, error)
}

// NewLazyBackend returns a [LazyBackend] for cfg.
func NewLazyBackend(cfg config.Backend, sessions store.SessionRepository, log *logger.Logger) *LazyBackend {
	return &LazyBackend{
		get: sync.OnceValues(func() (*HTTPBackend, error) {
			log.Debug().Str("func", "LazyBackend.Get").Msg("initialising backend adapter")
			return NewHTTPBackend(cfg, sessions, log)
		}),
	}
}

// Get returns the backend handle, building it on first use.
func (l *LazyBackend) Get() (*HTTPBackend, error) {
	return l.get()
}
