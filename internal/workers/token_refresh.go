package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/logger"
)

const defaultRefreshInterval = time.Minute

// TokenRefreshJob keeps the backend session alive. On every tick it
// refreshes the session when the access token expires within two intervals.
// A rejected refresh makes the provider sign out and notify its listeners,
// which clears the signed-in user.
type TokenRefreshJob struct {
	auth     adapter.AuthProvider
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	loop loop
}

func NewTokenRefreshJob(auth adapter.AuthProvider, interval time.Duration, log *logger.Logger) *TokenRefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &TokenRefreshJob{
		auth:     auth,
		interval: interval,
		now:      time.Now,
		logger:   log.Component("token_refresh"),
	}
}

func (j *TokenRefreshJob) Start(ctx context.Context) {
	j.loop.start(ctx, func(ctx context.Context) {
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				j.tick(ctx)
			}
		}
	})
}

func (j *TokenRefreshJob) Stop() {
	j.loop.stop()
}

func (j *TokenRefreshJob) tick(ctx context.Context) {
	session, err := j.auth.GetSession(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "TokenRefreshJob.tick").Msg("could not read session")
		return
	}
	if session == nil || !session.ExpiresWithin(j.now(), 2*j.interval) {
		return
	}

	if _, err = j.auth.RefreshSession(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "TokenRefreshJob.tick").Msg("session refresh failed")
		return
	}
	j.logger.Debug().Msg("session refreshed")
}
