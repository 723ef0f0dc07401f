package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/spreadsheet"
)

const defaultRetryDelay = 30 * time.Second

// ReconcileJob rebuilds the sheet from the backend once a day at a fixed
// local time. A failed run is retried once when the storage classifies the
// error as transient.
type ReconcileJob struct {
	sheet      spreadsheet.Sheet
	at         config.Clock
	retryDelay time.Duration
	now        func() time.Time
	after      func(time.Duration) <-chan time.Time
	logger     *logger.Logger

	loop loop
}

func NewReconcileJob(sheet spreadsheet.Sheet, at config.Clock, log *logger.Logger) *ReconcileJob {
	return &ReconcileJob{
		sheet:      sheet,
		at:         at,
		retryDelay: defaultRetryDelay,
		now:        time.Now,
		after:      time.After,
		logger:     log.Component("reconcile"),
	}
}

func (j *ReconcileJob) Start(ctx context.Context) {
	j.logger.Info().Str("at", j.at.String()).Msg("daily reconcile scheduled")

	j.loop.start(ctx, func(ctx context.Context) {
		for {
			now := j.now()
			wait := nextRun(now, j.at).Sub(now)

			select {
			case <-ctx.Done():
				return
			case <-j.after(wait):
				j.runOnce(ctx)
			}
		}
	})
}

func (j *ReconcileJob) Stop() {
	j.loop.stop()
}

// runOnce reports whether the sheet was rebuilt.
func (j *ReconcileJob) runOnce(ctx context.Context) bool {
	n, err := j.sheet.Reconcile(ctx)
	if err == nil {
		j.logger.Info().Int("rows", n).Msg("daily reconcile finished")
		return true
	}

	if !j.sheet.IsRetryable(err) {
		j.logger.Err(err).Msg("daily reconcile failed")
		return false
	}

	j.logger.Warn().Err(err).Dur("retry_in", j.retryDelay).Msg("daily reconcile failed, retrying")
	select {
	case <-ctx.Done():
		return false
	case <-j.after(j.retryDelay):
	}

	if n, err = j.sheet.Reconcile(ctx); err != nil {
		j.logger.Err(err).Msg("daily reconcile retry failed")
		return false
	}
	j.logger.Info().Int("rows", n).Msg("daily reconcile finished on retry")
	return true
}

// nextRun returns the first moment strictly after now that falls on at in
// now's location.
func nextRun(now time.Time, at config.Clock) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour, at.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
