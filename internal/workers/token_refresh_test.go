package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/mock"
	"github.com/MKhiriev/go-infaq/models"
)

func newRefreshJob(t *testing.T, now time.Time) (*TokenRefreshJob, *mock.MockAuthProvider) {
	t.Helper()
	auth := mock.NewMockAuthProvider(gomock.NewController(t))
	job := NewTokenRefreshJob(auth, time.Minute, logger.Nop())
	job.now = func() time.Time { return now }
	return job, auth
}

func TestTokenRefreshJob_Tick(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		session     *models.Session
		sessionErr  error
		wantRefresh bool
		refreshErr  error
	}{
		{name: "signed out", session: nil},
		{name: "session read error", sessionErr: errors.New("db locked")},
		{name: "fresh token", session: &models.Session{ExpiresAt: now.Add(time.Hour).Unix()}},
		{name: "unknown expiry", session: &models.Session{}},
		{name: "expiring token", session: &models.Session{ExpiresAt: now.Add(90 * time.Second).Unix()}, wantRefresh: true},
		{name: "expired token rejected", session: &models.Session{ExpiresAt: now.Add(-time.Minute).Unix()}, wantRefresh: true, refreshErr: adapter.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, auth := newRefreshJob(t, now)
			ctx := context.Background()

			auth.EXPECT().GetSession(ctx).Return(tt.session, tt.sessionErr)
			if tt.wantRefresh {
				auth.EXPECT().RefreshSession(ctx).Return(tt.session, tt.refreshErr)
			}

			job.tick(ctx)
		})
	}
}

func TestTokenRefreshJob_StartStop(t *testing.T) {
	auth := mock.NewMockAuthProvider(gomock.NewController(t))
	job := NewTokenRefreshJob(auth, 10*time.Millisecond, logger.Nop())

	ticked := make(chan struct{}, 1)
	auth.EXPECT().GetSession(gomock.Any()).DoAndReturn(func(context.Context) (*models.Session, error) {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)

	job.Start(context.Background())
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ticked")
	}
	job.Stop()
	job.Stop()
}

func TestNewTokenRefreshJob_DefaultInterval(t *testing.T) {
	job := NewTokenRefreshJob(nil, 0, logger.Nop())
	if job.interval != defaultRefreshInterval {
		t.Fatalf("interval = %v, want %v", job.interval, defaultRefreshInterval)
	}
}
