package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/mock"
	"github.com/MKhiriev/go-infaq/models"
)

func newTestManager(t *testing.T) (*Manager, *mock.MockAuthProvider, *mock.MockProfileReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthProvider(ctrl)
	profiles := mock.NewMockProfileReader(ctrl)
	return NewManager(auth, profiles, logger.Nop()), auth, profiles
}

func guru() *models.Profile {
	return &models.Profile{ID: "u1", Email: "guru@sekolah.id", Name: "Bu Ani", Role: models.RoleGuru}
}

// captureListener records the listener passed to OnAuthStateChange.
func captureListener(auth *mock.MockAuthProvider, into *adapter.AuthStateListener) {
	auth.EXPECT().OnAuthStateChange(gomock.Any()).Do(func(l adapter.AuthStateListener) {
		*into = l
	}).Times(1)
}

// ── initial state ───────────────────────────────────────────────────────────

func TestNewManager_StartsLoading(t *testing.T) {
	m, _, _ := newTestManager(t)

	s := m.Snapshot()
	assert.Nil(t, s.User)
	assert.True(t, s.Loading)
	assert.False(t, s.Initialized)
	assert.False(t, m.Initialized())
}

// ── Init ────────────────────────────────────────────────────────────────────

func TestInit_NoSession(t *testing.T) {
	m, auth, _ := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().GetSession(ctx).Return(nil, nil)
	auth.EXPECT().OnAuthStateChange(gomock.Any()).Times(1)

	m.Init(ctx)

	assert.Equal(t, models.SessionState{User: nil, Loading: false, Initialized: true}, m.Snapshot())
}

func TestInit_ExistingSessionWithProfile(t *testing.T) {
	m, auth, profiles := newTestManager(t)
	ctx := context.Background()
	p := guru()

	auth.EXPECT().GetSession(ctx).Return(&models.Session{User: models.AuthUser{ID: "u1"}}, nil)
	profiles.EXPECT().GetProfile(ctx, "u1").Return(p, nil)
	auth.EXPECT().OnAuthStateChange(gomock.Any()).Times(1)

	m.Init(ctx)

	s := m.Snapshot()
	assert.Same(t, p, s.User)
	assert.False(t, s.Loading)
	assert.True(t, s.Initialized)
}

func TestInit_ExistingSessionWithoutProfileRow(t *testing.T) {
	m, auth, profiles := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().GetSession(ctx).Return(&models.Session{User: models.AuthUser{ID: "u1"}}, nil)
	profiles.EXPECT().GetProfile(ctx, "u1").Return(nil, nil)
	auth.EXPECT().OnAuthStateChange(gomock.Any())

	m.Init(ctx)

	assert.Nil(t, m.GetUser())
	assert.True(t, m.Initialized())
}

func TestInit_ProfileLookupErrorIsSwallowed(t *testing.T) {
	m, auth, profiles := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().GetSession(ctx).Return(&models.Session{User: models.AuthUser{ID: "u1"}}, nil)
	profiles.EXPECT().GetProfile(ctx, "u1").Return(nil, errors.New("network down"))
	auth.EXPECT().OnAuthStateChange(gomock.Any())

	m.Init(ctx)

	assert.Nil(t, m.GetUser())
	assert.True(t, m.Initialized())
}

func TestInit_GetSessionErrorStillInitialises(t *testing.T) {
	m, auth, _ := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().GetSession(ctx).Return(nil, errors.New("corrupt session db"))
	auth.EXPECT().OnAuthStateChange(gomock.Any())

	m.Init(ctx)

	assert.Equal(t, models.SessionState{Initialized: true}, m.Snapshot())
}

func TestInit_IsIdempotent(t *testing.T) {
	m, auth, _ := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().GetSession(ctx).Return(nil, nil).Times(1)
	auth.EXPECT().OnAuthStateChange(gomock.Any()).Times(1)

	m.Init(ctx)
	m.Init(ctx)
	m.Init(ctx)
}

// ── auth-change listener ────────────────────────────────────────────────────

func TestAuthChange_ResolvesProfileAndClears(t *testing.T) {
	m, auth, profiles := newTestManager(t)
	ctx := context.Background()
	var listener adapter.AuthStateListener

	auth.EXPECT().GetSession(ctx).Return(nil, nil)
	captureListener(auth, &listener)
	m.Init(ctx)
	require.NotNil(t, listener)

	p := guru()
	profiles.EXPECT().GetProfile(ctx, "u1").Return(p, nil)
	listener(ctx, models.AuthEventSignedIn, &models.Session{User: models.AuthUser{ID: "u1"}})
	assert.Same(t, p, m.GetUser())

	profiles.EXPECT().GetProfile(ctx, "u1").Return(nil, nil)
	listener(ctx, models.AuthEventTokenRefreshed, &models.Session{User: models.AuthUser{ID: "u1"}})
	assert.Nil(t, m.GetUser(), "missing profile row clears the user")

	m.SetUser(p)
	listener(ctx, models.AuthEventSignedOut, nil)
	assert.Nil(t, m.GetUser())
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	m, auth, profiles := newTestManager(t)
	ctx := context.Background()
	p := guru()
	result := models.AuthResult{
		Session: &models.Session{AccessToken: "a"},
		User:    &models.AuthUser{ID: "u1", Email: "guru@sekolah.id"},
	}

	gomock.InOrder(
		auth.EXPECT().SignInWithPassword(ctx, "guru@sekolah.id", "rahasia").Return(result, nil),
		profiles.EXPECT().GetProfile(ctx, "u1").Return(p, nil),
	)

	got, err := m.Login(ctx, "guru@sekolah.id", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, result, got, "raw provider result is returned")
	assert.Same(t, p, m.GetUser())
	assert.True(t, m.Capabilities().CanCreateTransaction)
}

func TestLogin_InvalidCredentialsLeavesUserUnchanged(t *testing.T) {
	m, auth, _ := newTestManager(t)
	ctx := context.Background()
	before := guru()
	m.SetUser(before)

	auth.EXPECT().SignInWithPassword(ctx, "x@y.z", "wrong").
		Return(models.AuthResult{}, adapter.ErrInvalidCredentials)

	_, err := m.Login(ctx, "x@y.z", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, adapter.ErrInvalidCredentials)
	assert.Same(t, before, m.GetUser())
}

func TestLogin_NoProfileRow(t *testing.T) {
	m, auth, profiles := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().SignInWithPassword(ctx, gomock.Any(), gomock.Any()).
		Return(models.AuthResult{User: &models.AuthUser{ID: "u2"}}, nil)
	profiles.EXPECT().GetProfile(ctx, "u2").Return(nil, nil)

	_, err := m.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Nil(t, m.GetUser())
	assert.False(t, m.Capabilities().IsAuthenticated)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_AlwaysClearsUser(t *testing.T) {
	tests := []struct {
		name      string
		signOut   error
		wantError bool
	}{
		{name: "provider ok"},
		{name: "provider fails", signOut: errors.New("bad gateway"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, auth, _ := newTestManager(t)
			ctx := context.Background()
			m.SetUser(guru())

			auth.EXPECT().SignOut(ctx).Return(tt.signOut)

			err := m.Logout(ctx)
			if tt.wantError {
				assert.ErrorIs(t, err, tt.signOut)
			} else {
				assert.NoError(t, err)
			}
			assert.Nil(t, m.GetUser())
		})
	}
}

func TestLogout_WithoutUser(t *testing.T) {
	m, auth, _ := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().SignOut(ctx).Return(nil)

	require.NoError(t, m.Logout(ctx))
	assert.Nil(t, m.GetUser())
}

// ── SetUser / GetUser ───────────────────────────────────────────────────────

func TestSetUser_GetUser_RoundTrip(t *testing.T) {
	m, _, _ := newTestManager(t)

	for _, p := range []*models.Profile{
		guru(),
		{ID: "u2", Role: models.RoleAdmin},
		{ID: "u3", Role: models.RoleKepalaSekolah, CanViewPenyisihan: true},
		nil,
	} {
		m.SetUser(p)
		assert.Same(t, p, m.GetUser())
	}
}

func TestCapabilities_FollowUser(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.SetUser(&models.Profile{Role: models.RoleKepalaSekolah, CanViewPenyisihan: true})
	c := m.Capabilities()
	assert.True(t, c.CanViewPenyisihan)
	assert.False(t, c.CanCreateTransaction)

	m.SetUser(&models.Profile{Role: models.RoleAdmin})
	c = m.Capabilities()
	assert.True(t, c.CanViewPenyisihan)
	assert.True(t, c.CanCreateTransaction)
	assert.True(t, c.IsAdmin)
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestSubscribe_ReceivesLatestState(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch, cancel := m.Subscribe()

	m.SetUser(&models.Profile{ID: "first"})
	m.SetUser(&models.Profile{ID: "second"})

	got := <-ch
	require.NotNil(t, got.User)
	assert.Equal(t, "second", got.User.ID)

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	// no panic after cancel
	m.SetUser(nil)
}
