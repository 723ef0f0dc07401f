package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/store"
	"github.com/MKhiriev/go-infaq/internal/utils"
	"github.com/MKhiriev/go-infaq/models"
)

const (
	tokenPath        = "/auth/v1/token"
	logoutPath       = "/auth/v1/logout"
	profilesPath     = "/rest/v1/profiles"
	transactionsPath = "/rest/v1/transactions"

	// transactionSelect embeds the owner's profile name in every row.
	transactionSelect = "*,profiles(name)"
)

// HTTPBackend implements [BackendAdapter] over the backend REST API.
//
// The current session is cached in memory and persisted through a
// [store.SessionRepository] so the client stays signed in across restarts.
type HTTPBackend struct {
	client  *utils.HTTPClient
	anonKey string

	sessions store.SessionRepository

	mu      sync.RWMutex
	session *models.Session
	loaded  bool

	listenersMu sync.Mutex
	listeners   []AuthStateListener

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPBackend constructs an [HTTPBackend] for cfg. Sessions are persisted
// in sessions; pass [store.NewMemorySessionRepository] to keep them in memory.
func NewHTTPBackend(cfg config.Backend, sessions store.SessionRepository, log *logger.Logger) (*HTTPBackend, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Headers: map[string]string{"apikey": cfg.AnonKey},
	})

	if sessions == nil {
		sessions = store.NewMemorySessionRepository()
	}

	return &HTTPBackend{
		client:   client,
		anonKey:  cfg.AnonKey,
		sessions: sessions,
		now:      time.Now,
		logger:   log.Component("backend"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBackendURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetSession implements [AuthProvider]. The persisted session is read once;
// afterwards the in-memory copy is authoritative.
func (h *HTTPBackend) GetSession(ctx context.Context) (*models.Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.loaded {
		s, err := h.sessions.Load(ctx)
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
		case err != nil:
			return nil, fmt.Errorf("load persisted session: %w", err)
		default:
			h.session = s
		}
		h.loaded = true
	}

	return copySession(h.session), nil
}

// SignInWithPassword implements [AuthProvider] via
// POST /auth/v1/token?grant_type=password.
func (h *HTTPBackend) SignInWithPassword(ctx context.Context, email, password string) (models.AuthResult, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.anonKey).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post(tokenPath)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapAuthError(resp); err != nil {
		return models.AuthResult{}, err
	}

	h.completeSession(&session)
	h.storeSession(ctx, &session)
	h.emit(ctx, models.AuthEventSignedIn, &session)

	user := session.User
	return models.AuthResult{Session: copySession(&session), User: &user}, nil
}

// SignOut implements [AuthProvider] via POST /auth/v1/logout. A token the
// backend no longer recognises counts as signed out.
func (h *HTTPBackend) SignOut(ctx context.Context) error {
	current, err := h.GetSession(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPBackend.SignOut").Msg("could not read session before sign out")
	}

	var remoteErr error
	if current != nil {
		resp, reqErr := h.client.R().
			SetContext(ctx).
			SetAuthToken(current.AccessToken).
			Post(logoutPath)
		switch {
		case reqErr != nil:
			remoteErr = fmt.Errorf("sign out request: %w", reqErr)
		default:
			remoteErr = mapHTTPError(resp)
			if errors.Is(remoteErr, ErrUnauthorized) || errors.Is(remoteErr, ErrForbidden) || errors.Is(remoteErr, ErrNotFound) {
				remoteErr = nil
			}
		}
	}

	h.dropSession(ctx)
	h.emit(ctx, models.AuthEventSignedOut, nil)

	return remoteErr
}

// RefreshSession implements [AuthProvider] via
// POST /auth/v1/token?grant_type=refresh_token. A rejected refresh token
// drops the session and notifies listeners with SIGNED_OUT; transport
// errors leave the session in place.
func (h *HTTPBackend) RefreshSession(ctx context.Context) (*models.Session, error) {
	current, err := h.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil || current.RefreshToken == "" {
		return nil, ErrNoSession
	}

	var session models.Session
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.anonKey).
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": current.RefreshToken}).
		SetResult(&session).
		Post(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapAuthError(resp); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.logger.Warn().Err(err).Str("func", "HTTPBackend.RefreshSession").Msg("refresh token rejected, signing out")
			h.dropSession(ctx)
			h.emit(ctx, models.AuthEventSignedOut, nil)
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return nil, err
	}

	h.completeSession(&session)
	h.storeSession(ctx, &session)
	h.emit(ctx, models.AuthEventTokenRefreshed, &session)

	return copySession(&session), nil
}

// OnAuthStateChange implements [AuthProvider].
func (h *HTTPBackend) OnAuthStateChange(listener AuthStateListener) {
	if listener == nil {
		return
	}

	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, listener)
}

// emit notifies listeners outside of any adapter lock so they may call back
// into the adapter.
func (h *HTTPBackend) emit(ctx context.Context, event models.AuthEvent, session *models.Session) {
	h.listenersMu.Lock()
	listeners := make([]AuthStateListener, len(h.listeners))
	copy(listeners, h.listeners)
	h.listenersMu.Unlock()

	h.logger.Debug().Str("event", string(event)).Int("listeners", len(listeners)).Msg("auth state changed")

	for _, listener := range listeners {
		listener(ctx, event, copySession(session))
	}
}

// completeSession fills expiry and user id from the access token when the
// backend response omits them.
func (h *HTTPBackend) completeSession(s *models.Session) {
	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		s.ExpiresAt = h.now().Add(time.Duration(s.ExpiresIn) * time.Second).Unix()
	}
	if s.ExpiresAt != 0 && s.User.ID != "" {
		return
	}

	claims, err := utils.ParseTokenClaims(s.AccessToken)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "HTTPBackend.completeSession").Msg("access token is not a readable jwt")
		return
	}
	if s.ExpiresAt == 0 && !claims.ExpiresAt.IsZero() {
		s.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if s.User.ID == "" {
		s.User.ID = claims.Subject
	}
	if s.User.Email == "" {
		s.User.Email = claims.Email
	}
}

// storeSession caches s and persists it. Persistence failures only cost the
// next restart a sign-in, so they are logged.
func (h *HTTPBackend) storeSession(ctx context.Context, s *models.Session) {
	h.mu.Lock()
	h.session = copySession(s)
	h.loaded = true
	h.mu.Unlock()

	if err := h.sessions.Save(ctx, *s); err != nil {
		h.logger.Err(err).Str("func", "HTTPBackend.storeSession").Msg("failed to persist session")
	}
}

func (h *HTTPBackend) dropSession(ctx context.Context) {
	h.mu.Lock()
	h.session = nil
	h.loaded = true
	h.mu.Unlock()

	if err := h.sessions.Delete(ctx); err != nil {
		h.logger.Err(err).Str("func", "HTTPBackend.dropSession").Msg("failed to delete persisted session")
	}
}

// authedRequest attaches the user's access token, or the anon key when
// nobody is signed in, as row-level security expects.
func (h *HTTPBackend) authedRequest(ctx context.Context) *resty.Request {
	token := h.anonKey

	session, err := h.GetSession(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPBackend.authedRequest").Msg("falling back to anon key")
	}
	if session != nil && session.AccessToken != "" {
		token = session.AccessToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
}

func copySession(s *models.Session) *models.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
