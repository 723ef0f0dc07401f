package models

import "time"

// SessionState is the client-side view of "who is logged in".
//
// Exactly one instance exists per running client and it is owned by the
// session manager; everybody else works with copies returned by Snapshot.
type SessionState struct {
	// User is nil when nobody is logged in or no profile row exists.
	User *Profile

	// Loading is true while the initial session lookup is in flight.
	Loading bool

	// Initialized becomes true once the initial lookup has finished and stays
	// true for the rest of the process.
	Initialized bool
}

// Capabilities derives the capability flags for the state's user.
func (s SessionState) Capabilities() Capabilities {
	return CapabilitiesOf(s.User)
}

// AuthUser is the identity returned by the backend auth API. It carries only
// what the client needs to look up the matching [Profile].
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is a backend auth session as issued by the token endpoint and
// persisted locally between runs.
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"`
	ExpiresAt    int64    `json:"expires_at"`
	User         AuthUser `json:"user"`
}

// Expiry returns the access token expiry as a time value. Zero ExpiresAt
// yields the zero time.
func (s Session) Expiry() time.Time {
	if s.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(s.ExpiresAt, 0)
}

// ExpiresWithin reports whether the access token expires before now+margin.
// Sessions without a known expiry are treated as never expiring.
func (s Session) ExpiresWithin(now time.Time, margin time.Duration) bool {
	exp := s.Expiry()
	if exp.IsZero() {
		return false
	}
	return !now.Add(margin).Before(exp)
}

// AuthResult is the raw result of a password sign-in, returned unchanged to
// the caller of Login.
type AuthResult struct {
	Session *Session  `json:"session"`
	User    *AuthUser `json:"user"`
}

// AuthEvent names the kind of auth-state change pushed to listeners.
type AuthEvent string

const (
	AuthEventSignedIn       AuthEvent = "SIGNED_IN"
	AuthEventSignedOut      AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)
