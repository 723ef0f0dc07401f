package models

import "time"

// Profile is the identity record stored in the backend `profiles` table and
// associated with an authenticated session.
//
// The session manager holds a cached copy that may be stale for the lifetime
// of the process. Values handed out by the manager are treated as immutable
// snapshots.
type Profile struct {
	// ID equals the auth user id of the session owner.
	ID string `json:"id"`

	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`

	// CanViewPenyisihan grants access to reserved-fund transactions for
	// non-admin roles.
	CanViewPenyisihan bool `json:"can_view_penyisihan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the backend table that stores profiles.
func (p Profile) TableName() string {
	return "profiles"
}
