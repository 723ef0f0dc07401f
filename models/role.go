package models

// Role is the closed set of profile roles known to the ledger.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleGuru          Role = "guru"
	RoleKepalaSekolah Role = "kepala_sekolah"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuru, RoleKepalaSekolah:
		return true
	}
	return false
}

// Title returns a human-readable role label for UI output.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleGuru:
		return "Guru"
	case RoleKepalaSekolah:
		return "Kepala Sekolah"
	}
	return string(r)
}
