// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Capabilities is the set of boolean flags the UI uses to decide what the
// current user may see and do. It is always derived from a profile snapshot
// and never stored.
type Capabilities struct {
	IsAuthenticated      bool
	IsAdmin              bool
	IsGuru               bool
	IsKepalaSekolah      bool
	CanViewPenyisihan    bool
	CanCreateTransaction bool
}

// CapabilitiesOf derives [Capabilities] from p. A nil profile yields the zero
// value (everything false).
func CapabilitiesOf(p *Profile) Capabilities {
	if p == nil {
		return Capabilities{}
	}

	return Capabilities{
		IsAuthenticated:      true,
		IsAdmin:              p.Role == RoleAdmin,
		IsGuru:               p.Role == RoleGuru,
		IsKepalaSekolah:      p.Role == RoleKepalaSekolah,
		CanViewPenyisihan:    p.CanViewPenyisihan || p.Role == RoleAdmin,
		CanCreateTransaction: p.Role == RoleAdmin || p.Role == RoleGuru,
	}
}
