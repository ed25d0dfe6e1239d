package admin

import (
	"sort"
	"time"
)

// Capability keys known to the dashboard.
const (
	CapManageRegistrations = "manage_registrations"
	CapVerifyPayments      = "verify_payments"
	CapManageCategories    = "manage_categories"
	CapManagePanchayaths   = "manage_panchayaths"
	CapViewReports         = "view_reports"
	CapViewAccounts        = "view_accounts"
	CapManagePermissions   = "manage_permissions"
	CapManageContent       = "manage_content"
)

// Catalogue is seeded into admin_permissions when missing.
var Catalogue = []Permission{
	{Name: CapManageRegistrations, Description: "Review, approve, reject, restore and delete registrations"},
	{Name: CapVerifyPayments, Description: "Verify and unverify registration fee payments"},
	{Name: CapManageCategories, Description: "Create and edit registration categories"},
	{Name: CapManagePanchayaths, Description: "Create and edit panchayaths"},
	{Name: CapViewReports, Description: "View registration reports"},
	{Name: CapViewAccounts, Description: "View the cash account balance"},
	{Name: CapManagePermissions, Description: "Grant and revoke admin permissions"},
	{Name: CapManageContent, Description: "Manage announcements and utility links"},
}

// CapabilitySet is a set of capability names.
type CapabilitySet map[string]struct{}

// Resolve computes the capabilities of u. A super-admin holds every active
// permission; anyone else holds the active permissions explicitly granted.
// grants must carry their Permission association.
func Resolve(u *AdminUser, active []Permission, grants []UserPermission) CapabilitySet {
	set := CapabilitySet{}
	if u == nil || !u.IsActive {
		return set
	}
	if u.IsSuperAdmin {
		for _, p := range active {
			if p.IsActive {
				set[p.Name] = struct{}{}
			}
		}
		return set
	}
	for _, g := range grants {
		if g.AdminUserID != u.ID || g.Permission == nil || !g.Permission.IsActive {
			continue
		}
		set[g.Permission.Name] = struct{}{}
	}
	return set
}

func (s CapabilitySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// HasAny is true iff at least one of required is held.
func (s CapabilitySet) HasAny(required ...string) bool {
	for _, r := range required {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Names returns the set sorted.
func (s CapabilitySet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Session is the resolved identity of the admin behind a request.
type Session struct {
	AdminID      string
	Username     string
	IsSuperAdmin bool
	TokenID      string
	ExpiresAt    time.Time
	Permissions  CapabilitySet
}

func (s *Session) HasAny(required ...string) bool {
	return s != nil && s.Permissions.HasAny(required...)
}
