package domain

// AuthContext is the resolved caller identity handed to the core services.
// It is produced by the session middleware; services never read ambient
// session state themselves.
type AuthContext struct {
	UserID       int64
	CompanyID    int64 // 0 when the caller has no company (superadmin)
	IsSuperadmin bool
}

// CanActAsCompanyUser reports whether the caller may mutate tenant data.
// Superadmins administer companies and users but do not own records.
func (a AuthContext) CanActAsCompanyUser() bool {
	return !a.IsSuperadmin && a.CompanyID != 0
}
