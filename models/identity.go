package models

// Identity is the authenticated session identity derived from a verified
// token. Handlers build it once per request and pass it explicitly to the
// service layer; services never read authorization data from anywhere else.
type Identity struct {
	// UserID is the account the session belongs to.
	UserID int64

	// Role is the account role embedded in the token at issue time.
	Role string
}

// IsAdmin reports whether the session carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
