package models

import "time"

// Roles assignable to a user account. The role is fixed at provisioning
// time and drives claim-history visibility and analytics access.
const (
	// RoleUser is the default role: claim queries are scoped to the
	// account's own rows.
	RoleUser = "user"

	// RoleAdmin grants unfiltered claim-history access and the global
	// analytics views.
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique account identifier used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored for the account.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account: RoleUser or RoleAdmin.
	// Assigned once at registration, never inferred at request time.
	Role string `json:"role,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
