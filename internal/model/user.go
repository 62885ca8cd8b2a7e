package model

import (
	"slices"
	"time"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// ValidRoles lists all assignable user roles.
var ValidRoles = []string{RoleAdmin, RoleViewer}

// User represents a dashboard user account.
// PasswordHash holds the argon2id PHC string; the plaintext is never persisted.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// Session represents an authenticated browser session.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
