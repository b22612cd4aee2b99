// Package models defines the wire types exchanged with the forum REST
// backend and the core types used throughout the application.
package models

import "time"

// Role represents a user's permission level, as reported by the backend.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// UserCounts holds the aggregate counters embedded in a user profile.
type UserCounts struct {
	Posts     int `json:"posts"`
	Comments  int `json:"comments"`
	Subtopics int `json:"subtopics"`
}

// User represents a forum account. Counts is only present on responses
// from the profile endpoint; listing endpoints omit it.
type User struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Username  string      `json:"username"`
	Role      Role        `json:"role"`
	Avatar    string      `json:"avatar,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Counts    *UserCounts `json:"_count,omitempty"`
}

// IsAdmin returns true if the user has the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Stats returns the user's aggregate counts, zero-valued when the
// backend response did not include them.
func (u *User) Stats() UserCounts {
	if u.Counts == nil {
		return UserCounts{}
	}
	return *u.Counts
}

// AuthorRef is the abbreviated user record embedded in posts, comments,
// and subtopics.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is the payload returned by the login and register endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
