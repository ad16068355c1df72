package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin            = "admin"
	RoleOrganizer        = "organizer"
	RoleCommunityManager = "community_manager"
	RoleParticipant      = "participant"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already exists")
var ErrEmailTaken = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOrganizer, RoleCommunityManager, RoleParticipant:
		return true
	}
	return false
}

// User models an account in the system. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
