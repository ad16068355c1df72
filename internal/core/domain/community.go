package domain

import (
	"errors"
	"time"
)

var ErrCommunityNotFound = errors.New("community not found")
var ErrCommunityMemberNotFound = errors.New("community member not found")

// Community is a member group run by a community manager.
type Community struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image,omitempty"`
	ManagerID   int       `json:"managerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommunityMember records a user's membership in a community. Duplicate
// memberships are possible; nothing enforces uniqueness here.
type CommunityMember struct {
	ID          int       `json:"id"`
	CommunityID int       `json:"communityId"`
	UserID      int       `json:"userId"`
	JoinDate    time.Time `json:"joinDate"`
}
