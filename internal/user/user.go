package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role determines what a user can do inside their startup.
type Role string

const (
	RoleTeamMember Role = "team-member"
	RoleTeamLead   Role = "team-lead"
	RoleCEO        Role = "CEO"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicate      = errors.New("user with email or username already exists")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrMissingFields  = errors.New("all fields are required")
)

// User is an account holder. StartupID is set while the user is an
// employee of a startup and nil otherwise.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	StartupID    *uuid.UUID
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
