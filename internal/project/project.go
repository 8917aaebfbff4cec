package project

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/user"
)

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

var (
	ErrNotFound       = errors.New("project not found")
	ErrMissingFields  = errors.New("project name and description are required")
	ErrMemberNotFound = errors.New("member not found in project")
	ErrMemberExists   = errors.New("member already in project")
)

// Project belongs to exactly one startup. Its task list is not stored;
// tasks reference the project and are derived by query.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      Status
	OwnerID     uuid.UUID
	StartupID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Member is the sanitized view of a project member.
type Member struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Username string
	Role     user.Role
}

// Detail is a project populated with its owner and member list.
type Detail struct {
	Project *Project
	Owner   *Member
	Members []*Member
}
