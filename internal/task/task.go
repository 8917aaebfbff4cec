package task

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/user"
)

// Status represents the lifecycle state of a task. Transitions are
// unconstrained except that re-setting the current status is rejected.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

var (
	ErrNotFound        = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found for task")
	ErrMissingFields   = errors.New("title, description and project id are required")
	ErrSameStatus      = errors.New("the task already has this status")
	ErrAlreadyAssigned = errors.New("member is already assigned to this task")
)

// Task belongs to exactly one project via ProjectID; that reference is
// the single source of truth for project membership of tasks.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      Status
	ProjectID   uuid.UUID
	Members     []*Member
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Member is the sanitized view of an assigned user.
type Member struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Username string
	Role     user.Role
}
