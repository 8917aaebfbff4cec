package startup

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/user"
)

var (
	ErrNotFound        = errors.New("startup not found")
	ErrConflict        = errors.New("company with this name already exists")
	ErrBadCredentials  = errors.New("invalid company password")
	ErrAlreadyEmployee = errors.New("user is already an employee of this startup")
	ErrNotEmployee     = errors.New("user is not an employee of any startup")
	ErrMissingFields   = errors.New("company name and password are required")
)

// Startup is the tenant unit. All projects and financial records are
// partitioned by it. Company name doubles as the lookup key for access
// and join flows.
type Startup struct {
	ID           uuid.UUID
	CompanyName  string
	OwnerID      uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Employee is the membership view of a user. Membership has a single
// source of truth: the user's startup reference. There is no separate
// employee list to drift out of sync.
type Employee struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	Username  string
	Role      user.Role
	StartupID *uuid.UUID
}
