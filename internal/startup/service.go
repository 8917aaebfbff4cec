package startup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=startup
type Repository interface {
	CreateStartup(ctx context.Context, s *Startup) error
	GetStartup(ctx context.Context, id uuid.UUID) (*Startup, error)
	GetByCompanyName(ctx context.Context, companyName string) (*Startup, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Startup, error)

	ListEmployees(ctx context.Context, startupID uuid.UUID) ([]*Employee, error)
	GetEmployee(ctx context.Context, userID uuid.UUID) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	SetMembership(ctx context.Context, userID uuid.UUID, startupID *uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, companyName, password string, ownerID uuid.UUID) (*Startup, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" || password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.repo.GetByCompanyName(ctx, companyName)
	if err == nil {
		return nil, ErrConflict
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking company name: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	st := &Startup{
		CompanyName:  companyName,
		OwnerID:      ownerID,
		PasswordHash: hash,
	}
	if err := s.repo.CreateStartup(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

// Access checks the company credentials and returns the startup record.
func (s *Service) Access(ctx context.Context, companyName, password string) (*Startup, error) {
	if companyName == "" || password == "" {
		return nil, ErrMissingFields
	}

	st, err := s.repo.GetByCompanyName(ctx, companyName)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(st.PasswordHash, password) {
		return nil, ErrBadCredentials
	}

	return st, nil
}

// Join performs the same credential check as Access and then makes the
// user an employee. Joining a startup the user already belongs to is a
// no-op, so the operation is idempotent.
func (s *Service) Join(ctx context.Context, companyName, password string, userID uuid.UUID) (*Startup, error) {
	st, err := s.Access(ctx, companyName, password)
	if err != nil {
		return nil, err
	}

	emp, err := s.repo.GetEmployee(ctx, userID)
	if err != nil {
		return nil, err
	}

	if emp.StartupID != nil && *emp.StartupID == st.ID {
		return st, nil
	}

	if err := s.repo.SetMembership(ctx, userID, &st.ID); err != nil {
		return nil, fmt.Errorf("joining startup: %w", err)
	}

	return st, nil
}

// AddEmployeeByEmail adds the user with the given email to the caller's
// own startup.
func (s *Service) AddEmployeeByEmail(ctx context.Context, callerID uuid.UUID, email string) (*Employee, error) {
	caller, err := s.repo.GetEmployee(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if caller.StartupID == nil {
		return nil, ErrNotEmployee
	}

	target, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if target.StartupID != nil && *target.StartupID == *caller.StartupID {
		return nil, ErrAlreadyEmployee
	}

	if err := s.repo.SetMembership(ctx, target.ID, caller.StartupID); err != nil {
		return nil, fmt.Errorf("adding employee: %w", err)
	}

	target.StartupID = caller.StartupID

	return target, nil
}

func (s *Service) RemoveEmployee(ctx context.Context, employeeID uuid.UUID) error {
	emp, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}

	if emp.StartupID == nil {
		return ErrNotEmployee
	}

	if err := s.repo.SetMembership(ctx, employeeID, nil); err != nil {
		return fmt.Errorf("removing employee: %w", err)
	}

	return nil
}

// Employees lists the current employees of the named company.
func (s *Service) Employees(ctx context.Context, companyName string) ([]*Employee, error) {
	if companyName == "" {
		return nil, ErrMissingFields
	}

	st, err := s.repo.GetByCompanyName(ctx, companyName)
	if err != nil {
		return nil, err
	}

	return s.repo.ListEmployees(ctx, st.ID)
}

// Owned lists the startups owned by the given user.
func (s *Service) Owned(ctx context.Context, ownerID uuid.UUID) ([]*Startup, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Startup, error) {
	return s.repo.GetStartup(ctx, id)
}
