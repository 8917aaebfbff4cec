package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	GetMember(ctx context.Context, userID uuid.UUID) (*Member, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]*Member, error)
	AddMember(ctx context.Context, projectID, memberID uuid.UUID) error
	RemoveMember(ctx context.Context, projectID, memberID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	OwnerID     uuid.UUID
	StartupID   uuid.UUID
}

// Create stores a new project. The member list starts as exactly the
// owner, whatever the caller sends.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Description) == "" {
		return nil, ErrMissingFields
	}

	p := &Project{
		Name:        params.Name,
		Description: params.Description,
		StartDate:   time.Now(),
		EndDate:     params.EndDate,
		Status:      StatusNotStarted,
		OwnerID:     params.OwnerID,
		StartupID:   params.StartupID,
	}
	if params.StartDate != nil {
		p.StartDate = *params.StartDate
	}

	if params.Status != "" {
		p.Status = params.Status
	}

	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

type UpdateParams struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
}

// Update overwrites the project's fields. These are full-overwrite
// semantics: omitted dates and status fall back to their defaults.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Project, error) {
	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Description) == "" {
		return nil, ErrMissingFields
	}

	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = params.Name
	p.Description = params.Description

	p.StartDate = time.Now()
	if params.StartDate != nil {
		p.StartDate = *params.StartDate
	}

	p.EndDate = params.EndDate

	p.Status = StatusNotStarted
	if params.Status != "" {
		p.Status = params.Status
	}

	if err := s.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete removes the project by id. Tasks referencing it are left in
// place.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProject(ctx, id)
}

func (s *Service) List(ctx context.Context, startupID uuid.UUID) ([]*Project, error) {
	return s.repo.ListByStartup(ctx, startupID)
}

// Get returns the project populated with its owner and members.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.GetMember(ctx, p.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("loading project owner: %w", err)
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading project members: %w", err)
	}

	return &Detail{Project: p, Owner: owner, Members: members}, nil
}

// AddMember adds a user to the project. The user must exist.
func (s *Service) AddMember(ctx context.Context, projectID, memberID uuid.UUID) (*Project, error) {
	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return nil, err
	}

	if err := s.repo.AddMember(ctx, projectID, memberID); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) RemoveMember(ctx context.Context, projectID, memberID uuid.UUID) (*Project, error) {
	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveMember(ctx, projectID, memberID); err != nil {
		return nil, err
	}

	return p, nil
}
