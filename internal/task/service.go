package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=task
type Repository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Task, error)
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*Task, error)

	ProjectExists(ctx context.Context, projectID uuid.UUID) (bool, error)
	GetMemberByEmail(ctx context.Context, email string) (*Member, error)
	AssignMember(ctx context.Context, taskID, memberID uuid.UUID) error
	UnassignMember(ctx context.Context, taskID, memberID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title       string
	Description string
	Status      Status
	ProjectID   uuid.UUID
}

// Create stores a task under an existing project.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Task, error) {
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Description) == "" {
		return nil, ErrMissingFields
	}

	if params.ProjectID == uuid.Nil {
		return nil, ErrMissingFields
	}

	exists, err := s.repo.ProjectExists(ctx, params.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("checking project: %w", err)
	}

	if !exists {
		return nil, ErrProjectNotFound
	}

	t := &Task{
		Title:       params.Title,
		Description: params.Description,
		Status:      StatusNotStarted,
		ProjectID:   params.ProjectID,
	}
	if params.Status != "" {
		t.Status = params.Status
	}

	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Task, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// ListByStartup returns the tasks of every project in the startup.
func (s *Service) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*Task, error) {
	return s.repo.ListByStartup(ctx, startupID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.repo.GetTask(ctx, id)
}

// Assign adds the user with the given email to the task's assignees.
func (s *Service) Assign(ctx context.Context, taskID uuid.UUID, memberEmail string) (*Task, error) {
	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.GetMemberByEmail(ctx, memberEmail)
	if err != nil {
		return nil, err
	}

	for _, m := range t.Members {
		if m.ID == member.ID {
			return nil, ErrAlreadyAssigned
		}
	}

	if err := s.repo.AssignMember(ctx, taskID, member.ID); err != nil {
		return nil, err
	}

	t.Members = append(t.Members, member)

	return t, nil
}

// Unassign removes the user with the given email from the task. Removing
// a user who is not assigned is a no-op.
func (s *Service) Unassign(ctx context.Context, taskID uuid.UUID, memberEmail string) (*Task, error) {
	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.GetMemberByEmail(ctx, memberEmail)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UnassignMember(ctx, taskID, member.ID); err != nil {
		return nil, err
	}

	kept := t.Members[:0]

	for _, m := range t.Members {
		if m.ID != member.ID {
			kept = append(kept, m)
		}
	}

	t.Members = kept

	return t, nil
}

type UpdateParams struct {
	Status      Status
	Title       string
	Description string
}

// Update sets the task's status, title and description. Setting the
// status the task already has is rejected so redundant updates surface
// to the caller.
func (s *Service) Update(ctx context.Context, taskID uuid.UUID, params UpdateParams) (*Task, error) {
	if params.Status == "" {
		return nil, ErrMissingFields
	}

	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if params.Status == t.Status {
		return nil, ErrSameStatus
	}

	t.Status = params.Status
	t.Title = params.Title
	t.Description = params.Description

	if err := s.repo.UpdateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
