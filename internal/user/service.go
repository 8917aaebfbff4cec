package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, token *string) error
}

type Service struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewService(repo Repository, tokens *auth.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type RegisterParams struct {
	FullName  string
	Email     string
	Username  string
	Password  string
	StartupID *uuid.UUID
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	for _, field := range []string{params.FullName, params.Email, params.Username, params.Password} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingFields
		}
	}

	email := strings.ToLower(strings.TrimSpace(params.Email))
	username := strings.ToLower(strings.TrimSpace(params.Username))

	taken, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	if taken {
		return nil, ErrDuplicate
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		FullName:     strings.TrimSpace(params.FullName),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         RoleTeamMember,
		StartupID:    params.StartupID,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login verifies credentials and returns the user together with a signed
// access token. A refresh token is persisted so logout can revoke it.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	u, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrBadCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	refresh, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	if err := s.repo.SetRefreshToken(ctx, u.ID, &refresh); err != nil {
		return nil, "", fmt.Errorf("storing refresh token: %w", err)
	}

	u.RefreshToken = &refresh

	return u, token, nil
}

func (s *Service) Logout(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetRefreshToken(ctx, id, nil); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}

		return fmt.Errorf("clearing refresh token: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}
