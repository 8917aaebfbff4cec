package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/foundx/foundx/internal/project"
	"github.com/foundx/foundx/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectProjectColumns = `
	id, name, description, start_date, end_date, status, owner_id, startup_id, created_at, updated_at
`

func scanProject(s scanner) (*project.Project, error) {
	var p project.Project

	var statusStr string

	if err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &statusStr,
		&p.OwnerID, &p.StartupID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = project.Status(statusStr)

	return &p, nil
}

// CreateProject inserts the project and its initial owner membership in
// one database transaction.
func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (name, description, start_date, end_date, status, owner_id, startup_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		p.Name,
		p.Description,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.OwnerID,
		p.StartupID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	memberQuery := `INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, memberQuery, p.ID, p.OwnerID); err != nil {
		return fmt.Errorf("adding owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	return p, nil
}

func (s *Store) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + `
		FROM projects
		WHERE startup_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *Store) UpdateProject(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = $2, start_date = $3, end_date = $4, status = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return project.ErrNotFound
	}

	return nil
}

// DeleteProject removes the project row. The schema cascades the
// delete to the project's tasks and clears the optional project
// reference on expenses and budgets.
func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return project.ErrNotFound
	}

	return nil
}

const selectMemberColumns = `
	u.id, u.full_name, u.email, u.username, u.role
`

func scanMember(s scanner) (*project.Member, error) {
	var m project.Member

	var roleStr string

	if err := s.Scan(&m.ID, &m.FullName, &m.Email, &m.Username, &roleStr); err != nil {
		return nil, err
	}

	m.Role = user.Role(roleStr)

	return &m, nil
}

func (s *Store) GetMember(ctx context.Context, userID uuid.UUID) (*project.Member, error) {
	query := `SELECT ` + selectMemberColumns + ` FROM users u WHERE u.id = $1`

	m, err := scanMember(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting member: %w", err)
	}

	return m, nil
}

func (s *Store) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*project.Member, error) {
	query := `SELECT ` + selectMemberColumns + `
		FROM project_members pm
		JOIN users u ON u.id = pm.user_id
		WHERE pm.project_id = $1
		ORDER BY u.full_name ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []*project.Member

	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}

		members = append(members, m)
	}

	return members, rows.Err()
}

func (s *Store) AddMember(ctx context.Context, projectID, memberID uuid.UUID) error {
	query := `INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, projectID, memberID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.ErrMemberExists
		}

		return fmt.Errorf("adding member: %w", err)
	}

	return nil
}

func (s *Store) RemoveMember(ctx context.Context, projectID, memberID uuid.UUID) error {
	query := `DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, projectID, memberID)
	if err != nil {
		return fmt.Errorf("removing member: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return project.ErrMemberNotFound
	}

	return nil
}
