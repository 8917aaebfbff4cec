package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/foundx/foundx/internal/startup"
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

func scanStartup(s scanner) (*startup.Startup, error) {
	var st startup.Startup

	if err := s.Scan(
		&st.ID, &st.CompanyName, &st.OwnerID, &st.PasswordHash, &st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &st, nil
}

const selectStartupColumns = `
	id, company_name, owner_id, password_hash, created_at, updated_at
`

func (s *Store) CreateStartup(ctx context.Context, st *startup.Startup) error {
	query := `
		INSERT INTO startups (company_name, owner_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		st.CompanyName,
		st.OwnerID,
		st.PasswordHash,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return startup.ErrConflict
		}

		return fmt.Errorf("creating startup: %w", err)
	}

	return nil
}

func (s *Store) GetStartup(ctx context.Context, id uuid.UUID) (*startup.Startup, error) {
	query := `SELECT ` + selectStartupColumns + ` FROM startups WHERE id = $1`

	st, err := scanStartup(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, startup.ErrNotFound
		}

		return nil, fmt.Errorf("getting startup: %w", err)
	}

	return st, nil
}

func (s *Store) GetByCompanyName(ctx context.Context, companyName string) (*startup.Startup, error) {
	query := `SELECT ` + selectStartupColumns + ` FROM startups WHERE company_name = $1`

	st, err := scanStartup(s.db.QueryRowContext(ctx, query, companyName))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, startup.ErrNotFound
		}

		return nil, fmt.Errorf("getting startup by company name: %w", err)
	}

	return st, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*startup.Startup, error) {
	query := `SELECT ` + selectStartupColumns + ` FROM startups WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing startups: %w", err)
	}
	defer rows.Close()

	var startups []*startup.Startup

	for rows.Next() {
		st, err := scanStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning startup: %w", err)
		}

		startups = append(startups, st)
	}

	return startups, rows.Err()
}

const selectEmployeeColumns = `
	id, full_name, email, username, role, startup_id
`

func scanEmployee(s scanner) (*startup.Employee, error) {
	var e startup.Employee

	var roleStr string

	if err := s.Scan(&e.ID, &e.FullName, &e.Email, &e.Username, &roleStr, &e.StartupID); err != nil {
		return nil, err
	}

	e.Role = user.Role(roleStr)

	return &e, nil
}

func (s *Store) ListEmployees(ctx context.Context, startupID uuid.UUID) ([]*startup.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + `
		FROM users
		WHERE startup_id = $1
		ORDER BY full_name ASC`

	rows, err := s.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*startup.Employee

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, userID uuid.UUID) (*startup.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM users WHERE id = $1`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return e, nil
}

func (s *Store) GetEmployeeByEmail(ctx context.Context, email string) (*startup.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee by email: %w", err)
	}

	return e, nil
}

func (s *Store) SetMembership(ctx context.Context, userID uuid.UUID, startupID *uuid.UUID) error {
	query := `
		UPDATE users
		SET startup_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, startupID, userID)
	if err != nil {
		return fmt.Errorf("setting membership: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}
