package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/foundx/foundx/internal/task"
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

const selectTaskColumns = `
	t.id, t.title, t.description, t.status, t.project_id, t.created_at, t.updated_at
`

func scanTask(s scanner) (*task.Task, error) {
	var t task.Task

	var statusStr string

	if err := s.Scan(
		&t.ID, &t.Title, &t.Description, &statusStr, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Status = task.Status(statusStr)

	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (title, description, status, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.Title,
		t.Description,
		t.Status,
		t.ProjectID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

func (s *Store) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	query := `SELECT ` + selectTaskColumns + ` FROM tasks t WHERE t.id = $1`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, task.ErrNotFound
		}

		return nil, fmt.Errorf("getting task: %w", err)
	}

	members, err := s.membersForTask(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Members = members

	return t, nil
}

func (s *Store) UpdateTask(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query, t.Title, t.Description, t.Status, t.ID)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (s *Store) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*task.Task, error) {
	query := `SELECT ` + selectTaskColumns + `
		FROM tasks t
		WHERE t.project_id = $1
		ORDER BY t.created_at ASC`

	return s.listTasks(ctx, query, projectID)
}

func (s *Store) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*task.Task, error) {
	query := `SELECT ` + selectTaskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.startup_id = $1
		ORDER BY t.created_at ASC`

	return s.listTasks(ctx, query, startupID)
}

func (s *Store) listTasks(ctx context.Context, query string, arg any) ([]*task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task

	byID := make(map[uuid.UUID]*task.Task)

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		tasks = append(tasks, t)
		byID[t.ID] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	if len(tasks) == 0 {
		return tasks, nil
	}

	if err := s.attachMembers(ctx, byID); err != nil {
		return nil, err
	}

	return tasks, nil
}

const selectAssigneeColumns = `
	tm.task_id, u.id, u.full_name, u.email, u.username, u.role
`

// attachMembers loads the assignees for every task in the map with a
// single query and attaches them to their tasks.
func (s *Store) attachMembers(ctx context.Context, byID map[uuid.UUID]*task.Task) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id.String())
	}

	query := `SELECT ` + selectAssigneeColumns + `
		FROM task_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.task_id::text = ANY(string_to_array($1, ','))
		ORDER BY u.full_name ASC`

	rows, err := s.db.QueryContext(ctx, query, joinIDs(ids))
	if err != nil {
		return fmt.Errorf("listing task members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID uuid.UUID

		var m task.Member

		var roleStr string

		if err := rows.Scan(&taskID, &m.ID, &m.FullName, &m.Email, &m.Username, &roleStr); err != nil {
			return fmt.Errorf("scanning task member: %w", err)
		}

		m.Role = user.Role(roleStr)

		if t, ok := byID[taskID]; ok {
			t.Members = append(t.Members, &m)
		}
	}

	return rows.Err()
}

func joinIDs(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ","
		}

		out += id
	}

	return out
}

func (s *Store) membersForTask(ctx context.Context, taskID uuid.UUID) ([]*task.Member, error) {
	query := `SELECT u.id, u.full_name, u.email, u.username, u.role
		FROM task_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.task_id = $1
		ORDER BY u.full_name ASC`

	rows, err := s.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing task members: %w", err)
	}
	defer rows.Close()

	var members []*task.Member

	for rows.Next() {
		var m task.Member

		var roleStr string

		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Username, &roleStr); err != nil {
			return nil, fmt.Errorf("scanning task member: %w", err)
		}

		m.Role = user.Role(roleStr)
		members = append(members, &m)
	}

	return members, rows.Err()
}

func (s *Store) ProjectExists(ctx context.Context, projectID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking project existence: %w", err)
	}

	return exists, nil
}

func (s *Store) GetMemberByEmail(ctx context.Context, email string) (*task.Member, error) {
	query := `SELECT u.id, u.full_name, u.email, u.username, u.role
		FROM users u
		WHERE LOWER(u.email) = LOWER($1)`

	var m task.Member

	var roleStr string

	err := s.db.QueryRowContext(ctx, query, email).Scan(&m.ID, &m.FullName, &m.Email, &m.Username, &roleStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting member by email: %w", err)
	}

	m.Role = user.Role(roleStr)

	return &m, nil
}

func (s *Store) AssignMember(ctx context.Context, taskID, memberID uuid.UUID) error {
	query := `INSERT INTO task_members (task_id, user_id) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, taskID, memberID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return task.ErrAlreadyAssigned
		}

		return fmt.Errorf("assigning member: %w", err)
	}

	return nil
}

// UnassignMember removes the assignment if present. Removing an absent
// assignment is not an error.
func (s *Store) UnassignMember(ctx context.Context, taskID, memberID uuid.UUID) error {
	query := `DELETE FROM task_members WHERE task_id = $1 AND user_id = $2`

	if _, err := s.db.ExecContext(ctx, query, taskID, memberID); err != nil {
		return fmt.Errorf("unassigning member: %w", err)
	}

	return nil
}
