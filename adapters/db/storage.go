package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"todo-list-service/core"
)

type Store struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*Store, error) {
	conn, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &Store{log: log, conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// HealthCheck reports whether the backend answers a trivial query. It never
// returns an error; failures are logged and reported as false.
func (s *Store) HealthCheck(ctx context.Context) bool {
	var one int
	if err := s.conn.GetContext(ctx, &one, `SELECT 1`); err != nil {
		s.log.Error("health check failed", "error", err)
		return false
	}
	return true
}

// withTx runs fn inside a connection-scoped transaction: commit on success,
// rollback and propagate the cause otherwise. The deferred rollback is a
// no-op after commit, so the connection is released on every path.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const taskColumns = `id, title, description, due_date, status, created_at, updated_at`

func (s *Store) CreateTask(ctx context.Context, title string, description *string, dueDate *core.Date, status core.TaskStatus) (core.Task, error) {
	const q = `
		INSERT INTO tasks(title, description, due_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + taskColumns + `;
	`

	var t core.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &t, q, title, description, dueDate, string(status))
	})
	if err != nil {
		if isCheckViolation(err) {
			return core.Task{}, core.ErrTaskInvalidArgs
		}
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (core.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1;`

	var t core.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &t, q, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrTaskNotFound
		}
		return core.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, status *core.TaskStatus) ([]core.Task, error) {
	q, args := buildListQuery(status)

	var out []core.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &out, q, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

// UpdateTask overwrites the fields set in p and refreshes updated_at. An
// empty patch performs no mutation and reads the current row instead.
func (s *Store) UpdateTask(ctx context.Context, id int64, p core.TaskPatch) (core.Task, error) {
	if p.Empty() {
		return s.GetTask(ctx, id)
	}

	q, args := buildUpdateQuery(id, p)

	var t core.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &t, q, args...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrTaskNotFound
		}
		if isCheckViolation(err) {
			return core.Task{}, core.ErrTaskInvalidArgs
		}
		return core.Task{}, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM tasks WHERE id = $1;`

	var deleted bool
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, q, id)
		if err != nil {
			return err
		}
		aff, _ := res.RowsAffected()
		deleted = aff > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return deleted, nil
}

func (s *Store) CountTasks(ctx context.Context) (int64, error) {
	const q = `SELECT count(*) FROM tasks;`

	var n int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &n, q)
	})
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

var _ core.Store = (*Store)(nil)

// query builders: column names are fixed literals, values always bound

func buildListQuery(status *core.TaskStatus) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks`)
	if status != nil {
		sb.WriteString(` WHERE status = $1`)
		args = append(args, string(*status))
	}
	sb.WriteString(` ORDER BY created_at DESC`)
	return sb.String(), args
}

func buildUpdateQuery(id int64, p core.TaskPatch) (string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.DueDate != nil {
		add("due_date", *p.DueDate)
	}
	if p.Status != nil {
		add("status", string(*p.Status))
	}
	set = append(set, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), taskColumns,
	)
	return q, args
}

// pg helpers

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
