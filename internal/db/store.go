package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/existflow/duetask/internal/model"
)

// dueLayout is the naive local ISO-8601 format stored in datetime_due.
const dueLayout = "2006-01-02T15:04:05"

// CreateTask persists a new task and returns its assigned id. A title that is
// empty after trimming is silently rejected: created is false and no row is
// written. All queries are parameterized.
func (db *DB) CreateTask(ctx context.Context, title, body string, dueAt *time.Time) (id int64, created bool, err error) {
	t := model.NewTask(title, body, dueAt)
	if t.Title == "" {
		return 0, false, nil
	}

	var due sql.NullString
	if t.DueAt != nil {
		due = sql.NullString{String: t.DueAt.Format(dueLayout), Valid: true}
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO tasks (title, body, datetime_due) VALUES (?, ?, ?)`,
		t.Title, t.Body, due)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create task: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read new task id: %w", err)
	}

	return id, true, nil
}

// ListTasks returns all tasks in id order.
func (db *DB) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, body, datetime_due FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var due sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Body, &due); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if due.Valid {
			parsed, err := time.ParseInLocation(dueLayout, due.String, time.Local)
			if err != nil {
				return nil, fmt.Errorf("invalid due date on task %d: %w", t.ID, err)
			}
			t.DueAt = &parsed
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask fetches a single task by id.
func (db *DB) GetTask(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	var due sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, title, body, datetime_due FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.Title, &t.Body, &due)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	if due.Valid {
		parsed, err := time.ParseInLocation(dueLayout, due.String, time.Local)
		if err != nil {
			return model.Task{}, fmt.Errorf("invalid due date on task %d: %w", id, err)
		}
		t.DueAt = &parsed
	}
	return t, nil
}

// DeleteTask removes the task with the given id. Deleting an id that does not
// exist is a no-op.
func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// ClearTasks removes every task.
func (db *DB) ClearTasks(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	return nil
}

// CountTasks returns the number of stored tasks.
func (db *DB) CountTasks(ctx context.Context) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}
