package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/store"
)

const taskColumns = `id, user_id, name, description, date_time, next_execute_date_time, status, created_at, updated_at`

type tasksRepo struct {
	db querier
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (id, user_id, name, description, date_time, next_execute_date_time, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Name, t.Description,
		t.DateTime.UTC(), t.NextExecuteAt.UTC(), string(t.Status),
		t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return t, nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *tasksRepo) ListDueTasks(ctx context.Context, now time.Time) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+taskColumns+` FROM tasks
WHERE status = ? AND next_execute_date_time <= ?
ORDER BY next_execute_date_time`,
		string(domain.TaskStatusPending), now.UTC())
	if err != nil {
		return nil, fmt.Errorf("list due tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id, ownerID string, upd domain.TaskUpdate) (domain.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.DateTime != nil {
		sets = append(sets, "date_time = ?")
		args = append(args, upd.DateTime.UTC())
	}
	if upd.NextExecuteAt != nil {
		sets = append(sets, "next_execute_date_time = ?")
		args = append(args, upd.NextExecuteAt.UTC())
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}
	args = append(args, id, ownerID)

	// The conjunctive match is the ownership check: an owner mismatch
	// affects zero rows and reads as not-found.
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if n == 0 {
		return domain.Task{}, store.ErrNotFound
	}

	return r.GetTaskByID(ctx, id)
}

func (r *tasksRepo) MarkTaskDone(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE tasks SET status = ?, updated_at = ?
WHERE id = ? AND status = ?`,
		string(domain.TaskStatusDone), time.Now().UTC(),
		id, string(domain.TaskStatusPending))
	if err != nil {
		return false, fmt.Errorf("mark task done: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func collectTasks(rows interface {
	Next() bool
	Err() error
	Scan(dest ...any) error
}) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTask(s scanner) (domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Name, &t.Description,
		&t.DateTime, &t.NextExecuteAt, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}
