package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/store"
	"github.com/tasknest/tasknest/pkg/idx"
	"github.com/tasknest/tasknest/pkg/slogx"
)

type TaskService struct {
	Store store.Store
}

// CreateTask creates a pending task owned by ownerID, scheduled at dateTime.
// The next execution time starts out equal to the scheduled time, so a task
// scheduled in the past is picked up by the very next sweep.
func (s *TaskService) CreateTask(ctx context.Context, ownerID, name, description string, dateTime time.Time) (domain.Task, error) {
	l := slogx.FromContext(ctx)

	owner, err := idx.Parse(ownerID)
	if err != nil {
		return domain.Task{}, ErrInvalidOwner
	}

	if strings.TrimSpace(name) == "" {
		return domain.Task{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if dateTime.IsZero() {
		return domain.Task{}, fmt.Errorf("%w: date_time is required", ErrValidation)
	}

	// The owner must exist at creation time.
	if _, err := s.Store.Users().GetUserByID(ctx, owner.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrInvalidOwner
		}
		return domain.Task{}, err
	}

	task, err := s.Store.Tasks().CreateTask(ctx, domain.Task{
		ID:            idx.New().String(),
		UserID:        owner.String(),
		Name:          name,
		Description:   description,
		DateTime:      dateTime.UTC(),
		NextExecuteAt: dateTime.UTC(),
		Status:        domain.TaskStatusPending,
	})
	if err != nil {
		return domain.Task{}, err
	}

	l.Info("task created", "task_id", task.ID, "user_id", task.UserID, "next_execute_at", task.NextExecuteAt)
	return task, nil
}

// ListTasks returns the tasks owned by ownerID in storage order. No tasks
// is an empty slice, not an error.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	owner, err := idx.Parse(ownerID)
	if err != nil {
		return nil, ErrInvalidOwner
	}

	return s.Store.Tasks().ListTasksByOwner(ctx, owner.String())
}

// GetTask fetches a task by id alone. Deliberately unscoped: any caller
// holding a task id can read it regardless of owner.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (domain.Task, error) {
	id, err := idx.Parse(taskID)
	if err != nil {
		return domain.Task{}, ErrInvalidID
	}

	task, err := s.Store.Tasks().GetTaskByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update to the task matching both taskID and
// ownerID. Whatever the caller supplied, the stored status is forced back
// to pending so the next sweep re-evaluates the task.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, upd domain.TaskUpdate) (domain.Task, error) {
	owner, err := idx.Parse(ownerID)
	if err != nil {
		return domain.Task{}, ErrInvalidID
	}
	id, err := idx.Parse(taskID)
	if err != nil {
		return domain.Task{}, ErrInvalidID
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return domain.Task{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	// Every edit resets the task, even when the caller passed status=done.
	pending := domain.TaskStatusPending
	upd.Status = &pending

	// The write and the read-back share a transaction so the returned
	// entity can't reflect a sweep promotion landing in between.
	var task domain.Task
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Tasks().UpdateTask(ctx, id.String(), owner.String(), upd)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask removes the task matching both taskID and ownerID.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	l := slogx.FromContext(ctx)

	owner, err := idx.Parse(ownerID)
	if err != nil {
		return ErrInvalidID
	}
	id, err := idx.Parse(taskID)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.Store.Tasks().DeleteTask(ctx, id.String(), owner.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	l.Info("task deleted", "task_id", id.String(), "user_id", owner.String())
	return nil
}
