package service

import (
	"context"
	"testing"
	"time"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/store"
	"github.com/tasknest/tasknest/internal/taskman/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTaskFixture wires user and task services over a shared in-memory store
// and registers one owning user.
func newTaskFixture(t *testing.T) (*TaskService, domain.User, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	users := &UserService{Store: st}
	owner, err := users.CreateUser(context.Background(), "owner", "Owner", "One")
	require.NoError(t, err)

	return &TaskService{Store: st}, owner, st
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	svc, owner, _ := newTaskFixture(t)

	t.Run("creates a pending task with next execution set to the schedule", func(t *testing.T) {
		when := time.Now().Add(2 * time.Hour)
		task, err := svc.CreateTask(ctx, owner.ID, "water plants", "balcony only", when)
		require.NoError(t, err)
		require.NotEmpty(t, task.ID)
		require.Equal(t, owner.ID, task.UserID)
		require.Equal(t, domain.TaskStatusPending, task.Status)
		require.WithinDuration(t, when.UTC(), task.DateTime, time.Second)
		require.Equal(t, task.DateTime, task.NextExecuteAt)
	})

	t.Run("accepts schedules in the past", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, owner.ID, "overdue", "", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusPending, task.Status)
	})

	t.Run("rejects malformed owner ids", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "invalidId", "task", "", time.Now())
		require.ErrorIs(t, err, ErrInvalidOwner)
	})

	t.Run("rejects owners that do not exist", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, unknownID.String(), "task", "", time.Now())
		require.ErrorIs(t, err, ErrInvalidOwner)
	})

	t.Run("rejects missing name or schedule", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, owner.ID, "  ", "", time.Now())
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.CreateTask(ctx, owner.ID, "task", "", time.Time{})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	svc, owner, _ := newTaskFixture(t)

	t.Run("no tasks yields an empty slice", func(t *testing.T) {
		tasks, err := svc.ListTasks(ctx, owner.ID)
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("returns only the owner's tasks", func(t *testing.T) {
		users := &UserService{Store: svc.Store}
		other, err := users.CreateUser(ctx, "other", "Other", "Owner")
		require.NoError(t, err)

		_, err = svc.CreateTask(ctx, owner.ID, "mine", "", time.Now().Add(time.Hour))
		require.NoError(t, err)
		_, err = svc.CreateTask(ctx, other.ID, "theirs", "", time.Now().Add(time.Hour))
		require.NoError(t, err)

		tasks, err := svc.ListTasks(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "mine", tasks[0].Name)
	})

	t.Run("rejects malformed owner ids", func(t *testing.T) {
		_, err := svc.ListTasks(ctx, "nope")
		require.ErrorIs(t, err, ErrInvalidOwner)
	})
}

func TestGetTask(t *testing.T) {
	ctx := context.Background()
	svc, owner, _ := newTaskFixture(t)

	created, err := svc.CreateTask(ctx, owner.ID, "lookup me", "", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Run("fetches by id regardless of owner", func(t *testing.T) {
		task, err := svc.GetTask(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, task.ID)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		_, err := svc.GetTask(ctx, "invalidId")
		require.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("reports unknown ids as not found", func(t *testing.T) {
		_, err := svc.GetTask(ctx, unknownID.String())
		require.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	svc, owner, st := newTaskFixture(t)

	t.Run("applies partial updates", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, owner.ID, "original", "desc", time.Now().Add(time.Hour))
		require.NoError(t, err)

		name := "renamed"
		task, err := svc.UpdateTask(ctx, owner.ID, created.ID, domain.TaskUpdate{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "renamed", task.Name)
		require.Equal(t, "desc", task.Description)
	})

	t.Run("every edit resets the task to pending", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, owner.ID, "done already", "", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		// Promote it the way the sweep would.
		transitioned, err := st.Tasks().MarkTaskDone(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, transitioned)

		// Even an explicit status=done in the update is overridden.
		done := domain.TaskStatusDone
		task, err := svc.UpdateTask(ctx, owner.ID, created.ID, domain.TaskUpdate{Status: &done})
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusPending, task.Status)
	})

	t.Run("a task under a different owner is not found", func(t *testing.T) {
		users := &UserService{Store: svc.Store}
		other, err := users.CreateUser(ctx, "intruder", "In", "Truder")
		require.NoError(t, err)

		created, err := svc.CreateTask(ctx, owner.ID, "guarded", "", time.Now().Add(time.Hour))
		require.NoError(t, err)

		name := "stolen"
		_, err = svc.UpdateTask(ctx, other.ID, created.ID, domain.TaskUpdate{Name: &name})
		require.ErrorIs(t, err, ErrTaskNotFound)

		// The task itself is untouched.
		task, err := svc.GetTask(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "guarded", task.Name)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		name := "x"
		_, err := svc.UpdateTask(ctx, "bad", "also-bad", domain.TaskUpdate{Name: &name})
		require.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, owner, _ := newTaskFixture(t)

	t.Run("removes the task for its owner", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, owner.ID, "ephemeral", "", time.Now().Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(ctx, owner.ID, created.ID))

		_, err = svc.GetTask(ctx, created.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("a task under a different owner is not found", func(t *testing.T) {
		users := &UserService{Store: svc.Store}
		other, err := users.CreateUser(ctx, "deleter", "De", "Leter")
		require.NoError(t, err)

		created, err := svc.CreateTask(ctx, owner.ID, "keep me", "", time.Now().Add(time.Hour))
		require.NoError(t, err)

		require.ErrorIs(t, svc.DeleteTask(ctx, other.ID, created.ID), ErrTaskNotFound)

		// Still present for the real owner.
		_, err = svc.GetTask(ctx, created.ID)
		require.NoError(t, err)
	})
}
