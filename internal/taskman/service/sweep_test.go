package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/store"
	"github.com/tasknest/tasknest/internal/taskman/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newSweepFixture(t *testing.T) (*SweepService, *TaskService, domain.User, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	users := &UserService{Store: st}
	owner, err := users.CreateUser(context.Background(), "sweeper", "Sweep", "Owner")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSweepService(st, logger, time.Minute), &TaskService{Store: st}, owner, st
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes due pending tasks to done", func(t *testing.T) {
		sweep, tasks, owner, _ := newSweepFixture(t)

		overdue, err := tasks.CreateTask(ctx, owner.ID, "overdue", "", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		done, err := sweep.Sweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, done)

		task, err := tasks.GetTask(ctx, overdue.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusDone, task.Status)
	})

	t.Run("leaves future tasks pending", func(t *testing.T) {
		sweep, tasks, owner, _ := newSweepFixture(t)

		future, err := tasks.CreateTask(ctx, owner.ID, "later", "", time.Now().Add(time.Hour))
		require.NoError(t, err)

		done, err := sweep.Sweep(ctx)
		require.NoError(t, err)
		require.Zero(t, done)

		task, err := tasks.GetTask(ctx, future.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusPending, task.Status)
	})

	t.Run("is idempotent across passes", func(t *testing.T) {
		sweep, tasks, owner, _ := newSweepFixture(t)

		_, err := tasks.CreateTask(ctx, owner.ID, "once only", "", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		done, err := sweep.Sweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, done)

		done, err = sweep.Sweep(ctx)
		require.NoError(t, err)
		require.Zero(t, done)
	})

	t.Run("a task already promoted is skipped without error", func(t *testing.T) {
		sweep, tasks, owner, st := newSweepFixture(t)

		created, err := tasks.CreateTask(ctx, owner.ID, "raced", "", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		// Promote it out from under the sweep, as a concurrent pass would.
		transitioned, err := st.Tasks().MarkTaskDone(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, transitioned)

		done, err := sweep.Sweep(ctx)
		require.NoError(t, err)
		require.Zero(t, done)
	})

	t.Run("an edit after creation defers a due task", func(t *testing.T) {
		sweep, tasks, owner, _ := newSweepFixture(t)

		created, err := tasks.CreateTask(ctx, owner.ID, "deferred", "", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		// Push the execution time into the future before the sweep runs.
		next := time.Now().Add(time.Hour).UTC()
		_, err = tasks.UpdateTask(ctx, owner.ID, created.ID, domain.TaskUpdate{NextExecuteAt: &next})
		require.NoError(t, err)

		done, err := sweep.Sweep(ctx)
		require.NoError(t, err)
		require.Zero(t, done)

		task, err := tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusPending, task.Status)
	})
}

func TestSweepLifecycle(t *testing.T) {
	ctx := context.Background()
	sweep, tasks, owner, _ := newSweepFixture(t)
	sweep.Interval = 10 * time.Millisecond

	_, err := tasks.CreateTask(ctx, owner.ID, "startup catch-up", "", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	sweep.Start()

	// The startup pass picks up work that came due while the process was
	// down, so the task should flip without waiting a full interval.
	require.Eventually(t, func() bool {
		list, err := tasks.ListTasks(ctx, owner.ID)
		if err != nil || len(list) != 1 {
			return false
		}
		return list[0].Status == domain.TaskStatusDone
	}, 2*time.Second, 10*time.Millisecond)

	sweep.Stop()
}
