package taskman_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/tasknest/tasknest/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	client, cleanup := setupContainer(t, nil)
	defer cleanup()

	ctx := context.Background()
	owner := createUser(t, client, "taskowner")

	t.Run("a user with no tasks yields 404", func(t *testing.T) {
		_, err := client.ListTasks(ctx, owner.ID)
		assertAPIError(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)
	})

	when := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	task := createTask(t, client, owner.ID, "write report", when)

	t.Run("created task starts pending with next execution at the schedule", func(t *testing.T) {
		require.Equal(t, "pending", task.Status)
		require.Equal(t, owner.ID, task.UserID)
		require.True(t, task.DateTime.Equal(when))
		require.True(t, task.NextExecuteAt.Equal(when))
	})

	t.Run("task is readable by id alone", func(t *testing.T) {
		got, err := client.GetTask(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, task.ID, got.ID)
		require.Equal(t, "write report", got.Name)
	})

	t.Run("task shows up in the owner's list", func(t *testing.T) {
		tasks, err := client.ListTasks(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
	})

	t.Run("creating a task for an unknown owner yields 400", func(t *testing.T) {
		_, err := client.CreateTask(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", tasksdk.CreateTaskRequest{
			Name:     "orphan",
			DateTime: when,
		})
		assertAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidOwner)
	})

	t.Run("missing name is rejected with 400", func(t *testing.T) {
		_, err := client.CreateTask(ctx, owner.ID, tasksdk.CreateTaskRequest{DateTime: when})
		assertAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidRequest)
	})

	t.Run("update through a different owner yields 404", func(t *testing.T) {
		other := createUser(t, client, "someoneelse")

		name := "hijacked"
		_, err := client.UpdateTask(ctx, other.ID, task.ID, tasksdk.UpdateTaskRequest{Name: &name})
		assertAPIError(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)
	})

	t.Run("update by the owner applies and keeps the task pending", func(t *testing.T) {
		desc := "quarterly numbers"
		status := "done" // accepted but ignored
		updated, err := client.UpdateTask(ctx, owner.ID, task.ID, tasksdk.UpdateTaskRequest{
			Description: &desc,
			Status:      &status,
		})
		require.NoError(t, err)
		require.Equal(t, "quarterly numbers", updated.Description)
		require.Equal(t, "pending", updated.Status)
	})

	t.Run("delete through a different owner yields 404 and keeps the task", func(t *testing.T) {
		other := createUser(t, client, "notmine")

		err := client.DeleteTask(ctx, other.ID, task.ID)
		assertAPIError(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)

		_, err = client.GetTask(ctx, task.ID)
		require.NoError(t, err)
	})

	t.Run("delete by the owner removes the task", func(t *testing.T) {
		require.NoError(t, client.DeleteTask(ctx, owner.ID, task.ID))

		_, err := client.GetTask(ctx, task.ID)
		assertAPIError(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)
	})
}

func TestTasksSurviveOwnerDeletion(t *testing.T) {
	client, cleanup := setupContainer(t, nil)
	defer cleanup()

	ctx := context.Background()
	owner := createUser(t, client, "leaver")
	task := createTask(t, client, owner.ID, "left behind", time.Now().Add(time.Hour))

	require.NoError(t, client.DeleteUser(ctx, owner.ID))

	// No cascade: the task outlives its owner and stays readable by id.
	got, err := client.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "left behind", got.Name)
}
