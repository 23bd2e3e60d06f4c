package service

import (
	"context"
	"testing"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/store/drivers/sqlite"
	"github.com/tasknest/tasknest/pkg/idx"
	"github.com/stretchr/testify/require"
)

// unknownID is well-formed but never inserted by any test.
var unknownID = idx.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")

func newUserService(t *testing.T) *UserService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	return &UserService{Store: st}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	t.Run("creates a user with generated id and timestamps", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "alice", "Alice", "Anderson")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice", user.Username)
		require.Equal(t, "Alice", user.FirstName)
		require.Equal(t, "Anderson", user.LastName)
		require.False(t, user.CreatedAt.IsZero())
		require.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "bob", "Bob", "Brown")
		require.NoError(t, err)

		_, err = svc.CreateUser(ctx, "bob", "Robert", "Browning")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "", "First", "Last")
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.CreateUser(ctx, "charlie", "", "Last")
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.CreateUser(ctx, "charlie", "First", "  ")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, err := svc.CreateUser(ctx, "dana", "Dana", "Doe")
	require.NoError(t, err)

	t.Run("returns the user by id", func(t *testing.T) {
		user, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, user.ID)
		require.Equal(t, "dana", user.Username)
	})

	t.Run("rejects malformed ids without touching storage", func(t *testing.T) {
		_, err := svc.GetUser(ctx, "invalidId")
		require.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("reports unknown ids as not found", func(t *testing.T) {
		_, err := svc.GetUser(ctx, unknownID.String())
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("empty system yields an empty slice", func(t *testing.T) {
		svc := newUserService(t)
		users, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		require.Empty(t, users)
	})

	t.Run("returns every user", func(t *testing.T) {
		svc := newUserService(t)
		_, err := svc.CreateUser(ctx, "erin", "Erin", "Evans")
		require.NoError(t, err)
		_, err = svc.CreateUser(ctx, "frank", "Frank", "Foster")
		require.NoError(t, err)

		users, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, err := svc.CreateUser(ctx, "grace", "Grace", "Green")
	require.NoError(t, err)

	t.Run("applies partial updates and leaves the rest untouched", func(t *testing.T) {
		first := "Gracie"
		user, err := svc.UpdateUser(ctx, created.ID, domain.UserUpdate{FirstName: &first})
		require.NoError(t, err)
		require.Equal(t, "Gracie", user.FirstName)
		require.Equal(t, "grace", user.Username)
		require.Equal(t, "Green", user.LastName)
	})

	t.Run("rejects renaming to a taken username", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "henry", "Henry", "Hill")
		require.NoError(t, err)

		taken := "henry"
		_, err = svc.UpdateUser(ctx, created.ID, domain.UserUpdate{Username: &taken})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects blanking the username", func(t *testing.T) {
		blank := "  "
		_, err := svc.UpdateUser(ctx, created.ID, domain.UserUpdate{Username: &blank})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("an empty update returns the user unchanged", func(t *testing.T) {
		before, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)

		user, err := svc.UpdateUser(ctx, created.ID, domain.UserUpdate{})
		require.NoError(t, err)
		require.Equal(t, before, user)
	})

	t.Run("reports unknown ids as not found", func(t *testing.T) {
		first := "Nobody"
		_, err := svc.UpdateUser(ctx, unknownID.String(), domain.UserUpdate{FirstName: &first})
		require.ErrorIs(t, err, ErrUserNotFound)

		// The empty-update path takes the read shortcut but maps the same way.
		_, err = svc.UpdateUser(ctx, unknownID.String(), domain.UserUpdate{})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, err := svc.CreateUser(ctx, "iris", "Iris", "Irving")
	require.NoError(t, err)

	t.Run("removes the user", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, created.ID))

		_, err := svc.GetUser(ctx, created.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteUser(ctx, created.ID), ErrUserNotFound)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteUser(ctx, "not-a-ulid"), ErrInvalidID)
	})
}
