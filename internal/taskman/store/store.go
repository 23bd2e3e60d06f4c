package store

import (
	"context"
	"errors"
	"time"

	"github.com/tasknest/tasknest/internal/taskman/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable: the services and the sweep only ever talk to these interfaces.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the service via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser applies the non-nil fields of upd and bumps updated_at.
	// Returns the post-update user, ErrNotFound if the id matches nothing,
	// or ErrAlreadyExists when a username change collides.
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)

	// DeleteUser removes a user. Tasks are deliberately left in place;
	// orphaned tasks are tolerated.
	DeleteUser(ctx context.Context, id string) error
}

type Tasks interface {
	// CreateTask inserts a new task (id is provided by the service via ULID).
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)

	// GetTaskByID returns a task by id alone, regardless of owner.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTasksByOwner returns the tasks owned by ownerID in storage order.
	ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)

	// ListDueTasks returns tasks with status=pending and
	// next_execute_date_time <= now. The sweep calls this once per tick.
	ListDueTasks(ctx context.Context, now time.Time) ([]domain.Task, error)

	// UpdateTask applies the non-nil fields of upd to the task matching
	// BOTH id and ownerID and bumps updated_at. An owner mismatch is
	// indistinguishable from a missing task: ErrNotFound either way.
	UpdateTask(ctx context.Context, id, ownerID string, upd domain.TaskUpdate) (domain.Task, error)

	// MarkTaskDone promotes a task to done only if it is still pending
	// (compare-and-swap on status, so a concurrent edit's pending reset is
	// never clobbered). Reports whether the row transitioned.
	MarkTaskDone(ctx context.Context, id string) (bool, error)

	// DeleteTask removes the task matching both id and ownerID.
	// Returns ErrNotFound when nothing matched.
	DeleteTask(ctx context.Context, id, ownerID string) error
}
