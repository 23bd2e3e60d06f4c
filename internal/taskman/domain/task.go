package domain

import "time"

// TaskStatus is the task lifecycle state. Tasks are created pending, every
// edit resets them to pending, and only the sweep promotes them to done.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Valid reports whether s is one of the two legal states.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusDone
}

type Task struct {
	ID          string
	UserID      string // owning user, immutable after creation
	Name        string
	Description string
	// DateTime is the scheduled execution time supplied at creation.
	DateTime time.Time
	// NextExecuteAt is the time the sweep compares against. Defaults to
	// DateTime at creation and may be moved by edits.
	NextExecuteAt time.Time
	Status        TaskStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskUpdate carries a partial update for a task. Nil fields are left
// untouched by the store. The update path always sets Status back to
// pending regardless of caller input; see TaskService.UpdateTask.
type TaskUpdate struct {
	Name          *string
	Description   *string
	DateTime      *time.Time
	NextExecuteAt *time.Time
	Status        *TaskStatus
}
