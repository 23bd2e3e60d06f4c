// Package tasksdk holds the wire types shared by the task service and its
// Go client, plus a small HTTP client SDK used by integration tests and
// external callers.
package tasksdk

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	// Error is a machine-readable error code (e.g. "invalid_identifier")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// User types
// ============================================================================

// User is the wire representation of a user.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is the body for POST /api/users.
type CreateUserRequest struct {
	// Username must be unique across all users
	Username  string `json:"username"   validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// CreateUserResponse is returned with 201 from POST /api/users.
type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ListUsersResponse is returned from GET /api/users.
type ListUsersResponse struct {
	Message string `json:"message"`
	Users   []User `json:"users"`
}

// UpdateUserRequest is the body for PUT /api/users/{id}. Omitted fields are
// left unchanged.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// ============================================================================
// Task types
// ============================================================================

// Task is the wire representation of a task.
type Task struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// DateTime is the scheduled execution time.
	DateTime time.Time `json:"date_time"`

	// NextExecuteAt is the time the sweep compares against; defaults to
	// DateTime at creation.
	NextExecuteAt time.Time `json:"next_execute_date_time"`

	// Status is "pending" or "done".
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTaskRequest is the body for POST /api/users/{userId}/tasks.
type CreateTaskRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description,omitempty"`
	DateTime    time.Time `json:"date_time"   validate:"required"`
}

// UpdateTaskRequest is the body for PUT /api/users/{userId}/tasks/{id}.
// Omitted fields are left unchanged. A supplied Status is accepted but
// ignored: every edit stores the task as pending.
type UpdateTaskRequest struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	DateTime      *time.Time `json:"date_time,omitempty"`
	NextExecuteAt *time.Time `json:"next_execute_date_time,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

// MessageResponse is the confirmation body for delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Health types
// ============================================================================

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
