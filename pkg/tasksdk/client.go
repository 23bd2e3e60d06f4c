package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a Go client for the task service HTTP API. The zero value is
// not usable; construct one with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a task service client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ============================================================================
// Users
// ============================================================================

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	var resp CreateUserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", req, &resp, http.StatusCreated); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// ListUsers returns all users. A system with no users yields an *APIError
// with StatusCode 404.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp ListUsersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, userID string) (User, error) {
	var user User
	err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, &user, http.StatusOK)
	return user, err
}

// UpdateUser applies a partial update to a user and returns the result.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (User, error) {
	var user User
	err := c.doJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(userID), req, &user, http.StatusOK)
	return user, err
}

// DeleteUser removes a user. The user's tasks are left in place.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	var resp MessageResponse
	return c.doJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(userID), nil, &resp, http.StatusOK)
}

// ============================================================================
// Tasks
// ============================================================================

// CreateTask schedules a new task for the given user.
func (c *Client) CreateTask(ctx context.Context, userID string, req CreateTaskRequest) (Task, error) {
	var task Task
	err := c.doJSON(ctx, http.MethodPost, c.taskPath(userID, ""), req, &task, http.StatusCreated)
	return task, err
}

// ListTasks returns the tasks owned by the given user. A user with no
// tasks yields an *APIError with StatusCode 404.
func (c *Client) ListTasks(ctx context.Context, userID string) ([]Task, error) {
	var tasks []Task
	err := c.doJSON(ctx, http.MethodGet, c.taskPath(userID, ""), nil, &tasks, http.StatusOK)
	return tasks, err
}

// GetTask fetches a task by id alone, regardless of owner.
func (c *Client) GetTask(ctx context.Context, taskID string) (Task, error) {
	var task Task
	err := c.doJSON(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(taskID), nil, &task, http.StatusOK)
	return task, err
}

// UpdateTask applies a partial update to the task matching both ids and
// returns the result. The stored status is always pending afterwards.
func (c *Client) UpdateTask(ctx context.Context, userID, taskID string, req UpdateTaskRequest) (Task, error) {
	var task Task
	err := c.doJSON(ctx, http.MethodPut, c.taskPath(userID, taskID), req, &task, http.StatusOK)
	return task, err
}

// DeleteTask removes the task matching both ids.
func (c *Client) DeleteTask(ctx context.Context, userID, taskID string) error {
	var resp MessageResponse
	return c.doJSON(ctx, http.MethodDelete, c.taskPath(userID, taskID), nil, &resp, http.StatusOK)
}

func (c *Client) taskPath(userID, taskID string) string {
	p := "/api/users/" + url.PathEscape(userID) + "/tasks"
	if taskID != "" {
		p += "/" + url.PathEscape(taskID)
	}
	return p
}

// ============================================================================
// Health
// ============================================================================

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp, http.StatusOK)
	return resp, err
}

// Readyz calls the readiness probe.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp, http.StatusOK)
	return resp, err
}
