package http

import (
	"encoding/json"
	"net/http"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/service"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/tasksdk"
)

// TasksHandler handles all task management endpoints.
type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleCreate handles POST /api/users/{userId}/tasks
//
//	@Summary		Create task
//	@Description	Schedules a new task for the given user. Tasks start out pending
//	@Description	with their next execution time set to the scheduled time.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string						true	"Owner user ID (ULID)"
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"Task creation request"
//	@Success		201		{object}	tasksdk.Task				"created task"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/api/users/{userId}/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "invalid JSON in request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeInvalidBody(w, "name and date_time are required")
		return
	}

	task, err := h.TaskService.CreateTask(r.Context(),
		r.PathValue("userId"), req.Name, req.Description, req.DateTime)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTask(task))
}

// HandleList handles GET /api/users/{userId}/tasks
//
//	@Summary		List tasks for user
//	@Description	Returns all tasks owned by the user. A user with no tasks yields 404.
//	@Tags			Tasks
//	@Produce		json
//	@Param			userId	path		string					true	"Owner user ID (ULID)"
//	@Success		200		{array}		tasksdk.Task			"tasks"
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/api/users/{userId}/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.ListTasks(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if len(tasks) == 0 {
		tasksdk.NewAPIError(http.StatusNotFound,
			tasksdk.ErrorCodeNotFound, "no tasks found").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTasks(tasks))
}

// HandleGet handles GET /api/tasks/{id}
//
//	@Summary		Get task by id
//	@Description	Looks a task up by its id alone, regardless of owner.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string					true	"Task ID (ULID)"
//	@Success		200	{object}	tasksdk.Task			"task"
//	@Failure		400	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/api/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	task, err := h.TaskService.GetTask(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTask(task))
}

// HandleUpdate handles PUT /api/users/{userId}/tasks/{id}
//
//	@Summary		Update task
//	@Description	Applies a partial update to a task owned by the user. Any update
//	@Description	resets the task to pending so it is picked up by the next sweep;
//	@Description	a status supplied in the body is ignored.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string						true	"Owner user ID (ULID)"
//	@Param			id		path		string						true	"Task ID (ULID)"
//	@Param			request	body		tasksdk.UpdateTaskRequest	true	"Fields to update"
//	@Success		200		{object}	tasksdk.Task				"post-update task"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/api/users/{userId}/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "invalid JSON in request body")
		return
	}

	task, err := h.TaskService.UpdateTask(r.Context(),
		r.PathValue("userId"), r.PathValue("id"), domain.TaskUpdate{
			Name:          req.Name,
			Description:   req.Description,
			DateTime:      req.DateTime,
			NextExecuteAt: req.NextExecuteAt,
		})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTask(task))
}

// HandleDelete handles DELETE /api/users/{userId}/tasks/{id}
//
//	@Summary		Delete task
//	@Description	Removes a task owned by the user. A task id that exists under a
//	@Description	different owner yields 404.
//	@Tags			Tasks
//	@Produce		json
//	@Param			userId	path		string					true	"Owner user ID (ULID)"
//	@Param			id		path		string					true	"Task ID (ULID)"
//	@Success		200		{object}	tasksdk.MessageResponse	"confirmation"
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/api/users/{userId}/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.TaskService.DeleteTask(r.Context(), r.PathValue("userId"), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Message: "task deleted"})
}
