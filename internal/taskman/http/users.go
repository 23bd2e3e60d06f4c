package http

import (
	"encoding/json"
	"net/http"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/service"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/tasksdk"
)

// UsersHandler handles all user management endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate handles POST /api/users
//
//	@Summary		Create user
//	@Description	Registers a new user. Usernames are unique; a duplicate yields 400.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	tasksdk.CreateUserResponse	"message and created user"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "invalid JSON in request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeInvalidBody(w, "username, first_name and last_name are required")
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), req.Username, req.FirstName, req.LastName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.CreateUserResponse{
		Message: "user created successfully",
		User:    toUser(user),
	})
}

// HandleList handles GET /api/users
//
//	@Summary		List users
//	@Description	Returns all users. An empty system yields 404.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	tasksdk.ListUsersResponse	"message and users"
//	@Failure		404	{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if len(users) == 0 {
		tasksdk.NewAPIError(http.StatusNotFound,
			tasksdk.ErrorCodeNotFound, "no users found").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.ListUsersResponse{
		Message: "users retrieved successfully",
		Users:   toUsers(users),
	})
}

// HandleGet handles GET /api/users/{id}
//
//	@Summary		Get user by id
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"User ID (ULID)"
//	@Success		200	{object}	tasksdk.User			"user"
//	@Failure		400	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/api/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleUpdate handles PUT /api/users/{id}
//
//	@Summary		Update user
//	@Description	Applies a partial update; omitted fields are left unchanged.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID (ULID)"
//	@Param			request	body		tasksdk.UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	tasksdk.User				"post-update user"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/api/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "invalid JSON in request body")
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), r.PathValue("id"), domain.UserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleDelete handles DELETE /api/users/{id}
//
//	@Summary		Delete user
//	@Description	Removes a user. The user's tasks are left in place.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"User ID (ULID)"
//	@Success		200	{object}	tasksdk.MessageResponse	"confirmation"
//	@Failure		400	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Message: "user deleted"})
}
