package http

import (
	"errors"
	"net/http"

	"github.com/tasknest/tasknest/internal/taskman/service"
	"github.com/tasknest/tasknest/pkg/slogx"
	"github.com/tasknest/tasknest/pkg/tasksdk"
)

// writeServiceError maps a service error onto the API error taxonomy.
// Anything unrecognised is a storage-level failure and becomes a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		tasksdk.NewAPIError(http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidIdentifier, "malformed identifier in path").WriteError(w)

	case errors.Is(err, service.ErrInvalidOwner):
		tasksdk.NewAPIError(http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidOwner, "owner id is malformed or does not exist").WriteError(w)

	case errors.Is(err, service.ErrValidation):
		tasksdk.NewAPIError(http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)

	case errors.Is(err, service.ErrUsernameTaken):
		tasksdk.NewAPIError(http.StatusBadRequest,
			tasksdk.ErrorCodeUsernameTaken, "a user with that username already exists").WriteError(w)

	case errors.Is(err, service.ErrUserNotFound):
		tasksdk.NewAPIError(http.StatusNotFound,
			tasksdk.ErrorCodeNotFound, "user not found").WriteError(w)

	case errors.Is(err, service.ErrTaskNotFound):
		tasksdk.NewAPIError(http.StatusNotFound,
			tasksdk.ErrorCodeNotFound, "task not found").WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("unexpected storage error", "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError,
			tasksdk.ErrorCodeServerError, "unexpected error").WriteError(w)
	}
}

func writeInvalidBody(w http.ResponseWriter, desc string) {
	tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeInvalidRequest, desc).WriteError(w)
}
