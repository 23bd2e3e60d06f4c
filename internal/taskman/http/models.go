package http

import (
	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/pkg/tasksdk"
)

func toUser(u domain.User) tasksdk.User {
	return tasksdk.User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUsers(users []domain.User) []tasksdk.User {
	out := make([]tasksdk.User, len(users))
	for i, u := range users {
		out[i] = toUser(u)
	}
	return out
}

func toTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:            t.ID,
		UserID:        t.UserID,
		Name:          t.Name,
		Description:   t.Description,
		DateTime:      t.DateTime,
		NextExecuteAt: t.NextExecuteAt,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTasks(tasks []domain.Task) []tasksdk.Task {
	out := make([]tasksdk.Task, len(tasks))
	for i, t := range tasks {
		out[i] = toTask(t)
	}
	return out
}
