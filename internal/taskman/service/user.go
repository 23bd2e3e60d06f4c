package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tasknest/tasknest/internal/taskman/domain"
	"github.com/tasknest/tasknest/internal/taskman/store"
	"github.com/tasknest/tasknest/pkg/idx"
	"github.com/tasknest/tasknest/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// CreateUser registers a new user. Usernames are unique; a collision is
// reported as ErrUsernameTaken.
func (s *UserService) CreateUser(ctx context.Context, username, firstName, lastName string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if strings.TrimSpace(firstName) == "" {
		return domain.User{}, fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if strings.TrimSpace(lastName) == "" {
		return domain.User{}, fmt.Errorf("%w: last_name is required", ErrValidation)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		ID:        idx.New().String(),
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	l.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// ListUsers returns all users. An empty system yields an empty slice, not
// an error; the caller decides how to communicate that.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	id, err := idx.Parse(userID)
	if err != nil {
		return domain.User{}, ErrInvalidID
	}

	user, err := s.Store.Users().GetUserByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateUser applies a partial update to a user.
func (s *UserService) UpdateUser(ctx context.Context, userID string, upd domain.UserUpdate) (domain.User, error) {
	id, err := idx.Parse(userID)
	if err != nil {
		return domain.User{}, ErrInvalidID
	}

	if upd.Username != nil && strings.TrimSpace(*upd.Username) == "" {
		return domain.User{}, fmt.Errorf("%w: username must not be empty", ErrValidation)
	}

	// Nothing to change; skip the write and just return the current user.
	if upd.IsEmpty() {
		return s.GetUser(ctx, id.String())
	}

	user, err := s.Store.Users().UpdateUser(ctx, id.String(), upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.User{}, ErrUserNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}
	return user, nil
}

// DeleteUser removes a user. The user's tasks are left in place; the open
// question of cascading deletes is resolved as "no cascade" so orphaned
// tasks keep flowing through the sweep.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	l := slogx.FromContext(ctx)

	id, err := idx.Parse(userID)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.Store.Users().DeleteUser(ctx, id.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	l.Info("user deleted", "user_id", id.String())
	return nil
}
