package service

import "errors"

var (
	// ErrInvalidID reports a malformed identifier in a request path.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidOwner reports an owner id that is malformed or does not
	// resolve to an existing user.
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrValidation reports a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")

	// ErrUsernameTaken reports a duplicate username at creation or rename.
	ErrUsernameTaken = errors.New("username already exists")
)
