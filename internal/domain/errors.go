package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidInput      = errors.New("invalid input")
)
