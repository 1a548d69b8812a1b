package apperrors

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrNoActivePractice     = errors.New("no active practice")
	ErrActivePracticeExists = errors.New("active practice already exists")
	ErrNoKicks              = errors.New("no kicks logged")
)
