package models

import "errors"

// Custom errors
var (
	ErrValidation     = errors.New("invalid bet input")
	ErrNotFound       = errors.New("bet not found")
	ErrAlreadySettled = errors.New("bet already settled")
)
