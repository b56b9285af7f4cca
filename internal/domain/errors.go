package domain

import "errors"

var (
	ErrTransport    = errors.New("network error")
	ErrAuthRequired = errors.New("authentication required")
	ErrNotFound     = errors.New("not found")
)

var (
	ErrNotCancelable    = errors.New("booking cannot be canceled")
	ErrActionInProgress = errors.New("action already in progress")
	ErrNoBookingLoaded  = errors.New("no booking loaded")
)

var (
	ErrValidation = errors.New("validation error")
)
