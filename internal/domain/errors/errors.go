package errors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientStars   = errors.New("insufficient stars")
	ErrPremiumRequired     = errors.New("premium required")
	ErrAlreadyProcessed    = errors.New("already processed")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrInvalidInput        = errors.New("invalid input")
	ErrPackageUnavailable  = errors.New("package unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
)
