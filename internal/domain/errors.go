package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrAlreadyAcked     = errors.New("alert already acknowledged")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotifierDisabled = errors.New("sms notifier not configured")
)
