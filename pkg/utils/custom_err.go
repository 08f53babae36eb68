package utils

import "errors"

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrDatabaseError    = errors.New("database error")
	ErrSubmissionFailed = errors.New("submission failed")
)
