package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrNotesTooLong       = errors.New("notes cannot exceed 2000 characters")
)
