package services

import "errors"

// Error taxonomy shared by every service. Controllers translate these
// with errors.Is; the services never shape HTTP responses.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateRelation = errors.New("relation already exists")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrValidation        = errors.New("validation failed")
)
