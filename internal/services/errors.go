package services

import "errors"

// Error taxonomy recovered at the handler boundary. Handlers match with
// errors.Is and translate to either a redirect with a flash message or a 404.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not logged in")
	ErrNotFound           = errors.New("task not found")
	ErrMissingField       = errors.New("username and password are required")
	ErrInvalidInput       = errors.New("username or password too long")
)
