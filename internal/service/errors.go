package service

import "errors"

// Domain errors mapped to HTTP statuses by the handlers.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrContentNotFound    = errors.New("content not found or unauthorized")
	ErrShareNotFound      = errors.New("share link not found")
)
