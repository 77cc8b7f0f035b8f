package post

import "errors"

// Errors
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidStatus = errors.New("invalid post status")
)
