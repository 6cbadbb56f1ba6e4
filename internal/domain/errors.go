package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCommentNotFound - no comment exists with the given id.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrCommentExists - a comment with the same id already exists.
	ErrCommentExists = errors.New("comment already exists")
	// ErrAlreadyLiked - the (comment, user) like pair already exists.
	ErrAlreadyLiked = errors.New("comment already liked by this user")
	// ErrForbidden - the actor is not allowed to perform the operation.
	ErrForbidden = errors.New("insufficient permissions for this operation")
)

// ValidationError reports a rejected request field before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
