package services

import (
	"errors"
	"fmt"
)

// ErrorCode classifies service failures
type ErrorCode int

const (
	CodeInvalidUser ErrorCode = iota + 4000
	CodeInvalidPost
	CodeInvalidComment
	CodeInvalidPostContent
	CodeInvalidCommentContent
	CodeUserCannotDeletePost
	CodeInvalidReaction

	CodeInternal ErrorCode = 1000
)

// ServiceError is returned by every FeedService operation
type ServiceError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is matches any ServiceError with the same code, so errors.Is(err, ErrInvalidPost)
// holds for an error built by invalidPost(7).
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is
var (
	ErrInvalidUser           = New(CodeInvalidUser, "invalid user")
	ErrInvalidPost           = New(CodeInvalidPost, "invalid post")
	ErrInvalidComment        = New(CodeInvalidComment, "invalid comment")
	ErrInvalidPostContent    = New(CodeInvalidPostContent, "invalid post content")
	ErrInvalidCommentContent = New(CodeInvalidCommentContent, "invalid comment content")
	ErrUserCannotDeletePost  = New(CodeUserCannotDeletePost, "user is not the creator of the post")
	ErrInvalidReaction       = New(CodeInvalidReaction, "invalid reaction")
	ErrInternal              = New(CodeInternal, "internal error")
)

// New creates a service error
func New(code ErrorCode, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// Wrap wraps an underlying store error
func Wrap(code ErrorCode, message string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: message, Err: err}
}

// GetErrorCode returns the code of a service error, CodeInternal otherwise
func GetErrorCode(err error) ErrorCode {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}

func invalidUser(id uint) error {
	return New(CodeInvalidUser, fmt.Sprintf("user %d does not exist", id))
}

func invalidPost(id uint) error {
	return New(CodeInvalidPost, fmt.Sprintf("post %d does not exist", id))
}

func invalidComment(id uint) error {
	return New(CodeInvalidComment, fmt.Sprintf("comment %d does not exist", id))
}

func internal(message string, err error) error {
	return Wrap(CodeInternal, message, err)
}
