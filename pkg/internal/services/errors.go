package services

import (
	"errors"
	"fmt"
)

var (
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrAuthorKeyMismatch    = errors.New("author key does not match")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
	ErrConflict             = errors.New("post was changed by someone else, reload and try again")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrSessionInvalid       = errors.New("session is invalid or expired")
	ErrAuthDisabled         = errors.New("authentication is disabled")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s %s", v.Field, v.Reason)
}

func IsValidationError(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
