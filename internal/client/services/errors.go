package services

import (
	"errors"
	"strings"
)

var (
	ErrRegistrationFailed    = errors.New("registration failed")
	ErrSignInFailed          = errors.New("sign-in failed")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired verification token")
	ErrPasswordResetFailed   = errors.New("password reset request failed")
	ErrSubmissionInProgress  = errors.New("submission already in progress")
)

// ValidationError reports form input rejected before anything is sent.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

// ErrPasswordMismatch is returned as is, so both errors.Is and errors.As
// with *ValidationError match it.
var ErrPasswordMismatch = &ValidationError{Problems: []string{"passwords do not match"}}
