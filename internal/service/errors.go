package service

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidInput       = errors.New("invalid request, missing parameters")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrEmailExists        = errors.New("this email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("email/password does not match")
	ErrAlreadyVerified    = errors.New("this account is already verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrResetPending       = errors.New("a reset link was already sent, try again later")
	ErrSamePassword       = errors.New("new password must differ from the old one")
	ErrPasswordLength     = errors.New("password must be 8 to 20 characters long")
)

var taxonomy = []error{
	ErrInvalidInput,
	ErrInvalidUserID,
	ErrEmailExists,
	ErrUserNotFound,
	ErrInvalidCredentials,
	ErrAlreadyVerified,
	ErrInvalidToken,
	ErrResetPending,
	ErrSamePassword,
	ErrPasswordLength,
}

// StatusCode maps service errors onto the uniform response contract: every
// expected failure is a 400, anything else a 500.
func StatusCode(err error) int {
	for _, known := range taxonomy {
		if errors.Is(err, known) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
