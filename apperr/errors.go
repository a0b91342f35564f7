// Package apperr holds the error kinds shared by the store, the policy and the
// social layer, and their mapping onto HTTP status codes.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated       = errors.New("authentication credentials were not provided")
	ErrForbidden             = errors.New("you do not have permission to perform this action")
	ErrNotFound              = errors.New("not found")
	ErrDuplicateRelationship = errors.New("you are already following this user")
	ErrSelfReference         = errors.New("you cannot follow yourself")
	ErrConflict              = errors.New("record already exists")
	ErrValidation            = errors.New("invalid input")
)

// Status maps an error onto the HTTP status the handlers answer with.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateRelationship),
		errors.Is(err, ErrSelfReference),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
