package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		nil:                      http.StatusOK,
		ErrUnauthenticated:       http.StatusUnauthorized,
		ErrForbidden:             http.StatusForbidden,
		ErrNotFound:              http.StatusNotFound,
		ErrDuplicateRelationship: http.StatusBadRequest,
		ErrSelfReference:         http.StatusBadRequest,
		ErrConflict:              http.StatusBadRequest,
		ErrValidation:            http.StatusBadRequest,
		errors.New("boom"):       http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, Status(err), "status for %v", err)
	}
}

func TestStatusUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("load post 7: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, Status(err))
}
