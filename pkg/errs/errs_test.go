package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := NotFound("Article not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	wrapped := fmt.Errorf("load article: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestWithCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Conflict("Email or username already taken").WithCause(cause)

	assert.True(t, errors.Is(err, ErrConflict))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Email or username already taken", err.Message)
}

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Forbidden("x"), http.StatusForbidden},
		{Conflict("x"), http.StatusConflict},
		{Auth("x"), http.StatusUnauthorized},
		{Validation("x"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", Forbidden("x")), http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}
