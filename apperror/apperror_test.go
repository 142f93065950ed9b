package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelUnwrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"unauthenticated", Unauthenticated("like a post"), ErrUnauthenticated},
		{"forbidden", Forbidden("not yours"), ErrForbidden},
		{"not found", NotFound("post"), ErrNotFound},
		{"self follow", SelfFollow(), ErrSelfFollow},
		{"validation", Validation("empty content"), ErrValidation},
		{"store", Store("create post", errors.New("connection refused")), ErrStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "you must be logged in to like a post", Unauthenticated("like a post").Error())
	assert.Equal(t, "post not found", NotFound("post").Error())
	assert.Equal(t, "you cannot follow yourself", SelfFollow().Error())
	assert.Equal(t, "failed to create post", Store("create post", errors.New("boom")).Error())
}

func TestStoreKeepsCauseInChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("create post", cause)

	// The cause text survives for logging even though the client message
	// stays opaque.
	assert.Contains(t, fmt.Sprintf("%v", err.Err), "connection refused")
}

func TestWrappedThroughFmtErrorf(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("comment"))
	assert.ErrorIs(t, err, ErrNotFound)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "comment not found", appErr.Message)
}
