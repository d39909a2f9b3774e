package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapGenericErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.False(t, IsNotFoundError(ErrEmailExists))

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrTaskNotFound))
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(fmt.Errorf("failed to delete task: %w", ErrTaskNotFound)))
	assert.True(t, IsDuplicateError(fmt.Errorf("failed to create user: %w", ErrEmailExists)))
	assert.False(t, IsNotFoundError(nil))
}
