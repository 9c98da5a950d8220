package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_MessageAndCause(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	err := NewCustomError(ErrStudentHasRelations, "Cannot delete student").WithCause(cause)

	assert.Equal(t, "Cannot delete student: FOREIGN KEY constraint failed", err.Error())
	assert.ErrorIs(t, err, ErrStudentHasRelations)
	assert.ErrorIs(t, err, cause)
}

func TestCustomError_FallsBackToSentinel(t *testing.T) {
	err := NewCustomError(ErrCourseNotFound, "")
	assert.Equal(t, "course not found", err.Error())

	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestConstructors(t *testing.T) {
	assert.ErrorIs(t, NewResourceNotFoundError("missing"), ErrResourceNotFound)
	assert.ErrorIs(t, NewConflictError("busy"), ErrConflict)
	assert.ErrorIs(t, NewValidationError("bad"), ErrValidationFailed)
	assert.EqualError(t, NewValidationError("first name is required"), "first name is required")
}

func TestIs(t *testing.T) {
	err := NewCustomError(ErrAlreadyEnrolled, "duplicate")

	assert.True(t, Is(err, ErrConflict, ErrAlreadyEnrolled))
	assert.False(t, Is(err, ErrConflict, ErrCourseNotFound))
}
