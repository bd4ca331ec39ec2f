package results

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationLifecycle(t *testing.T) {
	op := New(zerolog.Nop())
	assert.Equal(t, StatusPending, op.Status)
	assert.False(t, op.IsSuccess())
	assert.False(t, op.IsFailure())

	op = op.WithStatus(StatusSuccess)
	assert.True(t, op.IsSuccess())

	op = op.WithErrorMessage(CodeValidationFailed, "bad input", LevelImportant)
	assert.False(t, op.IsSuccess(), "an error entry disqualifies success regardless of status")
	assert.True(t, op.IsFailure())
}

func TestCriticalErrorForcesFailure(t *testing.T) {
	op := New(zerolog.Nop()).
		WithStatus(StatusSuccess).
		WithErrorMessage(CodeCreateFailed, "boom", LevelCritical)

	assert.Equal(t, StatusFailure, op.Status)
	assert.True(t, op.IsFailure())
}

func TestMinorErrorKeepsStatus(t *testing.T) {
	op := New(zerolog.Nop()).
		WithStatus(StatusSuccess).
		WithErrorMessage(CodeGeneralError, "cosmetic", LevelMinor)

	assert.Equal(t, StatusSuccess, op.Status)
	assert.False(t, op.IsSuccess(), "errors still disqualify success")
}

func TestWithErrorUsesCatalogMessage(t *testing.T) {
	op := New(zerolog.Nop()).WithError(CodeNotFound)

	assert.Len(t, op.Errors, 1)
	assert.Equal(t, Message(CodeNotFound), op.Errors[0].Message)
	assert.Equal(t, LevelImportant, op.Errors[0].Level)
}

func TestWithException(t *testing.T) {
	op := New(zerolog.Nop()).WithException(errors.New("disk on fire"))
	assert.Equal(t, StatusFailure, op.Status)
	assert.Equal(t, CodeGeneralError, op.FirstCode())

	unchanged := New(zerolog.Nop()).WithException(nil)
	assert.Empty(t, unchanged.Errors)
}

func TestCodeInspection(t *testing.T) {
	op := New(zerolog.Nop()).
		WithError(CodeNotFound).
		WithError(CodeDuplicate)

	assert.Equal(t, CodeNotFound, op.FirstCode())
	assert.True(t, op.HasCode(CodeDuplicate))
	assert.False(t, op.HasCode(CodeAccessDenied))

	empty := Success(zerolog.Nop())
	assert.Equal(t, Code(""), empty.FirstCode())
}

func TestOperationValuesAreIndependent(t *testing.T) {
	base := Success(zerolog.Nop())
	failed := base.WithErrorMessage(CodeDeleteFailed, "nope", LevelCritical)

	assert.True(t, base.IsSuccess(), "deriving a failure must not mutate the original value")
	assert.True(t, failed.IsFailure())
}
