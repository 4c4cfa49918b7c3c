package errors_test

import (
	"errors"
	"testing"

	apperrors "github.com/getmentor/readme-generator/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestInvalidInputError(t *testing.T) {
	err := apperrors.InvalidInputError("name", "Name must be at least 2 characters")

	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, "name: Name must be at least 2 characters: invalid input", err.Error())
}

func TestUnknownFieldError(t *testing.T) {
	err := apperrors.UnknownFieldError("avatar")

	assert.True(t, apperrors.Is(err, apperrors.ErrUnknownField))
	assert.Contains(t, err.Error(), `"avatar"`)
}

func TestInternalError(t *testing.T) {
	cause := errors.New("template: boom")

	err := apperrors.InternalError("failed to generate README", cause)
	assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
	assert.True(t, errors.Is(err, cause))

	bare := apperrors.InternalError("failed", nil)
	assert.True(t, apperrors.Is(bare, apperrors.ErrInternal))
	assert.Equal(t, "failed: internal error", bare.Error())
}
