package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindForbidden, http.StatusForbidden},
		{KindConflict, http.StatusConflict},
		{KindInvalidReference, http.StatusBadRequest},
		{KindValidation, http.StatusBadRequest},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.status, tc.kind.Status())
		})
	}
}

func TestKindOf(t *testing.T) {
	err := NotFound("food %d not found", 42)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "food 42 not found", err.Error())

	wrapped := fmt.Errorf("service call: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))

	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := Conflict("duplicate translation")
	assert.True(t, errors.Is(err, Conflict("any")))
	assert.False(t, errors.Is(err, NotFound("any")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("constraint failed")
	err := Wrap(cause, KindConflict, "allergen code exists")

	assert.Equal(t, KindConflict, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "allergen code exists")
}
