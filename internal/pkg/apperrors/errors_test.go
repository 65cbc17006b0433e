package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/shopstore/internal/pkg/apperrors"
)

func TestKindOf(t *testing.T) {
	err := apperrors.New(apperrors.KindNotFound, "user not found")

	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsDuplicate(err))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, apperrors.Kind(""), apperrors.KindOf(errors.New("plain")))
	assert.False(t, apperrors.IsStorage(errors.New("plain")))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := apperrors.Wrap(apperrors.KindStorage, "failed to write", cause)

	assert.True(t, apperrors.IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	sentinel := apperrors.New(apperrors.KindDuplicate, "email already registered")
	wrapped := fmt.Errorf("register: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.True(t, apperrors.IsDuplicate(wrapped))
}

func TestIs_DistinguishesMessages(t *testing.T) {
	a := apperrors.New(apperrors.KindDuplicate, "email already registered")
	b := apperrors.New(apperrors.KindDuplicate, "order number taken")

	assert.False(t, errors.Is(a, b))
}
