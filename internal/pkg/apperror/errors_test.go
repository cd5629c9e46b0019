package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrReservationNotFound))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("get reservation %s: %w", "abc", ErrReservationNotFound)))
	assert.Equal(t, KindInsufficientBalance, KindOf(ErrInsufficientBalance))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrap_KeepsBothMatchable(t *testing.T) {
	err := Wrap(ErrPaymentProcessing, fmt.Errorf("withdraw: %w", ErrInsufficientBalance))

	assert.ErrorIs(t, err, ErrPaymentProcessing)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, KindProcessingFailure, KindOf(err))
	assert.Equal(t, "payment processing failed", PublicMessage(err))
}

func TestWrap_NilCause(t *testing.T) {
	assert.Same(t, ErrNotificationFailed, Wrap(ErrNotificationFailed, nil))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("pq: relation does not exist")))
	assert.Equal(t, "wallet not found: user 42", PublicMessage(fmt.Errorf("%w: user 42", ErrWalletNotFound)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "StateConflict", KindStateConflict.String())
	assert.Equal(t, "Internal", Kind(99).String())
}
