package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func newTestBreaker(now *time.Time) *CircuitBreaker {
	cb := New(Config{
		Name:             "email",
		Interval:         time.Minute,
		Timeout:          10 * time.Second,
		FailureThreshold: 2,
	}, logger.NewNop())
	cb.now = func() time.Time { return *now }
	cb.expiry = now.Add(time.Minute)
	return cb
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	boom := errors.New("bad gateway")
	fail := func(ctx context.Context) error { return boom }

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), boom)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), fail), boom)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	var transitions []State
	cb.config.OnStateChange = func(name string, from, to State) {
		transitions = append(transitions, to)
	}
	fail := func(ctx context.Context) error { return errors.New("timeout") }

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(11 * time.Second)
	err := cb.Execute(context.Background(), func(ctx context.Context) error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	fail := func(ctx context.Context) error { return errors.New("connection reset") }

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	now = now.Add(11 * time.Second)
	_ = cb.Execute(context.Background(), fail)

	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), fail), ErrCircuitBreakerOpen)
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	notCounted := errors.New("invalid recipient")
	cb.config.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, notCounted) }

	for i := 0; i < 5; i++ {
		_ = cb.Execute(context.Background(), func(ctx context.Context) error { return notCounted })
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(5), cb.Counts().TotalSuccesses)
}
