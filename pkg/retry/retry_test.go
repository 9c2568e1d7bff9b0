package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Constant(func() error {
		calls++
		return nil
	}, time.Millisecond, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestConstantRecoversWithinBudget(t *testing.T) {
	calls := 0
	err := Constant(func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, time.Millisecond, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestConstantExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("persistent")
	calls := 0
	err := Constant(func() error {
		calls++
		return sentinel
	}, time.Millisecond, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "failed after 2 attempts")
	assert.Equal(t, 2, calls)
}

func TestConstantCoercesZeroAttempts(t *testing.T) {
	calls := 0
	err := Constant(func() error {
		calls++
		return errors.New("nope")
	}, time.Millisecond, 0)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestExponentialRequiresInterval(t *testing.T) {
	err := Exponential(func() error { return nil }, ExponentialConfig{})
	assert.Error(t, err)
}

func TestExponentialRecovers(t *testing.T) {
	calls := 0
	retries := 0
	err := Exponential(func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, ExponentialConfig{
		InitialInterval: time.Millisecond,
		OnRetry:         func(error, time.Duration) { retries++ },
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retries)
}

func TestExponentialGivesUpAfterBudget(t *testing.T) {
	err := Exponential(func() error {
		return errors.New("persistent")
	}, ExponentialConfig{
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  20 * time.Millisecond,
	})

	assert.Error(t, err)
}
