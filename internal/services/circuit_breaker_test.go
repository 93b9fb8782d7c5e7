package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(clock *time.Time) *storeBreaker {
	b := newStoreBreaker(breakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 2})
	b.now = func() time.Time { return *clock }
	return b
}

func TestStoreBreaker_OpensAfterMaxFailures(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBreaker(&clock)
	failure := errors.New("timeout")

	assert.True(t, b.allow())
	b.record(failure)
	assert.Equal(t, breakerClosed, b.State())
	b.record(failure)
	assert.Equal(t, breakerOpen, b.State())
	assert.False(t, b.allow())
}

func TestStoreBreaker_SuccessResetsFailureCount(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBreaker(&clock)

	b.record(errors.New("timeout"))
	b.record(nil)
	b.record(errors.New("timeout"))

	assert.Equal(t, breakerClosed, b.State())
}

func TestStoreBreaker_HalfOpenRecovery(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBreaker(&clock)
	b.record(errors.New("timeout"))
	b.record(errors.New("timeout"))

	clock = clock.Add(2 * time.Minute)
	assert.True(t, b.allow())
	assert.Equal(t, breakerHalfOpen, b.State())

	b.record(nil)
	assert.Equal(t, breakerHalfOpen, b.State())
	b.record(nil)
	assert.Equal(t, breakerClosed, b.State())
	assert.Equal(t, "closed", b.State().String())
}

func TestStoreBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBreaker(&clock)
	b.record(errors.New("timeout"))
	b.record(errors.New("timeout"))

	clock = clock.Add(2 * time.Minute)
	assert.True(t, b.allow())
	b.record(errors.New("timeout"))

	assert.Equal(t, breakerOpen, b.State())
	assert.False(t, b.allow())
}
