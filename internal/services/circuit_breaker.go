package services

import (
	"errors"
	"sync"
	"time"
)

var ErrStoreUnavailable = errors.New("store circuit is open")

type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case breakerOpen:
		return "open"
	case breakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type breakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func defaultBreakerConfig() breakerConfig {
	return breakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
	}
}

// storeBreaker stops calling the store after repeated failures. Once
// ResetTimeout has passed a few trial calls are let through; enough
// successes close the circuit again, one failure reopens it.
type storeBreaker struct {
	mu                sync.Mutex
	config            breakerConfig
	state             breakerState
	failures          int
	halfOpenSuccesses int
	openedAt          time.Time
	now               func() time.Time
}

func newStoreBreaker(config breakerConfig) *storeBreaker {
	return &storeBreaker{
		config: config,
		now:    time.Now,
	}
}

// allow reports whether a store call may proceed
func (b *storeBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == breakerOpen && b.now().Sub(b.openedAt) > b.config.ResetTimeout {
		b.state = breakerHalfOpen
		b.halfOpenSuccesses = 0
	}
	return b.state != breakerOpen
}

// record feeds the outcome of a store call back into the breaker
func (b *storeBreaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		switch b.state {
		case breakerHalfOpen:
			b.halfOpenSuccesses++
			if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
				b.state = breakerClosed
				b.failures = 0
			}
		case breakerClosed:
			b.failures = 0
		}
		return
	}

	switch b.state {
	case breakerHalfOpen:
		b.open()
	case breakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.open()
		}
	}
}

func (b *storeBreaker) open() {
	b.state = breakerOpen
	b.openedAt = b.now()
	b.halfOpenSuccesses = 0
}

func (b *storeBreaker) State() breakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
