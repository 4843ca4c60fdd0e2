package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 4,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	d := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = d.HalfOpenMaxReq
	}
	return c
}

// CircuitBreaker guards one upstream provider. FailureThreshold consecutive
// counted failures open it for OpenTimeout. After that it admits up to
// HalfOpenMaxReq trial calls: as many successes close it, one failure opens
// it again. Outcomes of calls admitted before the last transition are ignored.
type CircuitBreaker struct {
	mu         sync.Mutex
	cfg        CircuitBreakerConfig
	state      CircuitState
	generation uint64
	failures   int
	trials     int
	passed     int
	reopenAt   time.Time
	clock      func() time.Time
	onChange   func(from, to CircuitState)
}

// NewCircuitBreaker returns nil when the breaker is disabled; a nil breaker
// runs every call.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		state: CircuitStateClosed,
		clock: time.Now,
	}
}

// OnStateChange registers a hook run under the breaker lock on every transition.
func (b *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Do runs fn if the breaker admits it. isFailure picks the errors that count
// against the breaker; nil counts every error.
func (b *CircuitBreaker) Do(fn func() error, isFailure func(error) bool) error {
	if b == nil {
		return fn()
	}
	report, err := b.admit()
	if err != nil {
		return err
	}
	err = fn()
	report(err != nil && (isFailure == nil || isFailure(err)))
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expireOpen()
	return b.state
}

// admit reserves a call and returns the func that reports its outcome.
func (b *CircuitBreaker) admit() (func(failed bool), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.expireOpen()
	switch b.state {
	case CircuitStateOpen:
		return nil, ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.trials >= b.cfg.HalfOpenMaxReq {
			return nil, ErrCircuitOpen
		}
		b.trials++
	}

	gen := b.generation
	return func(failed bool) { b.report(gen, failed) }, nil
}

func (b *CircuitBreaker) report(gen uint64, failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.generation {
		return
	}
	switch b.state {
	case CircuitStateClosed:
		if !failed {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.moveTo(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		if failed {
			b.moveTo(CircuitStateOpen)
			return
		}
		b.passed++
		if b.passed >= b.cfg.HalfOpenMaxReq {
			b.moveTo(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) expireOpen() {
	if b.state == CircuitStateOpen && !b.clock().Before(b.reopenAt) {
		b.moveTo(CircuitStateHalfOpen)
	}
}

func (b *CircuitBreaker) moveTo(to CircuitState) {
	from := b.state
	b.state = to
	b.generation++
	b.failures, b.trials, b.passed = 0, 0, 0
	if to == CircuitStateOpen {
		b.reopenAt = b.clock().Add(b.cfg.OpenTimeout)
	}
	if b.onChange != nil && from != to {
		b.onChange(from, to)
	}
}
