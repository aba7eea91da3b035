package clients

import (
	"sync"
	"time"
)

// State is the breaker position.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen rejects calls until the cooldown elapses.
	StateOpen
	// StateHalfOpen lets a single probe through.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a Breaker.
type BreakerConfig struct {
	// MaxFailures is the run of consecutive failures that opens the breaker.
	MaxFailures int
	// Cooldown is how long the breaker stays open before probing.
	Cooldown time.Duration
}

// Breaker stops calls to a provider that keeps failing so callers reach their
// fallback without waiting out a timeout each time.
//
//	closed --MaxFailures--> open --Cooldown--> half-open --success--> closed
//	                          ^                    |
//	                          +------failure-------+
type Breaker struct {
	mu       sync.Mutex
	cfg      BreakerConfig
	state    State
	failures int
	openedAt time.Time
	probing  bool
	onChange func(from, to State)
	now      func() time.Time
}

// NewBreaker returns a closed breaker.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	return &Breaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition. fn runs on its own goroutine.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Allow reports whether a call may proceed. Every allowed call must be
// followed by Success or Failure.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			return false
		}

		b.setState(StateHalfOpen)
		b.probing = true

		return true
	default:
		if b.probing {
			return false
		}

		b.probing = true

		return true
	}
}

// Success records a completed call.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.probing = false

	if b.state == StateHalfOpen {
		b.setState(StateClosed)
	}
}

// Failure records a failed call.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probing = false

	switch b.state {
	case StateHalfOpen:
		b.trip()
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.MaxFailures {
			b.trip()
		}
	}
}

// State returns the current position.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

func (b *Breaker) trip() {
	b.openedAt = b.now()
	b.failures = 0
	b.setState(StateOpen)
}

// setState must be called with mu held.
func (b *Breaker) setState(to State) {
	from := b.state
	if from == to {
		return
	}

	b.state = to

	if b.onChange != nil {
		go b.onChange(from, to)
	}
}
