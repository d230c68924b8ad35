// Package timer implements the between-sets rest timer: it counts up one
// second per tick from 0 and stops by itself at the limit.
package timer

import (
	"math"
	"sync"
	"time"
)

// DefaultLimit is the rest period in seconds.
const DefaultLimit = 90

// Snapshot is the timer's observable state.
type Snapshot struct {
	Active  bool `json:"active"`
	Seconds int  `json:"seconds"`
	Limit   int  `json:"limit"`
	Percent int  `json:"percent"`
}

// Rest is a one-shot count-up timer. The zero value is not usable; use New.
type Rest struct {
	limit int
	tick  time.Duration

	mu     sync.Mutex
	active bool
	secs   int
	stop   chan struct{}
}

// Option configures a Rest timer.
type Option func(*Rest)

// WithTick overrides the one-second tick, for tests.
func WithTick(d time.Duration) Option {
	return func(r *Rest) { r.tick = d }
}

// New returns a stopped timer that runs up to limit seconds. A
// non-positive limit uses DefaultLimit.
func New(limit int, opts ...Option) *Rest {
	if limit <= 0 {
		limit = DefaultLimit
	}
	r := &Rest{limit: limit, tick: time.Second}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start restarts the count from zero.
func (r *Rest) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.haltLocked()
	r.secs = 0
	r.active = true
	r.stop = make(chan struct{})
	go r.run(r.stop)
}

// Stop pauses the timer, keeping the elapsed seconds.
func (r *Rest) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.haltLocked()
}

// Reset stops the timer and clears the elapsed seconds.
func (r *Rest) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.haltLocked()
	r.secs = 0
}

// Snapshot returns the current state.
func (r *Rest) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Active:  r.active,
		Seconds: r.secs,
		Limit:   r.limit,
		Percent: int(math.Round(float64(r.secs) / float64(r.limit) * 100)),
	}
}

func (r *Rest) haltLocked() {
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
	r.active = false
}

func (r *Rest) run(stop chan struct{}) {
	t := time.NewTicker(r.tick)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			r.mu.Lock()
			if r.stop != stop {
				r.mu.Unlock()
				return
			}
			r.secs = min(r.secs+1, r.limit)
			if r.secs >= r.limit {
				r.haltLocked()
				r.mu.Unlock()
				return
			}
			r.mu.Unlock()
		}
	}
}
