package trigger

import (
	"sync"
	"sync/atomic"
	"time"
)

// Trigger is the pending start press. Presses are set by the button watcher
// or the keyboard and consumed by the state machine. A missed press is not
// an error; the user simply presses again.
type Trigger struct {
	pending  atomic.Bool
	debounce time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// New creates a trigger that ignores presses closer than debounce apart.
func New(debounce time.Duration) *Trigger {
	return &Trigger{
		debounce: debounce,
		now:      time.Now,
	}
}

// Press records a press. Returns false if it fell inside the debounce window.
func (t *Trigger) Press() bool {
	now := t.now()

	t.mu.Lock()
	if !t.last.IsZero() && now.Sub(t.last) < t.debounce {
		t.mu.Unlock()
		return false
	}
	t.last = now
	t.mu.Unlock()

	t.pending.Store(true)
	return true
}

// Consume reports whether a press is pending and clears it.
func (t *Trigger) Consume() bool {
	return t.pending.Swap(false)
}
