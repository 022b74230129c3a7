package halftone

import (
	"fmt"
	"sync"
)

// Ticket identifies one request for a target. A ticket is current until a
// newer one is issued for the same target or the target is reset.
type Ticket struct {
	Target     string
	Generation uint64
}

// String returns "target#generation".
func (t Ticket) String() string {
	return fmt.Sprintf("%s#%d", t.Target, t.Generation)
}

// Tracker suppresses stale results. Each Begin supersedes every earlier
// ticket for the same target, so a slow render that finishes after the user
// moved on is rejected by Accept instead of overwriting newer output.
//
// Thread safety: All methods are safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	gens map[string]uint64
	next uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{gens: make(map[string]uint64)}
}

// Begin issues a new current ticket for target.
func (t *Tracker) Begin(target string) Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.gens[target] = t.next
	return Ticket{Target: target, Generation: t.next}
}

// Accept reports whether tk is still the newest ticket for its target.
func (t *Tracker) Accept(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	gen, ok := t.gens[tk.Target]
	return ok && gen == tk.Generation
}

// Reset forgets target, rejecting all of its outstanding tickets.
func (t *Tracker) Reset(target string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.gens, target)
}
