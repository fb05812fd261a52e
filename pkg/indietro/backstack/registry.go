package backstack

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// Config configures a Registry.
type Config struct {
	// Fallback runs when a back signal arrives and the stack is empty.
	// Required.
	Fallback func()

	// OnPush is invoked after each push with the pushed entry. Optional.
	OnPush func(*Entry)

	// OnRemove is invoked after each removal with the removed entry,
	// including removals triggered by Dispatch. It does not fire when a
	// removal turns out to be a no-op. Optional.
	OnRemove func(*Entry)

	// Logger receives registry diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Registry owns the ordered stack of back-signal handler entries.
// The most recently pushed entry is dispatched first.
//
// All methods are safe for concurrent use. Dispatch invokes the top
// handler outside the registry lock, so the stack may be mutated while a
// handler blocks; removal is by identity, which makes a concurrent
// double-remove a harmless no-op.
type Registry struct {
	mu      sync.Mutex
	entries []*Entry

	fallback func()
	onPush   func(*Entry)
	onRemove func(*Entry)

	log      *slog.Logger
	inFlight atomic.Int64
}

// New creates a Registry. Panics if cfg.Fallback is nil.
func New(cfg Config) *Registry {
	if cfg.Fallback == nil {
		panic("backstack: Config.Fallback is required")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Registry{
		entries:  make([]*Entry, 0),
		fallback: cfg.Fallback,
		onPush:   cfg.OnPush,
		onRemove: cfg.OnRemove,
		log:      log,
	}
}

// Push appends entry to the top of the stack. No uniqueness check is
// performed: pushing an entry that is already present creates a second
// slot that must be removed separately.
func (r *Registry) Push(entry *Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	depth := len(r.entries)
	r.mu.Unlock()

	r.log.Debug("back handler pushed", "depth", depth)

	if r.onPush != nil {
		r.onPush(entry)
	}
}

// Remove removes the first occurrence of entry, scanning from the bottom
// of the stack. Order among the remaining entries is preserved. Removing
// an entry that is not on the stack is a no-op and does not fire OnRemove.
func (r *Registry) Remove(entry *Entry) {
	r.mu.Lock()
	removed := false
	for i, e := range r.entries {
		if e == entry {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			removed = true
			break
		}
	}
	depth := len(r.entries)
	r.mu.Unlock()

	if !removed {
		return
	}

	r.log.Debug("back handler removed", "depth", depth)

	if r.onRemove != nil {
		r.onRemove(entry)
	}
}

// Dispatch processes one back signal.
//
// With a non-empty stack the top entry's handler runs; Resolved removes the
// entry through the same path as Remove (so OnRemove fires), Retained or a
// handler error keeps it. The error is logged and swallowed. With an empty
// stack the fallback runs instead, exactly once. Dispatch never reports
// failure to its caller.
//
// Nothing serializes overlapping Dispatch calls. A second signal arriving
// while the first handler is still blocked starts an independent cycle
// against whatever the top of the stack is at that moment.
func (r *Registry) Dispatch() {
	r.inFlight.Inc()
	defer r.inFlight.Dec()

	r.mu.Lock()
	if len(r.entries) == 0 {
		r.mu.Unlock()
		r.log.Debug("back signal with empty stack, running fallback")
		r.fallback()
		return
	}
	top := r.entries[len(r.entries)-1]
	r.mu.Unlock()

	outcome, err := top.handler()
	if err != nil {
		r.log.Debug("back handler failed, retaining entry", "error", err)
		return
	}
	if outcome == Retained {
		return
	}

	r.Remove(top)
}

// Len returns the number of entries on the stack.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear removes all entries without firing OnRemove.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
}

// InFlight returns the number of Dispatch calls currently awaiting a
// handler. Diagnostic only.
func (r *Registry) InFlight() int64 {
	return r.inFlight.Load()
}
