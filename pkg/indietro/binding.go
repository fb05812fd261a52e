package indietro

import (
	"sync"

	"github.com/BrandonKowalski/indietro/pkg/indietro/backstack"
)

// Binding ties one logical visible region (a dialog, an overlay, a wizard
// page) to at most one entry on the process-wide back-handler stack.
//
// The usual pattern is Push() when the region becomes visible, Remove()
// when it hides, and a deferred Close() for when the region is torn down
// while still visible:
//
//	b := indietro.NewBinding(dialog.IsVisible, func() (backstack.Outcome, error) {
//	    dialog.Hide()
//	    return backstack.Resolved, nil
//	})
//	defer b.Close()
type Binding struct {
	mu      sync.Mutex
	visible func() bool
	handler backstack.Handler
	entry   *backstack.Entry // nil when not currently pushed
}

// NewBinding creates a binding from a visibility source and a handler.
// For a region whose visibility is a plain value rather than a query,
// wrap it with Visibility. Panics if either argument is nil.
func NewBinding(visible func() bool, handler backstack.Handler) *Binding {
	if visible == nil {
		panic("indietro: NewBinding called with nil visibility source")
	}
	if handler == nil {
		panic("indietro: NewBinding called with nil handler")
	}
	return &Binding{
		visible: visible,
		handler: handler,
	}
}

// Visibility adapts a plain boolean into a visibility source.
func Visibility(visible bool) func() bool {
	return func() bool { return visible }
}

// Push creates a fresh entry wrapping the binding's handler and registers
// it on the process-wide stack. Entries are never reused across pushes.
//
// Calling Push again without an intervening Remove registers a second,
// independent entry; the binding only tracks the latest one. That is a
// caller error the stack deliberately tolerates.
func (b *Binding) Push() {
	entry := backstack.NewEntry(b.handler)

	b.mu.Lock()
	b.entry = entry
	b.mu.Unlock()

	Push(entry)
}

// Remove unregisters the currently owned entry, if any, and clears the
// local reference. No-op when nothing is pushed.
func (b *Binding) Remove() {
	b.mu.Lock()
	entry := b.entry
	b.entry = nil
	b.mu.Unlock()

	if entry == nil {
		return
	}

	Remove(entry)
}

// Close is the scope-teardown hook. If the region is still visible its
// entry is removed; if it already hid, the caller is assumed to have
// removed the entry and nothing happens. Call it from the host
// framework's unmount or dispose path.
func (b *Binding) Close() {
	if b.visible() {
		b.Remove()
	}
}
