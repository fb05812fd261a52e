package backstack

// Outcome reports what a handler did with a back signal.
type Outcome int

const (
	// Resolved means the handler consumed the signal and its entry should
	// be removed from the stack. This is the zero value, so a handler that
	// has nothing special to report resolves by default.
	Resolved Outcome = iota

	// Retained means the handler wants to keep its slot on the stack,
	// typically because it stepped backward through internal state and
	// still has more to unwind.
	Retained
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "Resolved"
	case Retained:
		return "Retained"
	default:
		return "Unknown"
	}
}

// Handler processes one back signal for its entry. It may block while the
// owning layer animates, confirms with the user, or otherwise decides. A
// non-nil error retains the entry regardless of the returned Outcome.
type Handler func() (Outcome, error)

// Entry is one registered interest in intercepting the next back signal.
// Entries are compared by identity: two entries wrapping the same handler
// function are distinct stack slots.
type Entry struct {
	handler Handler
}

// NewEntry creates an entry for the given handler.
// Panics if handler is nil.
func NewEntry(handler Handler) *Entry {
	if handler == nil {
		panic("backstack: NewEntry called with nil handler")
	}
	return &Entry{handler: handler}
}
