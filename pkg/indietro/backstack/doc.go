// Package backstack implements the back-signal handler stack.
//
// A Registry owns an ordered stack of handler entries. Transient UI layers
// (dialogs, overlays, wizards) push an entry while they are visible; when a
// back signal arrives, Dispatch consults only the most recently pushed entry
// and asks it whether it consumed the signal. The fallback configured at
// construction time runs only when the stack is empty.
//
// # Basic Usage
//
//	reg := backstack.New(backstack.Config{
//	    Fallback: func() {
//	        // No layer claimed the signal: leave the screen, exit, etc.
//	        exitApp()
//	    },
//	})
//
//	entry := backstack.NewEntry(func() (backstack.Outcome, error) {
//	    dialog.Hide()
//	    return backstack.Resolved, nil
//	})
//
//	reg.Push(entry)   // dialog opened
//	reg.Dispatch()    // back pressed: dialog handler runs, entry popped
//	reg.Dispatch()    // back pressed again: stack empty, fallback runs
//
// # Resolve vs Retain
//
// A handler returns Resolved when it fully consumed the signal and its entry
// should leave the stack, or Retained when it wants to stay registered. A
// wizard stepping backward through internal pages returns Retained until it
// is on its first page, all from a single registration.
//
// A handler error also retains the entry. The registry swallows the error:
// one malfunctioning overlay must not take down the back-signal pipeline,
// and the handler itself is the only place with enough context to report
// its failure.
//
// # Ordering
//
// Entries are compared by identity. Pushing the same entry twice creates two
// slots that must each be removed individually. Removing an entry that is
// not on the stack is a no-op; this makes it safe for a teardown-triggered
// removal to race a manual one.
package backstack
