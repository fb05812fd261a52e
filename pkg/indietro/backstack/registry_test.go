package backstack_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/indietro/pkg/indietro/backstack"
)

func resolved() (backstack.Outcome, error) { return backstack.Resolved, nil }

func newRegistry(fallbackCalls *int) *backstack.Registry {
	return backstack.New(backstack.Config{
		Fallback: func() {
			if fallbackCalls != nil {
				*fallbackCalls++
			}
		},
	})
}

func TestNewRequiresFallback(t *testing.T) {
	assert.Panics(t, func() {
		backstack.New(backstack.Config{})
	})
}

func TestNewEntryRequiresHandler(t *testing.T) {
	assert.Panics(t, func() {
		backstack.NewEntry(nil)
	})
}

func TestDispatchEmptyInvokesFallback(t *testing.T) {
	fallbackCalls := 0
	reg := newRegistry(&fallbackCalls)

	reg.Dispatch()

	assert.Equal(t, 1, fallbackCalls)
	assert.Equal(t, 0, reg.Len())
}

func TestDispatchResolvedRemovesEntry(t *testing.T) {
	fallbackCalls := 0
	reg := newRegistry(&fallbackCalls)

	handled := 0
	entry := backstack.NewEntry(func() (backstack.Outcome, error) {
		handled++
		return backstack.Resolved, nil
	})

	reg.Push(entry)
	reg.Dispatch()

	assert.Equal(t, 1, handled)
	assert.Equal(t, 0, reg.Len())
	assert.Zero(t, fallbackCalls, "fallback must not run when an entry was present")
}

func TestDispatchRetainedKeepsEntry(t *testing.T) {
	fallbackCalls := 0
	reg := newRegistry(&fallbackCalls)

	entry := backstack.NewEntry(func() (backstack.Outcome, error) {
		return backstack.Retained, nil
	})

	reg.Push(entry)
	reg.Dispatch()

	assert.Equal(t, 1, reg.Len())
	assert.Zero(t, fallbackCalls)
}

func TestDispatchHandlerErrorKeepsEntry(t *testing.T) {
	reg := newRegistry(nil)

	entry := backstack.NewEntry(func() (backstack.Outcome, error) {
		return backstack.Resolved, errors.New("dialog animation failed")
	})

	reg.Push(entry)
	reg.Dispatch()

	assert.Equal(t, 1, reg.Len(), "a failing handler retains its entry")
}

func TestDispatchConsultsOnlyTopEntry(t *testing.T) {
	reg := newRegistry(nil)

	var order []string
	a := backstack.NewEntry(func() (backstack.Outcome, error) {
		order = append(order, "a")
		return backstack.Resolved, nil
	})
	b := backstack.NewEntry(func() (backstack.Outcome, error) {
		order = append(order, "b")
		return backstack.Resolved, nil
	})

	reg.Push(a)
	reg.Push(b)

	reg.Dispatch()
	require.Equal(t, []string{"b"}, order, "only the most recent entry handles the signal")
	assert.Equal(t, 1, reg.Len())

	reg.Dispatch()
	assert.Equal(t, []string{"b", "a"}, order, "a is back on top after b resolved")
	assert.Equal(t, 0, reg.Len())
}

func TestRemoveMiddlePreservesOrder(t *testing.T) {
	reg := newRegistry(nil)

	var order []string
	handler := func(name string) backstack.Handler {
		return func() (backstack.Outcome, error) {
			order = append(order, name)
			return backstack.Resolved, nil
		}
	}

	a := backstack.NewEntry(handler("a"))
	b := backstack.NewEntry(handler("b"))
	c := backstack.NewEntry(handler("c"))

	reg.Push(a)
	reg.Push(b)
	reg.Push(c)
	reg.Remove(b)

	reg.Dispatch()
	reg.Dispatch()

	assert.Equal(t, []string{"c", "a"}, order)
}

func TestRemoveAbsentEntryIsNoOp(t *testing.T) {
	reg := newRegistry(nil)

	present := backstack.NewEntry(resolved)
	absent := backstack.NewEntry(resolved)

	reg.Push(present)
	reg.Remove(absent)
	assert.Equal(t, 1, reg.Len())

	reg.Remove(present)
	reg.Remove(present)
	assert.Equal(t, 0, reg.Len())
}

func TestDuplicatePushesOccupySeparateSlots(t *testing.T) {
	reg := newRegistry(nil)

	entry := backstack.NewEntry(resolved)
	reg.Push(entry)
	reg.Push(entry)
	require.Equal(t, 2, reg.Len())

	reg.Remove(entry)
	assert.Equal(t, 1, reg.Len(), "each duplicate slot needs its own removal")

	reg.Remove(entry)
	assert.Equal(t, 0, reg.Len())
}

func TestObservers(t *testing.T) {
	t.Run("FirePerMutation", func(t *testing.T) {
		pushes := 0
		removes := 0

		reg := backstack.New(backstack.Config{
			Fallback: func() {},
			OnPush:   func(*backstack.Entry) { pushes++ },
			OnRemove: func(*backstack.Entry) { removes++ },
		})

		entry := backstack.NewEntry(resolved)
		reg.Push(entry)
		reg.Remove(entry)

		assert.Equal(t, 1, pushes)
		assert.Equal(t, 1, removes)
	})

	t.Run("FireForDispatchTriggeredRemoval", func(t *testing.T) {
		removes := 0
		var removedEntry *backstack.Entry

		reg := backstack.New(backstack.Config{
			Fallback: func() {},
			OnRemove: func(e *backstack.Entry) {
				removes++
				removedEntry = e
			},
		})

		entry := backstack.NewEntry(resolved)
		reg.Push(entry)
		reg.Dispatch()

		assert.Equal(t, 1, removes)
		assert.Same(t, entry, removedEntry, "observer receives the exact entry")
	})

	t.Run("SilentForNoOpRemoval", func(t *testing.T) {
		removes := 0

		reg := backstack.New(backstack.Config{
			Fallback: func() {},
			OnRemove: func(*backstack.Entry) { removes++ },
		})

		reg.Remove(backstack.NewEntry(resolved))
		assert.Zero(t, removes)
	})
}

func TestMutationWhileHandlerBlocked(t *testing.T) {
	reg := newRegistry(nil)

	started := make(chan struct{})
	release := make(chan struct{})

	top := backstack.NewEntry(func() (backstack.Outcome, error) {
		close(started)
		<-release
		return backstack.Resolved, nil
	})
	below := backstack.NewEntry(resolved)

	reg.Push(below)
	reg.Push(top)

	done := make(chan struct{})
	go func() {
		reg.Dispatch()
		close(done)
	}()

	<-started
	assert.Equal(t, int64(1), reg.InFlight())

	// The signal is in flight; unrelated mutation removes the very entry
	// being dispatched.
	reg.Remove(top)
	assert.Equal(t, 1, reg.Len())

	close(release)
	<-done

	// Dispatch's own removal of top must be a no-op; below is untouched.
	assert.Equal(t, 1, reg.Len())
	assert.Zero(t, reg.InFlight())
}

func TestRemoveDuringDispatchFiresObserverOnce(t *testing.T) {
	removes := 0
	reg := backstack.New(backstack.Config{
		Fallback: func() {},
		OnRemove: func(*backstack.Entry) { removes++ },
	})

	var entry *backstack.Entry
	entry = backstack.NewEntry(func() (backstack.Outcome, error) {
		// The handler retracts its own entry before resolving, as an
		// overlay that hides itself does.
		reg.Remove(entry)
		return backstack.Resolved, nil
	})

	reg.Push(entry)
	reg.Dispatch()

	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 1, removes, "the post-dispatch removal is a no-op")
}

func TestClear(t *testing.T) {
	removes := 0
	reg := backstack.New(backstack.Config{
		Fallback: func() {},
		OnRemove: func(*backstack.Entry) { removes++ },
	})

	reg.Push(backstack.NewEntry(resolved))
	reg.Push(backstack.NewEntry(resolved))
	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	assert.Zero(t, removes, "Clear does not fire the removal observer")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Resolved", backstack.Resolved.String())
	assert.Equal(t, "Retained", backstack.Retained.String())
	assert.Equal(t, "Unknown", backstack.Outcome(42).String())
}
