// Package capi is the foreign boundary behind the C exports: façade
// objects held as opaque handles, an iterator-stepping protocol, and a
// per-thread last-error slot. No internal failure crosses the boundary;
// fallible operations return the null handle and record a message for the
// calling thread instead.
//
// Functions that take a handle require it to be valid and non-null unless
// stated otherwise. Violating that is a caller bug, not a recoverable
// error.
package capi

import (
	"runtime/cgo"

	"github.com/zonotope/battery"
)

// Handle is an opaque reference to a façade object. The zero Handle is
// the null handle.
type Handle uintptr

// newManager is swapped by tests to simulate backend construction failure.
var newManager = func() (*battery.Manager, error) {
	return battery.NewManager()
}

// ManagerNew constructs a Manager. It returns the null handle on failure
// and records the error for the calling thread.
func ManagerNew(thread ThreadID) Handle {
	manager, err := newManager()
	if err != nil {
		lastErrors.set(thread, err)
		return 0
	}

	return Handle(cgo.NewHandle(manager))
}

// ManagerIter starts an enumeration of the manager's batteries. It
// returns the null handle on failure and records the error for the
// calling thread.
func ManagerIter(thread ThreadID, manager Handle) Handle {
	m := cgo.Handle(manager).Value().(*battery.Manager)

	batteries, err := m.Batteries()
	if err != nil {
		lastErrors.set(thread, err)
		return 0
	}

	return Handle(cgo.NewHandle(batteries))
}

// IteratorNext steps the iterator. It returns a battery handle owned by
// the caller, or the null handle at end of sequence. A per-device failure
// also returns the null handle but records an error for the calling
// thread; the iterator stays usable.
func IteratorNext(thread ThreadID, iterator Handle) Handle {
	it := cgo.Handle(iterator).Value().(*battery.Batteries)

	bat, err := it.Next()
	if err == battery.Done {
		return 0
	}
	if err != nil {
		lastErrors.set(thread, err)
		return 0
	}

	return Handle(cgo.NewHandle(bat))
}

// BatteryRefresh re-reads the battery's values. It reports false on
// failure and records the error for the calling thread.
func BatteryRefresh(thread ThreadID, handle Handle) bool {
	bat := BatteryValue(handle)
	if err := bat.Refresh(); err != nil {
		lastErrors.set(thread, err)
		return false
	}

	return true
}

// BatteryValue resolves a battery handle for field access.
func BatteryValue(handle Handle) *battery.Battery {
	return cgo.Handle(handle).Value().(*battery.Battery)
}

// Free releases a handle of any boundary type, exactly once. Freeing the
// null handle is a no-op; freeing a once-valid handle twice is a caller
// bug.
func Free(handle Handle) {
	if handle == 0 {
		return
	}

	cgo.Handle(handle).Delete()
}
