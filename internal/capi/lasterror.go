package capi

import "sync"

// ThreadID identifies the foreign calling thread. The cgo export layer
// derives it from the calling pthread; tests use synthetic values.
type ThreadID uint64

// errorRegistry is the per-thread last-error slot. Each slot is
// overwritten by every failing call made from its thread and is readable
// until then; reads never clear it. Threads only ever see errors from
// calls they made themselves.
type errorRegistry struct {
	mu       sync.Mutex
	messages map[ThreadID]string
}

var lastErrors = &errorRegistry{messages: make(map[ThreadID]string)}

func (r *errorRegistry) set(thread ThreadID, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[thread] = err.Error()
}

func (r *errorRegistry) message(thread ThreadID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messages[thread]
}

func (r *errorRegistry) drop(thread ThreadID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, thread)
}

// LastErrorMessage returns the calling thread's most recent error
// description, or the empty string when no call from that thread has
// failed. Reading does not clear the slot.
func LastErrorMessage(thread ThreadID) string {
	return lastErrors.message(thread)
}

// ReleaseThread drops the error slot of an exiting foreign thread.
func ReleaseThread(thread ThreadID) {
	lastErrors.drop(thread)
}
