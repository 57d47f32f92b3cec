package editor

import (
	"context"
	"sync"
	"time"
)

// SaveFunc persists one snapshot. The autosave controller never runs two
// saves concurrently.
type SaveFunc func(ctx context.Context, snap Snapshot) error

// Autosave debounces session mutations into persistence calls. Every dirty
// mutation resets the timer, so a burst of edits collapses into a single
// save carrying the state at fire time. Edits that land while a save is in
// flight start a fresh debounce cycle once it completes. A failed save
// leaves the session dirty but does not rearm the timer; the retry rides
// the next edit, Flush or Close.
type Autosave struct {
	session  *Session
	save     SaveFunc
	debounce time.Duration
	onStatus func(SaveState)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	// runMu serializes save execution; Close takes it to drain an
	// in-flight save before the final flush.
	runMu sync.Mutex
}

// NewAutosave wires the controller to the session's dirty notifications.
// onStatus, if non-nil, is called after every save attempt with the
// resulting state; it runs on the save goroutine.
func NewAutosave(session *Session, save SaveFunc, debounce time.Duration, onStatus func(SaveState)) *Autosave {
	a := &Autosave{
		session:  session,
		save:     save,
		debounce: debounce,
		onStatus: onStatus,
	}
	session.OnDirty(a.schedule)
	return a
}

// schedule arms the debounce timer, resetting it if already armed.
func (a *Autosave) schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.debounce, a.fire)
}

func (a *Autosave) fire() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	a.runOnce(context.Background())
}

// runOnce performs at most one save and reschedules when edits arrived
// mid-save.
func (a *Autosave) runOnce(ctx context.Context) {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	snap, ok := a.session.BeginSave()
	if !ok {
		return
	}
	err := a.save(ctx, snap)
	a.session.EndSave(err)

	after := a.session.Snapshot()
	if a.onStatus != nil {
		a.onStatus(after.SaveState)
	}
	// Only edits that arrived mid-save earn a follow-up. A failure also
	// leaves the session dirty, but looping the timer against a down
	// database buys nothing; the next edit reschedules anyway.
	if err == nil && after.IsDirty {
		a.schedule()
	}
}

// Flush persists dirty state immediately, bypassing the timer.
func (a *Autosave) Flush(ctx context.Context) {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.runOnce(ctx)
}

// Close stops the timer, waits out any in-flight save and flushes whatever
// is still dirty. The session must not be mutated after Close.
func (a *Autosave) Close(ctx context.Context) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	a.runMu.Lock()
	defer a.runMu.Unlock()
	if snap, ok := a.session.BeginSave(); ok {
		a.session.EndSave(a.save(ctx, snap))
		if a.onStatus != nil {
			a.onStatus(a.session.Snapshot().SaveState)
		}
	}
}
