package feed

import (
	"sync"
	"time"
)

// Window suppresses re-processing of an order id seen within the last TTL.
// First-seen wins: a repeated arrival inside the window neither passes nor
// renews the entry. Expiry is driven by one rescheduled timer over an
// id -> expiry-instant map, so resource usage stays bounded under load.
type Window struct {
	mu    sync.Mutex
	ttl   time.Duration
	seen  map[int64]time.Time
	timer *time.Timer
	now   func() time.Time
}

const DefaultWindow = 5 * time.Second

func NewWindow(ttl time.Duration) *Window {
	if ttl <= 0 {
		ttl = DefaultWindow
	}
	return &Window{
		ttl:  ttl,
		seen: make(map[int64]time.Time),
		now:  time.Now,
	}
}

// ShouldProcess reports whether the id has not been seen within the window,
// recording it as seen when so.
func (w *Window) ShouldProcess(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	if expiry, ok := w.seen[id]; ok && expiry.After(now) {
		return false
	}

	w.seen[id] = now.Add(w.ttl)
	w.scheduleLocked(now)
	return true
}

// Stop cancels the expiry timer. Pending entries are discarded.
func (w *Window) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.seen = make(map[int64]time.Time)
}

func (w *Window) scheduleLocked(now time.Time) {
	if w.timer != nil {
		return
	}

	earliest, ok := w.earliestLocked()
	if !ok {
		return
	}

	w.timer = time.AfterFunc(earliest.Sub(now), w.sweep)
}

func (w *Window) sweep() {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	for id, expiry := range w.seen {
		if !expiry.After(now) {
			delete(w.seen, id)
		}
	}

	w.timer = nil
	w.scheduleLocked(now)
}

func (w *Window) earliestLocked() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, expiry := range w.seen {
		if !found || expiry.Before(earliest) {
			earliest = expiry
			found = true
		}
	}
	return earliest, found
}
