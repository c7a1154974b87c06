// Package watcher reports changes to the installed package database.
package watcher

import (
	"maps"
	"slices"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces bursts of file events into one callback.
// A package transaction touches many files; the callback runs once per quiet window.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	stopped  bool
	running  sync.WaitGroup
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer calling callback after window has passed without new events.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	paths := d.drain()
	d.timer = nil
	run := len(paths) > 0 && d.callback != nil && !d.stopped
	if run {
		d.running.Add(1)
	}
	d.mu.Unlock()

	if run {
		go func() {
			defer d.running.Done()
			d.callback(paths)
		}()
	}
}

// Flush runs the callback for pending paths now and waits for it to return.
// A window that already fired leaves nothing pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	paths := d.drain()
	run := len(paths) > 0 && d.callback != nil && !d.stopped
	d.mu.Unlock()

	if run {
		d.callback(paths)
	}
}

// Stop discards pending paths and waits for callbacks already started by the timer.
// No callback runs after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
	d.mu.Unlock()

	d.running.Wait()
}

// drain must be called with mu held. Paths are returned sorted.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for h := range maps.Keys(d.pending) {
		paths = append(paths, h.Value())
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}
