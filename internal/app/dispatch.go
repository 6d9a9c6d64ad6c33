package app

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Dispatcher runs blocking work off the UI thread and brings results back.
type Dispatcher interface {
	Go(func())
	Do(func())
}

type fyneDispatcher struct{}

func (fyneDispatcher) Go(f func()) { go f() }

func (fyneDispatcher) Do(f func()) { fyne.Do(f) }

// Debouncer collapses bursts of triggers into one call after delay.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules f, replacing any pending call. A zero delay calls f
// immediately on the caller's goroutine.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		f()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, f)
	d.mu.Unlock()
}

// Stop cancels the pending call and ignores later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
