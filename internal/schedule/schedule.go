// Package schedule is the overlay's cooperative timer loop: a single
// goroutine dispatching scheduled callbacks in deadline order. Callbacks
// follow timeout semantics borrowed from the GTK main loop the rendering
// shell runs on: returning true keeps the timer scheduled, false removes
// it. There is no locking: registration included, everything happens on the
// loop goroutine or before Run is called.
package schedule

import (
	"context"
	"time"
)

// Callback runs when a timer fires. Return true to stay scheduled at the
// same interval, false to drop the timer.
type Callback func() bool

type task struct {
	name     string
	interval time.Duration
	next     time.Time
	fn       Callback
}

// Loop owns a set of repeating timers.
type Loop struct {
	tasks []*task
	now   func() time.Time
}

func NewLoop() *Loop {
	return &Loop{now: time.Now}
}

// Every registers fn to run each interval, first firing one interval from
// now. Must be called before Run or from within a callback.
func (l *Loop) Every(name string, interval time.Duration, fn Callback) {
	l.at(name, l.now().Add(interval), interval, fn)
}

// Soon registers fn to run immediately on the next loop pass, then at the
// given retry interval for as long as it keeps returning true. This is the
// retry-until-ready pattern: report "not ready" by returning true.
func (l *Loop) Soon(name string, retry time.Duration, fn Callback) {
	l.at(name, l.now(), retry, fn)
}

func (l *Loop) at(name string, next time.Time, interval time.Duration, fn Callback) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	l.tasks = append(l.tasks, &task{name: name, interval: interval, next: next, fn: fn})
}

// Run dispatches timers until the context is cancelled or no timers remain.
// Cancellation simply stops issuing further callbacks; nothing in flight is
// interrupted.
func (l *Loop) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for len(l.tasks) > 0 {
		next := l.earliest()
		wait := next.next.Sub(l.now())
		if wait < 0 {
			wait = 0
		}

		timer.Reset(wait)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return
		case <-timer.C:
		}

		if next.fn() {
			next.next = l.now().Add(next.interval)
		} else {
			l.remove(next)
		}
	}
}

func (l *Loop) earliest() *task {
	best := l.tasks[0]
	for _, t := range l.tasks[1:] {
		if t.next.Before(best.next) {
			best = t
		}
	}
	return best
}

func (l *Loop) remove(target *task) {
	for i, t := range l.tasks {
		if t == target {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return
		}
	}
}
