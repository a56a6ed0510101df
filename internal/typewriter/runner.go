package typewriter

import (
	"context"
	"time"
)

// Runner drives a Machine on timers and reports every change of the text.
type Runner struct {
	machine *Machine
	emit    func(string)
	after   func(time.Duration) <-chan time.Time
	restart chan []string
	done    chan struct{}
}

// NewRunner prepares a runner for phrases. emit receives the visible text
// after each tick.
func NewRunner(phrases []string, emit func(string)) *Runner {
	return &Runner{
		machine: NewMachine(phrases),
		emit:    emit,
		after:   time.After,
		restart: make(chan []string),
		done:    make(chan struct{}),
	}
}

// WithTimer replaces time.After, used by tests.
func (r *Runner) WithTimer(after func(time.Duration) <-chan time.Time) *Runner {
	r.after = after
	return r
}

// Run ticks the machine until ctx is done. The first tick happens after
// InitialDelay.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	wait := r.after(InitialDelay)
	for {
		select {
		case <-ctx.Done():
			return
		case phrases := <-r.restart:
			// The pending wait is abandoned; only the new one is selected on.
			r.machine.Reset(phrases)
			r.emit("")
			wait = r.after(RestartDelay)
		case <-wait:
			text, d := r.machine.Step()
			r.emit(text)
			wait = r.after(d)
		}
	}
}

// Restart cancels the pending tick and starts over from the first of
// phrases after RestartDelay. It is a no-op once Run has returned.
func (r *Runner) Restart(phrases []string) {
	select {
	case r.restart <- phrases:
	case <-r.done:
	}
}
