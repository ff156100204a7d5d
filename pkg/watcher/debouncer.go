package watcher

import (
	"context"
	"time"
)

// Debouncer batches rapid change events so a build appending thousands of
// lines triggers one regeneration, not one per write.
type Debouncer struct {
	input       <-chan ChangeEvent
	output      chan ChangeEvent
	quietPeriod time.Duration
	maxWait     time.Duration
}

// NewDebouncer creates a debouncer over input. An event is released after
// quietPeriod without further events, or after maxWait regardless.
func NewDebouncer(input <-chan ChangeEvent, quietPeriod, maxWait time.Duration) *Debouncer {
	return &Debouncer{
		input:       input,
		output:      make(chan ChangeEvent, 10),
		quietPeriod: quietPeriod,
		maxWait:     maxWait,
	}
}

// Events returns the debounced event channel.
func (d *Debouncer) Events() <-chan ChangeEvent {
	return d.output
}

// Start begins processing events with debouncing
func (d *Debouncer) Start(ctx context.Context) {
	go d.run(ctx)
}

func (d *Debouncer) run(ctx context.Context) {
	defer close(d.output)

	var (
		pending      *ChangeEvent
		quietTimer   *time.Timer
		maxWaitTimer *time.Timer
	)
	quietC := func() <-chan time.Time {
		if quietTimer == nil {
			return nil
		}
		return quietTimer.C
	}
	maxC := func() <-chan time.Time {
		if maxWaitTimer == nil {
			return nil
		}
		return maxWaitTimer.C
	}

	flush := func() {
		if pending == nil {
			return
		}
		select {
		case d.output <- *pending:
		case <-ctx.Done():
		}
		pending = nil
		if quietTimer != nil {
			quietTimer.Stop()
			quietTimer = nil
		}
		if maxWaitTimer != nil {
			maxWaitTimer.Stop()
			maxWaitTimer = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-d.input:
			if !ok {
				flush()
				return
			}
			pending = &ev
			if quietTimer == nil {
				quietTimer = time.NewTimer(d.quietPeriod)
			} else {
				quietTimer.Stop()
				quietTimer.Reset(d.quietPeriod)
			}
			if maxWaitTimer == nil {
				maxWaitTimer = time.NewTimer(d.maxWait)
			}

		case <-quietC():
			quietTimer = nil
			flush()

		case <-maxC():
			maxWaitTimer = nil
			flush()
		}
	}
}
