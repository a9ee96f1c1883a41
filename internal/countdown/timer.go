package countdown

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the refresh period of a countdown display.
const DefaultInterval = time.Second

// ErrNilTickFunc is returned when a timer is started without a callback.
var ErrNilTickFunc = errors.New("countdown: tick func is nil")

// TickFunc receives every computed countdown value.
type TickFunc func(Remaining)

// Timer recomputes the countdown on a fixed interval and hands each value to
// its TickFunc. It emits once on start and stops on its own after emitting
// the zero value.
type Timer struct {
	target   time.Time
	interval time.Duration
	clock    Clock
	onTick   TickFunc

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	ticks    atomic.Int64
}

// Start launches a timer. A non-positive interval falls back to
// DefaultInterval and a nil clock to SystemClock.
func Start(ctx context.Context, target time.Time, interval time.Duration, clock Clock, onTick TickFunc) (*Timer, error) {
	if onTick == nil {
		return nil, ErrNilTickFunc
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Timer{
		target:   target,
		interval: interval,
		clock:    clock,
		onTick:   onTick,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go t.run(ctx)

	return t, nil
}

func (t *Timer) run(ctx context.Context) {
	defer close(t.done)

	if t.emit(ctx) {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if t.emit(ctx) {
				return
			}
		}
	}
}

// emit delivers the current value and reports whether the loop should end.
func (t *Timer) emit(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}

	remaining := Compute(t.target, t.clock.Now())
	t.ticks.Add(1)
	t.onTick(remaining)

	return remaining.IsZero()
}

// Stop ends the loop and waits for it to exit. No tick is delivered after
// Stop returns. Calling it more than once is safe.
func (t *Timer) Stop() {
	t.stopOnce.Do(t.cancel)
	<-t.done
}

// Done is closed once the loop has exited.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}

// Ticks returns how many values have been delivered so far.
func (t *Timer) Ticks() int64 {
	return t.ticks.Load()
}
