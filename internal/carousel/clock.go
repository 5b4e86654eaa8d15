package carousel

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable timer handle returned by a Clock.
//
// Stop must be safe to call more than once. A callback that is already
// running when Stop is called may still complete; the carousel guards
// against such late callbacks itself.
type Timer interface {
	Stop()
}

// Clock arms timers. It exists so hosts can decide where callbacks run (a
// goroutine, a UI event loop) and so tests can drive time explicitly.
type Clock interface {
	// Every calls f repeatedly, once per period d, until the timer is stopped.
	Every(d time.Duration, f func()) Timer

	// AfterFunc calls f once after d unless the timer is stopped first.
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock runs callbacks on their own goroutines using the time package.
type RealClock struct{}

// Every implements Clock.
func (RealClock) Every(d time.Duration, f func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

// AfterFunc implements Clock.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return stdTimer{time.AfterFunc(d, f)}
}

type stdTimer struct {
	t *time.Timer
}

func (s stdTimer) Stop() { s.t.Stop() }

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) run(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			f()
		}
	}
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// ManualClock is a Clock whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance, in due order.
//
// Example:
//
//	clock := NewManualClock()
//	c, _ := New(container, WithClock(clock), WithAutoPlayInterval(time.Second))
//	c.StartAutoPlay()
//	clock.Advance(time.Second) // one tick, one Next()
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

// NewManualClock returns a ManualClock positioned at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

type manualTimer struct {
	clock   *ManualClock
	due     time.Duration
	period  time.Duration
	seq     int
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
	t.clock.removeLocked(t)
}

// Every implements Clock.
func (c *ManualClock) Every(d time.Duration, f func()) Timer {
	return c.add(d, d, f)
}

// AfterFunc implements Clock.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	return c.add(d, 0, f)
}

func (c *ManualClock) add(d, period time.Duration, f func()) *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, due: c.now + d, period: period, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *ManualClock) removeLocked(t *manualTimer) {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, firing every timer that becomes due.
// Repeating timers fire once per elapsed period.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		next := c.nextDueLocked(target)
		if next == nil {
			break
		}
		c.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			c.removeLocked(next)
		}
		f := next.f
		c.mu.Unlock()
		f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

func (c *ManualClock) nextDueLocked(target time.Duration) *manualTimer {
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due == c.timers[j].due {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].due < c.timers[j].due
	})
	for _, t := range c.timers {
		if !t.stopped && t.due <= target {
			return t
		}
	}
	return nil
}

// Pending returns the number of armed timers.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
