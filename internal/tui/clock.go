package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/showcase/internal/carousel"
)

// timerMsg delivers a due timer to the event loop.
type timerMsg struct {
	timer *loopTimer
}

// loopClock is a carousel.Clock whose callbacks run inside Update, so the
// carousel and the strip are only touched from the event loop goroutine.
type loopClock struct {
	ctx    context.Context
	events chan<- tea.Msg
}

type loopTimer struct {
	f       func()
	stopped bool // only touched on the event loop
	done    chan struct{}
	once    sync.Once
}

// Stop implements carousel.Timer.
func (t *loopTimer) Stop() {
	t.stopped = true
	t.once.Do(func() { close(t.done) })
}

// fire runs the callback unless the timer was stopped after the message
// was queued.
func (t *loopTimer) fire() {
	if !t.stopped {
		t.f()
	}
}

// Every implements carousel.Clock.
func (c *loopClock) Every(d time.Duration, f func()) carousel.Timer {
	t := &loopTimer{f: f, done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				if !c.post(t) {
					return
				}
			}
		}
	}()
	return t
}

// AfterFunc implements carousel.Clock.
func (c *loopClock) AfterFunc(d time.Duration, f func()) carousel.Timer {
	t := &loopTimer{f: f, done: make(chan struct{})}
	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-t.done:
		case <-c.ctx.Done():
		case <-timer.C:
			c.post(t)
		}
	}()
	return t
}

func (c *loopClock) post(t *loopTimer) bool {
	select {
	case c.events <- timerMsg{timer: t}:
		return true
	case <-t.done:
		return false
	case <-c.ctx.Done():
		return false
	}
}

// listen waits for the next message posted from a background goroutine.
func listen(ctx context.Context, events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-events:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}
