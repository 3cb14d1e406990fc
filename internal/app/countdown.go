package app

import (
	"sync"
	"time"
)

// Scheduler runs fn every interval until the returned cancel func is called.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler backs each schedule with its own time.Ticker goroutine.
type TickerScheduler struct{}

func NewTickerScheduler() TickerScheduler {
	return TickerScheduler{}
}

func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}

// countdown is the handle of one scheduled timer owned by a session.
// Ticks delivered through a handle that is no longer the session's current one are ignored.
type countdown struct {
	remaining int
	cancel    func()
}

func (c *countdown) stop() {
	if c != nil && c.cancel != nil {
		c.cancel()
	}
}
