package chart

import (
	"sync"
	"time"
)

// DefaultRedrawInterval is how often a shown chart is repainted.
const DefaultRedrawInterval = 500 * time.Millisecond

// Scheduler arms a periodic trigger. The returned stop function disarms it
// and is safe to call more than once.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func()) (stop func())

// Every calls f(d, fn).
func (f SchedulerFunc) Every(d time.Duration, fn func()) (stop func()) {
	return f(d, fn)
}

// TickerScheduler runs fn on its own goroutine from a time.Ticker.
type TickerScheduler struct{}

// Every starts a ticker that calls fn every d until stopped.
func (TickerScheduler) Every(d time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
