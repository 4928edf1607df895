// Package clicks counts keyboard and mouse presses reported by the input
// source. Counts are read by the sampling loop for the menu and journal.
package clicks

import "sync"

// Counter is a pair of press counters safe for concurrent use.
type Counter struct {
	mu       sync.RWMutex
	keyboard int
	mouse    int
}

// NewCounter creates a zeroed Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// IncrementKeyboard records one key press.
func (c *Counter) IncrementKeyboard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyboard++
}

// IncrementMouse records one mouse button press.
func (c *Counter) IncrementMouse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouse++
}

// Counts returns both counters as one consistent pair.
func (c *Counter) Counts() (keyboard, mouse int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyboard, c.mouse
}

// Reset zeroes both counters.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyboard = 0
	c.mouse = 0
}
