// Package state holds the shared status cell: one writer (the ingestor),
// many read-only subscribers (the fan-out views).
package state

import (
	"sync"

	"github.com/genricoloni/foxbridge/internal/domain"
)

// Cell is the single shared status value for one configured player.
//
// Set/Clear swap the snapshot and notify subscribers under one lock, so a
// subscriber that reads the snapshot after a signal always sees a status at
// least as new as the one that triggered the signal. Notifications coalesce:
// each subscriber channel is buffered with capacity 1 and signals are dropped
// when one is already pending. Last write wins, no backpressure.
type Cell struct {
	mu     sync.RWMutex
	status *domain.Status
	subs   map[int]chan struct{}
	nextID int
}

// NewCell creates an empty cell (disconnected state)
func NewCell() *Cell {
	return &Cell{subs: make(map[int]chan struct{})}
}

// Get returns the current status snapshot. Nil means disconnected.
func (c *Cell) Get() *domain.Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Set replaces the snapshot and notifies all subscribers
func (c *Cell) Set(status *domain.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
	c.broadcastLocked()
}

// Clear resets the snapshot to disconnected and notifies all subscribers,
// so views observe the disconnect without any additional delay.
func (c *Cell) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = nil
	c.broadcastLocked()
}

// Subscribe registers a coalescing notification channel. The returned cancel
// function removes the subscription; calling it more than once is safe.
func (c *Cell) Subscribe() (<-chan struct{}, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan struct{}, 1)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
		})
	}
	return ch, cancel
}

func (c *Cell) broadcastLocked() {
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
			// A signal is already pending; the subscriber will read
			// the freshest snapshot when it gets to it.
		}
	}
}
