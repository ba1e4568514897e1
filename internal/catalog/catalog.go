package catalog

import (
	"sync"
	"time"

	"github.com/BillJamesM/UdubHacks/internal/domain"
)

// Catalog holds the in-memory set of bookable study spaces. It is
// read-only from callers' perspective; only the reloader replaces its
// contents, atomically, when the catalog file changes.
//
// Catalog order is preserved: ListSpaces returns spaces in the order
// they appear in the catalog file, and search results follow it.
type Catalog struct {
	mu         sync.RWMutex
	spaces     []*domain.Space
	byID       map[string]*domain.Space
	lastReload time.Time
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID: make(map[string]*domain.Space),
	}
}

// Replace swaps in a full new set of spaces.
func (c *Catalog) Replace(spaces []*domain.Space) {
	byID := make(map[string]*domain.Space, len(spaces))
	for _, space := range spaces {
		byID[space.ID] = space
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spaces = spaces
	c.byID = byID
	c.lastReload = time.Now()
}

// ListSpaces returns all spaces in catalog order.
func (c *Catalog) ListSpaces() []*domain.Space {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Space, len(c.spaces))
	copy(out, c.spaces)
	return out
}

// GetSpace retrieves a space by ID.
func (c *Catalog) GetSpace(id string) (*domain.Space, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	space, ok := c.byID[id]
	return space, ok
}

// Count returns the number of spaces in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.spaces)
}

// LastReload returns the timestamp of the last catalog replacement.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
