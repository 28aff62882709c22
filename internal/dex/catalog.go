package dex

import (
	"sync"

	"github.com/FlagBrew/digidex/internal/models"
)

// Catalog is the enriched entry list shared by every viewer. It starts out
// loading and moves to loaded exactly once.
type Catalog struct {
	mu        sync.RWMutex
	loaded    bool
	entries   []models.Digimon
	byID      map[int]int
	listeners []func()
}

func NewCatalog() *Catalog {
	return &Catalog{byID: map[int]int{}}
}

// Finish stores entries and marks the catalog loaded. A nil slice is an empty
// catalog. Later calls are ignored.
func (c *Catalog) Finish(entries []models.Digimon) bool {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return false
	}

	c.loaded = true
	c.entries = append([]models.Digimon{}, entries...)
	for i, d := range c.entries {
		c.byID[d.ID] = i
	}
	listeners := c.listeners
	c.listeners = nil
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return true
}

// OnLoaded registers fn to run once the catalog is loaded. If it already is,
// fn runs immediately. fn runs on the goroutine calling Finish and must not
// block.
func (c *Catalog) OnLoaded(fn func()) {
	c.mu.Lock()
	if !c.loaded {
		c.listeners = append(c.listeners, fn)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}

func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loaded
}

// Entries returns the entries in upstream order. The slice is shared and must
// not be modified.
func (c *Catalog) Entries() []models.Digimon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries
}

// State returns the entries and the loading flag from one consistent read.
func (c *Catalog) State() (entries []models.Digimon, loading bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries, !c.loaded
}

func (c *Catalog) Get(id int) (models.Digimon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return models.Digimon{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
