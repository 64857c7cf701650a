package inmemory

import (
	"sync"
	"time"

	lookupdomain "vims-go/internal/domain/lookup"
)

type InMemoryLookupCache struct {
	mu    sync.RWMutex
	items map[string]lookupItem
}

type lookupItem struct {
	value     []lookupdomain.Entry
	expiresAt time.Time
}

func NewInMemoryLookupCache() *InMemoryLookupCache {
	return &InMemoryLookupCache{
		items: make(map[string]lookupItem),
	}
}

func (c *InMemoryLookupCache) Get(table string) ([]lookupdomain.Entry, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[table]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[table]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, table)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneEntries(item.value), true
}

func (c *InMemoryLookupCache) Set(table string, entries []lookupdomain.Entry, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(table)
		return
	}

	c.mu.Lock()
	c.items[table] = lookupItem{
		value:     cloneEntries(entries),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *InMemoryLookupCache) Delete(table string) {
	c.mu.Lock()
	delete(c.items, table)
	c.mu.Unlock()
}

func (c *InMemoryLookupCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]lookupItem)
	c.mu.Unlock()
}

func cloneEntries(entries []lookupdomain.Entry) []lookupdomain.Entry {
	if entries == nil {
		return nil
	}
	cloned := make([]lookupdomain.Entry, len(entries))
	for i := range entries {
		cloned[i] = entries[i]
		if entries[i].ParentID != nil {
			parent := *entries[i].ParentID
			cloned[i].ParentID = &parent
		}
	}
	return cloned
}
