package lookup

import "time"

// Cache holds per-table entry lists. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(table string) ([]Entry, bool)
	Set(table string, entries []Entry, ttl time.Duration)
	Delete(table string)
	Clear()
}

type noopCache struct{}

func (noopCache) Get(string) ([]Entry, bool)            { return nil, false }
func (noopCache) Set(string, []Entry, time.Duration)    {}
func (noopCache) Delete(string)                         {}
func (noopCache) Clear()                                {}
