// pkg/memcache/stats_cache.go
package memcache

import (
	"sync"
)

// StatsCache memoizes per-subject window summaries. Entries are keyed
// by subject ("account:<id>" / "user:<id>") and stamped with the as-of
// date they were computed for, so a midnight rollover invalidates
// naturally and ingestion invalidates explicitly. A hit must be
// indistinguishable from a recompute; this is a performance layer only.
type StatsCache interface {
	Get(key, asOf string) (interface{}, bool)
	Set(key, asOf string, value interface{})
	Invalidate(keys ...string)
}

type entry struct {
	asOf  string
	value interface{}
}

type statsCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewStatsCache() StatsCache {
	return &statsCache{
		data: make(map[string]entry),
	}
}

func (s *statsCache) Get(key, asOf string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || e.asOf != asOf {
		return nil, false
	}
	return e.value, true
}

func (s *statsCache) Set(key, asOf string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{asOf: asOf, value: value}
}

func (s *statsCache) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
}
