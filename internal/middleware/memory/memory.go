// Package memory contains an in-process TTL storage of cached responses.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content    []byte
	expiration int64
}

// Storage keeps content until its ttl expires.
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
	now   func() time.Time
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
		now:   time.Now,
	}
}

// Get returns content stored under key or nil if there is none or it expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok || s.now().UnixNano() > v.expiration {
		return nil
	}

	return v.content
}

// Set stores content under key for duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixNano()
	for k, v := range s.items {
		if now > v.expiration {
			delete(s.items, k)
		}
	}

	s.items[key] = item{
		content:    content,
		expiration: now + duration.Nanoseconds(),
	}
}
