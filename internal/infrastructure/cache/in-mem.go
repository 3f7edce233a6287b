package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

type InMem struct {
	entries map[string]entry
	mutex   sync.RWMutex
	now     func() time.Time
}

func NewInMem() *InMem {
	return &InMem{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *InMem) Get(ctx context.Context, key string) ([]byte, error) {
	c.mutex.RLock()
	e, ok := c.entries[key]
	c.mutex.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		return nil, nil
	}
	return e.value, nil
}

func (c *InMem) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	c.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}

	// Sweep expired entries now and then
	if len(c.entries)%1000 == 0 {
		for k, e := range c.entries {
			if !now.Before(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
	return nil
}
