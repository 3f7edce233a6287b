package throttle

import (
	"context"
	"sync"
	"time"
)

// sweepEvery is how often Allow drops expired keys.
const sweepEvery = time.Minute

type InMem struct {
	next      map[string]time.Time
	mutex     sync.Mutex
	now       func() time.Time
	lastSweep time.Time
}

func NewInMem() *InMem {
	return &InMem{
		next: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (l *InMem) Allow(ctx context.Context, key string, interval time.Duration) (bool, time.Duration, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	if next, ok := l.next[key]; ok && now.Before(next) {
		return false, next.Sub(now), nil
	}

	l.next[key] = now.Add(interval)
	l.gc(now)
	return true, 0, nil
}

// gc drops expired keys at most once per sweepEvery, so the map stays
// bounded by recent pollers without a full scan on every call.
func (l *InMem) gc(now time.Time) {
	if now.Sub(l.lastSweep) < sweepEvery {
		return
	}
	l.lastSweep = now
	for k, next := range l.next {
		if !now.Before(next) {
			delete(l.next, k)
		}
	}
}
