package repository

import (
	"context"
	"sync"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

const inMemAttemptsCap = 1000

// InMemAttemptRepo keeps the latest attempts only, older ones fall off.
type InMemAttemptRepo struct {
	attempts []*entity.RedirectAttempt
	nextID   int64
	mutex    sync.RWMutex
}

func NewInMemAttemptRepo() *InMemAttemptRepo {
	return &InMemAttemptRepo{}
}

func (r *InMemAttemptRepo) SaveAttempts(ctx context.Context, attempts []*entity.RedirectAttempt) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, a := range attempts {
		r.nextID++
		a.ID = r.nextID
		r.attempts = append(r.attempts, a)
	}
	if extra := len(r.attempts) - inMemAttemptsCap; extra > 0 {
		r.attempts = append([]*entity.RedirectAttempt(nil), r.attempts[extra:]...)
	}
	return nil
}

// ListAttempts returns newest first.
func (r *InMemAttemptRepo) ListAttempts(ctx context.Context, limit int) ([]*entity.RedirectAttempt, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if limit <= 0 || limit > len(r.attempts) {
		limit = len(r.attempts)
	}

	res := make([]*entity.RedirectAttempt, 0, limit)
	for i := len(r.attempts) - 1; i >= 0 && len(res) < limit; i-- {
		res = append(res, r.attempts[i])
	}
	return res, nil
}

func (r *InMemAttemptRepo) Ping(ctx context.Context) error {
	return nil
}

func (r *InMemAttemptRepo) Close(ctx context.Context) error {
	return nil
}
