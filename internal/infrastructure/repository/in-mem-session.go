package repository

import (
	"context"
	"sync"
	"time"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/storage"
)

type InMemSessionRepo struct {
	sessions map[string]*entity.Session
	mutex    sync.RWMutex

	backup storage.Storage
}

func NewInMemSessionRepo(backup storage.Storage) *InMemSessionRepo {
	return &InMemSessionRepo{
		sessions: make(map[string]*entity.Session),
		backup:   backup,
	}
}

func (r *InMemSessionRepo) SaveSession(ctx context.Context, session *entity.Session) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[session.ID] = session
	return nil
}

func (r *InMemSessionRepo) FindSession(ctx context.Context, id string) (*entity.Session, error) {
	r.mutex.RLock()
	session, ok := r.sessions[id]
	r.mutex.RUnlock()

	if !ok {
		return nil, nil
	}
	if session.Expired(time.Now()) {
		_ = r.DeleteSession(ctx, id)
		return nil, nil
	}
	return session, nil
}

func (r *InMemSessionRepo) DeleteSession(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *InMemSessionRepo) Ping(ctx context.Context) error {
	return nil
}

// Backup writes live sessions only, expired ones are dropped on the way.
func (r *InMemSessionRepo) Backup(ctx context.Context) error {
	if r.backup == nil {
		return nil
	}

	now := time.Now()

	r.mutex.RLock()
	sessions := make([]*entity.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		if !s.Expired(now) {
			sessions = append(sessions, s)
		}
	}
	r.mutex.RUnlock()

	return r.backup.Backup(ctx, sessions)
}

func (r *InMemSessionRepo) Restore(ctx context.Context) error {
	if r.backup == nil {
		return nil
	}

	sessions, err := r.backup.Restore(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, s := range sessions {
		if !s.Expired(now) {
			r.sessions[s.ID] = s
		}
	}
	return nil
}

func (r *InMemSessionRepo) Close(ctx context.Context) error {
	if r.backup == nil {
		return nil
	}
	return r.backup.Close(ctx)
}
