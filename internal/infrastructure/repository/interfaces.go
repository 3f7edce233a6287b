package repository

import (
	"context"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

type SessionRepo interface {
	SaveSession(ctx context.Context, session *entity.Session) error
	FindSession(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error

	Ping(ctx context.Context) error

	Backup(ctx context.Context) error
	Restore(ctx context.Context) error
	Close(ctx context.Context) error
}

// AttemptRepo is the local audit log of redirect verifications.
type AttemptRepo interface {
	SaveAttempts(ctx context.Context, attempts []*entity.RedirectAttempt) error
	ListAttempts(ctx context.Context, limit int) ([]*entity.RedirectAttempt, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
