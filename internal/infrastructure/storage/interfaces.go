package storage

import (
	"context"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

// Storage keeps a snapshot of in-mem sessions across restarts.
type Storage interface {
	Backup(ctx context.Context, sessions []*entity.Session) error
	Restore(ctx context.Context) ([]*entity.Session, error)
	Close(ctx context.Context) error
}
