package usecase

import (
	"context"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const (
	defaultAttemptsLimit = 50
	maxAttemptsLimit     = 500
)

type AuditUC struct {
	repo repository.AttemptRepo
	log  *logger.Logger
}

func NewAudit(repo repository.AttemptRepo, log *logger.Logger) *AuditUC {
	return &AuditUC{
		repo: repo,
		log:  log,
	}
}

func (uc *AuditUC) ListAttempts(ctx context.Context, limit int) ([]*entity.RedirectAttempt, error) {
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	if limit > maxAttemptsLimit {
		limit = maxAttemptsLimit
	}

	attempts, err := uc.repo.ListAttempts(ctx, limit)
	if err != nil {
		return nil, uc.log.Wrap(err, "list attempts")
	}
	if attempts == nil {
		attempts = []*entity.RedirectAttempt{}
	}
	return attempts, nil
}
