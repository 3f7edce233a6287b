package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository"
)

func TestListAttempts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemAttemptRepo()

	attempts := make([]*entity.RedirectAttempt, 0, 120)
	for i := 0; i < 120; i++ {
		attempts = append(attempts, &entity.RedirectAttempt{Slug: "promo", Outcome: entity.OutcomeIssued})
	}
	require.NoError(t, repo.SaveAttempts(ctx, attempts))

	uc := NewAudit(repo, log)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 50},
		{name: "explicit", limit: 7, want: 7},
		{name: "capped by what exists", limit: 10000, want: 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.ListAttempts(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	t.Run("empty log is an empty list", func(t *testing.T) {
		got, err := NewAudit(repository.NewInMemAttemptRepo(), log).ListAttempts(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
