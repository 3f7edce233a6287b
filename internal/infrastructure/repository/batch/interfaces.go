package batch

import (
	"context"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, attempt *entity.RedirectAttempt)
}
