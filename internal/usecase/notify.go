package usecase

import (
	"context"
	"time"

	"github.com/eridiumdev/clickpay-web/internal/infrastructure/notify"
)

// notifyTimeout caps how long a request waits on the operators chat.
var notifyTimeout = 5 * time.Second

func notifyOperators(ctx context.Context, notifier notify.Notifier, text string) error {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	return notifier.Notify(ctx, text)
}
