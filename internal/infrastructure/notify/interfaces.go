package notify

import "context"

// Notifier tells platform operators about things waiting for them.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Notify(ctx context.Context, text string) error {
	return nil
}
