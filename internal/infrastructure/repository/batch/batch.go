package batch

import (
	"context"
	"sync"
	"time"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const (
	defaultFlushInterval = time.Second
	maxBatchSize         = 500
)

// Processor buffers redirect attempts and writes them in batches,
// so the redirect path never waits on the audit log.
type Processor struct {
	repo repository.AttemptRepo
	log  *logger.Logger

	flushInterval time.Duration
	attemptsChan  chan *entity.RedirectAttempt
	stop          chan struct{}
	done          chan struct{}
	stopOnce      sync.Once
}

func NewProcessor(repo repository.AttemptRepo, flushInterval time.Duration, log *logger.Logger) *Processor {
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}

	p := &Processor{
		repo: repo,
		log:  log,

		flushInterval: flushInterval,
		attemptsChan:  make(chan *entity.RedirectAttempt, maxBatchSize),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	go p.bufferAttempts()

	return p
}

// RecordAttempt drops the attempt when the processor is already stopped
// or its buffer is full.
func (p *Processor) RecordAttempt(ctx context.Context, attempt *entity.RedirectAttempt) {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}

	select {
	case <-p.stop:
		p.log.Warn(ctx).Str("slug", attempt.Slug).Msg("processor stopped, attempt dropped")
		return
	default:
	}

	select {
	case p.attemptsChan <- attempt:
	default:
		p.log.Warn(ctx).Str("slug", attempt.Slug).Msg("audit buffer full, attempt dropped")
	}
}

// Stop flushes what is buffered and waits for the writer to finish.
func (p *Processor) Stop(ctx context.Context) {
	p.stopOnce.Do(func() {
		close(p.stop)
	})

	select {
	case <-p.done:
	case <-ctx.Done():
		p.log.Warn(ctx).Msg("stop timed out before final flush")
	}
}

func (p *Processor) bufferAttempts() {
	defer close(p.done)

	ctx := context.Background()
	buffer := make([]*entity.RedirectAttempt, 0, maxBatchSize)
	ticker := time.NewTicker(p.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		err := p.repo.SaveAttempts(ctx, buffer)
		if err != nil {
			p.log.Error(ctx, err).Msgf("save %d redirect attempts", len(buffer))
		} else {
			p.log.Debug(ctx).Msgf("saved %d redirect attempts", len(buffer))
		}
		buffer = make([]*entity.RedirectAttempt, 0, maxBatchSize)
	}

	for {
		select {
		case <-p.stop:
			// Drain whatever is already queued
			for {
				select {
				case a := <-p.attemptsChan:
					buffer = append(buffer, a)
				default:
					flush()
					return
				}
			}
		case a := <-p.attemptsChan:
			buffer = append(buffer, a)
			if len(buffer) >= maxBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
