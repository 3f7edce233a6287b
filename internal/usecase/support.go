package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/notify"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const maxSupportMessage = 4000

type SupportUC struct {
	backend  BackendAPI
	notifier notify.Notifier
	log      *logger.Logger
}

func NewSupport(backend BackendAPI, notifier notify.Notifier, log *logger.Logger) *SupportUC {
	return &SupportUC{
		backend:  backend,
		notifier: notifier,
		log:      log,
	}
}

func (uc *SupportUC) ListThreads(ctx context.Context, s *entity.Session) ([]entity.SupportThread, error) {
	return uc.listThreads(ctx, s, "/api/support/threads")
}

func (uc *SupportUC) ListAllThreads(ctx context.Context, s *entity.Session) ([]entity.SupportThread, error) {
	return uc.listThreads(ctx, s, "/api/admin/support/threads")
}

func (uc *SupportUC) listThreads(ctx context.Context, s *entity.Session, path string) ([]entity.SupportThread, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	threads := []entity.SupportThread{}
	err = uc.backend.Get(ctx, path, token, &threads)
	if err != nil {
		return nil, fromBackend(err)
	}
	return threads, nil
}

func (uc *SupportUC) CreateThread(ctx context.Context, s *entity.Session, subject, message string) (*entity.SupportThread, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, invalid("subject and message are required")
	}
	if len(message) > maxSupportMessage {
		return nil, invalid("message is too long")
	}

	var thread entity.SupportThread
	err = uc.backend.Post(ctx, "/api/support/threads", token, map[string]string{
		"subject": subject,
		"message": message,
	}, &thread)
	if err != nil {
		return nil, fromBackend(err)
	}

	uc.notify(ctx, s, fmt.Sprintf("New support thread %q from user %s\n\n%s", subject, s.UserID, message))
	return &thread, nil
}

// Messages returns messages of the thread newer than since (backend cursor,
// empty for all).
func (uc *SupportUC) Messages(ctx context.Context, s *entity.Session, threadID, since string) ([]entity.SupportMessage, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if threadID == "" {
		return nil, invalid("thread id is required")
	}

	path := "/api/support/threads/" + url.PathEscape(threadID) + "/messages"
	if since != "" {
		path += "?since=" + url.QueryEscape(since)
	}

	msgs := []entity.SupportMessage{}
	err = uc.backend.Get(ctx, path, token, &msgs)
	if err != nil {
		return nil, fromBackend(err)
	}
	return msgs, nil
}

func (uc *SupportUC) PostMessage(ctx context.Context, s *entity.Session, threadID, body string) (*entity.SupportMessage, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	body = strings.TrimSpace(body)
	if threadID == "" || body == "" {
		return nil, invalid("thread id and message body are required")
	}
	if len(body) > maxSupportMessage {
		return nil, invalid("message is too long")
	}

	var msg entity.SupportMessage
	err = uc.backend.Post(ctx, "/api/support/threads/"+url.PathEscape(threadID)+"/messages", token,
		map[string]string{"body": body}, &msg)
	if err != nil {
		return nil, fromBackend(err)
	}

	// Operators answering do not need to hear about it
	if s.Role != entity.RoleAdmin {
		uc.notify(ctx, s, fmt.Sprintf("New support message in thread %s from user %s\n\n%s", threadID, s.UserID, body))
	}
	return &msg, nil
}

func (uc *SupportUC) notify(ctx context.Context, s *entity.Session, text string) {
	if err := notifyOperators(ctx, uc.notifier, text); err != nil {
		uc.log.Warn(ctx).Err(err).Str("user_id", s.UserID).Msg("notify operators about support message")
	}
}
