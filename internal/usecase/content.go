package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/notify"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type ContentUC struct {
	backend  BackendAPI
	notifier notify.Notifier
	log      *logger.Logger
}

func NewContent(backend BackendAPI, notifier notify.Notifier, log *logger.Logger) *ContentUC {
	return &ContentUC{
		backend:  backend,
		notifier: notifier,
		log:      log,
	}
}

func (uc *ContentUC) ListPosts(ctx context.Context) ([]entity.BlogPost, error) {
	posts := []entity.BlogPost{}
	err := uc.backend.Get(ctx, "/api/blog", "", &posts)
	if err != nil {
		return nil, fromBackend(err)
	}
	return posts, nil
}

func (uc *ContentUC) GetPost(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	var post entity.BlogPost
	err := uc.backend.Get(ctx, "/api/blog/"+url.PathEscape(slug), "", &post)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &post, nil
}

func (uc *ContentUC) CreatePost(ctx context.Context, s *entity.Session, post entity.BlogPost) (*entity.BlogPost, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if err := validatePost(post); err != nil {
		return nil, err
	}

	var created entity.BlogPost
	err = uc.backend.Post(ctx, "/api/admin/blog", token, post, &created)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &created, nil
}

func (uc *ContentUC) UpdatePost(ctx context.Context, s *entity.Session, id string, post entity.BlogPost) (*entity.BlogPost, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid("post id is required")
	}
	if err := validatePost(post); err != nil {
		return nil, err
	}

	var updated entity.BlogPost
	err = uc.backend.Put(ctx, "/api/admin/blog/"+url.PathEscape(id), token, post, &updated)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &updated, nil
}

func (uc *ContentUC) DeletePost(ctx context.Context, s *entity.Session, id string) error {
	token, err := tokenOf(s)
	if err != nil {
		return err
	}
	if id == "" {
		return invalid("post id is required")
	}
	return fromBackend(uc.backend.Delete(ctx, "/api/admin/blog/"+url.PathEscape(id), token, nil))
}

func validatePost(post entity.BlogPost) error {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Content) == "" {
		return invalid("title and content are required")
	}
	if post.Slug != "" && !slugPattern.MatchString(post.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

// SubmitContact forwards a public contact form. Operators are notified,
// a failed notification does not fail the submission.
func (uc *ContentUC) SubmitContact(ctx context.Context, msg entity.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return invalid("name, email and message are required")
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return invalid("email is invalid")
	}

	err := uc.backend.Post(ctx, "/api/contact/submit", "", msg, nil)
	if err != nil {
		return fromBackend(err)
	}

	text := fmt.Sprintf("New contact message from %s <%s>\n%s\n\n%s", msg.Name, msg.Email, msg.Subject, msg.Message)
	if err := notifyOperators(ctx, uc.notifier, text); err != nil {
		uc.log.Warn(ctx).Err(err).Msg("notify operators about contact message")
	}
	return nil
}

func (uc *ContentUC) ListContacts(ctx context.Context, s *entity.Session) ([]entity.ContactMessage, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	msgs := []entity.ContactMessage{}
	err = uc.backend.Get(ctx, "/api/admin/contact", token, &msgs)
	if err != nil {
		return nil, fromBackend(err)
	}
	return msgs, nil
}

func (uc *ContentUC) MarkContactRead(ctx context.Context, s *entity.Session, id string) error {
	token, err := tokenOf(s)
	if err != nil {
		return err
	}
	if id == "" {
		return invalid("message id is required")
	}
	return fromBackend(uc.backend.Patch(ctx, "/api/admin/contact/"+url.PathEscape(id)+"/read", token, nil, nil))
}

func (uc *ContentUC) DeleteContact(ctx context.Context, s *entity.Session, id string) error {
	token, err := tokenOf(s)
	if err != nil {
		return err
	}
	if id == "" {
		return invalid("message id is required")
	}
	return fromBackend(uc.backend.Delete(ctx, "/api/admin/contact/"+url.PathEscape(id), token, nil))
}
