package usecase

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/recaptcha"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository/batch"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type (
	IssueInput struct {
		Slug         string
		CaptchaToken string
		IP           string
		UserAgent    string
	}
	IssueResult struct {
		Grant       entity.RedirectGrant
		RedirectURL string
	}
)

type RedirectUC struct {
	backend  BackendAPI
	captcha  CaptchaVerifier
	recorder batch.AttemptRecorder
	log      *logger.Logger
}

func NewRedirect(backend BackendAPI, captcha CaptchaVerifier, recorder batch.AttemptRecorder, log *logger.Logger) *RedirectUC {
	return &RedirectUC{
		backend:  backend,
		captcha:  captcha,
		recorder: recorder,
		log:      log,
	}
}

func (uc *RedirectUC) SiteKey(ctx context.Context) (string, error) {
	key := uc.captcha.SiteKey()
	if key == "" {
		return "", ErrCaptchaNotConfigured
	}
	return key, nil
}

// VerifyCaptcha returns the verdict together with ErrCaptchaFailed when it
// does not pass, so callers can still show the error codes.
func (uc *RedirectUC) VerifyCaptcha(ctx context.Context, token, remoteIP string) (*entity.CaptchaVerdict, error) {
	if strings.TrimSpace(token) == "" {
		return nil, invalid("captcha token is missing")
	}

	verdict, err := uc.captcha.Verify(ctx, token, remoteIP)
	switch {
	case errors.Is(err, recaptcha.ErrNotConfigured):
		return nil, ErrCaptchaNotConfigured
	case err != nil:
		uc.log.Error(ctx, err).Msg("verify captcha")
		return nil, ErrCaptchaUnavailable
	}

	if !uc.captcha.Passed(verdict) {
		return verdict, ErrCaptchaFailed
	}
	return verdict, nil
}

// Issue gates token issuance behind the captcha: without a passing verdict
// the backend is never asked.
func (uc *RedirectUC) Issue(ctx context.Context, in IssueInput) (*IssueResult, error) {
	attempt := &entity.RedirectAttempt{
		Slug:      truncateSlug(in.Slug),
		IP:        in.IP,
		UserAgent: in.UserAgent,
	}
	defer func() {
		uc.recorder.RecordAttempt(ctx, attempt)
	}()

	if !slugPattern.MatchString(in.Slug) {
		attempt.Outcome = entity.OutcomeError
		attempt.Reason = ErrInvalidSlug.Error()
		return nil, ErrInvalidSlug
	}

	_, err := uc.VerifyCaptcha(ctx, in.CaptchaToken, in.IP)
	if err != nil {
		attempt.Outcome = entity.OutcomeCaptchaFailed
		attempt.Reason = err.Error()
		return nil, err
	}

	var grant entity.RedirectGrant
	err = uc.backend.Post(ctx, "/api/redirect/issue", "", map[string]string{"slug": in.Slug}, &grant)
	if err != nil {
		err = fromBackend(err)
		attempt.Outcome = entity.OutcomeError
		if errors.Is(err, ErrNotFound) {
			attempt.Outcome = entity.OutcomeNotFound
		}
		attempt.Reason = err.Error()
		return nil, err
	}

	redirectURL, err := BuildRedirectURL(grant.TargetURL, grant.Token)
	if err != nil {
		uc.log.Error(ctx, err).Str("slug", in.Slug).Msg("backend grant rejected")
		attempt.Outcome = entity.OutcomeError
		attempt.Reason = err.Error()
		return nil, err
	}

	attempt.Outcome = entity.OutcomeIssued
	uc.log.Info(ctx).Str("slug", in.Slug).Msg("redirect token issued")

	return &IssueResult{
		Grant:       grant,
		RedirectURL: redirectURL,
	}, nil
}

// BuildRedirectURL appends t=<token> to target, with '&' when target
// already carries a query and '?' otherwise, keeping any #fragment last.
// Only absolute http(s) targets are accepted.
func BuildRedirectURL(target, token string) (string, error) {
	uri, err := url.Parse(target)
	if err != nil {
		return "", ErrInvalidTarget
	}
	if (uri.Scheme != "http" && uri.Scheme != "https") || uri.Host == "" {
		return "", ErrInvalidTarget
	}
	if token == "" {
		return "", ErrInvalidTarget
	}

	base, fragment, hasFragment := strings.Cut(target, "#")

	sep := "?"
	switch {
	case strings.HasSuffix(base, "?"), strings.HasSuffix(base, "&"):
		sep = ""
	case strings.Contains(base, "?"):
		sep = "&"
	}

	res := base + sep + "t=" + url.QueryEscape(token)
	if hasFragment {
		res += "#" + fragment
	}
	return res, nil
}

// truncateSlug fits a raw slug into the audit log's slug column.
func truncateSlug(slug string) string {
	const maxRunes = 64
	runes := []rune(slug)
	if len(runes) <= maxRunes {
		return slug
	}
	return string(runes[:maxRunes])
}
