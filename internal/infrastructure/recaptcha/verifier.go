package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

var (
	ErrNotConfigured = errors.New("recaptcha is not configured")
	ErrUnavailable   = errors.New("recaptcha verification service is unavailable")
)

// siteverifyResponse is Google's wire format.
type siteverifyResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

type Verifier struct {
	cfg config.Recaptcha
	log *logger.Logger
}

func NewVerifier(cfg config.Recaptcha, log *logger.Logger) *Verifier {
	return &Verifier{
		cfg: cfg,
		log: log,
	}
}

func (v *Verifier) SiteKey() string {
	return v.cfg.SiteKey
}

// Verify asks siteverify about the token. The verdict is returned as is,
// callers decide with Passed.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (*entity.CaptchaVerdict, error) {
	if v.cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("secret", v.cfg.SecretKey)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	agent := fiber.Post(v.cfg.VerifyURL)
	agent.ContentType(fiber.MIMEApplicationForm)
	agent.BodyString(form.Encode())
	if v.cfg.Timeout > 0 {
		agent.Timeout(v.cfg.Timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, errs[0])
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("%w: siteverify responded %d", ErrUnavailable, code)
	}

	var resp siteverifyResponse
	err := json.Unmarshal(body, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: decode siteverify response: %v", ErrUnavailable, err)
	}

	verdict := &entity.CaptchaVerdict{
		Success:    resp.Success,
		Score:      resp.Score,
		Action:     resp.Action,
		Hostname:   resp.Hostname,
		ErrorCodes: resp.ErrorCodes,
	}

	v.log.Debug(ctx).
		Bool("success", verdict.Success).
		Strs("error_codes", verdict.ErrorCodes).
		Msg("captcha verified")

	return verdict, nil
}

// Passed applies the score threshold when siteverify reports a score (v3 keys).
func (v *Verifier) Passed(verdict *entity.CaptchaVerdict) bool {
	if verdict == nil || !verdict.Success {
		return false
	}
	if verdict.Score != nil && *verdict.Score < v.cfg.MinScore {
		return false
	}
	return true
}
