package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eridiumdev/clickpay-web/internal/infrastructure/backend"
)

var (
	ErrInvalidURL    = errors.New("provided URL is invalid")
	ErrIncompleteURL = errors.New("provided URL is incomplete (e.g. missing scheme or host)")
	ErrInvalidSlug   = errors.New("slug is invalid")
	ErrInvalidInput  = errors.New("request is invalid")
	ErrInvalidRole   = errors.New("role is not allowed")
	ErrAmountTooLow  = errors.New("amount is below the minimum withdrawal")

	ErrCaptchaFailed        = errors.New("captcha verification failed")
	ErrCaptchaUnavailable   = errors.New("captcha verification is unavailable")
	ErrCaptchaNotConfigured = errors.New("captcha is not configured")

	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("not found")
	ErrRejected           = errors.New("rejected by backend")
	ErrBackendUnavailable = errors.New("backend is unavailable")
	ErrInvalidTarget      = errors.New("backend returned an invalid redirect target")
)

// fromBackend translates backend answers into usecase errors.
func fromBackend(err error) error {
	if err == nil {
		return nil
	}

	status := backend.StatusOf(err)
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		var be *backend.Error
		if errors.As(err, &be) && be.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, be.Message)
		}
		return ErrRejected
	case errors.Is(err, backend.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return err
}

func invalid(format string, v ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, v...))
}
