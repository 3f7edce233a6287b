package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

// toHTTPError turns a usecase error into a *fiber.Error for the app error
// handler. Unknown errors are logged and hidden behind a 500.
func toHTTPError(c *fiber.Ctx, log *logger.Logger, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrIncompleteURL),
		errors.Is(err, usecase.ErrInvalidSlug),
		errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrAmountTooLow):
		code = fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthorized):
		code = fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrCaptchaFailed),
		errors.Is(err, usecase.ErrForbidden):
		code = fiber.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrRejected):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrBackendUnavailable),
		errors.Is(err, usecase.ErrCaptchaUnavailable),
		errors.Is(err, usecase.ErrInvalidTarget):
		code = fiber.StatusBadGateway
	case errors.Is(err, usecase.ErrCaptchaNotConfigured):
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	default:
		log.Error(c.UserContext(), err).Str("path", c.Path()).Msg("unhandled error")
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	msg := err.Error()
	if code == fiber.StatusBadGateway {
		// Upstream details stay in the logs
		log.Error(c.UserContext(), err).Str("path", c.Path()).Msg("upstream failure")
		msg = firstClause(msg)
	}
	return fiber.NewError(code, msg)
}

func firstClause(msg string) string {
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[:i]
	}
	return msg
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

// parseJSON decodes the request body, rejecting non-JSON payloads.
func parseJSON(c *fiber.Ctx, out any) error {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		return badRequest("expected application/json body")
	}
	if err := c.BodyParser(out); err != nil {
		return badRequest("malformed JSON body")
	}
	return nil
}

// session is set by middleware.RequireRole on every route that calls this.
func session(c *fiber.Ctx) *entity.Session {
	return entity.SessionFrom(c.UserContext())
}

type okResponse struct {
	OK bool `json:"ok" example:"true"`
}
