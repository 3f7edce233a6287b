package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const maxLoggedBody = 2048

// quietPaths carry credentials, captcha or redirect tokens, or personal
// messages. Their bodies and queries are never logged.
var quietPaths = []string{
	"/api/auth",
	"/api/redirect",
	"/api/verify-recaptcha",
	"/api/contact",
	"/api/support",
	"/api/admin/contact",
	"/api/admin/support",
	"/api/payments",
	"/api/admin/payments",
}

func isQuiet(path string) bool {
	for _, prefix := range quietPaths {
		if underPath(path, prefix) {
			return true
		}
	}
	return false
}

// Logger logs every request twice: on the way in and with the outcome.
// Bodies of sensitive routes are never logged.
func Logger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		ctx := c.UserContext()

		log.Debug(ctx).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("-> New request")

		// Go to next middleware/handler
		chainErr := c.Next()
		if chainErr != nil {
			// Let the app error handler write the response before we log it
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// Post-processing, the context now carries the session too
		ctx = c.UserContext()
		var msg *zerolog.Event

		// Different log level depending on status code
		code := c.Response().StatusCode()
		switch {
		case code >= 400 && code < 500:
			msg = log.Warn(ctx)
		case code >= 500:
			err := chainErr
			if err == nil {
				err = errors.New(http.StatusText(code))
			}
			msg = log.Error(ctx, err)
		default:
			msg = log.Info(ctx)
		}

		// Add common fields
		msg.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("code", code).
			Str("status", http.StatusText(code)).
			Dur("took", time.Since(start))

		path := string(c.Request().URI().Path())
		if !isQuiet(path) {
			// Add url query
			if q := string(c.Request().URI().QueryString()); q != "" {
				msg.Str("query", q)
			}

			addBody(msg, "request", string(c.Request().Header.ContentType()), c.Body())
			if underPath(path, "/api") {
				addBody(msg, "response", string(c.Response().Header.ContentType()), c.Response().Body())
			}
		}

		msg.Msg("<- Request handled")
		return nil
	}
}

func addBody(msg *zerolog.Event, key, contentType string, body []byte) {
	if len(body) == 0 {
		return
	}
	if len(body) > maxLoggedBody {
		msg.Bytes(key, body[:maxLoggedBody])
		return
	}
	if strings.Contains(contentType, fiber.MIMEApplicationJSON) && json.Valid(body) {
		msg.RawJSON(key, body)
		return
	}
	msg.Bytes(key, body)
}
