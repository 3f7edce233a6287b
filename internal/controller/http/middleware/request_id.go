package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

// LogFields tags log lines with the request id and the caller's user id.
func LogFields() []logger.ContextField {
	return []logger.ContextField{
		func(ctx context.Context) (string, string) {
			return "request_id", entity.RequestID(ctx)
		},
		func(ctx context.Context) (string, string) {
			if s := entity.SessionFrom(ctx); s != nil {
				return "user_id", s.UserID
			}
			return "", ""
		},
	}
}

// RequestID keeps a valid incoming X-Request-ID, otherwise assigns a new one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(fiber.HeaderXRequestID, id)
		c.SetUserContext(
			context.WithValue(c.UserContext(), entity.RequestIDCtxKey, id))

		return c.Next()
	}
}
