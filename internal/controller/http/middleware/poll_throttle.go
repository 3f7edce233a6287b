package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/throttle"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

// PollThrottle admits one poll of the named endpoint per caller per interval.
// Callers are told when to come back via Retry-After. Limiter failures let
// the request through.
func PollThrottle(limiter throttle.Limiter, name string, interval time.Duration, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		caller := "ip:" + c.IP()
		if s := entity.SessionFrom(ctx); s != nil {
			caller = "s:" + s.ID
		}

		allowed, retryAfter, err := limiter.Allow(ctx, name+":"+caller, interval)
		if err != nil {
			log.Error(ctx, err).Str("endpoint", name).Msg("poll throttle")
			return c.Next()
		}
		if !allowed {
			secs := int(math.Ceil(retryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(secs))
			return fiber.NewError(fiber.StatusTooManyRequests, "polling too fast")
		}

		return c.Next()
	}
}
