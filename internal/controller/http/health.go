package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type HealthController struct {
	ping func(ctx context.Context) error
	log  *logger.Logger
}

// NewHealthController mounts GET /ping, 500 when a store is unreachable.
func NewHealthController(router fiber.Router, ping func(ctx context.Context) error, log *logger.Logger) *HealthController {
	ctrl := &HealthController{
		ping: ping,
		log:  log,
	}

	router.Get("/ping", ctrl.handlePing)

	return ctrl
}

func (ctrl *HealthController) handlePing(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := ctrl.ping(ctx); err != nil {
		ctrl.log.Error(ctx, err).Msg("ping")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}
