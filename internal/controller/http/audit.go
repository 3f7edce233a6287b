package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type AuditController struct {
	audit usecase.Audit
	log   *logger.Logger
}

func NewAuditController(router fiber.Router, audit usecase.Audit, log *logger.Logger) *AuditController {
	ctrl := &AuditController{
		audit: audit,
		log:   log,
	}

	router.Get("/api/admin/redirect-attempts", middleware.RequireRole(entity.RoleAdmin), ctrl.listAttempts)

	return ctrl
}

// listAttempts godoc
// @Summary      Recent redirect verifications
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Max entries (default 50, max 500)"
// @Success      200    {array}   entity.RedirectAttempt
// @Failure      403    {object}  httpserver.ErrorResponse
// @Router       /api/admin/redirect-attempts [get]
func (ctrl *AuditController) listAttempts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return badRequest("limit must not be negative")
	}

	attempts, err := ctrl.audit.ListAttempts(c.UserContext(), limit)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(attempts)
}
