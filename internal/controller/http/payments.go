package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type PaymentsController struct {
	payments usecase.Payments
	log      *logger.Logger
}

func NewPaymentsController(router fiber.Router, payments usecase.Payments, log *logger.Logger) *PaymentsController {
	ctrl := &PaymentsController{
		payments: payments,
		log:      log,
	}

	auth := middleware.RequireRole()
	admin := middleware.RequireRole(entity.RoleAdmin)

	router.Get("/api/payments", auth, ctrl.listPayments)
	router.Post("/api/payments/withdraw", auth, ctrl.withdraw)
	router.Get("/api/admin/payments", admin, ctrl.listAllPayments)
	router.Post("/api/admin/payments/:id/approve", admin, ctrl.approve)
	router.Post("/api/admin/payments/:id/reject", admin, ctrl.reject)

	return ctrl
}

func (ctrl *PaymentsController) listPayments(c *fiber.Ctx) error {
	payments, err := ctrl.payments.ListPayments(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(payments)
}

// withdraw godoc
// @Summary      Request a payout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      entity.WithdrawalRequest  true  "Withdrawal"
// @Success      201      {object}  entity.Payment
// @Failure      400      {object}  httpserver.ErrorResponse
// @Failure      422      {object}  httpserver.ErrorResponse
// @Router       /api/payments/withdraw [post]
func (ctrl *PaymentsController) withdraw(c *fiber.Ctx) error {
	var req entity.WithdrawalRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	payment, err := ctrl.payments.RequestWithdrawal(c.UserContext(), session(c), req)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (ctrl *PaymentsController) listAllPayments(c *fiber.Ctx) error {
	payments, err := ctrl.payments.ListAllPayments(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(payments)
}

func (ctrl *PaymentsController) approve(c *fiber.Ctx) error {
	payment, err := ctrl.payments.ApprovePayment(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(payment)
}

func (ctrl *PaymentsController) reject(c *fiber.Ctx) error {
	payment, err := ctrl.payments.RejectPayment(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(payment)
}
