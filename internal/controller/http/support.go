package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type (
	createThreadRequest struct {
		Subject string `json:"subject" example:"Payout is late"`
		Message string `json:"message"`
	}
	postMessageRequest struct {
		Body string `json:"body"`
	}
)

type SupportController struct {
	support usecase.Support
	log     *logger.Logger
}

// NewSupportController mounts the support chat. pollThrottle guards the
// polled messages endpoint.
func NewSupportController(router fiber.Router, support usecase.Support, pollThrottle fiber.Handler, log *logger.Logger) *SupportController {
	ctrl := &SupportController{
		support: support,
		log:     log,
	}

	auth := middleware.RequireRole()

	router.Get("/api/support/threads", auth, ctrl.listThreads)
	router.Post("/api/support/threads", auth, ctrl.createThread)
	router.Get("/api/support/threads/:id/messages", auth, pollThrottle, ctrl.messages)
	router.Post("/api/support/threads/:id/messages", auth, ctrl.postMessage)
	router.Get("/api/admin/support/threads", middleware.RequireRole(entity.RoleAdmin), ctrl.listAllThreads)

	return ctrl
}

func (ctrl *SupportController) listThreads(c *fiber.Ctx) error {
	threads, err := ctrl.support.ListThreads(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(threads)
}

func (ctrl *SupportController) listAllThreads(c *fiber.Ctx) error {
	threads, err := ctrl.support.ListAllThreads(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(threads)
}

func (ctrl *SupportController) createThread(c *fiber.Ctx) error {
	var req createThreadRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	thread, err := ctrl.support.CreateThread(c.UserContext(), session(c), req.Subject, req.Message)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// messages godoc
// @Summary      Thread messages, optionally only newer than since
// @Description  Polled by the chat; a second poll inside the interval gets 429.
// @Tags         support
// @Produce      json
// @Param        id     path      string  true   "Thread id"
// @Param        since  query     string  false  "Last seen message timestamp"
// @Success      200    {array}   entity.SupportMessage
// @Failure      429    {object}  httpserver.ErrorResponse
// @Router       /api/support/threads/{id}/messages [get]
func (ctrl *SupportController) messages(c *fiber.Ctx) error {
	msgs, err := ctrl.support.Messages(c.UserContext(), session(c), c.Params("id"), c.Query("since"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(msgs)
}

func (ctrl *SupportController) postMessage(c *fiber.Ctx) error {
	var req postMessageRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	msg, err := ctrl.support.PostMessage(c.UserContext(), session(c), c.Params("id"), req.Body)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
