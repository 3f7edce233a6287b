package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type createLinkRequest struct {
	URL   string `json:"url" example:"https://example.org/landing"`
	Title string `json:"title" example:"Spring promo"`
}

type LinksController struct {
	links usecase.Links
	log   *logger.Logger
}

// NewLinksController mounts the link and dashboard routes. statsThrottle
// guards the polled stats endpoint.
func NewLinksController(router fiber.Router, links usecase.Links, statsThrottle fiber.Handler, log *logger.Logger) *LinksController {
	ctrl := &LinksController{
		links: links,
		log:   log,
	}

	auth := middleware.RequireRole()

	router.Get("/api/links", auth, ctrl.listLinks)
	router.Post("/api/links", auth, ctrl.createLink)
	router.Delete("/api/links/:id", auth, ctrl.deleteLink)
	router.Get("/api/stats/dashboard", auth, statsThrottle, ctrl.dashboardStats)

	return ctrl
}

// listLinks godoc
// @Summary      Caller's short links
// @Tags         links
// @Produce      json
// @Success      200  {array}   entity.Link
// @Failure      401  {object}  httpserver.ErrorResponse
// @Router       /api/links [get]
func (ctrl *LinksController) listLinks(c *fiber.Ctx) error {
	links, err := ctrl.links.ListLinks(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(links)
}

// createLink godoc
// @Summary      Shorten a URL
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        request  body      createLinkRequest  true  "Target URL"
// @Success      201      {object}  entity.Link
// @Failure      400      {object}  httpserver.ErrorResponse
// @Router       /api/links [post]
func (ctrl *LinksController) createLink(c *fiber.Ctx) error {
	var req createLinkRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	link, err := ctrl.links.CreateLink(c.UserContext(), session(c), req.URL, req.Title)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (ctrl *LinksController) deleteLink(c *fiber.Ctx) error {
	err := ctrl.links.DeleteLink(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// dashboardStats godoc
// @Summary      Dashboard totals
// @Description  Polled by the panel; a second poll inside the interval gets 429.
// @Tags         links
// @Produce      json
// @Success      200  {object}  entity.DashboardStats
// @Failure      429  {object}  httpserver.ErrorResponse
// @Router       /api/stats/dashboard [get]
func (ctrl *LinksController) dashboardStats(c *fiber.Ctx) error {
	stats, err := ctrl.links.DashboardStats(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(stats)
}
