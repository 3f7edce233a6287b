package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type AdsController struct {
	ads usecase.Ads
	log *logger.Logger
}

// NewAdsController mounts the admin ad inventory, admins only.
func NewAdsController(router fiber.Router, ads usecase.Ads, log *logger.Logger) *AdsController {
	ctrl := &AdsController{
		ads: ads,
		log: log,
	}

	admin := middleware.RequireRole(entity.RoleAdmin)

	router.Get("/api/admin/admin-ads", admin, ctrl.list)
	router.Post("/api/admin/admin-ads", admin, ctrl.create)
	router.Put("/api/admin/admin-ads/:id", admin, ctrl.update)
	router.Delete("/api/admin/admin-ads/:id", admin, ctrl.delete)
	router.Patch("/api/admin/admin-ads/:id/toggle", admin, ctrl.toggle)

	return ctrl
}

func (ctrl *AdsController) list(c *fiber.Ctx) error {
	ads, err := ctrl.ads.ListAds(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(ads)
}

// create godoc
// @Summary      Add an ad
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      entity.AdminAd  true  "Ad"
// @Success      201      {object}  entity.AdminAd
// @Failure      400      {object}  httpserver.ErrorResponse
// @Failure      403      {object}  httpserver.ErrorResponse
// @Router       /api/admin/admin-ads [post]
func (ctrl *AdsController) create(c *fiber.Ctx) error {
	var ad entity.AdminAd
	if err := parseJSON(c, &ad); err != nil {
		return err
	}

	created, err := ctrl.ads.CreateAd(c.UserContext(), session(c), ad)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctrl *AdsController) update(c *fiber.Ctx) error {
	var ad entity.AdminAd
	if err := parseJSON(c, &ad); err != nil {
		return err
	}

	updated, err := ctrl.ads.UpdateAd(c.UserContext(), session(c), c.Params("id"), ad)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(updated)
}

func (ctrl *AdsController) delete(c *fiber.Ctx) error {
	err := ctrl.ads.DeleteAd(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *AdsController) toggle(c *fiber.Ctx) error {
	ad, err := ctrl.ads.ToggleAd(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(ad)
}
