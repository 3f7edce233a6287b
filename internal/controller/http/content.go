package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type ContentController struct {
	content usecase.Content
	log     *logger.Logger
}

// NewContentController mounts the public blog and contact form routes and
// their admin counterparts.
func NewContentController(router fiber.Router, content usecase.Content, log *logger.Logger) *ContentController {
	ctrl := &ContentController{
		content: content,
		log:     log,
	}

	router.Get("/api/blog", ctrl.listPosts)
	router.Get("/api/blog/:slug", ctrl.getPost)
	router.Post("/api/contact/submit", ctrl.submitContact)

	admin := middleware.RequireRole(entity.RoleAdmin)
	router.Post("/api/admin/blog", admin, ctrl.createPost)
	router.Put("/api/admin/blog/:id", admin, ctrl.updatePost)
	router.Delete("/api/admin/blog/:id", admin, ctrl.deletePost)
	router.Get("/api/admin/contact", admin, ctrl.listContacts)
	router.Patch("/api/admin/contact/:id/read", admin, ctrl.markContactRead)
	router.Delete("/api/admin/contact/:id", admin, ctrl.deleteContact)

	return ctrl
}

// listPosts godoc
// @Summary      Published blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  entity.BlogPost
// @Router       /api/blog [get]
func (ctrl *ContentController) listPosts(c *fiber.Ctx) error {
	posts, err := ctrl.content.ListPosts(c.UserContext())
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(posts)
}

func (ctrl *ContentController) getPost(c *fiber.Ctx) error {
	post, err := ctrl.content.GetPost(c.UserContext(), c.Params("slug"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(post)
}

func (ctrl *ContentController) createPost(c *fiber.Ctx) error {
	var post entity.BlogPost
	if err := parseJSON(c, &post); err != nil {
		return err
	}

	created, err := ctrl.content.CreatePost(c.UserContext(), session(c), post)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctrl *ContentController) updatePost(c *fiber.Ctx) error {
	var post entity.BlogPost
	if err := parseJSON(c, &post); err != nil {
		return err
	}

	updated, err := ctrl.content.UpdatePost(c.UserContext(), session(c), c.Params("id"), post)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(updated)
}

func (ctrl *ContentController) deletePost(c *fiber.Ctx) error {
	err := ctrl.content.DeletePost(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// submitContact godoc
// @Summary      Send a message to the operators
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body      entity.ContactMessage  true  "Message"
// @Success      201      {object}  okResponse
// @Failure      400      {object}  httpserver.ErrorResponse
// @Router       /api/contact/submit [post]
func (ctrl *ContentController) submitContact(c *fiber.Ctx) error {
	var msg entity.ContactMessage
	if err := parseJSON(c, &msg); err != nil {
		return err
	}

	if err := ctrl.content.SubmitContact(c.UserContext(), msg); err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(okResponse{OK: true})
}

func (ctrl *ContentController) listContacts(c *fiber.Ctx) error {
	msgs, err := ctrl.content.ListContacts(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(msgs)
}

func (ctrl *ContentController) markContactRead(c *fiber.Ctx) error {
	err := ctrl.content.MarkContactRead(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(okResponse{OK: true})
}

func (ctrl *ContentController) deleteContact(c *fiber.Ctx) error {
	err := ctrl.content.DeleteContact(c.UserContext(), session(c), c.Params("id"))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
