package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/crypto"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type (
	loginRequest struct {
		Email    string `json:"email" example:"jane@example.org"`
		Password string `json:"password"`
	}
	authResponse struct {
		User entity.User `json:"user"`
		Home string      `json:"home" example:"/panel"`
	}
)

type AccountController struct {
	account usecase.Account
	cipher  crypto.EncryptorDecryptor
	log     *logger.Logger
}

func NewAccountController(router fiber.Router, account usecase.Account, cipher crypto.EncryptorDecryptor, log *logger.Logger) *AccountController {
	ctrl := &AccountController{
		account: account,
		cipher:  cipher,
		log:     log,
	}

	router.Post("/api/auth/login", ctrl.login)
	router.Post("/api/auth/register", ctrl.register)
	router.Post("/api/auth/logout", ctrl.logout)
	router.Get("/api/auth/me", middleware.RequireRole(), ctrl.me)

	return ctrl
}

// login godoc
// @Summary      Log in
// @Description  Sets the sealed Authorization-Token session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      loginRequest  true  "Credentials"
// @Success      200      {object}  authResponse
// @Failure      400      {object}  httpserver.ErrorResponse
// @Failure      401      {object}  httpserver.ErrorResponse
// @Router       /api/auth/login [post]
func (ctrl *AccountController) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	session, user, err := ctrl.account.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return ctrl.startSession(c, session, user)
}

// register godoc
// @Summary      Sign up as a user or an advertiser
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      usecase.RegisterInput  true  "New account"
// @Success      201      {object}  authResponse
// @Failure      400      {object}  httpserver.ErrorResponse
// @Failure      422      {object}  httpserver.ErrorResponse
// @Router       /api/auth/register [post]
func (ctrl *AccountController) register(c *fiber.Ctx) error {
	var req usecase.RegisterInput
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	session, user, err := ctrl.account.Register(c.UserContext(), req)
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}

	c.Status(fiber.StatusCreated)
	return ctrl.startSession(c, session, user)
}

func (ctrl *AccountController) startSession(c *fiber.Ctx, session *entity.Session, user *entity.User) error {
	if err := middleware.SetSessionCookie(c, ctrl.cipher, session); err != nil {
		return ctrl.log.Wrap(err, "seal session cookie")
	}
	return c.JSON(authResponse{
		User: *user,
		Home: session.Role.Home(),
	})
}

func (ctrl *AccountController) logout(c *fiber.Ctx) error {
	if s := session(c); s != nil {
		if err := ctrl.account.Logout(c.UserContext(), s.ID); err != nil {
			return toHTTPError(c, ctrl.log, err)
		}
	}

	middleware.ClearSessionCookie(c)
	return c.JSON(okResponse{OK: true})
}

// me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  entity.User
// @Failure      401  {object}  httpserver.ErrorResponse
// @Router       /api/auth/me [get]
func (ctrl *AccountController) me(c *fiber.Ctx) error {
	user, err := ctrl.account.Me(c.UserContext(), session(c))
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(user)
}
