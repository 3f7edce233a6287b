package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

//go:embed pages/verify.html
var pagesFS embed.FS

var verifyPage = template.Must(template.ParseFS(pagesFS, "pages/verify.html"))

// returnHomeDelay is how long the gate page shows an error before going home.
const returnHomeDelay = 3 * time.Second

type (
	siteKeyResponse struct {
		SiteKey string `json:"siteKey" example:"6Lc_aX0UAAAAABx..."`
	}
	verifyCaptchaRequest struct {
		Token string `json:"token"`
	}
	issueRequest struct {
		Slug         string `json:"slug" example:"promo-2024"`
		CaptchaToken string `json:"captchaToken"`
	}
	issueResponse struct {
		TargetURL   string `json:"targetUrl" example:"https://example.org/offer"`
		Token       string `json:"token" example:"c2lnbmVk"`
		RedirectURL string `json:"redirectUrl" example:"https://example.org/offer?t=c2lnbmVk"`
	}
)

type RedirectController struct {
	redirect usecase.Redirect
	log      *logger.Logger
}

func NewRedirectController(router fiber.Router, redirect usecase.Redirect, log *logger.Logger) *RedirectController {
	ctrl := &RedirectController{
		redirect: redirect,
		log:      log,
	}

	router.Get("/r/:slug", ctrl.gatePage)
	router.Get("/api/recaptcha-sitekey", ctrl.siteKey)
	router.Post("/api/verify-recaptcha", ctrl.verifyRecaptcha)
	router.Post("/api/redirect/issue", ctrl.issue)

	return ctrl
}

func (ctrl *RedirectController) gatePage(c *fiber.Ctx) error {
	var page bytes.Buffer
	err := verifyPage.Execute(&page, map[string]any{
		"Slug":          c.Params("slug"),
		"Home":          "/",
		"ReturnDelayMs": returnHomeDelay.Milliseconds(),
	})
	if err != nil {
		return ctrl.log.Wrap(err, "render verify page")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(page.Bytes())
}

// siteKey godoc
// @Summary      reCAPTCHA site key
// @Tags         redirect
// @Produce      json
// @Success      200  {object}  siteKeyResponse
// @Failure      500  {object}  httpserver.ErrorResponse
// @Router       /api/recaptcha-sitekey [get]
func (ctrl *RedirectController) siteKey(c *fiber.Ctx) error {
	key, err := ctrl.redirect.SiteKey(c.UserContext())
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(siteKeyResponse{SiteKey: key})
}

// verifyRecaptcha godoc
// @Summary      Verify a reCAPTCHA token
// @Description  A failing verdict is answered with 400 and the verdict itself.
// @Tags         redirect
// @Accept       json
// @Produce      json
// @Param        request  body      verifyCaptchaRequest  true  "Token"
// @Success      200      {object}  entity.CaptchaVerdict
// @Failure      400      {object}  entity.CaptchaVerdict
// @Failure      502      {object}  httpserver.ErrorResponse
// @Router       /api/verify-recaptcha [post]
func (ctrl *RedirectController) verifyRecaptcha(c *fiber.Ctx) error {
	var req verifyCaptchaRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	verdict, err := ctrl.redirect.VerifyCaptcha(c.UserContext(), req.Token, c.IP())
	if errors.Is(err, usecase.ErrCaptchaFailed) && verdict != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verdict)
	}
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}
	return c.JSON(verdict)
}

// issue godoc
// @Summary      Issue a redirect token for a verified visit
// @Tags         redirect
// @Accept       json
// @Produce      json
// @Param        request  body      issueRequest  true  "Slug and reCAPTCHA token"
// @Success      200      {object}  issueResponse
// @Failure      400      {object}  httpserver.ErrorResponse
// @Failure      403      {object}  httpserver.ErrorResponse
// @Failure      404      {object}  httpserver.ErrorResponse
// @Failure      502      {object}  httpserver.ErrorResponse
// @Router       /api/redirect/issue [post]
func (ctrl *RedirectController) issue(c *fiber.Ctx) error {
	var req issueRequest
	if err := parseJSON(c, &req); err != nil {
		return err
	}

	res, err := ctrl.redirect.Issue(c.UserContext(), usecase.IssueInput{
		Slug:         req.Slug,
		CaptchaToken: req.CaptchaToken,
		IP:           c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		return toHTTPError(c, ctrl.log, err)
	}

	return c.JSON(issueResponse{
		TargetURL:   res.Grant.TargetURL,
		Token:       res.Grant.Token,
		RedirectURL: res.RedirectURL,
	})
}
