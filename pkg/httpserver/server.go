package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"link not found"`
}

type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// New builds a fiber app with JSON errors, panic recovery and compression.
func New(opts Options) *fiber.App {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.BodyLimit == 0 {
		opts.BodyLimit = 1 << 20
	}

	server := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		BodyLimit:             opts.BodyLimit,
		ErrorHandler:          ErrorHandler,
	})
	server.Use(recover.New())
	server.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	return server
}

// ErrorHandler answers API paths with ErrorResponse JSON and pages with
// plain text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := ""

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	if !strings.HasPrefix(c.Path(), "/api") {
		if msg == "" {
			msg = http.StatusText(code)
		}
		return c.Status(code).SendString(msg)
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   ErrorCode(code),
		Message: msg,
	})
}

// ErrorCode is the snake_case status name used in ErrorResponse.Error.
func ErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "invalid_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusUnprocessableEntity:
		return "rejected"
	case fiber.StatusTooManyRequests:
		return "too_many_requests"
	case fiber.StatusBadGateway:
		return "bad_gateway"
	}
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
