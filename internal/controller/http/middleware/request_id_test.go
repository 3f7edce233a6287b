package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

func TestRequestID(t *testing.T) {
	known := uuid.NewString()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "none", header: ""},
		{name: "garbage", header: "not-a-uuid"},
		{name: "valid", header: known, keep: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(RequestID())
			app.Get("/", func(c *fiber.Ctx) error {
				return c.SendString(entity.RequestID(c.UserContext()))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderXRequestID, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			resp.Body.Close()

			id := resp.Header.Get(fiber.HeaderXRequestID)
			assert.Equal(t, id, string(body))
			_, err = uuid.Parse(id)
			assert.NoError(t, err)
			if tt.keep {
				assert.Equal(t, known, id)
			}
		})
	}
}

func TestLoggerSkipsAuthBodies(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewZerologLogger(context.Background(), "http", "debug", false, &out)
	log.RegisterHook(LogFields()...)

	app := fiber.New()
	app.Use(RequestID(), Logger(log))
	app.Post("/api/auth/login", func(c *fiber.Ctx) error { return c.SendString(`{"ok":true}`) })
	app.Post("/api/links", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "down") })

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotContains(t, out.String(), "hunter2")
	assert.Contains(t, out.String(), `"request_id"`)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/links", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 502, resp.StatusCode)
	assert.Contains(t, out.String(), `"level":"error"`)
}

func TestLoggerKeepsSecretsOut(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		secret string
	}{
		{name: "captcha token", path: "/api/verify-recaptcha", body: `{"token":"captcha-secret"}`, secret: "captcha-secret"},
		{name: "redirect grant", path: "/api/redirect/issue", body: `{"slug":"abc","captchaToken":"captcha-secret"}`, secret: "captcha-secret"},
		{name: "contact message", path: "/api/contact/submit", body: `{"email":"ada@example.org"}`, secret: "ada@example.org"},
		{name: "support message", path: "/api/support/threads/t1/messages", body: `{"body":"my card number"}`, secret: "my card number"},
		{name: "encoded auth path", path: "/api/%61uth/login", body: `{"password":"hunter2"}`, secret: "hunter2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			log := logger.NewZerologLogger(context.Background(), "http", "debug", false, &out)

			app := fiber.New()
			app.Use(Logger(log))
			app.Post("/*", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{"redirectUrl": "https://example.org/?t=grant-secret", "echo": string(c.Body())})
			})

			req := httptest.NewRequest(http.MethodPost, tt.path+"?t=query-secret", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Contains(t, out.String(), "Request handled")
			assert.NotContains(t, out.String(), tt.secret)
			assert.NotContains(t, out.String(), "grant-secret")
			assert.NotContains(t, out.String(), "query-secret")
		})
	}
}

func TestLoggerMalformedJSONBody(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewZerologLogger(context.Background(), "http", "debug", false, &out)

	app := fiber.New()
	app.Use(Logger(log))
	app.Post("/api/links", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString(`{"error":`)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewBufferString(`{"url": "https://`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
	}
	assert.Contains(t, out.String(), `"request"`)
}
