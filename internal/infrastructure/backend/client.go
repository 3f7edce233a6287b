package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

// Client talks to the platform API that owns links, clicks, payments and
// everything else persistent.
type Client struct {
	baseURL string
	timeout time.Duration
	log     *logger.Logger
}

func NewClient(cfg config.Backend, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		log:     log,
	}
}

func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, fiber.MethodGet, path, token, nil, out)
}

func (c *Client) Post(ctx context.Context, path, token string, in, out any) error {
	return c.Do(ctx, fiber.MethodPost, path, token, in, out)
}

func (c *Client) Put(ctx context.Context, path, token string, in, out any) error {
	return c.Do(ctx, fiber.MethodPut, path, token, in, out)
}

func (c *Client) Patch(ctx context.Context, path, token string, in, out any) error {
	return c.Do(ctx, fiber.MethodPatch, path, token, in, out)
}

func (c *Client) Delete(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, fiber.MethodDelete, path, token, nil, out)
}

// Do sends in as JSON (when not nil) and decodes a 2xx answer into out
// (when not nil). An empty token sends no Authorization header.
func (c *Client) Do(ctx context.Context, method, path, token string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)

	err := agent.Parse()
	if err != nil {
		fiber.ReleaseAgent(agent)
		return c.log.Wrapf(err, "prepare %s %s", method, path)
	}

	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if id := entity.RequestID(ctx); id != "" {
		agent.Set(fiber.HeaderXRequestID, id)
	}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			fiber.ReleaseAgent(agent)
			return c.log.Wrapf(err, "marshal %s %s", method, path)
		}
		agent.ContentType(fiber.MIMEApplicationJSON)
		agent.Body(body)
	}
	if timeout := c.timeoutFor(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}

	// Bytes releases the agent
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		c.log.Warn(ctx).Err(errs[0]).Str("method", method).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, errs[0])
	}

	if code < 200 || code >= 300 {
		return &Error{
			Status:  code,
			Message: errorMessage(body),
		}
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return c.log.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}

// errorMessage pulls a human message out of the backend's error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
