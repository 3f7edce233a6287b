package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/crypto"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const CookieAuthName = "Authorization-Token"

type (
	SessionFinder interface {
		FindSession(ctx context.Context, id string) (*entity.Session, error)
	}
	SessionAuthConfig struct {
		Cipher   crypto.EncryptorDecryptor
		Sessions SessionFinder
	}
)

// SessionAuth resolves the sealed session cookie into an *entity.Session on
// the request context. Missing, forged or expired cookies leave the caller
// a guest; the request is never rejected here.
func SessionAuth(cfg SessionAuthConfig, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(CookieAuthName)
		if cookie == "" {
			return c.Next()
		}

		ctx := c.UserContext()

		sessionID, err := cfg.Cipher.Decrypt(ctx, cookie)
		if err != nil {
			log.Debug(ctx).Err(err).Msg("unreadable session cookie")
			return c.Next()
		}

		session, err := cfg.Sessions.FindSession(ctx, sessionID)
		if err != nil {
			log.Error(ctx, err).Msg("find session")
			return c.Next()
		}
		if session == nil {
			return c.Next()
		}

		// Add session to request context
		c.SetUserContext(
			context.WithValue(ctx, entity.SessionCtxKey, session))

		return c.Next()
	}
}

// SetSessionCookie seals the session id into the auth cookie.
func SetSessionCookie(c *fiber.Ctx, cipher crypto.EncryptorDecryptor, session *entity.Session) error {
	sealed, err := cipher.Encrypt(c.UserContext(), session.ID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieAuthName,
		Value:    sealed,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieAuthName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
