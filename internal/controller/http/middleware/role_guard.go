package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

type guardRule struct {
	prefix string
	role   entity.Role
}

var panelRules = []guardRule{
	{prefix: "/secret-dashboard", role: entity.RoleAdmin},
	{prefix: "/advertiser", role: entity.RoleAdvertiser},
	{prefix: "/panel", role: entity.RoleUser},
}

// GuardRedirect decides where a page request should go instead, if anywhere.
// Panels belong to exactly one role, everyone else goes home; signed-in users
// skip the login and register pages.
func GuardRedirect(path string, role entity.Role) (string, bool) {
	for _, rule := range panelRules {
		if underPath(path, rule.prefix) && role != rule.role {
			return "/", true
		}
	}

	if role != entity.RoleGuest && (underPath(path, "/login") || underPath(path, "/register")) {
		return role.Home(), true
	}

	return "", false
}

func underPath(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// RoleGuard redirects page requests according to GuardRedirect. It checks
// the normalized path, the same one the static handler resolves files from,
// so encoded or dotted spellings of a panel path are caught too.
func RoleGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.RoleGuest
		if s := entity.SessionFrom(c.UserContext()); s != nil {
			role = s.Role
		}

		if target, ok := GuardRedirect(string(c.Request().URI().Path()), role); ok {
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireRole is the API counterpart of RoleGuard: 401 for guests,
// 403 for other roles.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := entity.SessionFrom(c.UserContext())
		if s == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		if len(roles) == 0 {
			return c.Next()
		}
		for _, r := range roles {
			if s.Role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}
}
