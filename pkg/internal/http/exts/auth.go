package exts

import (
	"context"
	"strings"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const SessionCookieName = CookiePrefix + "session"

type SessionReader interface {
	Authenticate(ctx context.Context, raw string) (models.Account, error)
}

func ExtractToken(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); len(header) > 0 {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return c.Cookies(SessionCookieName)
}

// ContextMiddleware puts the signed-in account into locals as "user".
// A missing or broken token just leaves the request anonymous.
func ContextMiddleware(reader SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if reader == nil {
			return c.Next()
		}
		token := ExtractToken(c)
		if len(token) == 0 {
			return c.Next()
		}
		if account, err := reader.Authenticate(c.UserContext(), token); err == nil {
			c.Locals("user", account)
		} else {
			log.Debug().Err(err).Msg("Unable to authenticate request, continuing as guest...")
		}
		return c.Next()
	}
}

func GetAccount(c *fiber.Ctx) *models.Account {
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		return &user
	}
	return nil
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if GetAccount(c) == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "you must sign in first")
	}
	return nil
}

// ResolveActor identifies who is making the request, signed-in account or guest.
func ResolveActor(c *fiber.Ctx) services.Actor {
	return services.ResolveActor(GetAccount(c), NewCookieStorage(c))
}
