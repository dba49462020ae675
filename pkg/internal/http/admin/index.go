package admin

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const AdminTokenHeader = "X-Admin-Token"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, ensureAdmin)
	{
		admin.Post("/cleanup", adminTriggerDatabaseCleanup)
	}
}

// ensureAdmin lets requests through only when the admin token is configured and matches.
func ensureAdmin(c *fiber.Ctx) error {
	expected := viper.GetString("security.admin_token")
	if len(expected) == 0 {
		return fiber.NewError(fiber.StatusForbidden, "admin endpoints are disabled")
	}
	if subtle.ConstantTimeCompare([]byte(c.Get(AdminTokenHeader)), []byte(expected)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "invalid admin token")
	}
	return c.Next()
}
