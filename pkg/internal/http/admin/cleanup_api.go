package admin

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func adminTriggerDatabaseCleanup(c *fiber.Ctx) error {
	go services.DoAutoDatabaseCleanup()

	return c.SendStatus(fiber.StatusOK)
}
