package api

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) getIdentity(c *fiber.Ctx) error {
	storage := exts.NewCookieStorage(c)
	actor := services.ResolveActor(exts.GetAccount(c), storage)
	guestId, _ := storage.Get(services.StorageKeyGuestID)

	return c.JSON(fiber.Map{
		"actor":    actor,
		"guest_id": guestId,
	})
}
