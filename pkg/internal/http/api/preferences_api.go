package api

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func renderPreferences(c *fiber.Ctx, prefs models.Preferences) error {
	return c.JSON(fiber.Map{
		"preferences": prefs,
		"body_class":  prefs.BodyClass(),
	})
}

func (v *Controllers) getPreferences(c *fiber.Ctx) error {
	prefs := services.NewPreferenceService(exts.NewCookieStorage(c)).Load()
	return renderPreferences(c, prefs)
}

func (v *Controllers) updatePreferences(c *fiber.Ctx) error {
	var data struct {
		Theme    *string `json:"theme"`
		FontSize *string `json:"font_size"`
		Layout   *string `json:"layout"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	service := services.NewPreferenceService(exts.NewCookieStorage(c))
	if data.Theme != nil {
		if _, err := service.SetTheme(*data.Theme); err != nil {
			return exts.TranslateError(err)
		}
	}
	if data.FontSize != nil {
		if _, err := service.SetFontSize(*data.FontSize); err != nil {
			return exts.TranslateError(err)
		}
	}
	if data.Layout != nil {
		if _, err := service.SetLayout(*data.Layout); err != nil {
			return exts.TranslateError(err)
		}
	}

	return renderPreferences(c, service.Load())
}

func (v *Controllers) togglePreferenceTheme(c *fiber.Ctx) error {
	prefs := services.NewPreferenceService(exts.NewCookieStorage(c)).ToggleTheme()
	return renderPreferences(c, prefs)
}

func (v *Controllers) togglePreferenceLayout(c *fiber.Ctx) error {
	prefs := services.NewPreferenceService(exts.NewCookieStorage(c)).ToggleLayout()
	return renderPreferences(c, prefs)
}
