package api

import (
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=256"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

func setSessionCookie(c *fiber.Ctx, token string, expiredAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     exts.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiredAt,
		Secure:   viper.GetBool("security.cookie_secure"),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (v *Controllers) ensureAccounts() error {
	if v.Accounts == nil {
		return exts.TranslateError(services.ErrAuthDisabled)
	}
	return nil
}

func (v *Controllers) getMe(c *fiber.Ctx) error {
	if err := v.ensureAccounts(); err != nil {
		return err
	}
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	return c.JSON(exts.GetAccount(c))
}

func (v *Controllers) register(c *fiber.Ctx) error {
	if err := v.ensureAccounts(); err != nil {
		return err
	}

	var data credentialsRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := v.Accounts.Register(c.UserContext(), data.Email, data.Password)
	if err != nil {
		return exts.TranslateError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func (v *Controllers) login(c *fiber.Ctx) error {
	if err := v.ensureAccounts(); err != nil {
		return err
	}

	var data credentialsRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	token, session, err := v.Accounts.SignIn(c.UserContext(), data.Email, data.Password)
	if err != nil {
		return exts.TranslateError(err)
	}

	setSessionCookie(c, token, session.ExpiredAt)
	actor := services.ResolveActor(&session.Account, exts.NewCookieStorage(c))

	return c.JSON(fiber.Map{
		"token":      token,
		"expired_at": session.ExpiredAt,
		"actor":      actor,
	})
}

func (v *Controllers) logout(c *fiber.Ctx) error {
	if err := v.ensureAccounts(); err != nil {
		return err
	}

	token := exts.ExtractToken(c)
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "you must sign in first")
	}
	if err := v.Accounts.SignOut(c.UserContext(), token); err != nil {
		return exts.TranslateError(err)
	}

	c.ClearCookie(exts.SessionCookieName)
	actor := services.ResolveActor(nil, exts.NewCookieStorage(c))

	return c.JSON(fiber.Map{
		"actor": actor,
	})
}
