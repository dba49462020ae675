package exts

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const CookiePrefix = "hobbyhub_"

// CookieStorage keeps client state in long-lived cookies. Values written during the
// request are visible to later reads of the same request.
type CookieStorage struct {
	c       *fiber.Ctx
	written map[string]string
}

func NewCookieStorage(c *fiber.Ctx) *CookieStorage {
	return &CookieStorage{c: c, written: make(map[string]string)}
}

func (v *CookieStorage) Get(key string) (string, bool) {
	if val, ok := v.written[key]; ok {
		return val, len(val) > 0
	}
	val := v.c.Cookies(CookiePrefix + key)
	return val, len(val) > 0
}

func (v *CookieStorage) Set(key, value string) {
	if current, ok := v.Get(key); ok && current == value {
		return
	}
	v.written[key] = value
	v.c.Cookie(&fiber.Cookie{
		Name:     CookiePrefix + key,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().AddDate(10, 0, 0),
		Secure:   viper.GetBool("security.cookie_secure"),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
