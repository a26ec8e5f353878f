package handler

import (
	"net/http"

	"mentalk/config"

	"github.com/labstack/echo/v4"
)

// SetAccessTokenCookie attaches the access token to the response as an
// HttpOnly cookie so browser scripts cannot read it.
func SetAccessTokenCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Cookie.Name,
		Value:    token,
		Path:     cfg.Cookie.Path,
		MaxAge:   int(cfg.Cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAccessTokenCookie expires the access token cookie immediately.
func ClearAccessTokenCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Cookie.Name,
		Value:    "",
		Path:     cfg.Cookie.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
