package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/shared/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetAuthCookies sets access and refresh token as HttpOnly cookies
func SetAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		AccessTokenCookie,
		accessToken,
		accessMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		RefreshTokenCookie,
		refreshToken,
		refreshMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAuthCookies clears access and refresh token cookies
func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		c.SetCookie(
			name,
			"",
			-1,
			cookieConfig.Path,
			cookieConfig.Domain,
			cookieConfig.Secure,
			true, // HttpOnly
		)
	}
}

// GetTokenFromCookie retrieves token from cookie, empty string when absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
