package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetFlashCookie stores the flash token for the next request.
func SetFlashCookie(c *gin.Context, name, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		name,
		token,
		maxAge,
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

// ClearFlashCookie expires the flash cookie.
func ClearFlashCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", false, true)
}

// GetFlashCookie returns the flash token, or "" when none was sent.
func GetFlashCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}
