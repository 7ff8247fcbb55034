package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	csrfCookieName = "csrf_token"
	csrfFieldName  = "csrf_token"
	csrfContextKey = "csrf_token"
	csrfCookieAge  = 12 * 60 * 60
)

// CSRF implements double-submit-cookie protection: safe methods are
// issued a token cookie, mutating methods must echo it back in the
// csrf_token form field.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookieName)

		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(csrfCookieName, token, csrfCookieAge, "/", "", false, true)
		}

		c.Set(csrfContextKey, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.PostForm(csrfFieldName)

		if subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
			c.String(http.StatusForbidden, "CSRF verification failed")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token handlers embed in mutating forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
