package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/domain/model"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
)

const (
	// SessionContextKey is a gin context key for the authenticated session.
	SessionContextKey = "session"
	authCookieName    = "storemart_token"
)

// TokenParser decodes a bearer token into a session.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Session, error)
}

// AuthRequired ensures the caller is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not listed.
// Must run after AuthRequired.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(SessionContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		session, _ := val.(pkgAuth.Session)
		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
