package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the session token for browser
// clients. API clients may send the same token as a bearer header.
const SessionCookie = "session"

// LoginPath is the entry point unauthenticated callers are sent to.
const LoginPath = "/login/"

// TokenClaims is the identity extracted from a validated token.
type TokenClaims struct {
	UserID  uuid.UUID
	TokenID string
}

// TokenValidator validates session tokens.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// RequireLogin gates a route on an authenticated identity. Callers
// without a valid token are redirected to the login entry point with
// the originally requested path preserved in the next parameter.
func RequireLogin(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			redirectToLogin(c)
			return
		}

		claims, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("token_id", claims.TokenID)
		c.Set("token", token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func redirectToLogin(c *gin.Context) {
	target := c.Request.URL.Path
	if c.Request.URL.RawQuery != "" {
		target += "?" + c.Request.URL.RawQuery
	}
	c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(target))
	c.Abort()
}
