package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	model "nelo-tasks.com/nelo-tasks/internal/models"
)

const (
	// ContextKeySession holds the resolved identity blob on the echo context.
	ContextKeySession = "session"
	// ContextKeyToken holds the raw session token.
	ContextKeyToken = "session_token"
)

// SessionAuth gates protected routes behind a bearer session token. The
// resolver decides validity; this middleware only extracts and attaches.
func SessionAuth(resolve func(c echo.Context, token string) (*model.Session, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "session token is required")
			}

			session, err := resolve(c, token)
			if err != nil || session == nil || !session.LoggedIn {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(ContextKeySession, session)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

// SessionFrom returns the identity attached by SessionAuth, or nil.
func SessionFrom(c echo.Context) *model.Session {
	session, _ := c.Get(ContextKeySession).(*model.Session)
	return session
}

// TokenFrom returns the raw session token attached by SessionAuth.
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)
	return token
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok && after != "" {
		return after
	}
	return ""
}
