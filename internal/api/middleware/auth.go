package middleware

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

// Context keys injected for downstream handlers.
const (
	CtxUserID    = "user_id"
	CtxSessionID = "session_id"
)

// Auth validates the bearer token and resolves its session. The JWT only
// names the session row; the row itself is the source of truth and is deleted
// lazily when found expired, so revocation takes effect immediately.
func Auth(jwtSecret string, sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return &domain.PermissionError{Message: "You are not authorized to access this resource"}
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return &domain.PermissionError{Message: "You are not authorized to access this resource"}
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return &domain.PermissionError{Message: "Your session is invalid or has expired. Login again"}
			}

			sessionID, _ := claims["sid"].(string)
			if sessionID == "" {
				return &domain.PermissionError{Message: "Your session is invalid or has expired. Login again"}
			}

			session, err := sessions.Find(c.Request().Context(), sessionID)
			if err != nil {
				return err
			}
			if session == nil {
				return &domain.PermissionError{Message: "Your session is invalid or has expired. Login again"}
			}
			if session.Expired(time.Now().UTC()) {
				_ = sessions.Delete(c.Request().Context(), sessionID)
				return &domain.PermissionError{Message: "Your session is invalid or has expired. Login again"}
			}

			c.Set(CtxUserID, session.UserID)
			c.Set(CtxSessionID, session.SessionID)

			return next(c)
		}
	}
}
