package middleware

import (
	"net/http"
	"strings"
	"time"

	userDomain "activity-report-service/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Actor is the authenticated (userId, role) pair every core operation
// receives explicitly.
type Actor struct {
	ID   uint64
	Role userDomain.Role
}

type Claims struct {
	UserID uint64          `json:"user_id"`
	Role   userDomain.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a short-lived bearer token carrying the user's id
// and role.
func IssueToken(secret []byte, u *userDomain.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ParseToken(secret []byte, raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Auth validates the Authorization bearer token and stashes the actor
// on the echo context.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := ParseToken(secret, strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			if !claims.Role.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set(actorKey, Actor{ID: claims.UserID, Role: claims.Role})
			return next(c)
		}
	}
}

// ActorFrom retrieves the actor injected by Auth.
func ActorFrom(c echo.Context) (Actor, bool) {
	a, ok := c.Get(actorKey).(Actor)
	return a, ok
}

// RequireRole rejects actors whose role is not in the allow list.
func RequireRole(roles ...userDomain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
