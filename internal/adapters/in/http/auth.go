package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Claims is the payload of the bearer tokens the API accepts. Tokens are issued by
// the identity service and signed with the shared HS256 secret.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var errUnauthenticated = echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid bearer token")

// Authenticate verifies the bearer token and stores the caller as a kernel.Actor on
// the echo context.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				return errUnauthenticated
			}

			claims := &Claims{}
			_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil {
				return errUnauthenticated.WithInternal(err)
			}

			actor, err := claims.actor()
			if err != nil {
				return errUnauthenticated.WithInternal(err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func (c *Claims) actor() (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(c.UserID)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.ParseRole(c.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, found := c.Get(actorKey).(kernel.Actor)
	if !found {
		return kernel.Actor{}, errors.New("no authenticated actor on request")
	}
	return actor, nil
}
