package http

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

func (s *Server) token(c echo.Context) string {
	if cookie, err := c.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Authenticate resolves the session token and loads the acting user. Requests
// without a live session stop here with 401.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := s.token(c)
		if token == "" {
			return errs.NewUnauthenticatedError()
		}

		ctx := c.Request().Context()
		identity, err := s.sessions.Resolve(ctx, token)
		if err != nil {
			return err
		}
		if identity == nil {
			return errs.NewUnauthenticatedError()
		}

		user, err := s.users.GetByEmail(ctx, identity.Email)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewUnauthenticatedErrorWithCause(err)
		}
		if err != nil {
			return err
		}

		c.Set(actorKey, user)
		return next(c)
	}
}

func actor(c echo.Context) access.User {
	u, _ := c.Get(actorKey).(access.User)
	return u
}
