package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/repository"
)

// sessionGuard rejects requests without a validly signed session cookie by
// redirecting to the login page instead of returning an error status.
func sessionGuard(cfg *config.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.SessionCookie,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusSeeOther, "/login")
		},
	})
}

// resolveUser resolves the session identity once per request and binds it to
// the context. It never rejects: anonymous requests simply carry no identity.
func resolveUser(jwtService *auth.JWTService, sessions auth.SessionStoreInterface, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			claims, err := jwtService.ValidateToken(cookie.Value)
			if err != nil {
				return next(c)
			}
			userID, err := sessions.Lookup(c.Request().Context(), claims.ID)
			if err != nil || userID != claims.UserID {
				return next(c)
			}
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return next(c)
			}
			c.Set(auth.ContextUserKey, user)
			return next(c)
		}
	}
}

// requireLogin sends anonymous callers to the login page. It runs after the
// session guard so a revoked session (valid signature, dead registry entry)
// is also turned away here.
func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if auth.CurrentUser(c) == nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// requireAdmin returns 403 for authenticated non-superusers. No handler body
// runs and no data is touched on the forbidden path.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !auth.IsAdmin(auth.CurrentUser(c)) {
			err := apperrors.ErrForbidden
			return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
		}
		return next(c)
	}
}
