package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/forms"
	"taskboard/internal/service"
)

// AuthHandler serves the public pages and the identity flows.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Home renders the public home page.
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"User": auth.CurrentUser(c),
	})
}

// Dashboard renders the signed-in landing page.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"User": auth.CurrentUser(c),
	})
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return h.renderRegister(c, &forms.RegisterForm{}, nil)
}

// Register creates a new identity and logs it in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var f forms.RegisterForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if errs != nil {
		return h.renderRegister(c, &f, errs)
	}

	_, token, err := h.authService.Register(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return h.renderRegister(c, &f, forms.Errors{"username": "That username is already taken."})
		}
		return httpError(err)
	}

	setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderRegister(c echo.Context, f *forms.RegisterForm, errs forms.Errors) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{
		"User":   auth.CurrentUser(c),
		"Form":   f,
		"Errors": errs,
	})
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"User":     auth.CurrentUser(c),
		"Username": "",
		"Error":    "",
	})
}

// Login establishes a session given valid credentials. Failure re-renders
// with a generic message that never reveals whether the username exists.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	_, token, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", echo.Map{
				"User":     auth.CurrentUser(c),
				"Username": username,
				"Error":    "Invalid username or password.",
			})
		}
		return httpError(err)
	}

	setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout tears down the session and returns to the home page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil && cookie.Value != "" {
		_ = h.authService.Logout(c.Request().Context(), cookie.Value)
	}
	clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
