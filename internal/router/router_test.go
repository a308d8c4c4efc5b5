package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/service"
	"taskboard/internal/view"
)

func registeredServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{SessionSecret: "test-secret"}
	jwtService := auth.NewJWTService(cfg.SessionSecret)
	sessions := newMemSessions()
	users := &memUsers{byID: map[uint]*model.User{}}

	renderer, err := view.New()
	assert.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	authHandler := handler.NewAuthHandler(service.NewAuthService(users, jwtService, sessions))
	taskHandler := handler.NewTaskHandler(service.NewTaskService(nil))
	adminHandler := handler.NewAdminHandler(service.NewAdminService(users, nil))
	boardHandler := handler.NewBoardHandler(service.NewBoardService(nil, nil))

	Register(e, cfg, jwtService, sessions, users, authHandler, taskHandler, adminHandler, boardHandler)
	return e
}

func TestRegister_WiresAmbientMiddleware(t *testing.T) {
	e := registeredServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	// every response is tagged with a request id for log correlation
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRegister_SecuredRoutesRedirectAnonymous(t *testing.T) {
	e := registeredServer(t)

	for _, path := range []string{"/tasks", "/dashboard", "/admin-dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), path)
	}
}
