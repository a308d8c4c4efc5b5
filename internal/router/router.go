package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/repository"
)

// Register wires routes and middleware. Authentication is checked before the
// privilege check, which is checked before any handler runs.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	sessions auth.SessionStoreInterface,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	adminHandler *handler.AdminHandler,
	boardHandler *handler.BoardHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(resolveUser(jwtService, sessions, users))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", authHandler.Home)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)

	// Routes requiring a session
	loggedIn := []echo.MiddlewareFunc{sessionGuard(cfg), requireLogin}

	secured := e.Group("", loggedIn...)
	secured.GET("/logout", authHandler.Logout)
	secured.POST("/logout", authHandler.Logout)
	secured.GET("/dashboard", authHandler.Dashboard)

	secured.GET("/tasks", taskHandler.List)
	secured.GET("/tasks/add", taskHandler.NewForm)
	secured.POST("/tasks/add", taskHandler.Create)
	secured.GET("/tasks/edit/:id", taskHandler.EditForm)
	secured.POST("/tasks/edit/:id", taskHandler.Update)
	secured.GET("/tasks/delete/:id", taskHandler.ConfirmDelete)
	secured.POST("/tasks/delete/:id", taskHandler.Delete)

	// Admin panel
	admin := e.Group("/admin-dashboard", append(loggedIn, requireAdmin)...)
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/users/:id/tasks", adminHandler.UserTasks)
	admin.GET("/users/:id/tasks/add", adminHandler.NewTaskForm)
	admin.POST("/users/:id/tasks/add", adminHandler.CreateTask)
	admin.GET("/users/:id/delete", adminHandler.ConfirmDeleteUser)
	admin.POST("/users/:id/delete", adminHandler.DeleteUser)
	admin.GET("/tasks/:id/edit", adminHandler.EditTaskForm)
	admin.POST("/tasks/:id/edit", adminHandler.UpdateTask)
	admin.GET("/tasks/:id/delete", adminHandler.ConfirmDeleteTask)
	admin.POST("/tasks/:id/delete", adminHandler.DeleteTask)

	// Bulletin board: reading is public, commenting needs a session and
	// creating posts needs the superuser flag.
	e.GET("/posts", boardHandler.ListPosts)
	e.GET("/posts/add", boardHandler.NewPostForm, append(loggedIn, requireAdmin)...)
	e.POST("/posts/add", boardHandler.CreatePost, append(loggedIn, requireAdmin)...)
	e.GET("/posts/:id", boardHandler.PostDetail)
	e.POST("/posts/:id", boardHandler.AddComment, loggedIn...)
}
