package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/forms"
	"taskboard/internal/service"
)

// AdminHandler serves the superuser panel. The routing layer guarantees the
// caller is an authenticated superuser before any of these run.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func userTasksURL(userID uint) string {
	return fmt.Sprintf("/admin-dashboard/users/%d/tasks", userID)
}

// Dashboard lists all users.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "admin_dashboard.html", echo.Map{
		"User":  auth.CurrentUser(c),
		"Users": users,
	})
}

// UserTasks lists every task of an arbitrary target user.
func (h *AdminHandler) UserTasks(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	target, tasks, err := h.adminService.TasksForUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	now := time.Now()
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow{
			Task:      t,
			Expired:   t.IsExpired(now),
			EditURL:   fmt.Sprintf("/admin-dashboard/tasks/%d/edit", t.ID),
			DeleteURL: fmt.Sprintf("/admin-dashboard/tasks/%d/delete", t.ID),
		})
	}

	return c.Render(http.StatusOK, "task_list.html", echo.Map{
		"User":     auth.CurrentUser(c),
		"Heading":  fmt.Sprintf("Tasks of %s", target.Username),
		"AddURL":   userTasksURL(target.ID) + "/add",
		"Tasks":    rows,
		"Warnings": []string(nil),
	})
}

// ConfirmDeleteUser renders the cascade delete confirmation.
func (h *AdminHandler) ConfirmDeleteUser(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	target, err := h.adminService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "admin_user_delete.html", echo.Map{
		"User":   auth.CurrentUser(c),
		"Target": target,
	})
}

// DeleteUser cascades the deletion and returns to the dashboard.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.DeleteUser(c.Request().Context(), userID); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/admin-dashboard")
}

// NewTaskForm renders an empty task form for the target user.
func (h *AdminHandler) NewTaskForm(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	target, err := h.adminService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	heading := fmt.Sprintf("Add Task for %s", target.Username)
	return h.renderForm(c, heading, userTasksURL(target.ID)+"/add", &forms.TaskForm{}, nil)
}

// CreateTask stores a new task owned by the target user.
func (h *AdminHandler) CreateTask(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var f forms.TaskForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if errs != nil {
		return h.renderForm(c, "Add Task", userTasksURL(userID)+"/add", &f, errs)
	}

	task, err := h.adminService.CreateTaskFor(c.Request().Context(), userID, input)
	if err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, userTasksURL(task.UserID))
}

// EditTaskForm renders the form pre-filled with an arbitrary task.
func (h *AdminHandler) EditTaskForm(c echo.Context) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	task, err := h.adminService.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return httpError(err)
	}
	action := fmt.Sprintf("/admin-dashboard/tasks/%d/edit", task.ID)
	return h.renderForm(c, "Edit Task", action, forms.TaskFormFromModel(task), nil)
}

// UpdateTask overwrites an arbitrary task and redirects to its owner's list.
func (h *AdminHandler) UpdateTask(c echo.Context) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var f forms.TaskForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	action := fmt.Sprintf("/admin-dashboard/tasks/%d/edit", taskID)
	input, errs := f.Validate()
	if errs != nil {
		return h.renderForm(c, "Edit Task", action, &f, errs)
	}

	task, err := h.adminService.UpdateTask(c.Request().Context(), taskID, input)
	if err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, userTasksURL(task.UserID))
}

// ConfirmDeleteTask renders the delete confirmation for an arbitrary task.
func (h *AdminHandler) ConfirmDeleteTask(c echo.Context) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	task, err := h.adminService.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "task_delete.html", echo.Map{
		"User":      auth.CurrentUser(c),
		"Task":      task,
		"Action":    fmt.Sprintf("/admin-dashboard/tasks/%d/delete", task.ID),
		"CancelURL": userTasksURL(task.UserID),
	})
}

// DeleteTask removes an arbitrary task and redirects to its owner's list.
func (h *AdminHandler) DeleteTask(c echo.Context) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ownerID, err := h.adminService.DeleteTask(c.Request().Context(), taskID)
	if err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, userTasksURL(ownerID))
}

func (h *AdminHandler) renderForm(c echo.Context, heading, action string, f *forms.TaskForm, errs forms.Errors) error {
	return c.Render(http.StatusOK, "task_form.html", echo.Map{
		"User":    auth.CurrentUser(c),
		"Heading": heading,
		"Action":  action,
		"Form":    f,
		"Errors":  errs,
	})
}
