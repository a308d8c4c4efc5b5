package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/forms"
	"taskboard/internal/model"
	"taskboard/internal/service"
)

// TaskHandler serves the signed-in user's own task pages.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// taskRow pairs a task with its computed expiry state and row links.
type taskRow struct {
	Task      model.Task
	Expired   bool
	EditURL   string
	DeleteURL string
}

// List renders the caller's tasks with one warning per expired task.
func (h *TaskHandler) List(c echo.Context) error {
	user := auth.CurrentUser(c)
	tasks, err := h.taskService.ListForOwner(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	now := time.Now()
	rows := make([]taskRow, 0, len(tasks))
	var warnings []string
	for _, t := range tasks {
		expired := t.IsExpired(now)
		if expired {
			warnings = append(warnings, fmt.Sprintf("Task %q is expired!", t.Title))
		}
		rows = append(rows, taskRow{
			Task:      t,
			Expired:   expired,
			EditURL:   fmt.Sprintf("/tasks/edit/%d", t.ID),
			DeleteURL: fmt.Sprintf("/tasks/delete/%d", t.ID),
		})
	}

	return c.Render(http.StatusOK, "task_list.html", echo.Map{
		"User":     user,
		"Heading":  "My Tasks",
		"AddURL":   "/tasks/add",
		"Tasks":    rows,
		"Warnings": warnings,
	})
}

// NewForm renders an empty task form.
func (h *TaskHandler) NewForm(c echo.Context) error {
	return h.renderForm(c, "Add Task", "/tasks/add", &forms.TaskForm{}, nil)
}

// Create validates and stores a new task owned by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	var f forms.TaskForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if errs != nil {
		return h.renderForm(c, "Add Task", "/tasks/add", &f, errs)
	}

	user := auth.CurrentUser(c)
	if _, err := h.taskService.Create(c.Request().Context(), user.ID, input); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

// EditForm renders the form pre-filled with the owner-scoped task.
func (h *TaskHandler) EditForm(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	task, err := h.taskService.GetForOwner(c.Request().Context(), id, user.ID)
	if err != nil {
		return httpError(err)
	}
	action := fmt.Sprintf("/tasks/edit/%d", task.ID)
	return h.renderForm(c, "Edit Task", action, forms.TaskFormFromModel(task), nil)
}

// Update validates and overwrites the owner-scoped task.
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var f forms.TaskForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	action := fmt.Sprintf("/tasks/edit/%d", id)
	input, errs := f.Validate()
	if errs != nil {
		return h.renderForm(c, "Edit Task", action, &f, errs)
	}

	user := auth.CurrentUser(c)
	if _, err := h.taskService.UpdateForOwner(c.Request().Context(), id, user.ID, input); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

// ConfirmDelete renders a confirmation view with the task's summary.
func (h *TaskHandler) ConfirmDelete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	task, err := h.taskService.GetForOwner(c.Request().Context(), id, user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "task_delete.html", echo.Map{
		"User":      user,
		"Task":      task,
		"Action":    fmt.Sprintf("/tasks/delete/%d", task.ID),
		"CancelURL": "/tasks",
	})
}

// Delete removes the owner-scoped task and returns to the list.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	if err := h.taskService.DeleteForOwner(c.Request().Context(), id, user.ID); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

func (h *TaskHandler) renderForm(c echo.Context, heading, action string, f *forms.TaskForm, errs forms.Errors) error {
	return c.Render(http.StatusOK, "task_form.html", echo.Map{
		"User":    auth.CurrentUser(c),
		"Heading": heading,
		"Action":  action,
		"Form":    f,
		"Errors":  errs,
	})
}
