package forms

import (
	"strings"
	"time"

	"taskboard/internal/model"
)

// Due date formats accepted from the datetime-local input.
const (
	dueLayout        = "2006-01-02T15:04"
	dueLayoutSeconds = "2006-01-02T15:04:05"
)

// TaskForm carries raw task form input.
type TaskForm struct {
	Title       string `form:"title" validate:"required,max=255"`
	Description string `form:"description"`
	Due         string `form:"due" validate:"required"`
	Completed   string `form:"completed"`
}

// TaskInput is a validated, type-coerced task record.
type TaskInput struct {
	Title       string
	Description string
	Due         time.Time
	Completed   bool
}

// Validate returns the typed input or per-field errors. The same rules serve
// both create and edit flows.
func (f *TaskForm) Validate() (*TaskInput, Errors) {
	f.Title = strings.TrimSpace(f.Title)
	f.Due = strings.TrimSpace(f.Due)

	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		errs = fieldErrors(err)
	}

	in := &TaskInput{
		Title:       f.Title,
		Description: strings.TrimSpace(f.Description),
		Completed:   checkboxChecked(f.Completed),
	}

	if f.Due != "" {
		due, err := time.Parse(dueLayout, f.Due)
		if err != nil {
			due, err = time.Parse(dueLayoutSeconds, f.Due)
		}
		if err != nil {
			errs["due"] = "Enter a valid date and time."
		} else {
			in.Due = due
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

// Apply overlays the validated input onto a task. The owner is never touched.
func (in *TaskInput) Apply(t *model.Task) {
	t.Title = in.Title
	t.Description = in.Description
	t.Due = in.Due
	t.Completed = in.Completed
}

// TaskFormFromModel pre-fills the form with an existing task for edit pages.
func TaskFormFromModel(t *model.Task) *TaskForm {
	f := &TaskForm{
		Title:       t.Title,
		Description: t.Description,
		Due:         t.Due.Format(dueLayout),
	}
	if t.Completed {
		f.Completed = "on"
	}
	return f
}
