package forms

import (
	"strings"

	"taskboard/internal/model"
)

// CommentForm carries raw comment input.
type CommentForm struct {
	Content string `form:"content" validate:"required"`
}

// CommentInput is a validated comment record.
type CommentInput struct {
	Content string
}

// Validate returns the typed input or per-field errors.
func (f *CommentForm) Validate() (*CommentInput, Errors) {
	f.Content = strings.TrimSpace(f.Content)

	if err := validate.Struct(f); err != nil {
		return nil, fieldErrors(err)
	}
	return &CommentInput{Content: f.Content}, nil
}

// Apply overlays the validated input onto a comment.
func (in *CommentInput) Apply(c *model.Comment) {
	c.Content = in.Content
}
