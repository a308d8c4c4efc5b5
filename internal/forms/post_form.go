package forms

import (
	"strings"

	"taskboard/internal/model"
)

// PostForm carries raw bulletin post input.
type PostForm struct {
	Title   string `form:"title" validate:"required,max=200"`
	Content string `form:"content" validate:"required"`
}

// PostInput is a validated post record.
type PostInput struct {
	Title   string
	Content string
}

// Validate returns the typed input or per-field errors.
func (f *PostForm) Validate() (*PostInput, Errors) {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)

	if err := validate.Struct(f); err != nil {
		return nil, fieldErrors(err)
	}
	return &PostInput{Title: f.Title, Content: f.Content}, nil
}

// Apply overlays the validated input onto a post.
func (in *PostInput) Apply(p *model.Post) {
	p.Title = in.Title
	p.Content = in.Content
}
