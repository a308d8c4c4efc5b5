package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/forms"
	"taskboard/internal/service"
)

// BoardHandler serves the bulletin board pages.
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// ListPosts renders all posts. Public.
func (h *BoardHandler) ListPosts(c echo.Context) error {
	posts, err := h.boardService.ListPosts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "post_list.html", echo.Map{
		"User":  auth.CurrentUser(c),
		"Posts": posts,
	})
}

// PostDetail renders a post with its comments and, for signed-in users, the
// comment form. Public for reading.
func (h *BoardHandler) PostDetail(c echo.Context) error {
	return h.renderDetail(c, &forms.CommentForm{}, nil)
}

// AddComment stores a comment authored by the session identity, then
// redirects back to the detail page. The insert commits before the redirect
// is written, so the re-fetch always includes the new comment.
func (h *BoardHandler) AddComment(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var f forms.CommentForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if errs != nil {
		return h.renderDetail(c, &f, errs)
	}

	user := auth.CurrentUser(c)
	if _, err := h.boardService.AddComment(c.Request().Context(), postID, user.ID, input); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", postID))
}

// NewPostForm renders an empty post form. Admin only.
func (h *BoardHandler) NewPostForm(c echo.Context) error {
	return h.renderPostForm(c, &forms.PostForm{}, nil)
}

// CreatePost stores a new post authored by the session identity. Admin only.
func (h *BoardHandler) CreatePost(c echo.Context) error {
	var f forms.PostForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if errs != nil {
		return h.renderPostForm(c, &f, errs)
	}

	user := auth.CurrentUser(c)
	if _, err := h.boardService.CreatePost(c.Request().Context(), user.ID, input); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/posts")
}

func (h *BoardHandler) renderDetail(c echo.Context, f *forms.CommentForm, errs forms.Errors) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, comments, err := h.boardService.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "post_detail.html", echo.Map{
		"User":     auth.CurrentUser(c),
		"Post":     post,
		"Comments": comments,
		"Form":     f,
		"Errors":   errs,
	})
}

func (h *BoardHandler) renderPostForm(c echo.Context, f *forms.PostForm, errs forms.Errors) error {
	return c.Render(http.StatusOK, "post_form.html", echo.Map{
		"User":   auth.CurrentUser(c),
		"Form":   f,
		"Errors": errs,
	})
}
