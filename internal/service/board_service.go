package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/forms"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// BoardService exposes bulletin board operations.
type BoardService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, []model.Comment, error)
	CreatePost(ctx context.Context, authorID uint, in *forms.PostInput) (*model.Post, error)
	// AddComment persists the comment before returning, so a subsequent
	// re-fetch is guaranteed to include it.
	AddComment(ctx context.Context, postID, authorID uint, in *forms.CommentInput) (*model.Comment, error)
}

type boardService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewBoardService creates a new board service.
func NewBoardService(posts repository.PostRepository, comments repository.CommentRepository) BoardService {
	return &boardService{posts: posts, comments: comments}
}

func (s *boardService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx)
}

func (s *boardService) GetPost(ctx context.Context, id uint) (*model.Post, []model.Comment, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrPostNotFound
		}
		return nil, nil, err
	}
	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *boardService) CreatePost(ctx context.Context, authorID uint, in *forms.PostInput) (*model.Post, error) {
	post := &model.Post{AuthorID: authorID}
	in.Apply(post)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *boardService) AddComment(ctx context.Context, postID, authorID uint, in *forms.CommentInput) (*model.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{PostID: post.ID, AuthorID: authorID}
	in.Apply(comment)
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
