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

// AdminService exposes superuser operations over arbitrary users and tasks.
// Privilege checks happen in the routing layer before any of these run.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	// DeleteUser cascades to the user's tasks, posts and comments.
	DeleteUser(ctx context.Context, id uint) error

	TasksForUser(ctx context.Context, userID uint) (*model.User, []model.Task, error)
	CreateTaskFor(ctx context.Context, userID uint, in *forms.TaskInput) (*model.Task, error)
	GetTask(ctx context.Context, id uint) (*model.Task, error)
	UpdateTask(ctx context.Context, id uint, in *forms.TaskInput) (*model.Task, error)
	// DeleteTask returns the owner ID so the caller can redirect to the
	// owner's task list.
	DeleteTask(ctx context.Context, id uint) (uint, error)
}

type adminService struct {
	users repository.UserRepository
	tasks repository.TaskRepository
}

// NewAdminService creates a new admin service.
func NewAdminService(users repository.UserRepository, tasks repository.TaskRepository) AdminService {
	return &adminService{users: users, tasks: tasks}
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *adminService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.users.DeleteCascade(ctx, id)
}

func (s *adminService) TasksForUser(ctx context.Context, userID uint) (*model.User, []model.Task, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.tasks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, tasks, nil
}

func (s *adminService) CreateTaskFor(ctx context.Context, userID uint, in *forms.TaskInput) (*model.Task, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	task := &model.Task{UserID: user.ID}
	in.Apply(task)
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *adminService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *adminService) UpdateTask(ctx context.Context, id uint, in *forms.TaskInput) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(task)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *adminService) DeleteTask(ctx context.Context, id uint) (uint, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.tasks.Delete(ctx, task); err != nil {
		return 0, err
	}
	return task.UserID, nil
}
