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

// TaskService exposes task operations scoped to their owner.
type TaskService interface {
	ListForOwner(ctx context.Context, ownerID uint) ([]model.Task, error)
	Create(ctx context.Context, ownerID uint, in *forms.TaskInput) (*model.Task, error)
	GetForOwner(ctx context.Context, id, ownerID uint) (*model.Task, error)
	UpdateForOwner(ctx context.Context, id, ownerID uint, in *forms.TaskInput) (*model.Task, error)
	DeleteForOwner(ctx context.Context, id, ownerID uint) error
}

type taskService struct {
	tasks repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) ListForOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func (s *taskService) Create(ctx context.Context, ownerID uint, in *forms.TaskInput) (*model.Task, error) {
	task := &model.Task{UserID: ownerID}
	in.Apply(task)
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetForOwner(ctx context.Context, id, ownerID uint) (*model.Task, error) {
	task, err := s.tasks.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateForOwner(ctx context.Context, id, ownerID uint, in *forms.TaskInput) (*model.Task, error) {
	task, err := s.GetForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	in.Apply(task)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteForOwner(ctx context.Context, id, ownerID uint) error {
	task, err := s.GetForOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, task)
}
