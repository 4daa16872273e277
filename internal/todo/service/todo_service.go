package service

import (
	"context"
	"errors"
	"time"

	"github.com/KarimovRD/fullstack-todo/backend/internal/common/clock"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	"github.com/KarimovRD/fullstack-todo/backend/internal/observability/metrics"
	"github.com/KarimovRD/fullstack-todo/backend/internal/todo/domain"
	todorepo "github.com/KarimovRD/fullstack-todo/backend/internal/todo/repository"
)

type TodoService struct {
	todos todorepo.Repository
	clock clock.Clock
	log   *logger.Logger
}

func NewTodoService(todos todorepo.Repository, clk clock.Clock, log *logger.Logger) *TodoService {
	return &TodoService{
		todos: todos,
		clock: clk,
		log:   log,
	}
}

type CreateInput struct {
	Title   string
	Done    bool
	DueDate *time.Time
}

type UpdateInput struct {
	Title   string
	Done    bool
	DueDate *time.Time
}

func (s *TodoService) Create(ctx context.Context, owner string, input CreateInput) (domain.Item, error) {
	item, err := s.todos.Create(ctx, owner, domain.Item{
		Title:     input.Title,
		Done:      input.Done,
		DueDate:   input.DueDate,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return domain.Item{}, err
	}

	metrics.TodosCreatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"owner":   owner,
		"todo_id": item.ID,
		"action":  "todo_created",
	}).Info("todo created")

	return item, nil
}

func (s *TodoService) List(ctx context.Context, owner string) ([]domain.Item, error) {
	return s.todos.ListByOwner(ctx, owner)
}

func (s *TodoService) Update(ctx context.Context, owner string, id int, input UpdateInput) (domain.Item, error) {
	item, err := s.todos.UpdateByID(ctx, owner, id, domain.Item{
		Title:   input.Title,
		Done:    input.Done,
		DueDate: input.DueDate,
	})
	if err != nil {
		if errors.Is(err, todorepo.ErrTodoNotFound) {
			return domain.Item{}, ErrTodoNotFound
		}
		return domain.Item{}, err
	}

	metrics.TodosUpdatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"owner":   owner,
		"todo_id": id,
		"action":  "todo_updated",
	}).Info("todo updated")

	return item, nil
}

func (s *TodoService) Delete(ctx context.Context, owner string, id int) error {
	if err := s.todos.DeleteByID(ctx, owner, id); err != nil {
		if errors.Is(err, todorepo.ErrTodoNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	metrics.TodosDeletedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"owner":   owner,
		"todo_id": id,
		"action":  "todo_deleted",
	}).Info("todo deleted")

	return nil
}
