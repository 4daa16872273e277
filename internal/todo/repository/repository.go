package repository

import (
	"context"
	"errors"

	"github.com/KarimovRD/fullstack-todo/backend/internal/todo/domain"
)

var ErrTodoNotFound = errors.New("todo not found")

// Repository holds each user's ordered todo list. Create assigns the item
// id; Update and Delete scan the owner's list in insertion order.
type Repository interface {
	Create(ctx context.Context, owner string, item domain.Item) (domain.Item, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Item, error)
	UpdateByID(ctx context.Context, owner string, id int, item domain.Item) (domain.Item, error)
	DeleteByID(ctx context.Context, owner string, id int) error
}
