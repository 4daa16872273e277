package repository

import (
	"context"
	"errors"

	"github.com/KarimovRD/fullstack-todo/backend/internal/user/domain"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type Repository interface {
	Create(ctx context.Context, account domain.Account) error
	FindByUsername(ctx context.Context, username string) (domain.Account, error)
}
