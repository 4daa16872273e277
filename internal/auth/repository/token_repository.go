package repository

import (
	"context"
	"errors"

	"github.com/KarimovRD/fullstack-todo/backend/internal/auth/domain"
)

var ErrTokenNotFound = errors.New("token not found")

type TokenRepository interface {
	Save(ctx context.Context, token domain.SessionToken) error
	FindByToken(ctx context.Context, token string) (domain.SessionToken, error)
}
