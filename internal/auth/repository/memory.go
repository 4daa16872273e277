package repository

import (
	"context"
	"sync"

	"github.com/KarimovRD/fullstack-todo/backend/internal/auth/domain"
)

type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]domain.SessionToken
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{
		tokens: make(map[string]domain.SessionToken),
	}
}

// Save stores the binding. The derivation is deterministic per username, so
// a repeated login overwrites the same entry and is observationally a no-op.
func (r *MemoryTokenRepository) Save(ctx context.Context, token domain.SessionToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.Token] = token
	return nil
}

func (r *MemoryTokenRepository) FindByToken(ctx context.Context, token string) (domain.SessionToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.tokens[token]
	if !exists {
		return domain.SessionToken{}, ErrTokenNotFound
	}

	return session, nil
}
