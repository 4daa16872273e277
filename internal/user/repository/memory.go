package repository

import (
	"context"
	"sync"

	"github.com/KarimovRD/fullstack-todo/backend/internal/user/domain"
)

// MemoryRepository keeps accounts in a process-local map. A fresh instance
// per process is the whole lifecycle; nothing survives a restart.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make(map[string]domain.Account),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Username]; exists {
		return ErrUsernameAlreadyExists
	}

	r.accounts[account.Username] = account
	return nil
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[username]
	if !exists {
		return domain.Account{}, ErrUserNotFound
	}

	return account, nil
}
