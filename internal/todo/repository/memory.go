package repository

import (
	"context"
	"sync"

	"github.com/KarimovRD/fullstack-todo/backend/internal/todo/domain"
)

// MemoryRepository keeps one insertion-ordered slice per owner. The single
// mutex makes id assignment and the scan-based mutations atomic without
// changing the observable single-threaded behavior.
type MemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]domain.Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lists: make(map[string][]domain.Item),
	}
}

// Create appends the item with id = current list length + 1. After a
// delete this can mint an id that collides with a surviving item; callers
// rely on list order, not id uniqueness.
func (r *MemoryRepository) Create(ctx context.Context, owner string, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[owner]
	item.ID = len(list) + 1
	r.lists[owner] = append(list, item)

	return item, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.lists[owner]
	out := make([]domain.Item, len(list))
	copy(out, list)

	return out, nil
}

// UpdateByID overwrites title, done and due date of the first item whose
// id matches, scanning the whole list before reporting a miss.
func (r *MemoryRepository) UpdateByID(ctx context.Context, owner string, id int, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[owner]
	for i := range list {
		if list[i].ID == id {
			list[i].Title = item.Title
			list[i].Done = item.Done
			list[i].DueDate = item.DueDate
			return list[i], nil
		}
	}

	return domain.Item{}, ErrTodoNotFound
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, owner string, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[owner]
	for i := range list {
		if list[i].ID == id {
			r.lists[owner] = append(list[:i], list[i+1:]...)
			return nil
		}
	}

	return ErrTodoNotFound
}
