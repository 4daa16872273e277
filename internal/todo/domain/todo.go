package domain

import "time"

// Item is a single task owned by exactly one user. The id is unique only
// within the owner's list and is assigned from the list length at creation
// time, so deleting an item lets a later creation reuse a live id.
type Item struct {
	ID        int
	Title     string
	Done      bool
	DueDate   *time.Time
	CreatedAt time.Time
}
