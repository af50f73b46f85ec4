// Package order defines the customer booking model and its repository contract.
package order

import (
	"context"
	"time"
)

// Order is a customer's booking request against one or more lessons.
// LessonIDs is a weak reference: nothing verifies the ids against the lesson
// collection, repeated ids are allowed, and orders are immutable once created.
type Order struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	LessonIDs []string  `json:"lessonIds"`
	Spaces    int       `json:"spaces"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository defines behavior for persisting orders. Orders are write-once;
// no read, update, or delete operation exists in this service.
type Repository interface {
	// Insert persists the order and returns the store-generated id.
	Insert(ctx context.Context, o Order) (string, error)
}
