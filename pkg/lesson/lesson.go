// Package lesson defines the bookable lesson model and its repository contract.
package lesson

import (
	"context"
	"errors"
)

// Lesson is a bookable course offering. Spaces is the remaining capacity and
// is the only field mutated after seeding.
type Lesson struct {
	ID       string  `json:"_id,omitempty"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
	Icon     string  `json:"icon"`
}

// Repository defines behavior for reading and updating lessons.
type Repository interface {
	// FindAll returns every lesson in store-native order.
	FindAll(ctx context.Context) ([]Lesson, error)

	// Search returns the lessons matching the filter. An empty filter
	// behaves like FindAll.
	Search(ctx context.Context, f Filter) ([]Lesson, error)

	// UpdateSpaces overwrites the spaces field of the identified lesson and
	// reports how many documents the store actually modified (zero when the
	// new value equals the old one). Returns ErrNotFound when no lesson
	// matched the id.
	UpdateSpaces(ctx context.Context, id string, spaces int) (int64, error)
}

// ErrNotFound indicates the requested lesson does not exist.
var ErrNotFound = errors.New("lesson not found")
