// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"afterschool/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]order.Order
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{orders: make(map[string]order.Order)}
}

// Insert stores the order under a generated id and returns the id.
func (r *Repository) Insert(ctx context.Context, o order.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = uuid.NewString()
	r.orders[o.ID] = o
	return o.ID, nil
}

// Get retrieves a stored order by id. It exists for direct store inspection
// in tests; the service itself never reads orders back.
func (r *Repository) Get(id string) (order.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	return o, ok
}

// Len reports how many orders have been persisted.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
