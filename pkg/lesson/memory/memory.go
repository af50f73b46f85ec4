// Package memory implements an in-memory lesson repository. It backs handler
// tests and local development without a running MongoDB.
package memory

import (
	"context"
	"fmt"
	"sync"

	"afterschool/pkg/lesson"
)

// Repository provides an in-memory implementation of lesson.Repository.
type Repository struct {
	mu      sync.RWMutex
	seq     int
	lessons []lesson.Lesson
}

// New creates a repository preloaded with the given lessons. Lessons without
// an ID are assigned a generated one, mirroring store-generated identifiers.
func New(lessons ...lesson.Lesson) *Repository {
	r := &Repository{}
	for _, l := range lessons {
		r.Add(l)
	}
	return r
}

// Add inserts a lesson, generating an ID when absent, and returns it.
func (r *Repository) Add(l lesson.Lesson) lesson.Lesson {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		r.seq++
		l.ID = fmt.Sprintf("lesson-%d", r.seq)
	}
	r.lessons = append(r.lessons, l)
	return l
}

// FindAll returns all lessons in insertion order.
func (r *Repository) FindAll(ctx context.Context) ([]lesson.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]lesson.Lesson, len(r.lessons))
	copy(out, r.lessons)
	return out, nil
}

// Search returns the lessons matching the filter.
func (r *Repository) Search(ctx context.Context, f lesson.Filter) ([]lesson.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]lesson.Lesson, 0, len(r.lessons))
	for _, l := range r.lessons {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

// UpdateSpaces overwrites a lesson's spaces value. It reports one modified
// document, or zero when the value is unchanged, matching MongoDB semantics.
func (r *Repository) UpdateSpaces(ctx context.Context, id string, spaces int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lessons {
		if r.lessons[i].ID != id {
			continue
		}
		if r.lessons[i].Spaces == spaces {
			return 0, nil
		}
		r.lessons[i].Spaces = spaces
		return 1, nil
	}
	return 0, lesson.ErrNotFound
}
