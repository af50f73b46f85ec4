package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afterschool/pkg/lesson"
)

func newRepo() *Repository {
	return New(
		lesson.Lesson{Subject: "Math", Location: "London", Price: 100, Spaces: 5, Icon: "fa-calculator"},
		lesson.Lesson{Subject: "English", Location: "York", Price: 85, Spaces: 5, Icon: "fa-book"},
		lesson.Lesson{Subject: "Science", Location: "Oxford", Price: 120, Spaces: 0, Icon: "fa-flask"},
	)
}

func TestFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Math", all[0].Subject)
	assert.NotEmpty(t, all[0].ID)
}

func TestSearchSubsetOfFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	got, err := repo.Search(ctx, lesson.NewFilter("york"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "English", got[0].Subject)

	// Empty filter behaves like FindAll.
	all, err := repo.Search(ctx, lesson.NewFilter(""))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateSpaces(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	id := all[0].ID

	modified, err := repo.UpdateSpaces(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all[0].Spaces)

	// Same value again: matched but not modified.
	modified, err = repo.UpdateSpaces(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	// Zero is a legal target value.
	modified, err = repo.UpdateSpaces(ctx, id, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
}

func TestUpdateSpacesNotFound(t *testing.T) {
	repo := newRepo()
	_, err := repo.UpdateSpaces(context.Background(), "missing", 3)
	assert.ErrorIs(t, err, lesson.ErrNotFound)
}
