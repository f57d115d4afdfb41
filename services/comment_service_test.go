package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/repository"
)

func TestCommentLifecycle(t *testing.T) {
	store := newTestStore()
	ps := NewPostService(store, nil)
	cs := NewCommentService(store)
	ctx := context.Background()

	post, err := ps.Create(ctx, 1, CreatePostInput{Title: "A", Content: "B", Category: "toys"})
	require.NoError(t, err)

	comment, err := cs.Create(ctx, 2, post.ID, "nice")
	require.NoError(t, err)
	assert.Equal(t, uint(2), comment.UserID)
	assert.Equal(t, "Bob", comment.User.FirstName)

	_, err = cs.Update(ctx, 1, comment.ID, "not yours")
	assert.ErrorIs(t, err, repository.ErrForbidden)

	updated, err := cs.Update(ctx, 2, comment.ID, "nicer")
	require.NoError(t, err)
	assert.Equal(t, "nicer", updated.Content)

	assert.ErrorIs(t, cs.Delete(ctx, 1, comment.ID), repository.ErrForbidden)
	require.NoError(t, cs.Delete(ctx, 2, comment.ID))
	assert.ErrorIs(t, cs.Delete(ctx, 2, comment.ID), repository.ErrNotFound)
}

func TestCommentOnMissingPost(t *testing.T) {
	cs := NewCommentService(newTestStore())
	_, err := cs.Create(context.Background(), 1, 77, "hello")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
