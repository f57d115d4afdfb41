package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/models"
)

func tickingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newSeededStore() *MemoryStore {
	s := NewMemoryStore().WithClock(tickingClock())
	s.AddUser(models.User{ID: 1, FirstName: "Ann", LastName: "Lee"})
	s.AddUser(models.User{ID: 2, FirstName: "Bob", LastName: "Ray"})
	s.AddCategory("toys")
	s.AddCategory("books")
	return s
}

func TestMemoryStoreListOrderAndPaging(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()
	for i := 1; i <= 12; i++ {
		_, err := s.CreatePost(ctx, NewPost{Title: fmt.Sprintf("toy %d", i), Content: "c", Category: "toys", AuthorID: 1})
		require.NoError(t, err)
	}
	_, err := s.CreatePost(ctx, NewPost{Title: "book", Content: "c", Category: "books", AuthorID: 1})
	require.NoError(t, err)

	posts, err := s.ListPostsByCategory(ctx, "toys", 5, 5)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	for i, p := range posts {
		assert.Equal(t, fmt.Sprintf("toy %d", 7-i), p.Title)
		assert.Equal(t, "Ann", p.User.FirstName)
	}

	posts, err = s.ListPostsByCategory(ctx, "unknown", 0, 5)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)

	posts, err = s.ListPostsByCategory(ctx, "toys", -4, 2)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestMemoryStoreCreatePostUnknownCategory(t *testing.T) {
	s := newSeededStore()
	_, err := s.CreatePost(context.Background(), NewPost{Title: "a", Content: "b", Category: "cars", AuthorID: 1})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestMemoryStoreTagsAreShared(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()
	first, err := s.CreatePost(ctx, NewPost{Title: "a", Content: "b", Category: "toys", Tags: []string{"fun", "kids"}, AuthorID: 1})
	require.NoError(t, err)
	second, err := s.CreatePost(ctx, NewPost{Title: "c", Content: "d", Category: "toys", Tags: []string{"fun"}, AuthorID: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, s.TagCount())
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)

	require.NoError(t, s.DeleteOwnedPost(ctx, first.ID, 1))
	assert.Equal(t, 2, s.TagCount())

	kept, err := s.FindPost(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, kept.Tags, 1)
	assert.Equal(t, "fun", kept.Tags[0].Name)
}

func TestMemoryStoreOwnership(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()
	post, err := s.CreatePost(ctx, NewPost{Title: "a", Content: "b", Category: "toys", AuthorID: 1})
	require.NoError(t, err)

	_, err = s.UpdateOwnedPost(ctx, post.ID, 2, PostChanges{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.UpdateOwnedPost(ctx, 999, 1, PostChanges{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteOwnedPost(ctx, post.ID, 2), ErrForbidden)

	unchanged, err := s.FindPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", unchanged.Title)

	updated, err := s.UpdateOwnedPost(ctx, post.ID, 1, PostChanges{Title: "x", Content: "y", Tags: []string{"new"}})
	require.NoError(t, err)
	assert.Equal(t, "x", updated.Title)
	assert.Equal(t, uint(1), updated.UserID)
	assert.Len(t, updated.Tags, 1)
}

func TestMemoryStoreComments(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()
	post, err := s.CreatePost(ctx, NewPost{Title: "a", Content: "b", Category: "toys", AuthorID: 1})
	require.NoError(t, err)
	other, err := s.CreatePost(ctx, NewPost{Title: "c", Content: "d", Category: "toys", AuthorID: 1})
	require.NoError(t, err)

	_, err = s.CreateComment(ctx, 999, 2, "hi")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.CreateComment(ctx, post.ID, 77, "ghost")
	assert.ErrorIs(t, err, ErrUnknownAuthor)

	c, err := s.CreateComment(ctx, post.ID, 2, "hi")
	require.NoError(t, err)
	keep, err := s.CreateComment(ctx, other.ID, 2, "stay")
	require.NoError(t, err)

	_, err = s.UpdateOwnedComment(ctx, c.ID, 1, "hijack")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.UpdateOwnedComment(ctx, 999, 2, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := s.UpdateOwnedComment(ctx, c.ID, 2, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, post.ID, updated.PostID)

	assert.ErrorIs(t, s.DeleteOwnedComment(ctx, 999, 2), ErrNotFound)
	assert.ErrorIs(t, s.DeleteOwnedComment(ctx, c.ID, 1), ErrForbidden)
	require.NoError(t, s.DeleteOwnedComment(ctx, c.ID, 2))

	found, err := s.FindPost(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, found.Comments, 1)
	assert.Equal(t, keep.ID, found.Comments[0].ID)
}
