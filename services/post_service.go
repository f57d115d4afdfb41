package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"postboard/models"
	"postboard/repository"
	"postboard/search"
	"postboard/utils"
)

type PostService struct {
	store   repository.Store
	indexer search.Indexer
}

func NewPostService(store repository.Store, indexer search.Indexer) *PostService {
	if indexer == nil {
		indexer = search.Noop{}
	}
	return &PostService{store: store, indexer: indexer}
}

type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

type UpdatePostInput struct {
	Title   string
	Content string
	Tags    []string
}

// NormalizeTags приводит имена тегов к нижнему регистру, убирает пробелы по краям,
// пустые имена и повторы. Одно правило и для создания, и для обновления.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		name := strings.ToLower(strings.TrimSpace(t))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func (ps *PostService) ListByCategory(ctx context.Context, category string, page, limit int) ([]models.Post, error) {
	posts, err := ps.store.ListPostsByCategory(ctx, category, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, fmt.Errorf("list posts in %q: %w", category, err)
	}
	return posts, nil
}

// GetPostByID - единая точка поиска поста; отсутствие поста возвращается как repository.ErrNotFound
func (ps *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := ps.store.FindPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return post, nil
}

func (ps *PostService) Create(ctx context.Context, authorID uint, in CreatePostInput) (*models.Post, error) {
	post, err := ps.store.CreatePost(ctx, repository.NewPost{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Tags:     NormalizeTags(in.Tags),
		AuthorID: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	ps.index(ctx, post)
	return post, nil
}

func (ps *PostService) Update(ctx context.Context, authorID, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := ps.store.UpdateOwnedPost(ctx, id, authorID, repository.PostChanges{
		Title:   in.Title,
		Content: in.Content,
		Tags:    NormalizeTags(in.Tags),
	})
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	ps.index(ctx, post)
	return post, nil
}

func (ps *PostService) Delete(ctx context.Context, authorID, id uint) error {
	if err := ps.store.DeleteOwnedPost(ctx, id, authorID); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if err := ps.indexer.DeletePost(ctx, id); err != nil {
		log.Printf("[POST SERVICE WARNING] не удалось удалить пост %d из индекса: %v", id, err)
	}
	return nil
}

func (ps *PostService) Search(ctx context.Context, q string, size int) ([]search.Document, error) {
	return ps.indexer.Search(ctx, q, size)
}

// индекс вторичен: ошибка ES не откатывает запись в БД
func (ps *PostService) index(ctx context.Context, post *models.Post) {
	if err := ps.indexer.IndexPost(ctx, search.DocumentFrom(post)); err != nil {
		log.Printf("[POST SERVICE WARNING] не удалось проиндексировать пост %d: %v", post.ID, err)
	}
}
