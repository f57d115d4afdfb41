// Package repository описывает доступ к постам и комментариям.
// Каждая операция соответствует одному запросу к БД; проверки владельца
// встроены в условие записи (id + user_id), а не выполняются отдельным чтением.
package repository

import (
	"context"
	"errors"

	"postboard/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrForbidden        = errors.New("caller is not the owner")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUnknownAuthor    = errors.New("author does not exist")
)

type NewPost struct {
	Title    string
	Content  string
	Category string
	Tags     []string
	AuthorID uint
}

type PostChanges struct {
	Title   string
	Content string
	Tags    []string
}

// Store - граница доступа к данным. Имена тегов приходят уже нормализованными.
type Store interface {
	ListPostsByCategory(ctx context.Context, category string, offset, limit int) ([]models.Post, error)
	FindPost(ctx context.Context, id uint) (*models.Post, error)
	CreatePost(ctx context.Context, in NewPost) (*models.Post, error)
	UpdateOwnedPost(ctx context.Context, id, userID uint, ch PostChanges) (*models.Post, error)
	DeleteOwnedPost(ctx context.Context, id, userID uint) error

	CreateComment(ctx context.Context, postID, userID uint, content string) (*models.Comment, error)
	UpdateOwnedComment(ctx context.Context, id, userID uint, content string) (*models.Comment, error)
	DeleteOwnedComment(ctx context.Context, id, userID uint) error

	Ping(ctx context.Context) error
}
