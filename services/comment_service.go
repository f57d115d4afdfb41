package services

import (
	"context"
	"fmt"

	"postboard/models"
	"postboard/repository"
)

type CommentService struct {
	store repository.Store
}

func NewCommentService(store repository.Store) *CommentService {
	return &CommentService{store: store}
}

func (cs *CommentService) Create(ctx context.Context, authorID, postID uint, content string) (*models.Comment, error) {
	comment, err := cs.store.CreateComment(ctx, postID, authorID, content)
	if err != nil {
		return nil, fmt.Errorf("comment post %d: %w", postID, err)
	}
	return comment, nil
}

func (cs *CommentService) Update(ctx context.Context, authorID, id uint, content string) (*models.Comment, error) {
	comment, err := cs.store.UpdateOwnedComment(ctx, id, authorID, content)
	if err != nil {
		return nil, fmt.Errorf("update comment %d: %w", id, err)
	}
	return comment, nil
}

func (cs *CommentService) Delete(ctx context.Context, authorID, id uint) error {
	if err := cs.store.DeleteOwnedComment(ctx, id, authorID); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}
