package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"postboard/models"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func selectAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name")
}

func (s *GormStore) ListPostsByCategory(ctx context.Context, category string, offset, limit int) ([]models.Post, error) {
	// gorm не рендерит OFFSET <= 0, отрицательное смещение дало бы первую страницу
	if offset < 0 || limit < 1 {
		return []models.Post{}, nil
	}
	db := s.DB.WithContext(ctx)
	categoryIDs := db.Model(&models.Category{}).Select("id").Where("name = ?", category)

	posts := []models.Post{}
	err := db.Where("category_id IN (?)", categoryIDs).
		Preload("Tags").
		Preload("User", selectAuthor).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *GormStore) FindPost(ctx context.Context, id uint) (*models.Post, error) {
	return findPost(s.DB.WithContext(ctx), id)
}

func findPost(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	err := db.Preload("Category").
		Preload("Tags").
		Preload("User", selectAuthor).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc").Order("id asc") }).
		Preload("Comments.User", selectAuthor).
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) CreatePost(ctx context.Context, in NewPost) (*models.Post, error) {
	var postID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("name = ?", in.Category).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		tags, err := connectOrCreateTags(tx, in.Tags)
		if err != nil {
			return err
		}

		post := models.Post{
			Title:      in.Title,
			Content:    in.Content,
			CategoryID: category.ID,
			UserID:     in.AuthorID,
			Tags:       tags,
		}
		if err := tx.Omit("Tags.*").Create(&post).Error; err != nil {
			return err
		}
		postID = post.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.FindPost(ctx, postID)
}

func (s *GormStore) UpdateOwnedPost(ctx context.Context, id, userID uint, ch PostChanges) (*models.Post, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]interface{}{"title": ch.Title, "content": ch.Content})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return classify(tx, &models.Post{}, id)
		}

		tags, err := connectOrCreateTags(tx, ch.Tags)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Model(&models.Post{ID: id}).Association("Tags").Append(tags)
	})
	if err != nil {
		return nil, err
	}
	return s.FindPost(ctx, id)
}

func (s *GormStore) DeleteOwnedPost(ctx context.Context, id, userID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return classify(tx, &models.Post{}, id)
		}
		return nil
	})
}

func (s *GormStore) CreateComment(ctx context.Context, postID, userID uint, content string) (*models.Comment, error) {
	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	comment := models.Comment{Content: content, PostID: postID, UserID: userID}
	if err := db.Create(&comment).Error; err != nil {
		return nil, explainCommentInsert(db, postID, userID, err)
	}
	return s.findComment(db, comment.ID)
}

// explainCommentInsert разбирает неудачную вставку комментария: у comments два внешних
// ключа, и пропавший пост (удалён между проверкой и вставкой) не должен выглядеть
// так же, как несуществующий автор из токена.
func explainCommentInsert(db *gorm.DB, postID, userID uint, insertErr error) error {
	for _, ref := range []struct {
		model interface{}
		id    uint
		err   error
	}{
		{&models.Post{}, postID, ErrNotFound},
		{&models.User{}, userID, ErrUnknownAuthor},
	} {
		var count int64
		if err := db.Model(ref.model).Where("id = ?", ref.id).Count(&count).Error; err != nil {
			return insertErr
		}
		if count == 0 {
			return ref.err
		}
	}
	return insertErr
}

func (s *GormStore) UpdateOwnedComment(ctx context.Context, id, userID uint, content string) (*models.Comment, error) {
	db := s.DB.WithContext(ctx)
	res := db.Model(&models.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, classify(db, &models.Comment{}, id)
	}
	return s.findComment(db, id)
}

func (s *GormStore) DeleteOwnedComment(ctx context.Context, id, userID uint) error {
	db := s.DB.WithContext(ctx)
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return classify(db, &models.Comment{}, id)
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) findComment(db *gorm.DB, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := db.Preload("User", selectAuthor).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// classify объясняет, почему условная запись не задела ни одной строки:
// строки нет совсем или она принадлежит другому пользователю.
func classify(db *gorm.DB, model interface{}, id uint) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrForbidden
}

// connectOrCreateTags вставляет недостающие теги и возвращает все теги с этими именами
func connectOrCreateTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	fresh := make([]models.Tag, 0, len(names))
	for _, name := range names {
		fresh = append(fresh, models.Tag{Name: name})
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&fresh).Error
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := tx.Where("name IN ?", names).Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
