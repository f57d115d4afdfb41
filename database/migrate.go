package database

import (
	"postboard/models"

	"gorm.io/gorm"
)

// Порядок важен: posts ссылается на users и categories, post_tags и comments - на posts
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Tag{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.Post{}, &models.Comment{}); err != nil {
		return err
	}

	// лента категории сортируется по created_at
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_category_created ON posts(category_id, created_at DESC)`).Error; err != nil {
		return err
	}
	return nil
}
