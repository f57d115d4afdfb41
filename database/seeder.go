package database

import (
	"strings"

	"postboard/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCategories создаёт недостающие категории, существующие не трогает
func SeedCategories(db *gorm.DB, names []string) error {
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		categories = append(categories, models.Category{Name: name})
	}
	if len(categories) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&categories).Error
}
