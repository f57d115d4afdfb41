package models

// Tag общий для всех постов, удаление поста тег не удаляет
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:VARCHAR(100);uniqueIndex;not null" json:"name"`
}
