package models

import "time"

// Post хранит запись блога. Автор и категория задаются при создании.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:VARCHAR(255);not null" json:"title"`
	Content    string    `gorm:"type:TEXT;not null" json:"content"`
	CategoryID uint      `gorm:"not null;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags       []Tag     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"tags"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       *Author   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments   []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
