package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:VARCHAR(100);uniqueIndex;not null" json:"name"`
}
