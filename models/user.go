package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:VARCHAR(100)" json:"firstName"`
	LastName  string    `gorm:"type:VARCHAR(100)" json:"lastName"`
	Email     *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Author - урезанная проекция пользователя (id, имя, фамилия),
// отдаётся вместе с постами и комментариями
type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:VARCHAR(100)" json:"firstName"`
	LastName  string `gorm:"type:VARCHAR(100)" json:"lastName"`
}

func (Author) TableName() string {
	return "users"
}
