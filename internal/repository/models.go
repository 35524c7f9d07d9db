package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Recipe struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Ingredients string    `gorm:"type:text"`
	Image       *string   `gorm:"type:varchar(255)"` // asset name, nil when no image uploaded
	CreatedAt   time.Time `gorm:"not null;index"`
}

// RecipeRow is a recipe joined with its owner's username, as returned by
// the list operations.
type RecipeRow struct {
	Recipe
	Username string
}
