package models

import "time"

// Favorite is a (userEmail, mealId) pair with denormalized meal data.
// The pair is unique: a duplicate add is rejected as a conflict, not merged.
type Favorite struct {
	BaseModel
	UserEmail string    `gorm:"not null;uniqueIndex:idx_fav_user_meal" json:"userEmail"`
	MealID    string    `gorm:"not null;uniqueIndex:idx_fav_user_meal" json:"mealId"`
	MealName  string    `gorm:"not null" json:"mealName"`
	ChefID    string    `gorm:"not null" json:"chefId"`
	ChefName  string    `gorm:"not null" json:"chefName"`
	Price     float64   `gorm:"not null" json:"price"`
	AddedTime time.Time `json:"addedTime"`
}
