package dto

type AddFavoriteRequest struct {
	MealID   string  `json:"mealId" validate:"required"`
	MealName string  `json:"mealName" validate:"required"`
	ChefID   string  `json:"chefId" validate:"required"`
	ChefName string  `json:"chefName" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}
