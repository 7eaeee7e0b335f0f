package dto

import "chefbazaar_backend/internal/models"

type CreateMealRequest struct {
	FoodName              string   `json:"foodName" validate:"required"`
	ChefName              string   `json:"chefName" validate:"required"`
	FoodImage             string   `json:"foodImage" validate:"required"`
	Price                 float64  `json:"price" validate:"gte=0"`
	Ingredients           []string `json:"ingredients" validate:"omitempty"`
	EstimatedDeliveryTime string   `json:"estimatedDeliveryTime" validate:"required"`
	ChefExperience        string   `json:"chefExperience" validate:"required"`
	DeliveryArea          string   `json:"deliveryArea" validate:"omitempty"`
}

type UpdateMealRequest struct {
	FoodName              *string  `json:"foodName" validate:"omitempty"`
	FoodImage             *string  `json:"foodImage" validate:"omitempty"`
	Price                 *float64 `json:"price" validate:"omitempty,gte=0"`
	Ingredients           []string `json:"ingredients" validate:"omitempty"`
	EstimatedDeliveryTime *string  `json:"estimatedDeliveryTime" validate:"omitempty"`
	ChefExperience        *string  `json:"chefExperience" validate:"omitempty"`
	DeliveryArea          *string  `json:"deliveryArea" validate:"omitempty"`
}

type MealListResponse struct {
	Items      []models.Meal `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}
