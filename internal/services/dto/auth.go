package dto

import "chefbazaar_backend/internal/models"

// LoginRequest carries the verified identity claims supplied by the
// external auth provider. The backend trusts them as presented.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photoURL" validate:"omitempty"`
	Address  string `json:"address" validate:"omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
