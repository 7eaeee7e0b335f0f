package dto

import "chefbazaar_backend/internal/models"

type CreateRoleRequest struct {
	RequestType models.RequestType `json:"requestType" validate:"required,oneof=chef admin"`
}

type DecideRoleRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

type DecideRoleResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}
