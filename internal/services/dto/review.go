package dto

type CreateReviewRequest struct {
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"required"`
	ReviewerImage string `json:"reviewerImage" validate:"omitempty"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty"`
}
