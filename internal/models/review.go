package models

import "time"

// Review is owned by the reviewer's email. A reviewer may post several
// reviews for the same meal; there is no uniqueness constraint.
type Review struct {
	BaseModel
	FoodID        string    `gorm:"not null;index" json:"foodId"`
	ReviewerName  string    `gorm:"not null" json:"reviewerName"`
	ReviewerImage string    `json:"reviewerImage,omitempty"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string    `gorm:"not null" json:"comment"`
	Date          time.Time `json:"date"`
	UserEmail     string    `gorm:"not null;index" json:"userEmail"`
}
