package models

// Meal is a chef-authored listing. UserEmail is the owner key: update and
// delete require the caller's email to match it, role alone is not enough.
type Meal struct {
	BaseModel
	FoodName              string      `gorm:"not null" json:"foodName"`
	ChefName              string      `gorm:"not null" json:"chefName"`
	ChefID                string      `gorm:"not null;index" json:"chefId"`
	FoodImage             string      `gorm:"not null" json:"foodImage"`
	Price                 float64     `gorm:"not null;check:price >= 0" json:"price"`
	Rating                float64     `gorm:"default:0" json:"rating"`
	Ingredients           StringSlice `gorm:"type:text" json:"ingredients"`
	EstimatedDeliveryTime string      `gorm:"not null" json:"estimatedDeliveryTime"`
	ChefExperience        string      `gorm:"not null" json:"chefExperience"`
	DeliveryArea          string      `json:"deliveryArea,omitempty"`
	UserEmail             string      `gorm:"not null;index" json:"userEmail"`
}
