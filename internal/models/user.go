package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleChef  UserRole = "chef"
	UserRoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusFraud  UserStatus = "fraud"
)

// User is the identity directory record. Upserted on the first verified
// login; role/status/chefId are only ever changed by request approval or
// admin moderation, never by profile sync. ChefID is assigned exactly once,
// when a chef-type role request is approved.
type User struct {
	BaseModel
	Name     string     `gorm:"not null" json:"name"`
	Email    string     `gorm:"uniqueIndex;not null" json:"email"`
	PhotoURL string     `json:"photoURL,omitempty"`
	Address  string     `json:"address,omitempty"`
	Role     UserRole   `gorm:"type:varchar(20);default:'user'" json:"role"`
	Status   UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	ChefID   string     `gorm:"index" json:"chefId,omitempty"`
}
