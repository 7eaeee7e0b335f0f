package models

import "time"

type RequestType string

const (
	RequestTypeChef  RequestType = "chef"
	RequestTypeAdmin RequestType = "admin"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RoleRequest is a pending role-elevation request. It leaves the pending
// status exactly once: deciding an already approved or rejected request is
// a conflict and produces no directory mutation.
type RoleRequest struct {
	BaseModel
	UserName      string        `gorm:"not null" json:"userName"`
	UserEmail     string        `gorm:"not null;index" json:"userEmail"`
	RequestType   RequestType   `gorm:"type:varchar(10);not null" json:"requestType"`
	RequestStatus RequestStatus `gorm:"type:varchar(10);default:'pending'" json:"requestStatus"`
	RequestTime   time.Time     `json:"requestTime"`
}
