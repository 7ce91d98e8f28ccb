package entity

import (
	"github.com/gofrs/uuid/v5"
)

type UserRole = string

const (
	RoleAdmin UserRole = "admin"
	RoleOwner UserRole = "owner"
	RoleStaff UserRole = "staff"
)

type UserStatus = string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID            uuid.UUID  `json:"id,omitempty"`
	CompanyID     uuid.UUID  `json:"company_id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Role          UserRole   `json:"role"`
	Status        UserStatus `json:"status,omitempty"`
	BusinessName  string     `json:"business_name,omitempty"`
	Location      string     `json:"location,omitempty"`
	ContactNumber string     `json:"contact_number,omitempty"`
}
