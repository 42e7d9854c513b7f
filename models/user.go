package models

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name"`
	Email          string         `json:"email" gorm:"unique"`
	Password       string         `json:"password,omitempty"`
	Role           string         `json:"role" gorm:"default:client"`
	Availabilities []Availability `json:"availabilities,omitempty" gorm:"foreignKey:ProviderID"`
	Restrictions   []Restriction  `json:"restrictions,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings       []Booking      `json:"bookings,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
