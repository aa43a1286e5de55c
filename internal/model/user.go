package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User represents an account able to authenticate against the API
type User struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Role           string      `gorm:"type:varchar(50);not null" json:"role"` // admin or employee
	Permissions    Permissions `gorm:"serializer:json" json:"permissions"`
	HashedPassword string      `gorm:"type:varchar(255);not null" json:"-"` // never serialized outward
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier exactly once, at creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ValidRole reports whether role is one of the known role names
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}
