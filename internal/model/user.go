package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleEmployee  = "employee"
	RoleExecutive = "executive"
)

// User represents a dashboard user stored in the database
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Email       string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Role        string    `json:"role" gorm:"type:varchar(20);default:employee"`
	Designation string    `json:"designation" gorm:"type:varchar(100)"`
	Phone       string    `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Department  string    `json:"department,omitempty" gorm:"type:varchar(100)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return nil
}
