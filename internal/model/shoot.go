package model

import (
	"time"

	"gorm.io/gorm"
)

// Shoot represents a scheduled production shoot
type Shoot struct {
	ID           string            `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Title        string            `json:"title" gorm:"type:varchar(200);not null"`
	Description  string            `json:"description,omitempty" gorm:"type:text"`
	ClientID     string            `json:"client_id" gorm:"type:varchar(40);index;not null"`
	Client       *Client           `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Location     string            `json:"location,omitempty" gorm:"type:varchar(200)"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Status       string            `json:"status" gorm:"type:varchar(30);default:scheduled"`
	Budget       *float64          `json:"budget,omitempty"`
	Notes        string            `json:"notes,omitempty" gorm:"type:text"`
	Assignments  []ShootAssignment `json:"assignments,omitempty" gorm:"foreignKey:ShootID"`
	EditingTasks []EditingTask     `json:"editing_tasks,omitempty" gorm:"foreignKey:ShootID"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (s *Shoot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return nil
}

// ShootAssignment links a user to a shoot with a production role
type ShootAssignment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	ShootID   string    `json:"shoot_id" gorm:"type:varchar(40);index;not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(40);index;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role      string    `json:"role" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *ShootAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = newID()
	}
	return nil
}
