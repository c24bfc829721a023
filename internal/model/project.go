package model

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a client engagement grouping tasks and scripts
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Name        string     `json:"name" gorm:"type:varchar(150);not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	ClientID    string     `json:"client_id" gorm:"type:varchar(40);index;not null"`
	Client      *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Status      string     `json:"status" gorm:"type:varchar(30);default:active"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return nil
}
