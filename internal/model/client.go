package model

import (
	"time"

	"gorm.io/gorm"
)

// Client represents an agency client
type Client struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Name          string    `json:"name" gorm:"type:varchar(150);uniqueIndex;not null"`
	Email         string    `json:"email,omitempty" gorm:"type:varchar(100)"`
	Phone         string    `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Company       string    `json:"company,omitempty" gorm:"type:varchar(150)"`
	Address       string    `json:"address,omitempty" gorm:"type:text"`
	ContactPerson string    `json:"contact_person,omitempty" gorm:"type:varchar(100)"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}
