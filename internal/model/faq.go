package model

import (
	"time"

	"gorm.io/gorm"
)

// FAQ is a help-centre entry
type FAQ struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Question  string    `json:"question" gorm:"type:text;not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	Category  string    `json:"category,omitempty" gorm:"type:varchar(100);index"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = newID()
	}
	return nil
}
