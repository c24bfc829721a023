package model

import (
	"time"

	"gorm.io/gorm"
)

// Script represents a production script with versioned content
type Script struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Title     string          `json:"title" gorm:"type:varchar(200);not null"`
	Content   string          `json:"content" gorm:"type:text;not null"`
	ProjectID *string         `json:"project_id,omitempty" gorm:"type:varchar(40);index"`
	Project   *Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	ClientID  *string         `json:"client_id,omitempty" gorm:"type:varchar(40);index"`
	Client    *Client         `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Versions  []ScriptVersion `json:"versions,omitempty" gorm:"foreignKey:ScriptID"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s *Script) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return nil
}

// ScriptVersion is an immutable snapshot of script content. Version numbers
// start at 1 and increase by one per snapshot.
type ScriptVersion struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	ScriptID  string    `json:"script_id" gorm:"type:varchar(40);index;not null"`
	Version   int       `json:"version" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Changes   string    `json:"changes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *ScriptVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = newID()
	}
	return nil
}
