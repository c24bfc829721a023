package model

import (
	"time"

	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeUrgent   = "urgent"
	NotificationTypeApproval = "approval"
	NotificationTypeSystem   = "system"
)

// ValidNotificationType reports whether t is one of the enumerated types
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationTypeUrgent, NotificationTypeApproval, NotificationTypeSystem:
		return true
	}
	return false
}

// Notification is a dashboard notification addressed to a user
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(40);index;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Type      string    `json:"type" gorm:"type:varchar(20);index"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	ActionURL string    `json:"action_url,omitempty" gorm:"type:varchar(300)"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = newID()
	}
	return nil
}
