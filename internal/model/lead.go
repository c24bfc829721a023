package model

import (
	"time"

	"gorm.io/gorm"
)

// Lead statuses. Exact literal values are part of the API contract.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusRejected  = "rejected"
	LeadStatusConverted = "converted"
)

// ValidLeadStatus reports whether s is one of the enumerated lead statuses
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusRejected, LeadStatusConverted:
		return true
	}
	return false
}

// Lead represents a sales lead tracked by the executive dashboard.
// ConvertedAt is set exactly when the lead reaches "converted"; RejectedAt and
// Reason are set when it reaches "rejected".
type Lead struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Name        string     `json:"name" gorm:"type:varchar(150);not null"`
	Email       string     `json:"email" gorm:"type:varchar(100);not null"`
	Phone       string     `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Company     string     `json:"company,omitempty" gorm:"type:varchar(150)"`
	Source      string     `json:"source,omitempty" gorm:"type:varchar(100);index"`
	Value       *float64   `json:"value,omitempty"`
	Notes       string     `json:"notes,omitempty" gorm:"type:text"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:new;index"`
	AssigneeID  *string    `json:"assignee_id,omitempty" gorm:"type:varchar(40);index"`
	Assignee    *User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	CreatorID   string     `json:"creator_id" gorm:"type:varchar(40);not null"`
	Creator     *User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	Reason      *string    `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = newID()
	}
	return nil
}
