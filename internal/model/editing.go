package model

import (
	"time"

	"gorm.io/gorm"
)

// Editing workflow statuses
const (
	EditingStatusEditing    = "editing"
	EditingStatusDraftReady = "draft_ready"
	EditingStatusInReview   = "in_review"
	EditingStatusApproved   = "approved"
)

// ValidEditingStatus reports whether s is one of the enumerated editing statuses
func ValidEditingStatus(s string) bool {
	switch s {
	case EditingStatusEditing, EditingStatusDraftReady, EditingStatusInReview, EditingStatusApproved:
		return true
	}
	return false
}

// EditingTask represents a post-production work item
type EditingTask struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Title       string     `json:"title" gorm:"type:varchar(200);not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	ShootID     *string    `json:"shoot_id,omitempty" gorm:"type:varchar(40);index"`
	Shoot       *Shoot     `json:"shoot,omitempty" gorm:"foreignKey:ShootID"`
	AssigneeID  *string    `json:"assignee_id,omitempty" gorm:"type:varchar(40);index"`
	Assignee    *User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:editing;index"`
	Priority    string     `json:"priority" gorm:"type:varchar(20);default:medium"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	Comments    []Comment  `json:"comments,omitempty" gorm:"foreignKey:EditingTaskID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (e *EditingTask) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = newID()
	}
	return nil
}

// Comment is review feedback on an editing task
type Comment struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	EditingTaskID string    `json:"editing_task_id" gorm:"type:varchar(40);index;not null"`
	UserID        string    `json:"user_id" gorm:"type:varchar(40);not null"`
	User          *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	Timestamp     time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}
