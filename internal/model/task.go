package model

import (
	"time"

	"gorm.io/gorm"
)

// Task statuses. Exact literal values are part of the API contract.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusOverdue    = "overdue"
)

// Priority levels, shared by tasks and editing tasks
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidTaskStatus reports whether s is one of the enumerated task statuses
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the enumerated priorities
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents a work item on the employee dashboard
type Task struct {
	ID             string     `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Title          string     `json:"title" gorm:"type:varchar(200);not null"`
	Description    string     `json:"description,omitempty" gorm:"type:text"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:pending;index"`
	Priority       string     `json:"priority" gorm:"type:varchar(20);default:medium"`
	ProjectID      *string    `json:"project_id,omitempty" gorm:"type:varchar(40);index"`
	Project        *Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	AssigneeID     *string    `json:"assignee_id,omitempty" gorm:"type:varchar(40);index"`
	Assignee       *User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	CreatorID      string     `json:"creator_id" gorm:"type:varchar(40);not null"`
	Creator        *User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	ActualHours    float64    `json:"actual_hours" gorm:"default:0"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	TimeLogs       []TimeLog  `json:"time_logs,omitempty" gorm:"foreignKey:TaskID"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	return nil
}

// TimeLog records time spent on a task
type TimeLog struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(40)"`
	TaskID    string     `json:"task_id" gorm:"type:varchar(40);index;not null"`
	UserID    string     `json:"user_id" gorm:"type:varchar(40);index;not null"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  *float64   `json:"duration,omitempty"` // Hours
	Notes     string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
}

func (l *TimeLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = newID()
	}
	return nil
}
