package model

import (
	"time"

	"gorm.io/gorm"
)

// Invoice statuses
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice represents a billing document issued to a client
type Invoice struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(40)"`
	ClientID      string     `json:"client_id" gorm:"type:varchar(40);index;not null"`
	Client        *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	InvoiceNumber string     `json:"invoice_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:pending;index"`
	DueDate       time.Time  `json:"due_date"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	Description   string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = newID()
	}
	return nil
}

// Revenue is a recognized income row, immutable once created. Rows are the
// sole input of the revenue aggregation views.
type Revenue struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Amount      float64   `json:"amount" gorm:"not null"`
	ClientID    *string   `json:"client_id,omitempty" gorm:"type:varchar(40);index"`
	Client      *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Month       int       `json:"month" gorm:"not null;index"` // 1..12
	Year        int       `json:"year" gorm:"not null;index"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *Revenue) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = newID()
	}
	return nil
}

// Expense is a cost row, immutable once created
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(40)"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Category    string    `json:"category,omitempty" gorm:"type:varchar(100)"`
	Month       int       `json:"month" gorm:"not null;index"` // 1..12
	Year        int       `json:"year" gorm:"not null;index"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = newID()
	}
	return nil
}
