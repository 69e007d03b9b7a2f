package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment is money received from a customer, usually against a bill.
// Allocation moves the bill through outstanding → partial → paid and
// reduces the customer's balance.
type Payment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	BillID     *uuid.UUID       `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	Amount     float64          `gorm:"type:decimal(12,2);not null" json:"amount"`
	Mode       enum.PaymentMode `gorm:"size:10;default:'CASH'" json:"mode"`
	Date       time.Time        `gorm:"not null" json:"date"`
	Notes      string           `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time        `json:"created_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Bill     *Bill    `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// Expense is money going out: vendor stock purchases and standalone
// costs (rent, transport, wages).
type Expense struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VendorID  *uuid.UUID     `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Category  string         `gorm:"size:100;not null" json:"category"`
	Amount    float64        `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      time.Time      `gorm:"not null" json:"date"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
