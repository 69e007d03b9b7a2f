package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfile is the seller identity printed on invoices and
// receipts. A single row; when absent the renderer falls back to
// placeholder text.
type CompanyProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     string    `gorm:"type:text" json:"address"`
	GSTNumber   string    `gorm:"size:20" json:"gst_number"`
	Phone       string    `gorm:"size:15" json:"phone"`
	BankDetails string    `gorm:"type:text" json:"bank_details"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the profile
func (c *CompanyProfile) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanyProfile model
func (CompanyProfile) TableName() string {
	return "company_profile"
}
