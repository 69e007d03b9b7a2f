package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill is a finalized sale. Totals are computed by the billing core at
// submission and written through; they are immutable afterwards except
// via delete-and-revert. GSTAmount is the combined SGST+CGST+CESS
// extracted from the tax-inclusive item prices.
type Bill struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BillNo      string          `gorm:"size:50;unique;not null" json:"bill_no"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID     *uuid.UUID      `gorm:"type:uuid;index" json:"order_id,omitempty"`
	DateOfBill  time.Time       `gorm:"not null" json:"date_of_bill"`
	IsGSTBill   bool            `gorm:"default:false" json:"is_gst_bill"`
	SGSTPercent float64         `gorm:"type:decimal(5,2);default:0" json:"sgst_percent"`
	CGSTPercent float64         `gorm:"type:decimal(5,2);default:0" json:"cgst_percent"`
	CESSPercent float64         `gorm:"type:decimal(5,2);default:0" json:"cess_percent"`
	GSTAmount   float64         `gorm:"type:decimal(12,2);default:0" json:"gst_amount"`
	Discount    float64         `gorm:"type:decimal(12,2);default:0" json:"discount"`
	TotalAmount float64         `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaidAmount  float64         `gorm:"type:decimal(12,2);default:0" json:"paid_amount"`
	Status      enum.BillStatus `gorm:"default:0" json:"status"`
	Comments    string          `gorm:"type:text" json:"comments"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Customer Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Items    []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// Due returns the unpaid remainder.
func (b *Bill) Due() float64 {
	return b.TotalAmount - b.PaidAmount
}

// BillItem is one line of a bill. Product name, lot size and price are
// copied from the catalog at creation, never mutated afterwards.
type BillItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID      uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	LotSize     int       `gorm:"default:1" json:"lot_size"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Total       float64   `gorm:"type:decimal(12,2);not null" json:"total"`
	CreatedAt   time.Time `json:"created_at"`

	Bill    Bill    `gorm:"foreignKey:BillID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
