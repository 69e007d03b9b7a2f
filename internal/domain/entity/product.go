package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item. A lot is a fixed multiple of units sold as
// one pack; LotPrice is kept equal to UnitPrice × LotSize whenever the
// product is written.
type Product struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Code              string         `gorm:"size:100;unique;not null" json:"code"`
	LotSize           int            `gorm:"default:1" json:"lot_size"`
	UnitPrice         float64        `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	LotPrice          float64        `gorm:"type:decimal(12,2);not null" json:"lot_price"`
	AvailableStock    int            `gorm:"default:0" json:"available_stock"`
	LowStockThreshold int            `gorm:"default:10" json:"low_stock_threshold"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the lot price consistent with the unit price.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.LotSize < 1 {
		p.LotSize = 1
	}
	p.LotPrice = p.UnitPrice * float64(p.LotSize)
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// StockEntry records stock added to a product, optionally purchased from
// a vendor at a unit cost.
type StockEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	VendorID      *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	QuantityAdded int        `gorm:"not null" json:"quantity_added"`
	UnitCost      float64    `gorm:"type:decimal(12,2);default:0" json:"unit_cost"`
	AddedBy       uuid.UUID  `gorm:"type:uuid;not null" json:"added_by"`
	EntryDate     time.Time  `gorm:"not null" json:"entry_date"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Vendor  *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock entry
func (s *StockEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockEntry model
func (StockEntry) TableName() string {
	return "stock_entries"
}

// DamagedStock is a write-off: the quantity leaves available stock and
// is kept for the inventory dashboard.
type DamagedStock struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Reason     string    `gorm:"type:text" json:"reason"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null" json:"recorded_by"`
	Date       time.Time `gorm:"not null" json:"date"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new damage record
func (d *DamagedStock) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DamagedStock model
func (DamagedStock) TableName() string {
	return "damaged_stock"
}
