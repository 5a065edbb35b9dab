package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/syedahad2205/dajaj-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill is a finalized order: sequentially numbered, token-protected, and
// immutable once created. Bills are never updated or deleted (append-only
// ledger semantics); totals are frozen copies of the cart at finalize time.
type Bill struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"-"`
	BillNo         string           `gorm:"size:20;unique;not null;index" json:"bill_no"`
	PublicToken    string           `gorm:"size:64;unique;not null;index" json:"-"`
	CustomerName   string           `gorm:"size:100;not null" json:"customer_name"`
	CustomerMobile string           `gorm:"size:20" json:"customer_mobile,omitempty"`
	Subtotal       float64          `gorm:"not null" json:"subtotal"`
	CGST           float64          `gorm:"not null" json:"cgst"`
	SGST           float64          `gorm:"not null" json:"sgst"`
	GrandTotal     float64          `gorm:"not null" json:"grand_total"`
	PaymentMode    enum.PaymentMode `gorm:"size:20;not null" json:"payment_mode"`
	CreatedAt      time.Time        `json:"created_at"`

	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before persisting a new bill
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

// BillItem is a frozen snapshot of one cart line at finalize time.
type BillItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	BillID        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	SKU           string    `gorm:"size:100;not null" json:"sku"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Variant       string    `gorm:"size:50;not null" json:"variant"`
	Quantity      int       `gorm:"not null" json:"qty"`
	UnitBasePrice float64   `gorm:"not null" json:"base_price"`
	LineTotal     float64   `gorm:"not null" json:"item_total"`
	Position      int       `gorm:"not null" json:"-"` // cart insertion order

	Addons []BillItemAddon `gorm:"foreignKey:BillItemID" json:"addons"`
}

// BeforeCreate generates a UUID before persisting a new bill item
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

// BillItemAddon records one add-on applied to a bill item, priced per unit.
type BillItemAddon struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	BillItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	UnitPrice  float64   `gorm:"not null" json:"price"`
}

// BeforeCreate generates a UUID before persisting a new bill item add-on
func (a *BillItemAddon) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItemAddon model
func (BillItemAddon) TableName() string {
	return "bill_item_addons"
}

// BillCounter is the single persisted source of sequential bill numbers.
// It is mutated only inside the numbering transaction.
type BillCounter struct {
	Name    string `gorm:"size:50;primary_key"`
	Current int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for the BillCounter model
func (BillCounter) TableName() string {
	return "bill_counters"
}
