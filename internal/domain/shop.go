package domain

import (
	"time"

	"gorm.io/gorm"
)

// Order lifecycle states. Delivered and Cancelled are terminal.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCard           = "card"
	PaymentBankTransfer   = "bank_transfer"
	PaymentCashOnDelivery = "cash_on_delivery"
)

// Product is one sellable item. Prices are integer cents/kuruş in both
// currencies; the TRY price is derived from the USD price and the settings
// exchange rate whenever either changes.
//
// Supplier/ExternalID link the product to an external catalog for sync;
// both are empty for natively listed products.
type Product struct {
	ID            string         `json:"id"              gorm:"type:char(36);primaryKey"`
	Slug          string         `json:"slug"            gorm:"type:varchar(128);not null;uniqueIndex:ux_product_slug"`
	Title         string         `json:"title"           gorm:"type:varchar(255);not null"`
	Description   string         `json:"description"     gorm:"type:text"`
	PriceUSDCents int64          `json:"price_usd_cents" gorm:"not null;check:price_usd_cents >= 0"`
	PriceTRYCents int64          `json:"price_try_cents" gorm:"not null;check:price_try_cents >= 0"`
	Stock         int            `json:"stock"           gorm:"not null;check:stock >= 0"`
	SalesCount    int            `json:"sales_count"     gorm:"not null;default:0"`
	Supplier      string         `json:"supplier,omitempty"    gorm:"type:varchar(64);index:idx_supplier_external,priority:1"`
	ExternalID    string         `json:"external_id,omitempty" gorm:"type:varchar(128);index:idx_supplier_external,priority:2"`
	Active        bool           `json:"active"          gorm:"not null;default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"               gorm:"index"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// Order is one checkout. Totals are snapshots taken at checkout time so
// later price or rate changes never alter past orders.
type Order struct {
	ID            string         `json:"id"              gorm:"type:char(36);primaryKey"`
	UserID        string         `json:"user_id"         gorm:"type:varchar(64);not null;index:idx_user_orders"`
	Status        string         `json:"status"          gorm:"type:varchar(16);not null;check:status IN ('pending','confirmed','preparing','shipped','delivered','cancelled')"`
	PaymentMethod string         `json:"payment_method"  gorm:"type:varchar(32);not null"`
	Paid          bool           `json:"paid"            gorm:"not null;default:false"`
	TotalUSDCents int64          `json:"total_usd_cents" gorm:"not null"`
	TotalTRYCents int64          `json:"total_try_cents" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"               gorm:"index"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// Terminal reports whether the order is in a final state.
func (o Order) Terminal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}

// OrderItem is one line of an order with unit prices snapshotted at
// checkout.
type OrderItem struct {
	ID           string    `json:"id"             gorm:"type:char(36);primaryKey"`
	OrderID      string    `json:"order_id"       gorm:"type:char(36);not null;index:idx_order_items"`
	ProductID    string    `json:"product_id"     gorm:"type:char(36);not null;index"`
	Title        string    `json:"title"          gorm:"type:varchar(255);not null"`
	Quantity     int       `json:"quantity"       gorm:"not null;check:quantity > 0"`
	UnitUSDCents int64     `json:"unit_usd_cents" gorm:"not null"`
	UnitTRYCents int64     `json:"unit_try_cents" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for OrderItem.
func (OrderItem) TableName() string { return "order_items" }
