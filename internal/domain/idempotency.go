package domain

import "time"

// OrderIdempotency records the outcome of a processed checkout, keyed by
// (user_id, key). It enables safe retries of POST /orders: a replayed
// Idempotency-Key returns the originally created order without charging or
// decrementing stock again.
type OrderIdempotency struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID    string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_order_idem_user_key,priority:1"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_order_idem_user_key,priority:2"`
	OrderID   string    `gorm:"type:TEXT NOT NULL"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (OrderIdempotency) TableName() string { return "order_idempotency" }
