package domain

import (
	"time"

	"gorm.io/gorm"
)

// SiteSettings is the single row of operator-editable content: the
// announcement banner, the USD→TRY exchange rate used for price derivation,
// the stock threshold under which synced products are deactivated, and
// optional overrides for the fallback text templates.
//
// The table holds at most one row: BeforeSave pins the primary key to 1, so
// every save targets the same row regardless of what ID the caller set.
type SiteSettings struct {
	ID                uint              `json:"id"                  gorm:"primaryKey"`
	Announcement      string            `json:"announcement"        gorm:"type:text"`
	USDTRYRate        float64           `json:"usd_try_rate"        gorm:"not null;default:1"`
	LowStockThreshold int               `json:"low_stock_threshold" gorm:"not null;default:0"`
	FallbackTemplates map[string]string `json:"fallback_templates"  gorm:"serializer:json;type:text"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// TableName returns the database table name for SiteSettings.
func (SiteSettings) TableName() string { return "site_settings" }

// BeforeSave pins the singleton primary key.
func (s *SiteSettings) BeforeSave(*gorm.DB) error {
	s.ID = 1
	return nil
}
