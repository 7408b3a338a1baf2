// Package domain defines the persistence models for horoscopes, tarot
// readings, the shop, and the blog. These types are mapped with GORM and
// form the core data layer of the application.
package domain

import "time"

// Interpretation source markers. Rows record whether the text came from a
// provider or from the deterministic fallback generator.
const (
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

// DailyHoroscope is one generated daily reading for a sign. At most one row
// exists per (sign, date, language); rows are immutable after creation.
//
// Date is the ISO calendar day ("2006-01-02") so the natural key is
// timezone-free.
type DailyHoroscope struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	SignSlug  string    `json:"sign"     gorm:"type:varchar(16);not null;uniqueIndex:ux_daily_sign_date,priority:1"`
	Date      string    `json:"date"     gorm:"type:varchar(10);not null;uniqueIndex:ux_daily_sign_date,priority:2"`
	Language  string    `json:"language" gorm:"type:varchar(8);not null;uniqueIndex:ux_daily_sign_date,priority:3"`
	General   string    `json:"general"  gorm:"type:text;not null"`
	Love      string    `json:"love"     gorm:"type:text;not null"`
	Career    string    `json:"career"   gorm:"type:text;not null"`
	Health    string    `json:"health"   gorm:"type:text;not null"`
	Money     string    `json:"money"    gorm:"type:text;not null"`
	Source    string    `json:"source"   gorm:"type:varchar(16);not null;check:source IN ('provider','fallback')"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for DailyHoroscope.
func (DailyHoroscope) TableName() string { return "daily_horoscopes" }

// WeeklyHoroscope is one generated weekly reading. WeekStart is the ISO
// Monday of the week ("2006-01-02").
type WeeklyHoroscope struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	SignSlug  string    `json:"sign"       gorm:"type:varchar(16);not null;uniqueIndex:ux_weekly_sign_week,priority:1"`
	WeekStart string    `json:"week_start" gorm:"type:varchar(10);not null;uniqueIndex:ux_weekly_sign_week,priority:2"`
	Language  string    `json:"language"   gorm:"type:varchar(8);not null;uniqueIndex:ux_weekly_sign_week,priority:3"`
	General   string    `json:"general"    gorm:"type:text;not null"`
	Love      string    `json:"love"       gorm:"type:text;not null"`
	Career    string    `json:"career"     gorm:"type:text;not null"`
	Health    string    `json:"health"     gorm:"type:text;not null"`
	Money     string    `json:"money"      gorm:"type:text;not null"`
	Source    string    `json:"source"     gorm:"type:varchar(16);not null;check:source IN ('provider','fallback')"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for WeeklyHoroscope.
func (WeeklyHoroscope) TableName() string { return "weekly_horoscopes" }

// MonthlyHoroscope is one generated monthly reading. Month is "2006-01".
type MonthlyHoroscope struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	SignSlug  string    `json:"sign"     gorm:"type:varchar(16);not null;uniqueIndex:ux_monthly_sign_month,priority:1"`
	Month     string    `json:"month"    gorm:"type:varchar(7);not null;uniqueIndex:ux_monthly_sign_month,priority:2"`
	Language  string    `json:"language" gorm:"type:varchar(8);not null;uniqueIndex:ux_monthly_sign_month,priority:3"`
	General   string    `json:"general"  gorm:"type:text;not null"`
	Love      string    `json:"love"     gorm:"type:text;not null"`
	Career    string    `json:"career"   gorm:"type:text;not null"`
	Health    string    `json:"health"   gorm:"type:text;not null"`
	Money     string    `json:"money"    gorm:"type:text;not null"`
	Source    string    `json:"source"   gorm:"type:varchar(16);not null;check:source IN ('provider','fallback')"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for MonthlyHoroscope.
func (MonthlyHoroscope) TableName() string { return "monthly_horoscopes" }

// Sections returns the five section bodies keyed by canonical key, in the
// shape the interpret package produces.
func (h DailyHoroscope) Sections() map[string]string {
	return map[string]string{
		"general": h.General, "love": h.Love, "career": h.Career,
		"health": h.Health, "money": h.Money,
	}
}

// Sections returns the five section bodies keyed by canonical key.
func (h WeeklyHoroscope) Sections() map[string]string {
	return map[string]string{
		"general": h.General, "love": h.Love, "career": h.Career,
		"health": h.Health, "money": h.Money,
	}
}

// Sections returns the five section bodies keyed by canonical key.
func (h MonthlyHoroscope) Sections() map[string]string {
	return map[string]string{
		"general": h.General, "love": h.Love, "career": h.Career,
		"health": h.Health, "money": h.Money,
	}
}
