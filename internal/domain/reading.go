package domain

import (
	"time"

	"gorm.io/gorm"
)

// DrawnCardRecord is one card of a persisted spread, stored as JSON inside
// the reading row.
type DrawnCardRecord struct {
	Position string `json:"position"`
	Card     string `json:"card"`
	Reversed bool   `json:"reversed"`
}

// TarotReading represents one answered question: the drawn spread plus the
// generated interpretation. Readings belong to a user and are soft-deleted
// so feedback stays auditable.
type TarotReading struct {
	ID             string            `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID         string            `json:"user_id"        gorm:"type:varchar(64);not null;index:idx_user_readings"`
	Question       string            `json:"question"       gorm:"type:text;not null"`
	Spread         string            `json:"spread"         gorm:"type:varchar(32);not null"`
	Cards          []DrawnCardRecord `json:"cards"          gorm:"serializer:json;type:text;not null"`
	Interpretation string            `json:"interpretation" gorm:"type:text;not null"`
	Language       string            `json:"language"       gorm:"type:varchar(8);not null"`
	Source         string            `json:"source"         gorm:"type:varchar(16);not null;check:source IN ('provider','fallback')"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `json:"-"              gorm:"index"`
}

// TableName returns the database table name for TarotReading.
func (TarotReading) TableName() string { return "tarot_readings" }

// DailyCard is the card-of-the-day for a user. At most one row exists per
// (user, date); repeated requests on the same day return the same card.
type DailyCard struct {
	ID             string    `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID         string    `json:"user_id"        gorm:"type:varchar(64);not null;uniqueIndex:ux_daily_card_user_date,priority:1"`
	Date           string    `json:"date"           gorm:"type:varchar(10);not null;uniqueIndex:ux_daily_card_user_date,priority:2"`
	CardName       string    `json:"card"           gorm:"type:varchar(64);not null"`
	Reversed       bool      `json:"reversed"       gorm:"not null"`
	Interpretation string    `json:"interpretation" gorm:"type:text;not null"`
	Language       string    `json:"language"       gorm:"type:varchar(8);not null"`
	Source         string    `json:"source"         gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for DailyCard.
func (DailyCard) TableName() string { return "daily_cards" }

// CompatibilityReading stores the generated match text for a pair of signs
// on a given day. SignA/SignB are kept in canonical (alphabetical slug)
// order so aries+libra and libra+aries share one row.
type CompatibilityReading struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	SignA     string    `json:"sign_a"   gorm:"type:varchar(16);not null;uniqueIndex:ux_compat_pair_date,priority:1"`
	SignB     string    `json:"sign_b"   gorm:"type:varchar(16);not null;uniqueIndex:ux_compat_pair_date,priority:2"`
	Date      string    `json:"date"     gorm:"type:varchar(10);not null;uniqueIndex:ux_compat_pair_date,priority:3"`
	Language  string    `json:"language" gorm:"type:varchar(8);not null;uniqueIndex:ux_compat_pair_date,priority:4"`
	Score     int       `json:"score"    gorm:"not null;check:score BETWEEN 0 AND 100"`
	General   string    `json:"general"  gorm:"type:text;not null"`
	Love      string    `json:"love"     gorm:"type:text;not null"`
	Career    string    `json:"career"   gorm:"type:text;not null"`
	Source    string    `json:"source"   gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for CompatibilityReading.
func (CompatibilityReading) TableName() string { return "compatibility_readings" }

// BirthChart holds one natal chart summary per user; regenerating replaces
// the existing row.
type BirthChart struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"     gorm:"type:varchar(64);not null;uniqueIndex:ux_birthchart_user"`
	BirthDate  time.Time `json:"birth_date"  gorm:"not null"`
	BirthPlace string    `json:"birth_place" gorm:"type:varchar(128)"`
	SunSign    string    `json:"sun_sign"    gorm:"type:varchar(16);not null"`
	ChartText  string    `json:"chart_text"  gorm:"type:text;not null"`
	Language   string    `json:"language"    gorm:"type:varchar(8);not null"`
	Source     string    `json:"source"      gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for BirthChart.
func (BirthChart) TableName() string { return "birth_charts" }

// ReadingFeedback represents a user-provided rating on a tarot reading.
// A user can only leave one feedback entry per reading (enforced by unique
// index).
type ReadingFeedback struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	ReadingID string         `json:"reading_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_feedback_reading_user"`
	UserID    string         `json:"user_id"    gorm:"type:varchar(64);not null;index;uniqueIndex:ux_feedback_reading_user"`
	Value     int            `json:"value"      gorm:"not null;check:value IN (-1,1)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`

	// Reading is the rated reading. Feedback is cascade-deleted if the
	// underlying reading is removed.
	Reading TarotReading `json:"-" gorm:"foreignKey:ReadingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ReadingFeedback.
func (ReadingFeedback) TableName() string { return "reading_feedback" }
