// Package services – shared helpers
//
// Small helpers used by several services: content-language normalization,
// period key formatting, slug generation, currency derivation, and loading
// the fallback text generator with operator overrides from site settings.
package services

import (
	"context"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/interpret"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

const (
	langTurkish = "tr"
	langEnglish = "en"

	// maxInputRunes caps free-text inputs (questions, topics).
	maxInputRunes = 500
)

// normalizeLanguage maps arbitrary input to a supported content language,
// falling back to def (and ultimately Turkish).
func normalizeLanguage(lang, def string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case langTurkish:
		return langTurkish
	case langEnglish:
		return langEnglish
	}
	switch strings.ToLower(strings.TrimSpace(def)) {
	case langEnglish:
		return langEnglish
	default:
		return langTurkish
	}
}

// dateKey formats the timezone-free day key used in natural keys.
func dateKey(t time.Time) string { return t.UTC().Format("2006-01-02") }

// weekStartKey returns the day key of the ISO Monday of t's week.
func weekStartKey(t time.Time) string {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

// monthKey formats the month key used in natural keys ("2025-01").
func monthKey(t time.Time) string { return t.UTC().Format("2006-01") }

// DeriveTRYCents converts a USD price in cents to TRY kuruş using the given
// exchange rate. The computation stays in integer cents: round half away
// from zero on the single multiplication, so equal inputs always derive
// equal prices.
func DeriveTRYCents(usdCents int64, rate float64) int64 {
	return int64(math.Round(float64(usdCents) * rate))
}

// loadFallbacks builds the fallback text generator with the operator's
// template overrides. Settings being unreadable degrades to the compiled-in
// defaults rather than failing the request.
func loadFallbacks(ctx context.Context, db *gorm.DB) *interpret.Fallbacks {
	if db != nil {
		if s, err := repo.GetSettings(ctx, db); err == nil {
			return interpret.NewFallbacks(s.FallbackTemplates)
		}
	}
	return interpret.NewFallbacks(nil)
}

// slugReplacer transliterates Turkish letters before slugging.
var slugReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "I", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// Slugify lowers, transliterates, and joins a title into a URL slug. Runs of
// non-alphanumeric characters collapse to single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(slugReplacer.Replace(strings.TrimSpace(s)))
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
