package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kehanet/go-arcana-backend/internal/ai"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// newServiceDB opens an isolated in-memory database with the full schema.
func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// fakeAI is a scripted provider for service tests.
type fakeAI struct {
	text  string
	err   error
	calls int
}

func (f *fakeAI) Name() string { return "fake" }

func (f *fakeAI) Complete(ctx context.Context, req ai.Request) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		lang, def, want string
	}{
		{"tr", "tr", "tr"},
		{"EN", "tr", "en"},
		{"", "en", "en"},
		{"de", "tr", "tr"},
		{"", "", "tr"},
	}
	for _, tc := range cases {
		if got := normalizeLanguage(tc.lang, tc.def); got != tc.want {
			t.Fatalf("normalizeLanguage(%q, %q) = %q; want %q", tc.lang, tc.def, got, tc.want)
		}
	}
}

func TestPeriodKeys(t *testing.T) {
	// Monday 2025-03-03 through Sunday 2025-03-09 share a week key.
	for day := 3; day <= 9; day++ {
		at := time.Date(2025, time.March, day, 15, 0, 0, 0, time.UTC)
		if got := weekStartKey(at); got != "2025-03-03" {
			t.Fatalf("weekStartKey(%d) = %q", day, got)
		}
	}
	at := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC) // Sunday
	if got := weekStartKey(at); got != "2025-02-24" {
		t.Fatalf("weekStartKey(Sunday) = %q", got)
	}
	if got := monthKey(at); got != "2025-03" {
		t.Fatalf("monthKey = %q", got)
	}
	if got := dateKey(at); got != "2025-03-02" {
		t.Fatalf("dateKey = %q", got)
	}
}

func TestDeriveTRYCents(t *testing.T) {
	cases := []struct {
		usd  int64
		rate float64
		want int64
	}{
		{1999, 34.5, 68966}, // 68965.5 rounds up
		{100, 34.5, 3450},
		{0, 34.5, 0},
		{1, 0.004, 0}, // 0.004 rounds down
		{250, 1, 250},
	}
	for _, tc := range cases {
		if got := DeriveTRYCents(tc.usd, tc.rate); got != tc.want {
			t.Fatalf("DeriveTRYCents(%d, %v) = %d; want %d", tc.usd, tc.rate, got, tc.want)
		}
	}
	// Equal inputs always derive equal prices.
	for i := 0; i < 5; i++ {
		if DeriveTRYCents(123456789, 32.847) != DeriveTRYCents(123456789, 32.847) {
			t.Fatalf("derivation must be deterministic")
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Merkür Retrosu Başlıyor!":  "merkur-retrosu-basliyor",
		"  The  Fool's Journey  ":   "the-fool-s-journey",
		"Çağla & Işık":              "cagla-isik",
		"---":                       "",
		"Tarot Deck 2025":           "tarot-deck-2025",
		"İstanbul'da Dolunay":       "istanbul-da-dolunay",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q; want %q", in, got, want)
		}
	}
}
