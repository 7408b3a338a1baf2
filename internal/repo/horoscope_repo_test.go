package repo

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

func dailyRow(sign, date, lang string) *domain.DailyHoroscope {
	return &domain.DailyHoroscope{
		SignSlug: sign, Date: date, Language: lang,
		General: "g", Love: "l", Career: "c", Health: "h", Money: "m",
		Source: domain.SourceProvider,
	}
}

func TestDailyHoroscope_CreateAndGet(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	created, err := CreateDailyHoroscope(ctx, db, dailyRow("leo", "2025-03-03", "tr"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated ID")
	}

	got, err := GetDailyHoroscope(ctx, db, "leo", "2025-03-03", "tr")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.General != "g" {
		t.Fatalf("got %+v", got)
	}

	if _, err := GetDailyHoroscope(ctx, db, "leo", "2025-03-04", "tr"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDailyHoroscope_CreateAbsorbsDuplicate(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	first, err := CreateDailyHoroscope(ctx, db, dailyRow("leo", "2025-03-03", "tr"))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	loser := dailyRow("leo", "2025-03-03", "tr")
	loser.General = "different text"
	second, err := CreateDailyHoroscope(ctx, db, loser)
	if err != nil {
		t.Fatalf("second create should absorb the violation: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the winning row back, got %s vs %s", second.ID, first.ID)
	}
	if second.General != "g" {
		t.Fatalf("row content must be the first writer's, got %q", second.General)
	}

	var cnt int64
	db.Model(&domain.DailyHoroscope{}).Count(&cnt)
	if cnt != 1 {
		t.Fatalf("expected one row, got %d", cnt)
	}
}

func TestWeeklyMonthly_GetOrCreate(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	w := &domain.WeeklyHoroscope{
		SignSlug: "virgo", WeekStart: "2025-03-03", Language: "en",
		General: "g", Love: "l", Career: "c", Health: "h", Money: "m",
		Source: domain.SourceFallback,
	}
	if _, err := CreateWeeklyHoroscope(ctx, db, w); err != nil {
		t.Fatalf("weekly create: %v", err)
	}
	dupW := &domain.WeeklyHoroscope{
		SignSlug: "virgo", WeekStart: "2025-03-03", Language: "en",
		General: "x", Love: "x", Career: "x", Health: "x", Money: "x",
		Source: domain.SourceProvider,
	}
	got, err := CreateWeeklyHoroscope(ctx, db, dupW)
	if err != nil || got.General != "g" {
		t.Fatalf("weekly duplicate: %+v, %v", got, err)
	}

	m := &domain.MonthlyHoroscope{
		SignSlug: "virgo", Month: "2025-03", Language: "en",
		General: "g", Love: "l", Career: "c", Health: "h", Money: "m",
		Source: domain.SourceFallback,
	}
	if _, err := CreateMonthlyHoroscope(ctx, db, m); err != nil {
		t.Fatalf("monthly create: %v", err)
	}
	if _, err := GetMonthlyHoroscope(ctx, db, "virgo", "2025-03", "en"); err != nil {
		t.Fatalf("monthly get: %v", err)
	}
}
