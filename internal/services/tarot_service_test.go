package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTarotReading_CreatesRow(t *testing.T) {
	db := newServiceDB(t)
	provider := &fakeAI{text: "The cards point toward a patient stretch."}
	svc := NewTarotService(db, provider, "tr")

	r, err := svc.Reading(context.Background(), "u1", "Will I find peace?", "three_card", "en")
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if len(r.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(r.Cards))
	}
	seen := map[string]bool{}
	for _, c := range r.Cards {
		if seen[c.Card] {
			t.Fatalf("duplicate card %s in spread", c.Card)
		}
		seen[c.Card] = true
	}
	if r.Interpretation != "The cards point toward a patient stretch." {
		t.Fatalf("interpretation = %q", r.Interpretation)
	}

	got, err := svc.Get(context.Background(), "u1", r.ID)
	if err != nil || got.ID != r.ID {
		t.Fatalf("get: %+v, %v", got, err)
	}
	if _, err := svc.Get(context.Background(), "u2", r.ID); !errors.Is(err, ErrReadingNotFound) {
		t.Fatalf("other user must not see it, got %v", err)
	}
}

func TestTarotReading_Validation(t *testing.T) {
	svc := NewTarotService(newServiceDB(t), &fakeAI{text: "x"}, "tr")
	ctx := context.Background()

	if _, err := svc.Reading(ctx, "u1", "   ", "single", "tr"); !errors.Is(err, ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
	if _, err := svc.Reading(ctx, "u1", strings.Repeat("a", maxInputRunes+1), "single", "tr"); !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
	if _, err := svc.Reading(ctx, "u1", "q", "nine_card", "tr"); !errors.Is(err, ErrUnknownSpread) {
		t.Fatalf("expected ErrUnknownSpread, got %v", err)
	}
}

func TestTarotReading_FallbackOnProviderFailure(t *testing.T) {
	svc := NewTarotService(newServiceDB(t), &fakeAI{err: errors.New("down")}, "tr")
	r, err := svc.Reading(context.Background(), "u1", "soru", "single", "tr")
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if r.Source != "fallback" || strings.TrimSpace(r.Interpretation) == "" {
		t.Fatalf("fallback reading: %+v", r)
	}
}

func TestTarotListPage(t *testing.T) {
	svc := NewTarotService(newServiceDB(t), &fakeAI{text: "x"}, "tr")
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := svc.Reading(ctx, "u1", "q", "single", "tr"); err != nil {
			t.Fatalf("reading %d: %v", i, err)
		}
	}
	items, total, err := svc.ListPage(ctx, "u1", 2, 2)
	if err != nil || total != 5 || len(items) != 2 {
		t.Fatalf("page: %d items, total %d, %v", len(items), total, err)
	}
	items, total, err = svc.ListPage(ctx, "nobody", 1, 10)
	if err != nil || total != 0 || len(items) != 0 {
		t.Fatalf("empty page: %d items, total %d, %v", len(items), total, err)
	}
}

func TestDailyCard_StablePerUserAndDate(t *testing.T) {
	db := newServiceDB(t)
	svc := NewTarotService(db, &fakeAI{text: "Bugün sezgilerinize güvenin."}, "tr")
	at := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	first, err := svc.DailyCard(context.Background(), "u1", at, "tr")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.DailyCard(context.Background(), "u1", at.Add(8*time.Hour), "tr")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.ID != first.ID || second.CardName != first.CardName {
		t.Fatalf("same user+date must return the same card")
	}

	// The derivation itself is deterministic, before any row exists.
	a := dailyCardFor("u1", "2025-03-03")
	b := dailyCardFor("u1", "2025-03-03")
	if a.Card.Name != b.Card.Name || a.Reversed != b.Reversed {
		t.Fatalf("dailyCardFor must be deterministic")
	}
	distinct := map[string]bool{}
	for day := 1; day <= 10; day++ {
		c := dailyCardFor("u1", time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
		distinct[c.Card.Name] = true
	}
	if len(distinct) < 2 {
		t.Fatalf("ten days should span more than one card")
	}
}

func TestFeedback(t *testing.T) {
	svc := NewTarotService(newServiceDB(t), &fakeAI{text: "x"}, "tr")
	ctx := context.Background()

	r, err := svc.Reading(ctx, "u1", "q", "single", "tr")
	if err != nil {
		t.Fatalf("reading: %v", err)
	}

	if err := svc.Feedback(ctx, "u1", r.ID, 2); !errors.Is(err, ErrInvalidFeedback) {
		t.Fatalf("expected ErrInvalidFeedback, got %v", err)
	}
	if err := svc.Feedback(ctx, "u1", "missing", 1); !errors.Is(err, ErrReadingNotFound) {
		t.Fatalf("expected ErrReadingNotFound, got %v", err)
	}
	if err := svc.Feedback(ctx, "u2", r.ID, 1); !errors.Is(err, ErrReadingNotFound) {
		t.Fatalf("feedback on another user's reading must fail, got %v", err)
	}
	if err := svc.Feedback(ctx, "u1", r.ID, 1); err != nil {
		t.Fatalf("first feedback: %v", err)
	}
	if err := svc.Feedback(ctx, "u1", r.ID, -1); !errors.Is(err, ErrDuplicateFeedback) {
		t.Fatalf("expected ErrDuplicateFeedback, got %v", err)
	}
}
