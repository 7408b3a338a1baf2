package repo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOrderIdempotency_RoundTrip(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rec, err := CreateOrderIdempotency(ctx, db, "u1", "k1", "o1", 201, time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.OrderID != "o1" || rec.ExpiresAt.Before(now) {
		t.Fatalf("record: %+v", rec)
	}

	got, err := GetOrderIdempotency(ctx, db, "u1", "k1", now)
	if err != nil || got.OrderID != "o1" {
		t.Fatalf("get: %+v, %v", got, err)
	}

	if _, err := CreateOrderIdempotency(ctx, db, "u1", "k1", "o2", 201, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestOrderIdempotency_ExpiryAndBlankKey(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	if _, err := CreateOrderIdempotency(ctx, db, "u1", "k1", "o1", 201, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Expired records behave as missing.
	future := time.Now().UTC().Add(2 * time.Minute)
	if _, err := GetOrderIdempotency(ctx, db, "u1", "k1", future); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
	if _, err := GetOrderIdempotency(ctx, db, "u1", "  ", time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank key must be ErrNotFound, got %v", err)
	}
}
