// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the
// OrderIdempotency model used to implement safe-retry semantics for the
// checkout endpoint.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// GetOrderIdempotency returns a non-expired record or ErrNotFound.
func GetOrderIdempotency(ctx context.Context, db *gorm.DB, userID, key string, now time.Time) (*domain.OrderIdempotency, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.OrderIdempotency
	err := db.WithContext(ctx).
		Where("user_id = ? AND key = ? AND expires_at > ?", userID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &rec, err
}

// CreateOrderIdempotency inserts a record and returns ErrDuplicate on
// unique violation.
func CreateOrderIdempotency(ctx context.Context, db *gorm.DB, userID, key, orderID string, status int, ttl time.Duration) (*domain.OrderIdempotency, error) {
	now := time.Now().UTC()
	rec := &domain.OrderIdempotency{
		ID:        uuid.NewString(),
		UserID:    userID,
		Key:       key,
		OrderID:   orderID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
