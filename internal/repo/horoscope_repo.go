// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the generated
// horoscope rows (daily, weekly, monthly).
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Horoscope rows are keyed by their natural key (sign + period + language)
// with a database unique index. The Create* functions absorb a concurrent
// insert of the same key by re-reading the winning row, so callers always
// receive exactly one row per key regardless of races.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// GetDailyHoroscope fetches the daily row for (sign, date, language), or
// ErrNotFound.
func GetDailyHoroscope(ctx context.Context, db *gorm.DB, sign, date, language string) (*domain.DailyHoroscope, error) {
	var h domain.DailyHoroscope
	err := db.WithContext(ctx).
		Where("sign_slug = ? AND date = ? AND language = ?", sign, date, language).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateDailyHoroscope inserts a daily row. If another writer inserted the
// same natural key first, the winning row is returned instead of an error.
func CreateDailyHoroscope(ctx context.Context, db *gorm.DB, h *domain.DailyHoroscope) (*domain.DailyHoroscope, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(h).Error; err != nil {
		if isUniqueViolation(err) {
			return GetDailyHoroscope(ctx, db, h.SignSlug, h.Date, h.Language)
		}
		return nil, err
	}
	return h, nil
}

// GetWeeklyHoroscope fetches the weekly row for (sign, weekStart, language),
// or ErrNotFound.
func GetWeeklyHoroscope(ctx context.Context, db *gorm.DB, sign, weekStart, language string) (*domain.WeeklyHoroscope, error) {
	var h domain.WeeklyHoroscope
	err := db.WithContext(ctx).
		Where("sign_slug = ? AND week_start = ? AND language = ?", sign, weekStart, language).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateWeeklyHoroscope inserts a weekly row, absorbing a concurrent insert
// of the same natural key.
func CreateWeeklyHoroscope(ctx context.Context, db *gorm.DB, h *domain.WeeklyHoroscope) (*domain.WeeklyHoroscope, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(h).Error; err != nil {
		if isUniqueViolation(err) {
			return GetWeeklyHoroscope(ctx, db, h.SignSlug, h.WeekStart, h.Language)
		}
		return nil, err
	}
	return h, nil
}

// GetMonthlyHoroscope fetches the monthly row for (sign, month, language),
// or ErrNotFound.
func GetMonthlyHoroscope(ctx context.Context, db *gorm.DB, sign, month, language string) (*domain.MonthlyHoroscope, error) {
	var h domain.MonthlyHoroscope
	err := db.WithContext(ctx).
		Where("sign_slug = ? AND month = ? AND language = ?", sign, month, language).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateMonthlyHoroscope inserts a monthly row, absorbing a concurrent
// insert of the same natural key.
func CreateMonthlyHoroscope(ctx context.Context, db *gorm.DB, h *domain.MonthlyHoroscope) (*domain.MonthlyHoroscope, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(h).Error; err != nil {
		if isUniqueViolation(err) {
			return GetMonthlyHoroscope(ctx, db, h.SignSlug, h.Month, h.Language)
		}
		return nil, err
	}
	return h, nil
}
