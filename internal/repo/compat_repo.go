// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for compatibility
// readings and birth charts.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// GetCompatibility fetches the compatibility row for the canonical pair and
// date, or ErrNotFound. Callers must pass signA/signB already in canonical
// order.
func GetCompatibility(ctx context.Context, db *gorm.DB, signA, signB, date, language string) (*domain.CompatibilityReading, error) {
	var r domain.CompatibilityReading
	err := db.WithContext(ctx).
		Where("sign_a = ? AND sign_b = ? AND date = ? AND language = ?", signA, signB, date, language).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateCompatibility inserts a compatibility row, absorbing a concurrent
// insert of the same natural key.
func CreateCompatibility(ctx context.Context, db *gorm.DB, r *domain.CompatibilityReading) (*domain.CompatibilityReading, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		if isUniqueViolation(err) {
			return GetCompatibility(ctx, db, r.SignA, r.SignB, r.Date, r.Language)
		}
		return nil, err
	}
	return r, nil
}

// GetBirthChart fetches the chart for userID, or ErrNotFound.
func GetBirthChart(ctx context.Context, db *gorm.DB, userID string) (*domain.BirthChart, error) {
	var c domain.BirthChart
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertBirthChart inserts the chart for its user, or replaces the existing
// one (one chart per user).
func UpsertBirthChart(ctx context.Context, db *gorm.DB, c *domain.BirthChart) (*domain.BirthChart, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"birth_date", "birth_place", "sun_sign", "chart_text", "language", "source", "updated_at",
			}),
		}).
		Create(c).Error
	if err != nil {
		return nil, err
	}
	return GetBirthChart(ctx, db, c.UserID)
}
