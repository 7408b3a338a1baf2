// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// single-row site settings.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// defaultSettings is the row materialized on first read.
func defaultSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		ID:                1,
		USDTRYRate:        1,
		LowStockThreshold: 0,
	}
}

// GetSettings loads the settings row, creating it with defaults on first
// use so callers never see ErrNotFound.
func GetSettings(ctx context.Context, db *gorm.DB) (*domain.SiteSettings, error) {
	var s domain.SiteSettings
	err := db.WithContext(ctx).First(&s, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s2 := defaultSettings()
		if err := db.WithContext(ctx).Create(s2).Error; err != nil {
			if isUniqueViolation(err) {
				// Another request materialized the row first.
				err = db.WithContext(ctx).First(&s, 1).Error
				if err == nil {
					return &s, nil
				}
			}
			return nil, err
		}
		return s2, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings persists the singleton row. The model's BeforeSave hook pins
// the primary key to 1, so this always targets the same row.
func SaveSettings(ctx context.Context, db *gorm.DB, s *domain.SiteSettings) error {
	return db.WithContext(ctx).Save(s).Error
}
