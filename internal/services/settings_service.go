// Package services – SettingsService
//
// This file implements SettingsService for the operator-editable singleton
// row. Changing the exchange rate re-derives every product's TRY price so
// the catalog never drifts from the configured rate.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// SettingsUpdate carries the fields an operator may change. Nil pointers
// leave the current value untouched.
type SettingsUpdate struct {
	Announcement      *string
	USDTRYRate        *float64
	LowStockThreshold *int
	FallbackTemplates map[string]string
}

// SettingsService reads and updates the site settings row.
type SettingsService struct {
	DB *gorm.DB
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get loads the settings row, materializing defaults on first use.
func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return repo.GetSettings(ctx, s.DB)
}

// Update applies the changes and, when the exchange rate moved, re-derives
// every product's TRY price from its USD price.
func (s *SettingsService) Update(ctx context.Context, upd SettingsUpdate) (*domain.SiteSettings, error) {
	cur, err := repo.GetSettings(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	rateChanged := false
	if upd.USDTRYRate != nil {
		if *upd.USDTRYRate <= 0 {
			return nil, ErrInvalidRate
		}
		rateChanged = *upd.USDTRYRate != cur.USDTRYRate
		cur.USDTRYRate = *upd.USDTRYRate
	}
	if upd.Announcement != nil {
		cur.Announcement = *upd.Announcement
	}
	if upd.LowStockThreshold != nil {
		threshold := *upd.LowStockThreshold
		if threshold < 0 {
			threshold = 0
		}
		cur.LowStockThreshold = threshold
	}
	if upd.FallbackTemplates != nil {
		cur.FallbackTemplates = upd.FallbackTemplates
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.SaveSettings(ctx, tx, cur); err != nil {
			return err
		}
		if rateChanged {
			return s.repriceProducts(ctx, tx, cur.USDTRYRate)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cur, nil
}

// repriceProducts walks the whole catalog and re-derives TRY prices.
// Rounding happens per product in integer cents, so it cannot be pushed
// into a single SQL UPDATE.
func (s *SettingsService) repriceProducts(ctx context.Context, tx *gorm.DB, rate float64) error {
	const batch = 200
	for offset := 0; ; offset += batch {
		products, err := repo.ListProductsPage(ctx, tx, false, offset, batch)
		if err != nil {
			return err
		}
		for i := range products {
			p := &products[i]
			p.PriceTRYCents = DeriveTRYCents(p.PriceUSDCents, rate)
			if err := repo.SaveProduct(ctx, tx, p); err != nil {
				return err
			}
		}
		if len(products) < batch {
			return nil
		}
	}
}
