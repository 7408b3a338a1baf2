// Package services – SyncService
//
// This file implements SyncService, which pulls an external product catalog
// page by page and reconciles it into the local product table. Products are
// matched by (supplier, external_id); new items are created, existing ones
// get fresh prices and stock. Items at or below the configured low-stock
// threshold are deactivated rather than deleted so they keep their slug and
// sales history.
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// CatalogItem is one product as reported by an external catalog.
type CatalogItem struct {
	ExternalID    string
	Title         string
	Description   string
	PriceUSDCents int64
	Stock         int
}

// Catalog is the contract a supplier integration must fulfil.
type Catalog interface {
	// Name identifies the supplier; it becomes the products' supplier field.
	Name() string
	// Page fetches one page of items (1-based) and reports whether more
	// pages follow.
	Page(ctx context.Context, page, pageSize int) ([]CatalogItem, bool, error)
}

// SyncResult summarizes one catalog run.
type SyncResult struct {
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Deactivated int `json:"deactivated"`
}

// SyncService reconciles supplier catalogs into the product table.
type SyncService struct {
	DB      *gorm.DB
	Catalog Catalog

	// PageSize is the catalog page size; zero means 50.
	PageSize int
}

// NewSyncService constructs a SyncService.
func NewSyncService(db *gorm.DB, catalog Catalog, pageSize int) *SyncService {
	return &SyncService{DB: db, Catalog: catalog, PageSize: pageSize}
}

// SyncProducts runs one full catalog pass and reports what changed. TRY
// prices are derived from the settings exchange rate at sync time.
func (s *SyncService) SyncProducts(ctx context.Context) (*SyncResult, error) {
	if s.Catalog == nil {
		return &SyncResult{}, nil
	}
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	tr := otel.Tracer("services/SyncService")
	ctx, span := tr.Start(ctx, "SyncProducts",
		trace.WithAttributes(attribute.String("supplier", s.Catalog.Name())),
	)
	defer span.End()

	settings, err := repo.GetSettings(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{}
	supplier := s.Catalog.Name()
	for page := 1; ; page++ {
		items, more, err := s.Catalog.Page(ctx, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("catalog page %d: %w", page, err)
		}
		for _, it := range items {
			if err := s.applyItem(ctx, supplier, it, settings, res); err != nil {
				return nil, err
			}
		}
		if !more {
			break
		}
	}
	return res, nil
}

func (s *SyncService) applyItem(ctx context.Context, supplier string, it CatalogItem, settings *domain.SiteSettings, res *SyncResult) error {
	active := it.Stock > settings.LowStockThreshold
	tryCents := DeriveTRYCents(it.PriceUSDCents, settings.USDTRYRate)

	existing, err := repo.GetProductBySupplierRef(ctx, s.DB, supplier, it.ExternalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p := &domain.Product{
			Slug:          s.uniqueSlug(ctx, it),
			Title:         it.Title,
			Description:   it.Description,
			PriceUSDCents: it.PriceUSDCents,
			PriceTRYCents: tryCents,
			Stock:         it.Stock,
			Supplier:      supplier,
			ExternalID:    it.ExternalID,
			Active:        active,
		}
		if _, err := repo.CreateProduct(ctx, s.DB, p); err != nil {
			return err
		}
		res.Created++
		return nil
	}
	if err != nil {
		return err
	}

	wasActive := existing.Active
	existing.Title = it.Title
	existing.Description = it.Description
	existing.PriceUSDCents = it.PriceUSDCents
	existing.PriceTRYCents = tryCents
	existing.Stock = it.Stock
	existing.Active = active
	if err := repo.SaveProduct(ctx, s.DB, existing); err != nil {
		return err
	}
	res.Updated++
	if wasActive && !active {
		res.Deactivated++
	}
	return nil
}

// uniqueSlug slugs the item title, falling back to the external ID suffix
// when the plain slug is taken or empty.
func (s *SyncService) uniqueSlug(ctx context.Context, it CatalogItem) string {
	slug := Slugify(it.Title)
	if slug == "" {
		slug = Slugify(it.ExternalID)
	}
	if _, err := repo.GetProductBySlug(ctx, s.DB, slug); err == nil {
		slug = slug + "-" + Slugify(it.ExternalID)
	}
	return slug
}
