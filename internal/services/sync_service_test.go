package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// fakeCatalog pages through a fixed item list.
type fakeCatalog struct {
	name  string
	items []CatalogItem
	err   error
	pages int
}

func (f *fakeCatalog) Name() string { return f.name }

func (f *fakeCatalog) Page(ctx context.Context, page, pageSize int) ([]CatalogItem, bool, error) {
	f.pages++
	if f.err != nil {
		return nil, false, f.err
	}
	start := (page - 1) * pageSize
	if start >= len(f.items) {
		return nil, false, nil
	}
	end := start + pageSize
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[start:end], end < len(f.items), nil
}

func TestSyncProducts_CreatesAndPages(t *testing.T) {
	db := newServiceDB(t)
	catalog := &fakeCatalog{name: "acme", items: []CatalogItem{
		{ExternalID: "e1", Title: "Tarot Deck", PriceUSDCents: 1999, Stock: 10},
		{ExternalID: "e2", Title: "Mum Seti", PriceUSDCents: 500, Stock: 4},
		{ExternalID: "e3", Title: "Tütsü", PriceUSDCents: 300, Stock: 0},
	}}
	svc := NewSyncService(db, catalog, 2)

	res, err := svc.SyncProducts(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Created != 3 || res.Updated != 0 {
		t.Fatalf("result: %+v", res)
	}
	if catalog.pages != 2 {
		t.Fatalf("expected 2 pages, got %d", catalog.pages)
	}

	p, err := repo.GetProductBySupplierRef(context.Background(), db, "acme", "e1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.Slug != "tarot-deck" || !p.Active {
		t.Fatalf("created product: %+v", p)
	}
	// Default settings rate is 1.
	if p.PriceTRYCents != 1999 {
		t.Fatalf("try price = %d", p.PriceTRYCents)
	}

	// Zero stock with threshold 0 stays inactive.
	empty, _ := repo.GetProductBySupplierRef(context.Background(), db, "acme", "e3")
	if empty.Active {
		t.Fatalf("zero-stock item must be inactive")
	}
}

func TestSyncProducts_UpdatesAndDeactivates(t *testing.T) {
	db := newServiceDB(t)
	catalog := &fakeCatalog{name: "acme", items: []CatalogItem{
		{ExternalID: "e1", Title: "Tarot Deck", PriceUSDCents: 1999, Stock: 10},
	}}
	svc := NewSyncService(db, catalog, 50)

	if _, err := svc.SyncProducts(context.Background()); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	// Price drops and the item sells out.
	catalog.items[0].PriceUSDCents = 1499
	catalog.items[0].Stock = 0
	res, err := svc.SyncProducts(context.Background())
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if res.Created != 0 || res.Updated != 1 || res.Deactivated != 1 {
		t.Fatalf("result: %+v", res)
	}

	p, _ := repo.GetProductBySupplierRef(context.Background(), db, "acme", "e1")
	if p.PriceUSDCents != 1499 || p.Active {
		t.Fatalf("updated product: %+v", p)
	}
	// Slug survives the update.
	if p.Slug != "tarot-deck" {
		t.Fatalf("slug changed: %s", p.Slug)
	}
}

func TestSyncProducts_SlugCollision(t *testing.T) {
	db := newServiceDB(t)
	catalog := &fakeCatalog{name: "acme", items: []CatalogItem{
		{ExternalID: "e1", Title: "Tarot Deck", PriceUSDCents: 100, Stock: 1},
		{ExternalID: "e2", Title: "Tarot Deck", PriceUSDCents: 200, Stock: 1},
	}}
	svc := NewSyncService(db, catalog, 50)

	if _, err := svc.SyncProducts(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}
	second, err := repo.GetProductBySupplierRef(context.Background(), db, "acme", "e2")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if second.Slug != "tarot-deck-e2" {
		t.Fatalf("collision slug = %s", second.Slug)
	}
}

func TestSyncProducts_CatalogErrorAndNilCatalog(t *testing.T) {
	db := newServiceDB(t)
	svc := NewSyncService(db, &fakeCatalog{name: "acme", err: errors.New("upstream 500")}, 50)
	if _, err := svc.SyncProducts(context.Background()); err == nil {
		t.Fatalf("expected catalog error")
	}

	none := NewSyncService(db, nil, 50)
	res, err := none.SyncProducts(context.Background())
	if err != nil || res.Created != 0 {
		t.Fatalf("nil catalog: %+v, %v", res, err)
	}
}
