// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for products,
// orders, and order items.
//
// Stock changes go through DecrementStock / RestoreStock, which run guarded
// UPDATE statements (stock = stock - n WHERE stock >= n). Combined with the
// surrounding transaction's write lock, this keeps stock from ever going
// negative even under concurrent checkouts. The schema's CHECK constraint is
// the last line of defense.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// ErrInsufficientStock is returned by DecrementStock when the product has
// fewer units than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

// CreateProduct inserts a product row. Duplicate slugs return ErrDuplicate.
func CreateProduct(ctx context.Context, db *gorm.DB, p *domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return p, nil
}

// SaveProduct persists all fields of an existing product row.
func SaveProduct(ctx context.Context, db *gorm.DB, p *domain.Product) error {
	return db.WithContext(ctx).Save(p).Error
}

// GetProduct fetches a product by ID, or ErrNotFound.
func GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	var p domain.Product
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductBySlug fetches a product by slug, or ErrNotFound.
func GetProductBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Product, error) {
	var p domain.Product
	if err := db.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductBySupplierRef fetches a synced product by its external catalog
// identity, or ErrNotFound.
func GetProductBySupplierRef(ctx context.Context, db *gorm.DB, supplier, externalID string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).
		Where("supplier = ? AND external_id = ?", supplier, externalID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountProducts returns the number of products, optionally restricted to
// active ones.
func CountProducts(ctx context.Context, db *gorm.DB, onlyActive bool) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.Product{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListProductsPage returns a paginated slice of products ordered by creation
// time descending. Use CountProducts for pagination metadata.
func ListProductsPage(ctx context.Context, db *gorm.DB, onlyActive bool, offset, limit int) ([]domain.Product, error) {
	q := db.WithContext(ctx).Model(&domain.Product{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var out []domain.Product
	err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// DecrementStock atomically takes quantity units from the product and bumps
// its sales count. It returns ErrInsufficientStock when fewer units remain,
// and ErrNotFound when the product does not exist. Intended to run inside
// the checkout transaction.
func DecrementStock(ctx context.Context, db *gorm.DB, productID string, quantity int) error {
	res := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Updates(map[string]any{
			"stock":       gorm.Expr("stock - ?", quantity),
			"sales_count": gorm.Expr("sales_count + ?", quantity),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", productID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

// RestoreStock returns quantity units to the product and reverses the sales
// count, used when an order is cancelled.
func RestoreStock(ctx context.Context, db *gorm.DB, productID string, quantity int) error {
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"stock":       gorm.Expr("stock + ?", quantity),
			"sales_count": gorm.Expr("sales_count - ?", quantity),
		}).Error
}

// CreateOrder inserts an order together with its items.
func CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) (*domain.Order, error) {
	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	for i := range o.Items {
		o.Items[i].ID = uuid.NewString()
		o.Items[i].OrderID = o.ID
		o.Items[i].CreatedAt = now
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder fetches an order with its items by ID, or ErrNotFound. Ownership
// checks belong to the service layer; admin flows read any order.
func GetOrder(ctx context.Context, db *gorm.DB, id string) (*domain.Order, error) {
	var o domain.Order
	err := db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus persists a status change (and the paid flag) on an
// order. Transition validation belongs to the service layer.
func UpdateOrderStatus(ctx context.Context, db *gorm.DB, id, status string, paid bool) error {
	res := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "paid": paid})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
