// Package services – ShopService
//
// This file implements ShopService: product listing, checkout, the order
// status machine, and cancellation. Checkout runs inside one transaction so
// either every line's stock is taken and the order exists, or nothing
// happened; the guarded decrement in the repo keeps stock non-negative
// under concurrent checkouts. Totals and unit prices are snapshotted in
// integer cents at checkout time.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// orderTransitions is the allowed status machine. Cancellation is handled
// separately by Cancel since it must restore stock.
var orderTransitions = map[string][]string{
	domain.OrderPending:   {domain.OrderConfirmed},
	domain.OrderConfirmed: {domain.OrderPreparing},
	domain.OrderPreparing: {domain.OrderShipped},
	domain.OrderShipped:   {domain.OrderDelivered},
}

// CheckoutItem is one requested order line.
type CheckoutItem struct {
	ProductID string
	Quantity  int
}

// ShopService owns products and orders.
type ShopService struct {
	DB *gorm.DB

	// IdempotencyTTL bounds how long a checkout Idempotency-Key replays the
	// original order.
	IdempotencyTTL time.Duration
}

// NewShopService constructs a ShopService.
func NewShopService(db *gorm.DB, idempotencyTTL time.Duration) *ShopService {
	return &ShopService{DB: db, IdempotencyTTL: idempotencyTTL}
}

// ListProducts returns a page of the catalog plus the total count. Inactive
// products are hidden unless includeInactive is set (admin listings).
func (s *ShopService) ListProducts(ctx context.Context, page, pageSize int, includeInactive bool) ([]domain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountProducts(ctx, s.DB, !includeInactive)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Product{}, 0, nil
	}
	items, err := repo.ListProductsPage(ctx, s.DB, !includeInactive, offset, pageSize)
	return items, total, err
}

// GetProduct fetches an active product by slug.
func (s *ShopService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := repo.GetProductBySlug(ctx, s.DB, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Checkout creates an order for the items, taking stock atomically. When
// idemKey is non-empty a replayed key returns the originally created order
// instead of charging again.
func (s *ShopService) Checkout(ctx context.Context, userID string, items []CheckoutItem, paymentMethod, idemKey string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	switch paymentMethod {
	case domain.PaymentCard, domain.PaymentBankTransfer, domain.PaymentCashOnDelivery:
	default:
		return nil, ErrInvalidPayment
	}

	tr := otel.Tracer("services/ShopService")
	ctx, span := tr.Start(ctx, "Checkout",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("order.lines", len(items)),
		),
	)
	defer span.End()

	// Replay a recorded key without re-executing side effects.
	if idemKey != "" {
		if rec, err := repo.GetOrderIdempotency(ctx, s.DB, userID, idemKey, time.Now().UTC()); err == nil {
			return repo.GetOrder(ctx, s.DB, rec.OrderID)
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	var order *domain.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o := &domain.Order{
			UserID:        userID,
			Status:        domain.OrderPending,
			PaymentMethod: paymentMethod,
		}
		for _, it := range items {
			p, err := repo.GetProduct(ctx, tx, it.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			if err != nil {
				return err
			}
			if !p.Active {
				return ErrProductNotFound
			}
			if err := repo.DecrementStock(ctx, tx, p.ID, it.Quantity); err != nil {
				if errors.Is(err, repo.ErrInsufficientStock) {
					return ErrInsufficientStock
				}
				return err
			}
			o.Items = append(o.Items, domain.OrderItem{
				ProductID:    p.ID,
				Title:        p.Title,
				Quantity:     it.Quantity,
				UnitUSDCents: p.PriceUSDCents,
				UnitTRYCents: p.PriceTRYCents,
			})
			o.TotalUSDCents += p.PriceUSDCents * int64(it.Quantity)
			o.TotalTRYCents += p.PriceTRYCents * int64(it.Quantity)
		}
		created, err := repo.CreateOrder(ctx, tx, o)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if idemKey != "" {
		if _, err := repo.CreateOrderIdempotency(ctx, s.DB, userID, idemKey, order.ID, 201, s.IdempotencyTTL); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			return nil, err
		}
	}
	return order, nil
}

// GetOrder fetches an order, enforcing ownership.
func (s *ShopService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := repo.GetOrder(ctx, s.DB, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// AdvanceStatus moves an order one step along the allowed transition table.
// Delivering a cash-on-delivery order marks it paid.
func (s *ShopService) AdvanceStatus(ctx context.Context, orderID, next string) (*domain.Order, error) {
	o, err := repo.GetOrder(ctx, s.DB, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.Terminal() {
		return nil, ErrOrderTerminal
	}
	allowed := false
	for _, t := range orderTransitions[o.Status] {
		if t == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	paid := o.Paid
	if next == domain.OrderDelivered && o.PaymentMethod == domain.PaymentCashOnDelivery {
		paid = true
	}
	if err := repo.UpdateOrderStatus(ctx, s.DB, o.ID, next, paid); err != nil {
		return nil, err
	}
	return repo.GetOrder(ctx, s.DB, o.ID)
}

// Cancel aborts a non-terminal order owned by the user and restores the
// stock its lines had taken.
func (s *ShopService) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Terminal() {
		return nil, ErrOrderTerminal
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range o.Items {
			if err := repo.RestoreStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return repo.UpdateOrderStatus(ctx, tx, o.ID, domain.OrderCancelled, o.Paid)
	})
	if err != nil {
		return nil, err
	}
	return repo.GetOrder(ctx, s.DB, o.ID)
}

// UpdateStock sets a product's stock level (admin operation).
func (s *ShopService) UpdateStock(ctx context.Context, productID string, stock int) (*domain.Product, error) {
	if stock < 0 {
		return nil, ErrInvalidQuantity
	}
	p, err := repo.GetProduct(ctx, s.DB, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Stock = stock
	if err := repo.SaveProduct(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}
