package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

func seedProduct(t *testing.T, svc *ShopService, slug string, stock int, usdCents int64) *domain.Product {
	t.Helper()
	p, err := repo.CreateProduct(context.Background(), svc.DB, &domain.Product{
		Slug: slug, Title: "Item " + slug,
		PriceUSDCents: usdCents, PriceTRYCents: DeriveTRYCents(usdCents, 34.5),
		Stock: stock, Active: true,
	})
	if err != nil {
		t.Fatalf("seed product %s: %v", slug, err)
	}
	return p
}

func TestCheckout_HappyPath(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p1 := seedProduct(t, svc, "deck", 5, 1999)
	p2 := seedProduct(t, svc, "candle", 2, 500)

	order, err := svc.Checkout(ctx, "u1", []CheckoutItem{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 1},
	}, domain.PaymentCard, "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Status != domain.OrderPending || order.Paid {
		t.Fatalf("new order: %+v", order)
	}
	if order.TotalUSDCents != 2*1999+500 {
		t.Fatalf("total usd = %d", order.TotalUSDCents)
	}
	wantTRY := 2*DeriveTRYCents(1999, 34.5) + DeriveTRYCents(500, 34.5)
	if order.TotalTRYCents != wantTRY {
		t.Fatalf("total try = %d; want %d", order.TotalTRYCents, wantTRY)
	}

	got, _ := repo.GetProduct(ctx, svc.DB, p1.ID)
	if got.Stock != 3 || got.SalesCount != 2 {
		t.Fatalf("p1 stock=%d sales=%d", got.Stock, got.SalesCount)
	}
}

func TestCheckout_Validation(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p := seedProduct(t, svc, "deck", 5, 1999)

	if _, err := svc.Checkout(ctx, "u1", nil, domain.PaymentCard, ""); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("empty order: %v", err)
	}
	if _, err := svc.Checkout(ctx, "u1", []CheckoutItem{{ProductID: p.ID, Quantity: 0}}, domain.PaymentCard, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: %v", err)
	}
	if _, err := svc.Checkout(ctx, "u1", []CheckoutItem{{ProductID: p.ID, Quantity: 1}}, "crypto", ""); !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("payment method: %v", err)
	}
	if _, err := svc.Checkout(ctx, "u1", []CheckoutItem{{ProductID: "missing", Quantity: 1}}, domain.PaymentCard, ""); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product: %v", err)
	}
}

func TestCheckout_InsufficientStockRollsBack(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p1 := seedProduct(t, svc, "deck", 5, 1999)
	p2 := seedProduct(t, svc, "candle", 1, 500)

	_, err := svc.Checkout(ctx, "u1", []CheckoutItem{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 3},
	}, domain.PaymentCard, "")
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// The first line's decrement must have been rolled back.
	got, _ := repo.GetProduct(ctx, svc.DB, p1.ID)
	if got.Stock != 5 || got.SalesCount != 0 {
		t.Fatalf("rollback failed: stock=%d sales=%d", got.Stock, got.SalesCount)
	}
}

func TestCheckout_ConcurrentStockExhaustion(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p := seedProduct(t, svc, "deck", 2, 1999)

	// Two buyers race for the last two units; there is only stock for one.
	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int, user string) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.Checkout(ctx, user, []CheckoutItem{{ProductID: p.ID, Quantity: 2}}, domain.PaymentCard, "")
		}(i, "u"+string(rune('1'+i)))
	}
	close(start)
	wg.Wait()

	var successes, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	if successes != 1 || insufficient != 1 {
		t.Fatalf("successes=%d insufficient=%d; want exactly one of each", successes, insufficient)
	}
	got, _ := repo.GetProduct(ctx, svc.DB, p.ID)
	if got.Stock != 0 {
		t.Fatalf("stock = %d; the guarded decrement must never go negative", got.Stock)
	}
}

func TestCheckout_IdempotencyReplay(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p := seedProduct(t, svc, "deck", 5, 1999)

	items := []CheckoutItem{{ProductID: p.ID, Quantity: 1}}
	first, err := svc.Checkout(ctx, "u1", items, domain.PaymentCard, "key-1")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	replay, err := svc.Checkout(ctx, "u1", items, domain.PaymentCard, "key-1")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replay.ID != first.ID {
		t.Fatalf("replay must return the original order")
	}
	got, _ := repo.GetProduct(ctx, svc.DB, p.ID)
	if got.Stock != 4 {
		t.Fatalf("replay must not take stock again, stock=%d", got.Stock)
	}

	// A different key is a fresh order.
	other, err := svc.Checkout(ctx, "u1", items, domain.PaymentCard, "key-2")
	if err != nil || other.ID == first.ID {
		t.Fatalf("fresh key: %+v, %v", other, err)
	}
}

func TestOrderStatusMachine(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p := seedProduct(t, svc, "deck", 5, 1999)

	order, err := svc.Checkout(ctx, "u1", []CheckoutItem{{ProductID: p.ID, Quantity: 1}}, domain.PaymentCashOnDelivery, "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// Skipping a step is rejected.
	if _, err := svc.AdvanceStatus(ctx, order.ID, domain.OrderShipped); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("skip: %v", err)
	}

	for _, next := range []string{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderShipped} {
		if _, err := svc.AdvanceStatus(ctx, order.ID, next); err != nil {
			t.Fatalf("advance to %s: %v", next, err)
		}
	}
	delivered, err := svc.AdvanceStatus(ctx, order.ID, domain.OrderDelivered)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if !delivered.Paid {
		t.Fatalf("cash on delivery must be marked paid on delivery")
	}

	// Terminal orders refuse further changes.
	if _, err := svc.AdvanceStatus(ctx, order.ID, domain.OrderConfirmed); !errors.Is(err, ErrOrderTerminal) {
		t.Fatalf("terminal advance: %v", err)
	}
	if _, err := svc.Cancel(ctx, "u1", order.ID); !errors.Is(err, ErrOrderTerminal) {
		t.Fatalf("terminal cancel: %v", err)
	}
}

func TestCancel_RestoresStock(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p := seedProduct(t, svc, "deck", 5, 1999)

	order, err := svc.Checkout(ctx, "u1", []CheckoutItem{{ProductID: p.ID, Quantity: 3}}, domain.PaymentCard, "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := svc.Cancel(ctx, "u2", order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign cancel: %v", err)
	}
	cancelled, err := svc.Cancel(ctx, "u1", order.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.OrderCancelled {
		t.Fatalf("status = %s", cancelled.Status)
	}
	got, _ := repo.GetProduct(ctx, svc.DB, p.ID)
	if got.Stock != 5 || got.SalesCount != 0 {
		t.Fatalf("stock not restored: stock=%d sales=%d", got.Stock, got.SalesCount)
	}
}

func TestListProductsAndGet(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	seedProduct(t, svc, "deck", 5, 1999)
	inactive := seedProduct(t, svc, "retired", 0, 100)
	inactive.Active = false
	if err := repo.SaveProduct(ctx, svc.DB, inactive); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	items, total, err := svc.ListProducts(ctx, 1, 10, false)
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("public list: %d items, total %d, %v", len(items), total, err)
	}
	_, total, err = svc.ListProducts(ctx, 1, 10, true)
	if err != nil || total != 2 {
		t.Fatalf("admin list total = %d, %v", total, err)
	}

	if _, err := svc.GetProduct(ctx, "retired"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product must be hidden, got %v", err)
	}
	if _, err := svc.GetProduct(ctx, "deck"); err != nil {
		t.Fatalf("get: %v", err)
	}
}

func TestUpdateStock(t *testing.T) {
	svc := NewShopService(newServiceDB(t), time.Hour)
	ctx := context.Background()
	p := seedProduct(t, svc, "deck", 5, 1999)

	updated, err := svc.UpdateStock(ctx, p.ID, 12)
	if err != nil || updated.Stock != 12 {
		t.Fatalf("update: %+v, %v", updated, err)
	}
	if _, err := svc.UpdateStock(ctx, p.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative stock: %v", err)
	}
	if _, err := svc.UpdateStock(ctx, "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product: %v", err)
	}
}
