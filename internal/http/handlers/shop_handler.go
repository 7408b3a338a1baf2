// Shop HTTP handlers.
//
// This file exposes the catalog and order endpoints:
//   - GET  /products            (paginated, ETag support; admin sees inactive)
//   - GET  /products/{slug}
//   - POST /orders              (checkout; Idempotency-Key safe retries)
//   - GET  /orders/{id}         (owner only)
//   - POST /orders/{id}/cancel  (owner only, restores stock)
//   - POST /orders/{id}/status  (admin: advance the fulfilment pipeline)
//   - PUT  /products/{id}/stock (admin)
//   - POST /sync/products       (admin: pull the supplier catalog)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/http/middleware"
	"github.com/kehanet/go-arcana-backend/internal/repo"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

//
// DTOs
//

// CheckoutItemRequest is one order line in a checkout payload.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Quantity  int    `json:"quantity" binding:"required,min=1" example:"2"`
}

// CheckoutRequest is the JSON payload for placing an order.
type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	// PaymentMethod is one of: card, bank_transfer, cash_on_delivery.
	PaymentMethod string `json:"payment_method" binding:"required" example:"card"`
}

// OrderStatusRequest is the JSON payload for advancing an order.
type OrderStatusRequest struct {
	// Status is the next pipeline step: confirmed, preparing, shipped, delivered.
	Status string `json:"status" binding:"required" example:"confirmed"`
}

// StockUpdateRequest is the JSON payload for setting a product's stock level.
type StockUpdateRequest struct {
	Stock *int `json:"stock" binding:"required" example:"12"`
}

// ListProductsResponse wraps a page of products and pagination information.
type ListProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

//
// Handlers
//

// ListProducts godoc
// @ID          listProducts
// @Summary     List products (paginated)
// @Description Returns active products. Admin callers also see inactive ones. Supports weak ETag via If-None-Match.
// @Tags        Shop
// @Produce     json
// @Param       If-None-Match header string false "Return 304 if ETag matches"
// @Param       page          query  int    false "Page number"    minimum(1) default(1)
// @Param       page_size     query  int    false "Items per page" minimum(1) maximum(100) default(20)
// @Success     200 {object} handlers.ListProductsResponse
// @Header      200 {string} ETag "Weak ETag for current catalog"
// @Success     304 {string} string "Not Modified"
// @Failure     500 {object} handlers.ErrorResponse "Internal error"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	admin := isAdmin(c)
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort, public catalog only).
	if h.DB != nil && !admin {
		count, maxTS, err := repo.ProductsStats(ctx, h.DB)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"products:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.shop.ListProducts(ctx, page, pageSize, admin)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListProductsResponse{
		Products:   items,
		Pagination: paginate(page, pageSize, total),
	})
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get a product by slug
// @Tags        Shop
// @Produce     json
// @Param       id path string true "Product slug" example(tarot-deck)
// @Success     200 {object} domain.Product
// @Failure     404 {object} handlers.ErrorResponse "Product not found"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	p, err := h.shop.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// Checkout godoc
// @ID          checkout
// @Summary     Place an order
// @Description Creates an order, decrementing stock atomically. Supplying the same
// @Description Idempotency-Key replays the original order instead of charging twice.
// @Tags        Shop
// @Accept      json
// @Produce     json
// @Param       X-User-ID       header string false "User ID"
// @Param       Idempotency-Key header string false "Idempotency key for safe retries"
// @Param       body            body   handlers.CheckoutRequest true "Order payload"
// @Success     201 {object} domain.Order
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Product not found"
// @Failure     409 {object} handlers.ErrorResponse "Out of stock"
// @Failure     500 {object} handlers.ErrorResponse "Internal error"
// @Router      /orders [post]
func (h *Handlers) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "items and payment_method required")
		return
	}

	items := make([]services.CheckoutItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.CheckoutItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  it.Quantity,
		})
	}
	idemKey, _ := middleware.GetIdempotencyKey(c)

	order, err := h.shop.Checkout(c.Request.Context(), userID(c), items, req.PaymentMethod, idemKey)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrInvalidQuantity):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "every line needs a product and a positive quantity")
		case errors.Is(err, services.ErrInvalidPayment):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "payment_method must be card, bank_transfer, or cash_on_delivery")
		case errors.Is(err, services.ErrProductNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		case errors.Is(err, services.ErrInsufficientStock):
			fail(c, http.StatusConflict, ErrCodeOutOfStock, "insufficient stock")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	if middleware.IsReplay(c) {
		c.Header("Idempotency-Replayed", "true")
	}
	ok(c, http.StatusCreated, order)
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Get an order
// @Description Only the owner can fetch an order; foreign IDs return 404.
// @Tags        Shop
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       id        path   string true  "Order ID (UUID)" format(uuid)
// @Success     200 {object} domain.Order
// @Failure     404 {object} handlers.ErrorResponse "Order not found"
// @Router      /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.shop.GetOrder(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, order)
}

// CancelOrder godoc
// @ID          cancelOrder
// @Summary     Cancel an order
// @Description Cancels a non-terminal order owned by the caller and restores stock.
// @Tags        Shop
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       id        path   string true  "Order ID (UUID)" format(uuid)
// @Success     200 {object} domain.Order
// @Failure     404 {object} handlers.ErrorResponse "Order not found"
// @Failure     409 {object} handlers.ErrorResponse "Order already terminal"
// @Router      /orders/{id}/cancel [post]
func (h *Handlers) CancelOrder(c *gin.Context) {
	order, err := h.shop.Cancel(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		case errors.Is(err, services.ErrOrderTerminal):
			fail(c, http.StatusConflict, ErrCodeOrderTerminal, "order is already in a terminal state")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, order)
}

// AdvanceOrderStatus godoc
// @ID          advanceOrderStatus
// @Summary     Advance an order (admin)
// @Description Moves the order one step along pending → confirmed → preparing → shipped → delivered.
// @Tags        Shop
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token header string true "Admin token"
// @Param       id            path   string true "Order ID (UUID)" format(uuid)
// @Param       body          body   handlers.OrderStatusRequest true "Next status"
// @Success     200 {object} domain.Order
// @Failure     400 {object} handlers.ErrorResponse "Invalid transition"
// @Failure     404 {object} handlers.ErrorResponse "Order not found"
// @Failure     409 {object} handlers.ErrorResponse "Order already terminal"
// @Router      /orders/{id}/status [post]
func (h *Handlers) AdvanceOrderStatus(c *gin.Context) {
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}

	order, err := h.shop.AdvanceStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		case errors.Is(err, services.ErrOrderTerminal):
			fail(c, http.StatusConflict, ErrCodeOrderTerminal, "order is already in a terminal state")
		case errors.Is(err, services.ErrInvalidTransition):
			fail(c, http.StatusBadRequest, ErrCodeInvalidTransition, "status transition not allowed")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, order)
}

// UpdateProductStock godoc
// @ID          updateProductStock
// @Summary     Set a product's stock (admin)
// @Tags        Shop
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token header string true "Admin token"
// @Param       id            path   string true "Product ID (UUID)" format(uuid)
// @Param       body          body   handlers.StockUpdateRequest true "New stock level"
// @Success     200 {object} domain.Product
// @Failure     400 {object} handlers.ErrorResponse "Negative stock"
// @Failure     404 {object} handlers.ErrorResponse "Product not found"
// @Router      /products/{id}/stock [put]
func (h *Handlers) UpdateProductStock(c *gin.Context) {
	var req StockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "stock required")
		return
	}

	p, err := h.shop.UpdateStock(c.Request.Context(), c.Param("id"), *req.Stock)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "stock must be >= 0")
		case errors.Is(err, services.ErrProductNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, p)
}

// SyncProducts godoc
// @ID          syncProducts
// @Summary     Sync the supplier catalog (admin)
// @Description Pages through the configured supplier catalog, creating and updating products.
// @Tags        Shop
// @Produce     json
// @Param       X-Admin-Token header string true "Admin token"
// @Success     200 {object} services.SyncResult
// @Failure     500 {object} handlers.ErrorResponse "Sync failed"
// @Router      /sync/products [post]
func (h *Handlers) SyncProducts(c *gin.Context) {
	res, err := h.syncer.SyncProducts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSyncFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, res)
}
