// Handler wiring and shared transport helpers.
//
// Handlers are transport-thin: they validate and normalize input, call the
// application services through narrow interfaces, and translate results into
// HTTP responses. Service interfaces are declared here so tests can swap in
// fakes without touching the concrete services package.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/services"
	"github.com/kehanet/go-arcana-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// HoroscopeService produces period horoscopes for a zodiac sign.
type HoroscopeService interface {
	Daily(ctx context.Context, signSlug string, at time.Time, lang string) (*domain.DailyHoroscope, error)
	Weekly(ctx context.Context, signSlug string, at time.Time, lang string) (*domain.WeeklyHoroscope, error)
	Monthly(ctx context.Context, signSlug string, at time.Time, lang string) (*domain.MonthlyHoroscope, error)
}

// TarotService creates and serves tarot readings and the per-user daily card.
type TarotService interface {
	Reading(ctx context.Context, userID, question, spreadName, lang string) (*domain.TarotReading, error)
	Get(ctx context.Context, userID, id string) (*domain.TarotReading, error)
	ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.TarotReading, int64, error)
	DailyCard(ctx context.Context, userID string, at time.Time, lang string) (*domain.DailyCard, error)
	Feedback(ctx context.Context, userID, readingID string, value int) error
}

// CompatibilityService produces pair compatibility readings.
type CompatibilityService interface {
	Compatibility(ctx context.Context, slugA, slugB string, at time.Time, lang string) (*domain.CompatibilityReading, error)
}

// BirthChartService generates and serves per-user birth charts.
type BirthChartService interface {
	Chart(ctx context.Context, userID string, birth time.Time, place, lang string) (*domain.BirthChart, error)
	Get(ctx context.Context, userID string) (*domain.BirthChart, error)
}

// ShopService covers the product catalog and order lifecycle.
type ShopService interface {
	ListProducts(ctx context.Context, page, pageSize int, includeInactive bool) ([]domain.Product, int64, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	Checkout(ctx context.Context, userID string, items []services.CheckoutItem, paymentMethod, idemKey string) (*domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, orderID, next string) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
	UpdateStock(ctx context.Context, productID string, stock int) (*domain.Product, error)
}

// BlogService drafts, publishes, and serves blog posts.
type BlogService interface {
	GenerateDraft(ctx context.Context, topic, lang string) (*domain.BlogPost, error)
	Publish(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.BlogPost, error)
	ListPage(ctx context.Context, page, pageSize int, includeDrafts bool) ([]domain.BlogPost, int64, error)
}

// SettingsService reads and updates the operator settings row.
type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, upd services.SettingsUpdate) (*domain.SiteSettings, error)
}

// ProductSyncer pulls the supplier catalog into the local product table.
type ProductSyncer interface {
	SyncProducts(ctx context.Context) (*services.SyncResult, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints and their service dependencies.
//
// DB is optional and only used for best-effort ETag stats on list endpoints;
// a nil DB simply skips conditional responses.
type Handlers struct {
	DB *gorm.DB

	horoscopes HoroscopeService
	tarot      TarotService
	compat     CompatibilityService
	charts     BirthChartService
	shop       ShopService
	blog       BlogService
	settings   SettingsService
	syncer     ProductSyncer
}

// New constructs a Handlers instance bound to the given services.
func New(
	db *gorm.DB,
	horoscopes HoroscopeService,
	tarot TarotService,
	compat CompatibilityService,
	charts BirthChartService,
	shop ShopService,
	blog BlogService,
	settings SettingsService,
	syncer ProductSyncer,
) *Handlers {
	return &Handlers{
		DB:         db,
		horoscopes: horoscopes,
		tarot:      tarot,
		compat:     compat,
		charts:     charts,
		shop:       shop,
		blog:       blog,
		settings:   settings,
		syncer:     syncer,
	}
}

// userID extracts the caller identity from the Gin context (set by upstream
// middleware). If absent, it falls back to the "X-User-ID" header, and
// finally to "guest". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "guest"
}

// isAdmin reports whether the admin-guard middleware authenticated this
// request. Used by mixed endpoints (blog, products) to widen visibility.
func isAdmin(c *gin.Context) bool {
	v, ok := c.Get("isAdmin")
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

//
// Shared DTOs and helpers
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// paginate computes the metadata block for a page of total items.
func paginate(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// queryDate parses an optional ?date=YYYY-MM-DD query parameter, defaulting
// to the current UTC time. The second return value is false when the
// parameter is present but malformed.
func queryDate(c *gin.Context) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return time.Now().UTC(), true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// queryLang reads the optional ?lang= parameter; the services normalize the
// value, so the raw string is passed through.
func queryLang(c *gin.Context) string {
	return strings.TrimSpace(c.Query("lang"))
}
