// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/ai"
	"github.com/kehanet/go-arcana-backend/internal/config"
	"github.com/kehanet/go-arcana-backend/internal/http/handlers"
	"github.com/kehanet/go-arcana-backend/internal/http/middleware"
	"github.com/kehanet/go-arcana-backend/internal/repo"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine, builds the application services from the injected dependencies,
// and mounts the versioned public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per user/IP, bypass on replay)
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, provider ai.Provider, catalog services.Catalog, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-Api-Key",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses; /metrics stays uncompressed for scrapers.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotency validation for checkout retries (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, userID, key string, now time.Time) (bool, error) {
			rec, err := repo.GetOrderIdempotency(ctx, db, userID, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "X-Admin-Token", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "X-Admin-Token", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← db/provider/catalog
	horoscopeSvc := services.NewHoroscopeService(db, provider, cfg.DefaultLanguage)
	tarotSvc := services.NewTarotService(db, provider, cfg.DefaultLanguage)
	compatSvc := services.NewCompatibilityService(db, provider, cfg.DefaultLanguage)
	chartSvc := services.NewBirthChartService(db, provider, cfg.DefaultLanguage)
	shopSvc := services.NewShopService(db, cfg.IdempotencyTTL)
	blogSvc := services.NewBlogService(db, provider, cfg.DefaultLanguage)
	settingsSvc := services.NewSettingsService(db)
	syncSvc := services.NewSyncService(db, catalog, cfg.Supplier.PageSize)

	h := handlers.New(db, horoscopeSvc, tarotSvc, compatSvc, chartSvc, shopSvc, blogSvc, settingsSvc, syncSvc)
	admin := adminGuard(cfg.AdminToken)
	adminAware := adminDetect(cfg.AdminToken)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Zodiac metadata and horoscopes
		api.GET("/signs", h.ListSigns)
		api.GET("/signs/:sign", h.GetSign)
		api.GET("/horoscopes/:sign/daily", h.DailyHoroscope)
		api.GET("/horoscopes/:sign/weekly", h.WeeklyHoroscope)
		api.GET("/horoscopes/:sign/monthly", h.MonthlyHoroscope)
		api.GET("/compatibility/:a/:b", h.Compatibility)

		// Tarot
		api.POST("/readings", h.CreateReading)
		api.GET("/readings", h.ListReadings)
		api.GET("/readings/:id", h.GetReading)
		api.POST("/readings/:id/feedback", h.LeaveReadingFeedback)
		api.GET("/daily-card", h.DailyCard)

		// Birth chart
		api.POST("/birth-chart", h.CreateBirthChart)
		api.GET("/birth-chart", h.GetBirthChart)

		// Shop
		api.GET("/products", adminAware, h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.POST("/orders", h.Checkout)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/cancel", h.CancelOrder)
		api.POST("/orders/:id/status", admin, h.AdvanceOrderStatus)
		api.PUT("/products/:id/stock", admin, h.UpdateProductStock)
		api.POST("/sync/products", admin, h.SyncProducts)

		// Blog
		api.GET("/blog", adminAware, h.ListPosts)
		api.POST("/blog/generate", admin, h.GenerateDraft)
		api.GET("/blog/:id", adminAware, h.GetPost)
		api.POST("/blog/:id/publish", admin, h.PublishPost)

		// Settings
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", admin, h.UpdateSettings)
	}
}

// adminDetect marks the request as admin when a valid X-Admin-Token is
// present, without rejecting anything. Used on public listing routes where
// admins see drafts and inactive products.
func adminDetect(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token != "" {
			got := c.GetHeader("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1 {
				c.Set("isAdmin", true)
			}
		}
		c.Next()
	}
}

// adminGuard authorizes requests carrying the configured X-Admin-Token. An
// empty configured token disables every admin endpoint rather than leaving
// them open.
func adminGuard(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			handlers.Fail(c, http.StatusForbidden, handlers.ErrCodeForbidden, "admin endpoints disabled")
			return
		}
		got := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			handlers.Fail(c, http.StatusUnauthorized, handlers.ErrCodeUnauthorized, "invalid admin token")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
