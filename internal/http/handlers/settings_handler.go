// Settings HTTP handlers.
//
//   - GET /settings (public view: announcement and exchange rate)
//   - PUT /settings (admin: full settings row, reprices on rate change)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kehanet/go-arcana-backend/internal/services"
)

// PublicSettings is the subset of the settings row exposed without the admin
// token.
type PublicSettings struct {
	Announcement string  `json:"announcement"`
	USDTRYRate   float64 `json:"usd_try_rate" example:"34.5"`
}

// UpdateSettingsRequest is the JSON payload for updating site settings.
// Omitted fields keep their current value.
type UpdateSettingsRequest struct {
	Announcement      *string           `json:"announcement,omitempty"`
	USDTRYRate        *float64          `json:"usd_try_rate,omitempty" example:"34.5"`
	LowStockThreshold *int              `json:"low_stock_threshold,omitempty" example:"3"`
	FallbackTemplates map[string]string `json:"fallback_templates,omitempty"`
}

// GetSettings godoc
// @ID          getSettings
// @Summary     Public site settings
// @Description Returns the announcement banner and current exchange rate.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} handlers.PublicSettings
// @Failure     500 {object} handlers.ErrorResponse "Internal error"
// @Router      /settings [get]
func (h *Handlers) GetSettings(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, PublicSettings{
		Announcement: s.Announcement,
		USDTRYRate:   s.USDTRYRate,
	})
}

// UpdateSettings godoc
// @ID          updateSettings
// @Summary     Update site settings (admin)
// @Description Applies the provided fields. Changing the exchange rate reprices the whole catalog.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token header string true "Admin token"
// @Param       body          body   handlers.UpdateSettingsRequest true "Fields to change"
// @Success     200 {object} domain.SiteSettings
// @Failure     400 {object} handlers.ErrorResponse "Invalid rate"
// @Router      /settings [put]
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	s, err := h.settings.Update(c.Request.Context(), services.SettingsUpdate{
		Announcement:      req.Announcement,
		USDTRYRate:        req.USDTRYRate,
		LowStockThreshold: req.LowStockThreshold,
		FallbackTemplates: req.FallbackTemplates,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidRate) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "usd_try_rate must be positive")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, s)
}
