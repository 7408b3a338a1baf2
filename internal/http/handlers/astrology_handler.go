// Astrology HTTP handlers.
//
// This file exposes the zodiac metadata and generated-content endpoints:
//   - GET /signs                        (list the twelve signs)
//   - GET /signs/{sign}                 (single sign detail)
//   - GET /horoscopes/{sign}/daily      (?date=YYYY-MM-DD&lang=)
//   - GET /horoscopes/{sign}/weekly
//   - GET /horoscopes/{sign}/monthly
//   - GET /compatibility/{a}/{b}        (pair compatibility, order-insensitive)
//   - POST /birth-chart                 (generate or replace the caller's chart)
//   - GET  /birth-chart
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kehanet/go-arcana-backend/internal/astro"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

// ListSigns godoc
// @ID          listSigns
// @Summary     List zodiac signs
// @Description Returns the twelve zodiac signs with element, quality, and ruling planet.
// @Tags        Astrology
// @Produce     json
// @Success     200 {array} astro.Sign
// @Router      /signs [get]
func (h *Handlers) ListSigns(c *gin.Context) {
	ok(c, http.StatusOK, astro.Signs())
}

// GetSign godoc
// @ID          getSign
// @Summary     Get a zodiac sign
// @Tags        Astrology
// @Produce     json
// @Param       sign path string true "Sign slug" example(aries)
// @Success     200 {object} astro.Sign
// @Failure     404 {object} handlers.ErrorResponse "Sign not found"
// @Router      /signs/{sign} [get]
func (h *Handlers) GetSign(c *gin.Context) {
	sign, found := astro.SignBySlug(c.Param("sign"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "sign not found")
		return
	}
	ok(c, http.StatusOK, sign)
}

// DailyHoroscope godoc
// @ID          dailyHoroscope
// @Summary     Daily horoscope for a sign
// @Description Returns the stored horoscope for the date, generating it on first request.
// @Tags        Astrology
// @Produce     json
// @Param       sign path  string true  "Sign slug" example(leo)
// @Param       date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param       lang query string false "Language (tr|en)"
// @Success     200 {object} domain.DailyHoroscope
// @Failure     400 {object} handlers.ErrorResponse "Bad date"
// @Failure     404 {object} handlers.ErrorResponse "Sign not found"
// @Failure     500 {object} handlers.ErrorResponse "Generation failed"
// @Router      /horoscopes/{sign}/daily [get]
func (h *Handlers) DailyHoroscope(c *gin.Context) {
	at, okDate := queryDate(c)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return
	}
	hs, err := h.horoscopes.Daily(c.Request.Context(), c.Param("sign"), at, queryLang(c))
	if err != nil {
		failHoroscope(c, err)
		return
	}
	ok(c, http.StatusOK, hs)
}

// WeeklyHoroscope godoc
// @ID          weeklyHoroscope
// @Summary     Weekly horoscope for a sign
// @Description Returns the horoscope for the ISO week containing the date.
// @Tags        Astrology
// @Produce     json
// @Param       sign path  string true  "Sign slug" example(leo)
// @Param       date query string false "Any date inside the week (YYYY-MM-DD)"
// @Param       lang query string false "Language (tr|en)"
// @Success     200 {object} domain.WeeklyHoroscope
// @Failure     400 {object} handlers.ErrorResponse "Bad date"
// @Failure     404 {object} handlers.ErrorResponse "Sign not found"
// @Router      /horoscopes/{sign}/weekly [get]
func (h *Handlers) WeeklyHoroscope(c *gin.Context) {
	at, okDate := queryDate(c)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return
	}
	hs, err := h.horoscopes.Weekly(c.Request.Context(), c.Param("sign"), at, queryLang(c))
	if err != nil {
		failHoroscope(c, err)
		return
	}
	ok(c, http.StatusOK, hs)
}

// MonthlyHoroscope godoc
// @ID          monthlyHoroscope
// @Summary     Monthly horoscope for a sign
// @Tags        Astrology
// @Produce     json
// @Param       sign path  string true  "Sign slug" example(leo)
// @Param       date query string false "Any date inside the month (YYYY-MM-DD)"
// @Param       lang query string false "Language (tr|en)"
// @Success     200 {object} domain.MonthlyHoroscope
// @Failure     400 {object} handlers.ErrorResponse "Bad date"
// @Failure     404 {object} handlers.ErrorResponse "Sign not found"
// @Router      /horoscopes/{sign}/monthly [get]
func (h *Handlers) MonthlyHoroscope(c *gin.Context) {
	at, okDate := queryDate(c)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return
	}
	hs, err := h.horoscopes.Monthly(c.Request.Context(), c.Param("sign"), at, queryLang(c))
	if err != nil {
		failHoroscope(c, err)
		return
	}
	ok(c, http.StatusOK, hs)
}

// Compatibility godoc
// @ID          compatibility
// @Summary     Compatibility reading for a sign pair
// @Description The pair is order-insensitive: aries/libra and libra/aries share one reading per day.
// @Tags        Astrology
// @Produce     json
// @Param       a    path  string true  "First sign slug"  example(aries)
// @Param       b    path  string true  "Second sign slug" example(libra)
// @Param       lang query string false "Language (tr|en)"
// @Success     200 {object} domain.CompatibilityReading
// @Failure     404 {object} handlers.ErrorResponse "Sign not found"
// @Router      /compatibility/{a}/{b} [get]
func (h *Handlers) Compatibility(c *gin.Context) {
	r, err := h.compat.Compatibility(c.Request.Context(), c.Param("a"), c.Param("b"), time.Now().UTC(), queryLang(c))
	if err != nil {
		failHoroscope(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// BirthChartRequest is the JSON payload for generating a birth chart.
type BirthChartRequest struct {
	// BirthDate in YYYY-MM-DD form.
	BirthDate string `json:"birth_date" binding:"required" example:"1992-07-01"`
	// BirthPlace is free text and optional.
	BirthPlace string `json:"birth_place" example:"İzmir"`
	Language   string `json:"language" example:"tr"`
}

// CreateBirthChart godoc
// @ID          createBirthChart
// @Summary     Generate the caller's birth chart
// @Description Creates or replaces the single chart stored per user.
// @Tags        Astrology
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       body      body   handlers.BirthChartRequest true "Birth data"
// @Success     200 {object} domain.BirthChart
// @Failure     400 {object} handlers.ErrorResponse "Invalid birth date"
// @Router      /birth-chart [post]
func (h *Handlers) CreateBirthChart(c *gin.Context) {
	var req BirthChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "birth_date required")
		return
	}
	birth, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}

	chart, err := h.charts.Chart(c.Request.Context(), userID(c), birth, req.BirthPlace, req.Language)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBirthDate) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "birth date must be in the past")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, chart)
}

// GetBirthChart godoc
// @ID          getBirthChart
// @Summary     Get the caller's stored birth chart
// @Tags        Astrology
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Success     200 {object} domain.BirthChart
// @Failure     404 {object} handlers.ErrorResponse "No chart yet"
// @Router      /birth-chart [get]
func (h *Handlers) GetBirthChart(c *gin.Context) {
	chart, err := h.charts.Get(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, services.ErrChartNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "birth chart not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, chart)
}

// failHoroscope maps generation-service errors shared by the horoscope and
// compatibility endpoints.
func failHoroscope(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownSign):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "sign not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, err.Error())
	}
}
