// Tarot HTTP handlers.
//
// This file exposes REST endpoints for tarot readings:
//   - POST /readings                (draw a spread and interpret it)
//   - GET  /readings                (list the caller's readings, paginated)
//   - GET  /readings/{id}           (single reading, owner only)
//   - POST /readings/{id}/feedback  (thumbs up/down on a reading)
//   - GET  /daily-card              (deterministic card of the day per user)
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

// CreateReadingRequest is the JSON payload for drawing a tarot reading.
type CreateReadingRequest struct {
	// Question is the querent's question. It must be non-empty.
	Question string `json:"question" binding:"required,min=1" example:"Kariyerimde yeni bir sayfa açılacak mı?"`
	// Spread selects the layout: single, three_card, or celtic_cross.
	Spread   string `json:"spread" example:"three_card"`
	Language string `json:"language" example:"tr"`
}

// ReadingFeedbackRequest is the JSON payload for rating a reading.
type ReadingFeedbackRequest struct {
	// Value is the feedback signal: +1 (positive) or -1 (negative).
	Value int `json:"value" binding:"required,oneof=-1 1" example:"1"`
}

// ListReadingsResponse wraps a page of readings and pagination information.
type ListReadingsResponse struct {
	Readings   []domain.TarotReading `json:"readings"`
	Pagination Pagination            `json:"pagination"`
}

// CreateReading godoc
// @ID          createReading
// @Summary     Draw a tarot reading
// @Description Draws the requested spread, interprets it, and stores the reading for the caller.
// @Tags        Tarot
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       body      body   handlers.CreateReadingRequest true "Reading request"
// @Success     201 {object} domain.TarotReading
// @Failure     400 {object} handlers.ErrorResponse "Invalid question or spread"
// @Failure     500 {object} handlers.ErrorResponse "Generation failed"
// @Router      /readings [post]
func (h *Handlers) CreateReading(c *gin.Context) {
	var req CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question required")
		return
	}

	r, err := h.tarot.Reading(c.Request.Context(), userID(c), req.Question, req.Spread, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyQuestion):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question required")
		case errors.Is(err, services.ErrTooLong):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question too long")
		case errors.Is(err, services.ErrUnknownSpread):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "spread must be single, three_card, or celtic_cross")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListReadings godoc
// @ID          listReadings
// @Summary     List the caller's readings (paginated)
// @Tags        Tarot
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       page      query  int    false "Page number"    minimum(1) default(1)
// @Param       page_size query  int    false "Items per page" minimum(1) maximum(100) default(20)
// @Success     200 {object} handlers.ListReadingsResponse
// @Failure     500 {object} handlers.ErrorResponse "Internal error"
// @Router      /readings [get]
func (h *Handlers) ListReadings(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.tarot.ListPage(c.Request.Context(), userID(c), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListReadingsResponse{
		Readings:   items,
		Pagination: paginate(page, pageSize, total),
	})
}

// GetReading godoc
// @ID          getReading
// @Summary     Get a single reading
// @Description Only the owner can fetch a reading; foreign IDs return 404.
// @Tags        Tarot
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       id        path   string true  "Reading ID (UUID)" format(uuid)
// @Success     200 {object} domain.TarotReading
// @Failure     404 {object} handlers.ErrorResponse "Reading not found"
// @Router      /readings/{id} [get]
func (h *Handlers) GetReading(c *gin.Context) {
	r, err := h.tarot.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrReadingNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "reading not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, r)
}

// LeaveReadingFeedback godoc
// @ID          leaveReadingFeedback
// @Summary     Rate a reading
// @Description Records +1 or -1 once per user per reading.
// @Tags        Tarot
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       id        path   string true  "Reading ID (UUID)" format(uuid)
// @Param       body      body   handlers.ReadingFeedbackRequest true "Feedback payload"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse "Invalid value"
// @Failure     404 {object} handlers.ErrorResponse "Reading not found"
// @Failure     409 {object} handlers.ErrorResponse "Feedback already exists"
// @Router      /readings/{id}/feedback [post]
func (h *Handlers) LeaveReadingFeedback(c *gin.Context) {
	var req ReadingFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "value must be -1 or 1")
		return
	}

	err := h.tarot.Feedback(c.Request.Context(), userID(c), c.Param("id"), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFeedback):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "value must be -1 or 1")
		case errors.Is(err, services.ErrReadingNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "reading not found")
		case errors.Is(err, services.ErrDuplicateFeedback):
			fail(c, http.StatusConflict, ErrCodeConflict, "feedback already exists")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// DailyCard godoc
// @ID          dailyCard
// @Summary     Card of the day
// @Description Returns the caller's deterministic daily card; the same user sees the same card all day.
// @Tags        Tarot
// @Produce     json
// @Param       X-User-ID header string false "User ID"
// @Param       lang      query  string false "Language (tr|en)"
// @Success     200 {object} domain.DailyCard
// @Failure     500 {object} handlers.ErrorResponse "Generation failed"
// @Router      /daily-card [get]
func (h *Handlers) DailyCard(c *gin.Context) {
	card, err := h.tarot.DailyCard(c.Request.Context(), userID(c), time.Now().UTC(), queryLang(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, card)
}
