// Package services – BirthChartService
//
// This file implements BirthChartService, which keeps one natal chart
// summary per user. The sun sign comes from the zodiac calendar bands; the
// narrative text comes from the AI pipeline with deterministic fallback.
// Regenerating with new birth data replaces the user's existing chart.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kehanet/go-arcana-backend/internal/ai"
	"github.com/kehanet/go-arcana-backend/internal/astro"
	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/interpret"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// BirthChartService generates and serves per-user natal charts.
type BirthChartService struct {
	DB       *gorm.DB
	Provider ai.Provider

	DefaultLanguage string
}

// NewBirthChartService constructs a BirthChartService.
func NewBirthChartService(db *gorm.DB, provider ai.Provider, defaultLanguage string) *BirthChartService {
	return &BirthChartService{DB: db, Provider: provider, DefaultLanguage: defaultLanguage}
}

// Chart creates or replaces the user's chart from their birth data.
func (s *BirthChartService) Chart(ctx context.Context, userID string, birth time.Time, place, lang string) (*domain.BirthChart, error) {
	if birth.IsZero() || birth.After(time.Now().UTC()) {
		return nil, ErrInvalidBirthDate
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)
	place = strings.TrimSpace(place)

	tr := otel.Tracer("services/BirthChartService")
	ctx, span := tr.Start(ctx, "Chart",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	sun := astro.SignForDate(birth)
	text, source := s.generate(ctx, sun, birth, place, lang)

	return repo.UpsertBirthChart(ctx, s.DB, &domain.BirthChart{
		UserID:     userID,
		BirthDate:  birth.UTC(),
		BirthPlace: place,
		SunSign:    sun.Slug,
		ChartText:  text,
		Language:   lang,
		Source:     source,
	})
}

// Get fetches the user's chart, or ErrChartNotFound.
func (s *BirthChartService) Get(ctx context.Context, userID string) (*domain.BirthChart, error) {
	c, err := repo.GetBirthChart(ctx, s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChartNotFound
	}
	return c, err
}

func (s *BirthChartService) generate(ctx context.Context, sun astro.Sign, birth time.Time, place, lang string) (string, string) {
	if s.Provider != nil {
		prompt := interpret.BirthChartPrompt(sun, birth, place, lang)
		if text, err := s.Provider.Complete(ctx, ai.Request{Prompt: prompt}); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), domain.SourceProvider
		}
	}
	return loadFallbacks(ctx, s.DB).BirthChart(sun, lang), domain.SourceFallback
}
