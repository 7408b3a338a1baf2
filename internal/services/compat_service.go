// Package services – CompatibilityService
//
// This file implements CompatibilityService, which serves sign-pair match
// readings. The pair is stored in canonical (alphabetical slug) order so
// both orderings share one row per day, and the harmony score is a pure
// function of the two signs' elements and qualities so regeneration can
// never change it.
package services

import (
	"context"
	"errors"
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

// compatibilitySections are the keys every compatibility reading carries.
var compatibilitySections = []string{
	interpret.SectionGeneral, interpret.SectionLove, interpret.SectionCareer,
}

// CompatibilityService generates and serves sign-pair readings.
type CompatibilityService struct {
	DB       *gorm.DB
	Provider ai.Provider

	DefaultLanguage string
}

// NewCompatibilityService constructs a CompatibilityService.
func NewCompatibilityService(db *gorm.DB, provider ai.Provider, defaultLanguage string) *CompatibilityService {
	return &CompatibilityService{DB: db, Provider: provider, DefaultLanguage: defaultLanguage}
}

// Compatibility returns the reading for the pair on the given day,
// generating it on first request. Sign order does not matter.
func (s *CompatibilityService) Compatibility(ctx context.Context, slugA, slugB string, at time.Time, lang string) (*domain.CompatibilityReading, error) {
	a, ok := astro.SignBySlug(slugA)
	if !ok {
		return nil, ErrUnknownSign
	}
	b, ok := astro.SignBySlug(slugB)
	if !ok {
		return nil, ErrUnknownSign
	}
	// Canonical order, so aries+libra and libra+aries share a row.
	if a.Slug > b.Slug {
		a, b = b, a
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)
	date := dateKey(at)

	tr := otel.Tracer("services/CompatibilityService")
	ctx, span := tr.Start(ctx, "Compatibility",
		trace.WithAttributes(
			attribute.String("compat.pair", a.Slug+"+"+b.Slug),
			attribute.String("compat.date", date),
		),
	)
	defer span.End()

	if r, err := repo.GetCompatibility(ctx, s.DB, a.Slug, b.Slug, date, lang); err == nil {
		return r, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	score := HarmonyScore(a, b)
	sections, source := s.generate(ctx, a, b, score, lang)

	return repo.CreateCompatibility(ctx, s.DB, &domain.CompatibilityReading{
		SignA: a.Slug, SignB: b.Slug, Date: date, Language: lang,
		Score:   score,
		General: sections[interpret.SectionGeneral],
		Love:    sections[interpret.SectionLove],
		Career:  sections[interpret.SectionCareer],
		Source:  source,
	})
}

func (s *CompatibilityService) generate(ctx context.Context, a, b astro.Sign, score int, lang string) (map[string]string, string) {
	fb := loadFallbacks(ctx, s.DB)
	defaults := fb.CompatibilityDefault(a, b, lang)

	var canon map[string]string
	source := domain.SourceFallback
	if s.Provider != nil {
		prompt := interpret.CompatibilityPrompt(a, b, score, lang)
		if text, err := s.Provider.Complete(ctx, ai.Request{Prompt: prompt}); err == nil {
			canon = interpret.Canonical(interpret.ParseSections(text), lang)
			if len(canon) > 0 {
				source = domain.SourceProvider
			}
		}
	}
	return interpret.Complete(canon, compatibilitySections, defaults), source
}

// elementHarmony scores element pairings. Same element resonates; fire+air
// and earth+water feed each other; the rest sit lower.
func elementHarmony(a, b astro.Element) int {
	if a == b {
		return 78
	}
	pair := func(x, y astro.Element) bool {
		return (a == x && b == y) || (a == y && b == x)
	}
	switch {
	case pair(astro.Fire, astro.Air), pair(astro.Earth, astro.Water):
		return 86
	case pair(astro.Fire, astro.Water), pair(astro.Earth, astro.Air):
		return 52
	default:
		return 63
	}
}

// HarmonyScore computes the deterministic 0–100 harmony score for a pair of
// signs from their elements and qualities. Symmetric in its arguments.
func HarmonyScore(a, b astro.Sign) int {
	score := elementHarmony(a.Element, b.Element)
	switch {
	case a.Quality == b.Quality && a.Quality == astro.Fixed:
		// Two fixed signs dig in.
		score -= 4
	case a.Quality == b.Quality:
		score += 4
	case a.Quality == astro.Mutable || b.Quality == astro.Mutable:
		// A mutable partner adapts.
		score += 8
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
