// Package services – HoroscopeService
//
// This file implements HoroscopeService, which owns the generated horoscope
// rows. A period's horoscope is generated at most once per (sign, period,
// language): the first request materializes the row through the AI pipeline
// and every later request reads it back. Concurrent first requests are
// collapsed by singleflight; the database unique index is the final
// arbiter, so even racing processes converge on one row.
//
// Observability: public methods are OpenTelemetry-instrumented; spans
// include the sign and period key.
package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
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

// HoroscopeService generates and serves daily, weekly, and monthly
// horoscopes.
type HoroscopeService struct {
	DB       *gorm.DB
	Provider ai.Provider

	// DefaultLanguage is used when the request carries no usable language.
	DefaultLanguage string

	group singleflight.Group
}

// NewHoroscopeService constructs a HoroscopeService.
func NewHoroscopeService(db *gorm.DB, provider ai.Provider, defaultLanguage string) *HoroscopeService {
	return &HoroscopeService{DB: db, Provider: provider, DefaultLanguage: defaultLanguage}
}

// Daily returns the daily horoscope for the sign on the given day,
// generating it on first request.
func (s *HoroscopeService) Daily(ctx context.Context, signSlug string, at time.Time, lang string) (*domain.DailyHoroscope, error) {
	sign, ok := astro.SignBySlug(signSlug)
	if !ok {
		return nil, ErrUnknownSign
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)
	date := dateKey(at)

	tr := otel.Tracer("services/HoroscopeService")
	ctx, span := tr.Start(ctx, "Daily",
		trace.WithAttributes(
			attribute.String("horoscope.sign", sign.Slug),
			attribute.String("horoscope.date", date),
		),
	)
	defer span.End()

	if h, err := repo.GetDailyHoroscope(ctx, s.DB, sign.Slug, date, lang); err == nil {
		return h, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v, err, _ := s.group.Do("daily:"+sign.Slug+":"+date+":"+lang, func() (any, error) {
		// Re-check inside the flight; a concurrent caller may have won.
		if h, err := repo.GetDailyHoroscope(ctx, s.DB, sign.Slug, date, lang); err == nil {
			return h, nil
		}
		sections, source := s.generate(ctx, sign, interpret.PeriodDaily, at, lang)
		return repo.CreateDailyHoroscope(ctx, s.DB, &domain.DailyHoroscope{
			SignSlug: sign.Slug, Date: date, Language: lang,
			General: sections[interpret.SectionGeneral],
			Love:    sections[interpret.SectionLove],
			Career:  sections[interpret.SectionCareer],
			Health:  sections[interpret.SectionHealth],
			Money:   sections[interpret.SectionMoney],
			Source:  source,
		})
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.DailyHoroscope), nil
}

// Weekly returns the horoscope for the ISO week containing the given day,
// generating it on first request.
func (s *HoroscopeService) Weekly(ctx context.Context, signSlug string, at time.Time, lang string) (*domain.WeeklyHoroscope, error) {
	sign, ok := astro.SignBySlug(signSlug)
	if !ok {
		return nil, ErrUnknownSign
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)
	week := weekStartKey(at)

	tr := otel.Tracer("services/HoroscopeService")
	ctx, span := tr.Start(ctx, "Weekly",
		trace.WithAttributes(
			attribute.String("horoscope.sign", sign.Slug),
			attribute.String("horoscope.week_start", week),
		),
	)
	defer span.End()

	if h, err := repo.GetWeeklyHoroscope(ctx, s.DB, sign.Slug, week, lang); err == nil {
		return h, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v, err, _ := s.group.Do("weekly:"+sign.Slug+":"+week+":"+lang, func() (any, error) {
		if h, err := repo.GetWeeklyHoroscope(ctx, s.DB, sign.Slug, week, lang); err == nil {
			return h, nil
		}
		sections, source := s.generate(ctx, sign, interpret.PeriodWeekly, at, lang)
		return repo.CreateWeeklyHoroscope(ctx, s.DB, &domain.WeeklyHoroscope{
			SignSlug: sign.Slug, WeekStart: week, Language: lang,
			General: sections[interpret.SectionGeneral],
			Love:    sections[interpret.SectionLove],
			Career:  sections[interpret.SectionCareer],
			Health:  sections[interpret.SectionHealth],
			Money:   sections[interpret.SectionMoney],
			Source:  source,
		})
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.WeeklyHoroscope), nil
}

// Monthly returns the horoscope for the month containing the given day,
// generating it on first request.
func (s *HoroscopeService) Monthly(ctx context.Context, signSlug string, at time.Time, lang string) (*domain.MonthlyHoroscope, error) {
	sign, ok := astro.SignBySlug(signSlug)
	if !ok {
		return nil, ErrUnknownSign
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)
	month := monthKey(at)

	tr := otel.Tracer("services/HoroscopeService")
	ctx, span := tr.Start(ctx, "Monthly",
		trace.WithAttributes(
			attribute.String("horoscope.sign", sign.Slug),
			attribute.String("horoscope.month", month),
		),
	)
	defer span.End()

	if h, err := repo.GetMonthlyHoroscope(ctx, s.DB, sign.Slug, month, lang); err == nil {
		return h, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v, err, _ := s.group.Do("monthly:"+sign.Slug+":"+month+":"+lang, func() (any, error) {
		if h, err := repo.GetMonthlyHoroscope(ctx, s.DB, sign.Slug, month, lang); err == nil {
			return h, nil
		}
		sections, source := s.generate(ctx, sign, interpret.PeriodMonthly, at, lang)
		return repo.CreateMonthlyHoroscope(ctx, s.DB, &domain.MonthlyHoroscope{
			SignSlug: sign.Slug, Month: month, Language: lang,
			General: sections[interpret.SectionGeneral],
			Love:    sections[interpret.SectionLove],
			Career:  sections[interpret.SectionCareer],
			Health:  sections[interpret.SectionHealth],
			Money:   sections[interpret.SectionMoney],
			Source:  source,
		})
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.MonthlyHoroscope), nil
}

// generate runs the AI pipeline for one horoscope and returns the complete
// section map plus its source marker. Provider failure or unusable output
// falls back to deterministic text; the result always carries every section
// key.
func (s *HoroscopeService) generate(ctx context.Context, sign astro.Sign, period interpret.HoroscopePeriod, at time.Time, lang string) (map[string]string, string) {
	fb := loadFallbacks(ctx, s.DB)
	defaults := fb.HoroscopeDefault(sign, lang)

	var canon map[string]string
	source := domain.SourceFallback
	if s.Provider != nil {
		prompt := interpret.HoroscopePrompt(sign, period, at, lang)
		if text, err := s.Provider.Complete(ctx, ai.Request{Prompt: prompt}); err == nil {
			canon = interpret.Canonical(interpret.ParseSections(text), lang)
			if len(canon) > 0 {
				source = domain.SourceProvider
			}
		}
	}
	return interpret.Complete(canon, interpret.HoroscopeSections, defaults), source
}
