// Package services – TarotService
//
// This file implements TarotService, which owns tarot readings, the card of
// the day, and reading feedback. Spread draws use a seeded random source;
// the card of the day is instead derived deterministically from the user
// and date, so retries and races always land on the same card even before
// the unique index settles the winner.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kehanet/go-arcana-backend/internal/ai"
	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/interpret"
	"github.com/kehanet/go-arcana-backend/internal/repo"
	"github.com/kehanet/go-arcana-backend/internal/tarot"
)

// TarotService coordinates card draws, interpretation, and persistence.
type TarotService struct {
	DB       *gorm.DB
	Provider ai.Provider

	DefaultLanguage string

	// Rng drives spread draws. Guarded by mu; *rand.Rand is not safe for
	// concurrent use.
	Rng *rand.Rand
	mu  sync.Mutex
}

// NewTarotService constructs a TarotService with a time-seeded source.
func NewTarotService(db *gorm.DB, provider ai.Provider, defaultLanguage string) *TarotService {
	return &TarotService{
		DB:              db,
		Provider:        provider,
		DefaultLanguage: defaultLanguage,
		Rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reading draws the requested spread for the question and persists the
// interpreted result.
func (s *TarotService) Reading(ctx context.Context, userID, question, spreadName, lang string) (*domain.TarotReading, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if utf8.RuneCountInString(question) > maxInputRunes {
		return nil, ErrTooLong
	}
	spread, ok := tarot.SpreadByName(spreadName)
	if !ok {
		return nil, ErrUnknownSpread
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)

	tr := otel.Tracer("services/TarotService")
	ctx, span := tr.Start(ctx, "Reading",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("tarot.spread", spread.Name),
		),
	)
	defer span.End()

	s.mu.Lock()
	cards := tarot.Draw(spread, s.Rng)
	s.mu.Unlock()

	text, source := s.interpret(ctx, question, spread, cards, lang)

	records := make([]domain.DrawnCardRecord, len(cards))
	for i, c := range cards {
		records[i] = domain.DrawnCardRecord{Position: c.Position, Card: c.Card.Name, Reversed: c.Reversed}
	}
	return repo.CreateReading(ctx, s.DB, &domain.TarotReading{
		UserID:         userID,
		Question:       question,
		Spread:         spread.Name,
		Cards:          records,
		Interpretation: text,
		Language:       lang,
		Source:         source,
	})
}

// Get fetches one of the user's readings.
func (s *TarotService) Get(ctx context.Context, userID, id string) (*domain.TarotReading, error) {
	r, err := repo.GetReading(ctx, s.DB, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReadingNotFound
	}
	return r, err
}

// ListPage returns a page of the user's readings plus the total count. It
// applies defaults for invalid page/pageSize.
func (s *TarotService) ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.TarotReading, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountReadings(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.TarotReading{}, 0, nil
	}
	items, err := repo.ListReadingsPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}

// DailyCard returns the user's card of the day, generating it on first
// request. The card is a pure function of (user, date), so the same day
// always shows the same card.
func (s *TarotService) DailyCard(ctx context.Context, userID string, at time.Time, lang string) (*domain.DailyCard, error) {
	lang = normalizeLanguage(lang, s.DefaultLanguage)
	date := dateKey(at)

	if c, err := repo.GetDailyCard(ctx, s.DB, userID, date); err == nil {
		return c, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	drawn := dailyCardFor(userID, date)
	text, source := s.interpretDaily(ctx, drawn, at, lang)

	return repo.CreateDailyCard(ctx, s.DB, &domain.DailyCard{
		UserID:         userID,
		Date:           date,
		CardName:       drawn.Card.Name,
		Reversed:       drawn.Reversed,
		Interpretation: text,
		Language:       lang,
		Source:         source,
	})
}

// Feedback records the user's rating on their own reading.
func (s *TarotService) Feedback(ctx context.Context, userID, readingID string, value int) error {
	if value != -1 && value != 1 {
		return ErrInvalidFeedback
	}
	if _, err := repo.GetReading(ctx, s.DB, readingID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReadingNotFound
		}
		return err
	}
	err := repo.CreateReadingFeedback(ctx, s.DB, readingID, userID, value)
	if errors.Is(err, repo.ErrDuplicate) {
		return ErrDuplicateFeedback
	}
	return err
}

// interpret runs the AI pipeline for a spread, degrading to deterministic
// fallback text.
func (s *TarotService) interpret(ctx context.Context, question string, spread tarot.Spread, cards []tarot.DrawnCard, lang string) (string, string) {
	if s.Provider != nil {
		prompt := interpret.TarotPrompt(question, spread, cards, lang)
		if text, err := s.Provider.Complete(ctx, ai.Request{Prompt: prompt}); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), domain.SourceProvider
		}
	}
	return loadFallbacks(ctx, s.DB).Tarot(cards, lang), domain.SourceFallback
}

func (s *TarotService) interpretDaily(ctx context.Context, drawn tarot.DrawnCard, at time.Time, lang string) (string, string) {
	if s.Provider != nil {
		prompt := interpret.DailyCardPrompt(drawn, at, lang)
		if text, err := s.Provider.Complete(ctx, ai.Request{Prompt: prompt}); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), domain.SourceProvider
		}
	}
	return loadFallbacks(ctx, s.DB).DailyCard(drawn, lang), domain.SourceFallback
}

// dailyCardFor derives the card of the day from a hash of (user, date):
// deck index from the first 8 bytes, orientation from the ninth.
func dailyCardFor(userID, date string) tarot.DrawnCard {
	sum := sha256.Sum256([]byte(userID + "\x00" + date))
	deck := tarot.Deck()
	idx := int(binary.BigEndian.Uint64(sum[:8]) % uint64(len(deck)))
	return tarot.DrawnCard{
		Position: "day",
		Card:     deck[idx],
		Reversed: sum[8]&1 == 1,
	}
}
