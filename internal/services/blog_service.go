// Package services – BlogService
//
// This file implements BlogService. Posts are drafted by the AI pipeline
// from a topic: the first response line in capitals becomes the title, the
// rest the body. Drafts stay invisible until an explicit publish.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kehanet/go-arcana-backend/internal/ai"
	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/interpret"
	"github.com/kehanet/go-arcana-backend/internal/repo"
)

// BlogService drafts, publishes, and serves blog posts.
type BlogService struct {
	DB       *gorm.DB
	Provider ai.Provider

	DefaultLanguage string
}

// NewBlogService constructs a BlogService.
func NewBlogService(db *gorm.DB, provider ai.Provider, defaultLanguage string) *BlogService {
	return &BlogService{DB: db, Provider: provider, DefaultLanguage: defaultLanguage}
}

// GenerateDraft creates a draft post on the topic.
func (s *BlogService) GenerateDraft(ctx context.Context, topic, lang string) (*domain.BlogPost, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	if utf8.RuneCountInString(topic) > maxInputRunes {
		return nil, ErrTooLong
	}
	lang = normalizeLanguage(lang, s.DefaultLanguage)

	tr := otel.Tracer("services/BlogService")
	ctx, span := tr.Start(ctx, "GenerateDraft",
		trace.WithAttributes(attribute.String("blog.topic", topic)),
	)
	defer span.End()

	title, body, source := s.draft(ctx, topic, lang)

	post := &domain.BlogPost{
		Slug:     Slugify(title),
		Title:    title,
		Body:     body,
		Topic:    topic,
		Language: lang,
		Status:   domain.PostDraft,
		Source:   source,
	}
	created, err := repo.CreateBlogPost(ctx, s.DB, post)
	if errors.Is(err, repo.ErrDuplicate) {
		// Re-slug with a time suffix and retry once.
		post.Slug = post.Slug + "-" + time.Now().UTC().Format("20060102150405")
		created, err = repo.CreateBlogPost(ctx, s.DB, post)
	}
	return created, err
}

// Publish flips a draft to published.
func (s *BlogService) Publish(ctx context.Context, id string) (*domain.BlogPost, error) {
	p, err := repo.GetBlogPost(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PostPublished {
		return nil, ErrAlreadyPublished
	}
	if err := repo.PublishBlogPost(ctx, s.DB, p.ID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return repo.GetBlogPost(ctx, s.DB, p.ID)
}

// GetBySlug fetches a post by slug. Non-admin callers only see published
// posts.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.BlogPost, error) {
	p, err := repo.GetBlogPostBySlug(ctx, s.DB, slug, !includeDrafts)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	return p, err
}

// ListPage returns a page of posts plus the total count. Non-admin callers
// only see published posts.
func (s *BlogService) ListPage(ctx context.Context, page, pageSize int, includeDrafts bool) ([]domain.BlogPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	status := domain.PostPublished
	if includeDrafts {
		status = ""
	}
	total, err := repo.CountBlogPosts(ctx, s.DB, status)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.BlogPost{}, 0, nil
	}
	items, err := repo.ListBlogPostsPage(ctx, s.DB, status, offset, pageSize)
	return items, total, err
}

// draft runs the AI pipeline, returning title, body, and source.
func (s *BlogService) draft(ctx context.Context, topic, lang string) (string, string, string) {
	if s.Provider != nil {
		prompt := interpret.BlogPrompt(topic, lang)
		if text, err := s.Provider.Complete(ctx, ai.Request{Prompt: prompt}); err == nil {
			if title, body, ok := splitDraft(text, lang); ok {
				return title, body, domain.SourceProvider
			}
		}
	}
	caser := cases.Title(draftLocale(lang))
	title := caser.String(topic)
	return title, loadFallbacks(ctx, s.DB).BlogBody(topic, lang), domain.SourceFallback
}

// splitDraft separates the capitalized title line from the body.
func splitDraft(text, lang string) (string, string, bool) {
	lines := strings.SplitN(strings.TrimSpace(text), "\n", 2)
	if len(lines) < 2 {
		return "", "", false
	}
	title := strings.TrimSpace(lines[0])
	body := strings.TrimSpace(lines[1])
	if title == "" || body == "" {
		return "", "", false
	}
	// Titles come back shouting; restore normal casing per word with the
	// draft's locale (Turkish dotted/dotless i differs from English "I").
	if title == strings.ToUpper(title) {
		tag := draftLocale(lang)
		lowered := cases.Lower(tag).String(title)
		title = cases.Title(tag).String(lowered)
	}
	return title, body, true
}

func draftLocale(lang string) language.Tag {
	if lang == langEnglish {
		return language.English
	}
	return language.Turkish
}
