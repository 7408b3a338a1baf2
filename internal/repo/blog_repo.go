// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for blog posts.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// CreateBlogPost inserts a post row. Duplicate slugs return ErrDuplicate so
// the service can re-slug and retry.
func CreateBlogPost(ctx context.Context, db *gorm.DB, p *domain.BlogPost) (*domain.BlogPost, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return p, nil
}

// GetBlogPost fetches a post by ID, or ErrNotFound.
func GetBlogPost(ctx context.Context, db *gorm.DB, id string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBlogPostBySlug fetches a post by slug. When publishedOnly is set,
// drafts are invisible and resolve to ErrNotFound.
func GetBlogPostBySlug(ctx context.Context, db *gorm.DB, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	q := db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("status = ?", domain.PostPublished)
	}
	var p domain.BlogPost
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CountBlogPosts returns the number of posts with the given status; an empty
// status counts all posts.
func CountBlogPosts(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.BlogPost{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListBlogPostsPage returns a paginated slice of posts ordered by creation
// time descending; an empty status lists all posts.
func ListBlogPostsPage(ctx context.Context, db *gorm.DB, status string, offset, limit int) ([]domain.BlogPost, error) {
	q := db.WithContext(ctx).Model(&domain.BlogPost{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []domain.BlogPost
	err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// PublishBlogPost flips a post to published and stamps the publication
// time. Returns ErrNotFound when the post does not exist.
func PublishBlogPost(ctx context.Context, db *gorm.DB, id string, at time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.BlogPost{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": domain.PostPublished, "published_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
