package domain

import (
	"time"

	"gorm.io/gorm"
)

// Blog post lifecycle states.
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// BlogPost is one article. Posts start as AI drafts and become visible only
// after an explicit publish.
type BlogPost struct {
	ID          string         `json:"id"        gorm:"type:char(36);primaryKey"`
	Slug        string         `json:"slug"      gorm:"type:varchar(160);not null;uniqueIndex:ux_post_slug"`
	Title       string         `json:"title"     gorm:"type:varchar(255);not null"`
	Body        string         `json:"body"      gorm:"type:text;not null"`
	Topic       string         `json:"topic"     gorm:"type:varchar(255);not null"`
	Language    string         `json:"language"  gorm:"type:varchar(8);not null"`
	Status      string         `json:"status"    gorm:"type:varchar(16);not null;check:status IN ('draft','published');index:idx_post_status"`
	Source      string         `json:"source"    gorm:"type:varchar(16);not null"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"         gorm:"index"`
}

// TableName returns the database table name for BlogPost.
func (BlogPost) TableName() string { return "blog_posts" }
