// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for tarot
// readings, the card of the day, and reading feedback.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - Duplicate feedback (same reading_id, user_id) is surfaced as
//     ErrDuplicate for the service layer to translate.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kehanet/go-arcana-backend/internal/domain"
)

// CreateReading inserts a new tarot reading row with a UUID primary key.
func CreateReading(ctx context.Context, db *gorm.DB, r *domain.TarotReading) (*domain.TarotReading, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetReading fetches a single reading by its ID and owner (userID). If the
// record does not exist, it returns ErrNotFound.
func GetReading(ctx context.Context, db *gorm.DB, id, userID string) (*domain.TarotReading, error) {
	var r domain.TarotReading
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountReadings returns the total number of readings owned by userID.
func CountReadings(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.TarotReading{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListReadingsPage returns a paginated slice of readings for userID, ordered
// by creation time descending. Use CountReadings to obtain the total for
// pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListReadingsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.TarotReading, error) {
	var out []domain.TarotReading
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetDailyCard fetches the card-of-the-day row for (userID, date), or
// ErrNotFound.
func GetDailyCard(ctx context.Context, db *gorm.DB, userID, date string) (*domain.DailyCard, error) {
	var c domain.DailyCard
	err := db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateDailyCard inserts the card-of-the-day row for (userID, date). If a
// concurrent request already created it, the winning row is returned.
func CreateDailyCard(ctx context.Context, db *gorm.DB, c *domain.DailyCard) (*domain.DailyCard, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return GetDailyCard(ctx, db, c.UserID, c.Date)
		}
		return nil, err
	}
	return c, nil
}

// CreateReadingFeedback inserts a feedback row for the given reading and
// user. The combination (reading_id, user_id) must be unique; a second vote
// returns ErrDuplicate.
func CreateReadingFeedback(ctx context.Context, db *gorm.DB, readingID, userID string, value int) error {
	fb := &domain.ReadingFeedback{
		ID:        uuid.NewString(),
		ReadingID: readingID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
