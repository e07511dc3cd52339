//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *model.Review) error
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.Review, error)
	Stats(ctx context.Context, db *gorm.DB) (*model.ReviewStats, error)
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) Create(ctx context.Context, tx *gorm.DB, review *model.Review) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(review)
	if result.Error != nil {
		logger.Error("Error creating review in DB",
			"error", result.Error,
			"location", review.Location,
		)
		return fmt.Errorf("gormReviewRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var reviews []*model.Review
	result := db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&reviews)
	if result.Error != nil {
		logger.Error("Error listing reviews from DB", "error", result.Error)
		return nil, fmt.Errorf("gormReviewRepository.FindRecent: %w", result.Error)
	}
	return reviews, nil
}

func (r *gormReviewRepository) Stats(ctx context.Context, db *gorm.DB) (*model.ReviewStats, error) {
	logger := middleware.GetLogger(ctx)
	var stats model.ReviewStats
	result := db.WithContext(ctx).Model(&model.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(hours), 0) AS avg_hours, COALESCE(AVG(quality), 0) AS avg_quality, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&stats)
	if result.Error != nil {
		logger.Error("Error aggregating review stats from DB", "error", result.Error)
		return nil, fmt.Errorf("gormReviewRepository.Stats: %w", result.Error)
	}
	return &stats, nil
}
