// internal/service/review_service.go
package service

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/repository"
)

// ReviewService is the persisted half of the app: free-form sleep reviews in
// the database, independent of any session.
type ReviewService interface {
	PostReview(ctx context.Context, req *model.PostReviewRequest) (*model.ReviewResponse, error)
	ListReviews(ctx context.Context, limit int) ([]*model.ReviewResponse, error)
	GetStats(ctx context.Context) (*model.ReviewStats, error)
}

type reviewService struct {
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
	listLimit  int
}

func NewReviewService(db *gorm.DB, reviewRepo repository.ReviewRepository, listLimit int) ReviewService {
	return &reviewService{
		db:         db,
		reviewRepo: reviewRepo,
		listLimit:  listLimit,
	}
}

func (s *reviewService) PostReview(ctx context.Context, req *model.PostReviewRequest) (*model.ReviewResponse, error) {
	logger := middleware.GetLogger(ctx)

	review := &model.Review{
		Location: req.Location,
		Rating:   req.Rating,
		Hours:    req.Hours,
		Quality:  req.Quality,
		Comment:  req.Comment,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
			logger.Error("Error creating review in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.ReviewResponse{Review: *review, Score: review.Score()}, nil
}

// ListReviews returns the most recent reviews. limit <= 0 or above the
// configured cap falls back to the cap.
func (s *reviewService) ListReviews(ctx context.Context, limit int) ([]*model.ReviewResponse, error) {
	if limit <= 0 || limit > s.listLimit {
		limit = s.listLimit
	}

	reviews, err := s.reviewRepo.FindRecent(ctx, s.db, limit)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	out := make([]*model.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, &model.ReviewResponse{Review: *r, Score: r.Score()})
	}
	return out, nil
}

func (s *reviewService) GetStats(ctx context.Context) (*model.ReviewStats, error) {
	stats, err := s.reviewRepo.Stats(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	stats.AvgHours = round2(stats.AvgHours)
	stats.AvgQuality = round2(stats.AvgQuality)
	stats.AvgRating = round2(stats.AvgRating)
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
