// internal/model/review.go
package model

import (
	"math"
	"time"
)

// Review is a persisted free-form sleep review. This is the only durable
// record in the application; everything else lives on the in-memory session.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Location  string    `gorm:"not null;index" json:"location"`
	Rating    int       `gorm:"not null" json:"rating"`
	Hours     float64   `gorm:"not null" json:"hours"`
	Quality   int       `gorm:"not null" json:"quality"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// Score is the composite nap score: hours*10 + quality*2 + rating*3, rounded
// to two decimals.
func (r *Review) Score() float64 {
	return math.Round((r.Hours*10+float64(r.Quality)*2+float64(r.Rating)*3)*100) / 100
}

type PostReviewRequest struct {
	Location string  `json:"location" validate:"required,max=64"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Hours    float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Quality  int     `json:"quality" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment" validate:"max=500"`
}

type ReviewResponse struct {
	Review
	Score float64 `json:"score"`
}

// ReviewStats is recomputed from the table on each read, averages rounded to
// two decimals.
type ReviewStats struct {
	Count      int64   `json:"count"`
	AvgHours   float64 `json:"avg_hours"`
	AvgQuality float64 `json:"avg_quality"`
	AvgRating  float64 `json:"avg_rating"`
}
