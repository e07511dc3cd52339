// internal/service/rating_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// Rating XP schedule: flat submission reward, first-rating bonus per
// location, all-fives bonus.
const (
	ratingBaseXP     = 30
	firstRatingBonus = 70
	allFivesBonus    = 20
)

type RatingService interface {
	SubmitRating(ctx context.Context, s *model.Session, locationID string, r model.Rating) (*model.SubmitRatingResponse, error)
	// AverageFor returns the displayed average for a location, falling back to
	// the catalog sample when the session has no submissions for it.
	AverageFor(s *model.Session, locationID string) (model.RatingAverage, error)
}

type ratingService struct {
	cat          *catalog.Catalog
	prog         *Progression
	achievements AchievementService
}

func NewRatingService(cat *catalog.Catalog, prog *Progression, achievements AchievementService) RatingService {
	return &ratingService{cat: cat, prog: prog, achievements: achievements}
}

func (svc *ratingService) SubmitRating(ctx context.Context, s *model.Session, locationID string, r model.Rating) (*model.SubmitRatingResponse, error) {
	loc, ok := svc.cat.Location(locationID)
	if !ok {
		return nil, model.NewAppError("LOCATION_NOT_FOUND", "Unknown location id.", "location_id", model.ErrNotFound)
	}
	if !r.InRange() {
		return nil, model.NewAppError("INVALID_RATING", "All rating dimensions must be between 1 and 5.", "", model.ErrInvalidInput)
	}

	isFirst := len(s.Ratings[locationID]) == 0
	s.Ratings[locationID] = append(s.Ratings[locationID], r)

	xp := ratingBaseXP
	if isFirst {
		xp += firstRatingBonus
	}
	if r.AllMax() {
		xp += allFivesBonus
	}

	notifs := svc.prog.GrantXP(s, xp, "")

	achNotifs, err := svc.achievements.EvaluateRatingRules(ctx, s, locationID, r)
	if err != nil {
		return nil, err
	}
	notifs = append(notifs, achNotifs...)

	avg := r.Mean()
	notifs = append(notifs, model.Notification{
		Type:    model.NotificationMissionComplete,
		Message: fmt.Sprintf("🎯 MISSION COMPLETE\n%s\nRating: %s (%.1f/5)\n+%d XP", loc.Name, strings.Repeat("★", int(avg)), avg, xp),
		Amount:  xp,
	})

	average, err := svc.AverageFor(s, locationID)
	if err != nil {
		return nil, err
	}
	return &model.SubmitRatingResponse{Average: average, Notifications: notifs}, nil
}

func (svc *ratingService) AverageFor(s *model.Session, locationID string) (model.RatingAverage, error) {
	loc, ok := svc.cat.Location(locationID)
	if !ok {
		return model.RatingAverage{}, model.NewAppError("LOCATION_NOT_FOUND", "Unknown location id.", "location_id", model.ErrNotFound)
	}

	list := s.Ratings[locationID]
	if len(list) == 0 {
		sample := loc.SampleRating
		return model.RatingAverage{
			Comfort:       float64(sample.Comfort),
			Quietness:     float64(sample.Quietness),
			Accessibility: float64(sample.Accessibility),
			VibeCheck:     float64(sample.VibeCheck),
			Danger:        float64(sample.Danger),
			Overall:       round1(sample.Mean()),
		}, nil
	}

	var comfort, quietness, accessibility, vibe, danger int
	for _, r := range list {
		comfort += r.Comfort
		quietness += r.Quietness
		accessibility += r.Accessibility
		vibe += r.VibeCheck
		danger += r.Danger
	}
	n := float64(len(list))

	// Per-dimension averages round first; the overall is the mean of those
	// rounded values, rounded again. Averaging order matters here.
	avg := model.RatingAverage{
		Comfort:       round1(float64(comfort) / n),
		Quietness:     round1(float64(quietness) / n),
		Accessibility: round1(float64(accessibility) / n),
		VibeCheck:     round1(float64(vibe) / n),
		Danger:        round1(float64(danger) / n),
	}
	avg.Overall = round1((avg.Comfort + avg.Quietness + avg.Accessibility + avg.VibeCheck + avg.Danger) / 5)
	return avg, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
