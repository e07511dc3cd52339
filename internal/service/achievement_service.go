// internal/service/achievement_service.go
package service

import (
	"context"
	"fmt"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// AchievementService owns the unlock ledger and the rule sets that evaluate
// it after each domain event. Unlocks are one-way: nothing ever relocks.
type AchievementService interface {
	Unlock(ctx context.Context, s *model.Session, achievementID string) ([]model.Notification, error)
	EvaluateRatingRules(ctx context.Context, s *model.Session, locationID string, r model.Rating) ([]model.Notification, error)
	EvaluateCheckInRules(ctx context.Context, s *model.Session, loc *model.Location) ([]model.Notification, error)
	EvaluateQuizCompletionRules(ctx context.Context, s *model.Session) ([]model.Notification, error)
}

type achievementService struct {
	cat  *catalog.Catalog
	prog *Progression
}

func NewAchievementService(cat *catalog.Catalog, prog *Progression) AchievementService {
	return &achievementService{cat: cat, prog: prog}
}

// Unlock marks the achievement as unlocked and credits the flat XP bonus.
// Already-unlocked achievements are a silent no-op with no notifications.
// An id missing from the catalog is a programming error in a rule set and
// surfaces as an internal error rather than being swallowed.
func (svc *achievementService) Unlock(ctx context.Context, s *model.Session, achievementID string) ([]model.Notification, error) {
	ach, ok := svc.cat.Achievement(achievementID)
	if !ok {
		logger := middleware.GetLogger(ctx)
		logger.Error("Unknown achievement id in rule set", "achievement_id", achievementID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Achievement catalog mismatch.", "", model.ErrInternalServer)
	}

	if s.UnlockedAchievements[achievementID] {
		return nil, nil
	}
	s.UnlockedAchievements[achievementID] = true

	notifs := svc.prog.GrantXP(s, model.UnlockXP, "")
	notifs = append(notifs, model.Notification{
		Type:          model.NotificationAchievementUnlocked,
		Message:       fmt.Sprintf("🏆 Achievement Unlocked: %s (+%d XP)", ach.Title, model.UnlockXP),
		Amount:        model.UnlockXP,
		AchievementID: achievementID,
	})
	return notifs, nil
}

// EvaluateRatingRules runs after a rating has been appended for locationID.
// Rule order is fixed so notification order is deterministic.
func (svc *achievementService) EvaluateRatingRules(ctx context.Context, s *model.Session, locationID string, r model.Rating) ([]model.Notification, error) {
	var notifs []model.Notification

	unlock := func(id string) error {
		n, err := svc.Unlock(ctx, s, id)
		if err != nil {
			return err
		}
		notifs = append(notifs, n...)
		return nil
	}

	if r.AllMax() {
		if err := unlock("5-star-sleeper"); err != nil {
			return nil, err
		}
	}
	if r.Danger == 5 {
		if err := unlock("living-on-the-edge"); err != nil {
			return nil, err
		}
	}
	if r.Quietness == 5 {
		if err := unlock("zen-master"); err != nil {
			return nil, err
		}
	}
	if r.Quietness == 1 && r.VibeCheck == 5 {
		if err := unlock("social-sleeper"); err != nil {
			return nil, err
		}
	}
	if len(s.Ratings) >= 3 {
		if err := unlock("secret-spot-explorer"); err != nil {
			return nil, err
		}
	}
	if len(s.Ratings) == len(svc.cat.Locations) {
		if err := unlock("all-area-conqueror"); err != nil {
			return nil, err
		}
		if s.Quiz.Finished {
			if err := unlock("nap-legend"); err != nil {
				return nil, err
			}
		}
	}
	return notifs, nil
}

// EvaluateCheckInRules runs after a first check-in at loc. Secret spots
// trigger their own pair of unlocks; collection achievements unlock once
// every listed location has been checked into.
func (svc *achievementService) EvaluateCheckInRules(ctx context.Context, s *model.Session, loc *model.Location) ([]model.Notification, error) {
	var notifs []model.Notification

	unlock := func(id string) error {
		n, err := svc.Unlock(ctx, s, id)
		if err != nil {
			return err
		}
		notifs = append(notifs, n...)
		return nil
	}

	if loc.IsSecret {
		if err := unlock("secret-spot-explorer"); err != nil {
			return nil, err
		}
		if err := unlock("secret-boss-defeated"); err != nil {
			return nil, err
		}
	}

	// Catalog order keeps collection unlocks deterministic.
	for _, ach := range svc.cat.Achievements {
		required, ok := svc.cat.Collections[ach.ID]
		if !ok || len(required) == 0 {
			continue
		}
		complete := true
		for _, id := range required {
			if !s.CheckedIn[id] {
				complete = false
				break
			}
		}
		if complete {
			if err := unlock(ach.ID); err != nil {
				return nil, err
			}
		}
	}
	return notifs, nil
}

// EvaluateQuizCompletionRules runs once when the quiz finishes: a player who
// had already rated every location earns nap-legend at that moment.
func (svc *achievementService) EvaluateQuizCompletionRules(ctx context.Context, s *model.Session) ([]model.Notification, error) {
	if len(s.Ratings) == len(svc.cat.Locations) {
		return svc.Unlock(ctx, s, "nap-legend")
	}
	return nil, nil
}
