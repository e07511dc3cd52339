// internal/service/checkin_service.go
package service

import (
	"context"
	"fmt"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

type CheckInService interface {
	CheckIn(ctx context.Context, s *model.Session, locationID string) (*model.CheckInResponse, error)
}

type checkInService struct {
	cat          *catalog.Catalog
	prog         *Progression
	achievements AchievementService
}

func NewCheckInService(cat *catalog.Catalog, prog *Progression, achievements AchievementService) CheckInService {
	return &checkInService{cat: cat, prog: prog, achievements: achievements}
}

// CheckIn records a visit at the location. Repeat check-ins are a no-op that
// reports AlreadyCheckedIn with no XP and no notifications.
func (svc *checkInService) CheckIn(ctx context.Context, s *model.Session, locationID string) (*model.CheckInResponse, error) {
	loc, ok := svc.cat.Location(locationID)
	if !ok {
		return nil, model.NewAppError("LOCATION_NOT_FOUND", "Unknown location id.", "location_id", model.ErrNotFound)
	}

	if s.CheckedIn[locationID] {
		return &model.CheckInResponse{AlreadyCheckedIn: true}, nil
	}
	s.CheckedIn[locationID] = true

	xp := loc.Rarity.CheckInXP()
	notifs := svc.prog.GrantXP(s, xp, "")

	notifs = append(notifs, model.Notification{
		Type:    model.NotificationCheckIn,
		Message: fmt.Sprintf("✅ CHECK-IN COMPLETE\n%s\n+%d XP", loc.Name, xp),
		Amount:  xp,
	})

	achNotifs, err := svc.achievements.EvaluateCheckInRules(ctx, s, loc)
	if err != nil {
		return nil, err
	}
	notifs = append(notifs, achNotifs...)

	return &model.CheckInResponse{Notifications: notifs}, nil
}
