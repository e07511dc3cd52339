// internal/service/progression.go
package service

import (
	"fmt"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// Progression is the ledger for session XP. All XP, from any source, goes
// through GrantXP so that level-up detection and title unlocks happen in one
// place.
type Progression struct{}

func NewProgression() *Progression {
	return &Progression{}
}

// GrantXP adds amount to the session and returns the resulting notifications
// in order. When reason is non-empty an xp_gained notification is emitted;
// callers whose own message already carries the +XP text pass "".
//
// The level-up message advertises "+50 BONUS XP" but no such bonus is ever
// credited; the text is a display flourish the ledger deliberately ignores.
func (p *Progression) GrantXP(s *model.Session, amount int, reason string) []model.Notification {
	if amount <= 0 {
		return nil
	}

	oldLevel := s.Level()
	s.XP += amount

	var notifs []model.Notification
	if reason != "" {
		notifs = append(notifs, model.Notification{
			Type:    model.NotificationXPGained,
			Message: fmt.Sprintf("+%d XP - %s", amount, reason),
			Amount:  amount,
		})
	}

	if newLevel := s.Level(); newLevel > oldLevel {
		notifs = append(notifs, p.levelUp(s, newLevel))
	}
	return notifs
}

func (p *Progression) levelUp(s *model.Session, newLevel int) model.Notification {
	title := s.LevelTitle()
	if !s.HasTitle(title) {
		s.Titles = append(s.Titles, title)
	}
	return model.Notification{
		Type:     model.NotificationLevelUp,
		Message:  fmt.Sprintf("🎉 LEVEL UP! 🎉\nYou are now Level %d: %s\n+50 BONUS XP!", newLevel, title),
		NewLevel: newLevel,
	}
}
