// internal/model/notification.go
package model

// NotificationType discriminates the effect records returned by mutating
// operations. The core never talks to the UI directly; callers drain the
// ordered notification list and dispatch it however they like.
type NotificationType string

const (
	NotificationXPGained            NotificationType = "xp_gained"
	NotificationLevelUp             NotificationType = "level_up"
	NotificationAchievementUnlocked NotificationType = "achievement_unlocked"
	NotificationCheckIn             NotificationType = "check_in"
	NotificationMissionComplete     NotificationType = "mission_complete"
)

// Notification is one user-visible effect. Each qualifying transition emits
// exactly one.
type Notification struct {
	Type          NotificationType `json:"type"`
	Message       string           `json:"message"`
	Amount        int              `json:"amount,omitempty"`         // XP credited, when applicable
	NewLevel      int              `json:"new_level,omitempty"`      // level_up only
	AchievementID string           `json:"achievement_id,omitempty"` // achievement_unlocked only
}
