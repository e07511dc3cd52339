// internal/model/achievement.go
package model

// Achievement is a static badge definition.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AchievementStatus pairs a definition with the session's unlock state.
type AchievementStatus struct {
	Achievement
	Unlocked bool `json:"unlocked"`
}

// UnlockXP is the flat bonus credited once per achievement unlock.
const UnlockXP = 200
