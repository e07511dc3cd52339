// internal/model/profile.go
package model

import "github.com/google/uuid"

// ProfileResponse is the dashboard view: everything here is derived from the
// session on read.
type ProfileResponse struct {
	SessionID  uuid.UUID `json:"session_id"`
	Gamertag   string    `json:"gamertag"`
	XP         int       `json:"xp"`
	Level      int       `json:"level"`
	LevelTitle string    `json:"level_title"`
	XPToNext   int       `json:"xp_to_next_level"`
	XPProgress int       `json:"xp_progress_percent"`
	Titles     []string  `json:"titles"`

	Personality Personality `json:"personality"`

	MissionsCount         int     `json:"missions_count"`  // locations with >=1 rating
	ExploredCount         int     `json:"explored_count"`  // locations checked into
	SRankCount            int     `json:"s_rank_count"`    // all-fives submissions
	SecretsFound          int     `json:"secrets_found"`   // secret locations checked into
	TotalRatings          int     `json:"total_ratings"`   // submissions across locations
	FavoriteLocation      string  `json:"favorite_location"`
	AverageRatingGiven    float64 `json:"average_rating_given"`
	CompletionPercent     int     `json:"completion_percent"` // rated locations / catalog size
	AchievementsUnlocked  int     `json:"achievements_unlocked"`
	AchievementsTotal     int     `json:"achievements_total"`
	AchievementCompletion int     `json:"achievement_completion_percent"`

	Quote string `json:"quote"`
}
