// internal/model/session_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Session_Level(t *testing.T) {
	tests := []struct {
		name      string
		xp        int
		wantLevel int
	}{
		{name: "zero XP is level 1", xp: 0, wantLevel: 1},
		{name: "just below first boundary", xp: 499, wantLevel: 1},
		{name: "exactly on first boundary", xp: 500, wantLevel: 2},
		{name: "just below second boundary", xp: 999, wantLevel: 2},
		{name: "exactly on second boundary", xp: 1000, wantLevel: 3},
		{name: "inside third band", xp: 1499, wantLevel: 3},
		{name: "exactly on third boundary", xp: 1500, wantLevel: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("tester")
			s.XP = tt.xp
			assert.Equal(t, tt.wantLevel, s.Level())
		})
	}
}

func Test_Session_XPToNextLevel(t *testing.T) {
	s := NewSession("tester")
	assert.Equal(t, 500, s.XPToNextLevel())

	s.XP = 450
	assert.Equal(t, 50, s.XPToNextLevel())
	assert.Equal(t, 90, s.XPProgressPercent())
}

func Test_LevelTitle_Bands(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "SLEEPY NEWBIE"},
		{2, "SLEEPY NEWBIE"},
		{3, "SNOOZE SCOUT"},
		{4, "SNOOZE SCOUT"},
		{5, "DOZE EXPERT"},
		{7, "REST WARRIOR"},
		{10, "DREAM MASTER"},
		{15, "SLEEP LEGEND"},
		{20, "NAP DEITY"},
		{99, "NAP DEITY"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelTitle(tt.level), "level %d", tt.level)
	}
}

func Test_NewSession_Defaults(t *testing.T) {
	s := NewSession("tester")

	assert.Equal(t, "tester", s.Gamertag)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, []string{"SLEEPY NEWBIE"}, s.Titles)
	assert.NotNil(t, s.UnlockedAchievements)
	assert.NotNil(t, s.Ratings)
	assert.NotNil(t, s.CheckedIn)
	assert.True(t, s.HasTitle("SLEEPY NEWBIE"))
	assert.False(t, s.HasTitle("NAP DEITY"))
}

func Test_Rating_Helpers(t *testing.T) {
	perfect := Rating{Comfort: 5, Quietness: 5, Accessibility: 5, VibeCheck: 5, Danger: 5}
	assert.True(t, perfect.AllMax())
	assert.True(t, perfect.InRange())
	assert.Equal(t, 5.0, perfect.Mean())

	mixed := Rating{Comfort: 5, Quietness: 1, Accessibility: 3, VibeCheck: 4, Danger: 2}
	assert.False(t, mixed.AllMax())
	assert.True(t, mixed.InRange())
	assert.Equal(t, 3.0, mixed.Mean())

	invalid := Rating{Comfort: 0, Quietness: 1, Accessibility: 3, VibeCheck: 4, Danger: 2}
	assert.False(t, invalid.InRange())
}

func Test_Rarity_CheckInXP(t *testing.T) {
	assert.Equal(t, 150, RarityLegendary.CheckInXP())
	assert.Equal(t, 100, RarityEpic.CheckInXP())
	assert.Equal(t, 75, RarityRare.CheckInXP())
	assert.Equal(t, 50, RarityUncommon.CheckInXP())
	// Unlisted tiers fall back to the base reward.
	assert.Equal(t, 50, RarityMythical.CheckInXP())
}

func Test_Review_Score(t *testing.T) {
	r := Review{Hours: 1.5, Quality: 4, Rating: 5}
	// 1.5*10 + 4*2 + 5*3 = 38
	assert.Equal(t, 38.0, r.Score())

	r = Review{Hours: 0.33, Quality: 3, Rating: 2}
	// 3.3 + 6 + 6 = 15.3
	assert.Equal(t, 15.3, r.Score())
}

func Test_TraitScores_Dominant(t *testing.T) {
	ts := TraitScores{Stimulation: 4, Comfort: 2, Ritual: 4, Adaptability: 1}
	assert.Equal(t, 4, ts.Max())
	assert.Equal(t, []Trait{TraitStimulation, TraitRitual}, ts.Dominant())

	// All-zero scores tie every trait at the max.
	zero := TraitScores{}
	assert.Equal(t, 0, zero.Max())
	assert.Equal(t, TraitPriority, zero.Dominant())
}
