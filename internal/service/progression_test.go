// internal/service/progression_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

func Test_Progression_GrantXP(t *testing.T) {
	prog := NewProgression()

	t.Run("with reason emits xp_gained", func(t *testing.T) {
		s := model.NewSession("tester")
		notifs := prog.GrantXP(s, 100, "Quiz complete")

		require.Len(t, notifs, 1)
		assert.Equal(t, model.NotificationXPGained, notifs[0].Type)
		assert.Equal(t, 100, notifs[0].Amount)
		assert.Contains(t, notifs[0].Message, "+100 XP")
		assert.Contains(t, notifs[0].Message, "Quiz complete")
		assert.Equal(t, 100, s.XP)
	})

	t.Run("without reason is silent below a boundary", func(t *testing.T) {
		s := model.NewSession("tester")
		notifs := prog.GrantXP(s, 100, "")

		assert.Empty(t, notifs)
		assert.Equal(t, 100, s.XP)
	})

	t.Run("zero and negative amounts are no-ops", func(t *testing.T) {
		s := model.NewSession("tester")
		assert.Empty(t, prog.GrantXP(s, 0, "nope"))
		assert.Empty(t, prog.GrantXP(s, -10, "nope"))
		assert.Equal(t, 0, s.XP)
	})
}

func Test_Progression_LevelUp(t *testing.T) {
	prog := NewProgression()

	t.Run("crossing a boundary emits exactly one level_up", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 450

		notifs := prog.GrantXP(s, 100, "")
		require.Len(t, notifs, 1)
		assert.Equal(t, model.NotificationLevelUp, notifs[0].Type)
		assert.Equal(t, 2, notifs[0].NewLevel)
		assert.Contains(t, notifs[0].Message, "Level 2")
	})

	t.Run("landing exactly on a boundary levels up", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 400

		notifs := prog.GrantXP(s, 100, "")
		require.Len(t, notifs, 1)
		assert.Equal(t, 2, notifs[0].NewLevel)
	})

	t.Run("staying inside a band emits nothing", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 100

		assert.Empty(t, prog.GrantXP(s, 100, ""))
	})

	t.Run("new band title is unlocked once", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 999 // level 2, still SLEEPY NEWBIE

		notifs := prog.GrantXP(s, 1, "")
		require.Len(t, notifs, 1)
		assert.Equal(t, 3, notifs[0].NewLevel)
		assert.Equal(t, []string{"SLEEPY NEWBIE", "SNOOZE SCOUT"}, s.Titles)

		// Dropping back is impossible, but reaching level 4 keeps the same
		// band and must not duplicate the title.
		s.XP = 1499
		notifs = prog.GrantXP(s, 1, "")
		require.Len(t, notifs, 1)
		assert.Equal(t, []string{"SLEEPY NEWBIE", "SNOOZE SCOUT"}, s.Titles)
	})

	t.Run("bonus text is never credited", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 499

		notifs := prog.GrantXP(s, 1, "")
		require.Len(t, notifs, 1)
		assert.Contains(t, notifs[0].Message, "+50 BONUS XP")
		assert.Equal(t, 500, s.XP)
	})

	t.Run("xp_gained precedes level_up", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 499

		notifs := prog.GrantXP(s, 1, "Quiz complete")
		require.Len(t, notifs, 2)
		assert.Equal(t, model.NotificationXPGained, notifs[0].Type)
		assert.Equal(t, model.NotificationLevelUp, notifs[1].Type)
	})
}
