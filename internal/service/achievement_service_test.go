// internal/service/achievement_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

func newAchievementFixture() (AchievementService, *catalog.Catalog) {
	cat := catalog.Default()
	return NewAchievementService(cat, NewProgression()), cat
}

func Test_achievementService_Unlock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAchievementFixture()

	t.Run("first unlock credits XP and notifies", func(t *testing.T) {
		s := model.NewSession("tester")

		notifs, err := svc.Unlock(ctx, s, "zen-master")
		require.NoError(t, err)
		require.Len(t, notifs, 1)
		assert.Equal(t, model.NotificationAchievementUnlocked, notifs[0].Type)
		assert.Equal(t, "zen-master", notifs[0].AchievementID)
		assert.Equal(t, model.UnlockXP, notifs[0].Amount)
		assert.Contains(t, notifs[0].Message, "Zen Master")
		assert.Equal(t, model.UnlockXP, s.XP)
		assert.True(t, s.UnlockedAchievements["zen-master"])
	})

	t.Run("repeat unlock is a silent no-op", func(t *testing.T) {
		s := model.NewSession("tester")

		_, err := svc.Unlock(ctx, s, "zen-master")
		require.NoError(t, err)

		notifs, err := svc.Unlock(ctx, s, "zen-master")
		require.NoError(t, err)
		assert.Empty(t, notifs)
		assert.Equal(t, model.UnlockXP, s.XP, "XP must be credited exactly once")
	})

	t.Run("unknown id is an internal error", func(t *testing.T) {
		s := model.NewSession("tester")

		_, err := svc.Unlock(ctx, s, "does-not-exist")
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Equal(t, 0, s.XP)
	})

	t.Run("level_up from the bonus precedes the unlock notification", func(t *testing.T) {
		s := model.NewSession("tester")
		s.XP = 400

		notifs, err := svc.Unlock(ctx, s, "zen-master")
		require.NoError(t, err)
		require.Len(t, notifs, 2)
		assert.Equal(t, model.NotificationLevelUp, notifs[0].Type)
		assert.Equal(t, model.NotificationAchievementUnlocked, notifs[1].Type)
	})
}

func Test_achievementService_EvaluateRatingRules(t *testing.T) {
	ctx := context.Background()
	svc, cat := newAchievementFixture()

	rate := func(s *model.Session, locID string, r model.Rating) []model.Notification {
		s.Ratings[locID] = append(s.Ratings[locID], r)
		notifs, err := svc.EvaluateRatingRules(ctx, s, locID, r)
		require.NoError(t, err)
		return notifs
	}

	t.Run("perfect rating unlocks the expected set", func(t *testing.T) {
		s := model.NewSession("tester")
		perfect := model.Rating{Comfort: 5, Quietness: 5, Accessibility: 5, VibeCheck: 5, Danger: 5}

		notifs := rate(s, "cloud-nine-credit", perfect)

		var ids []string
		for _, n := range notifs {
			if n.Type == model.NotificationAchievementUnlocked {
				ids = append(ids, n.AchievementID)
			}
		}
		// All-fives hits the perfect-score, max-danger and max-quietness rules.
		assert.Equal(t, []string{"5-star-sleeper", "living-on-the-edge", "zen-master"}, ids)
	})

	t.Run("loud but vibey spot", func(t *testing.T) {
		s := model.NewSession("tester")
		r := model.Rating{Comfort: 3, Quietness: 1, Accessibility: 3, VibeCheck: 5, Danger: 2}

		notifs := rate(s, "cloud-nine-credit", r)
		require.Len(t, notifs, 1)
		assert.Equal(t, "social-sleeper", notifs[0].AchievementID)
	})

	t.Run("third distinct location unlocks the explorer", func(t *testing.T) {
		s := model.NewSession("tester")
		r := model.Rating{Comfort: 3, Quietness: 3, Accessibility: 3, VibeCheck: 3, Danger: 3}

		assert.Empty(t, rate(s, "cloud-nine-credit", r))
		assert.Empty(t, rate(s, "the-urban-zen", r))

		notifs := rate(s, "the-shade-throne", r)
		require.Len(t, notifs, 1)
		assert.Equal(t, "secret-spot-explorer", notifs[0].AchievementID)

		// A fourth location does not re-unlock it.
		assert.Empty(t, rate(s, "the-spynap-alley", r))
	})

	t.Run("rating every location without the quiz", func(t *testing.T) {
		s := model.NewSession("tester")
		r := model.Rating{Comfort: 3, Quietness: 3, Accessibility: 3, VibeCheck: 3, Danger: 3}

		var last []model.Notification
		for _, loc := range cat.Locations {
			last = rate(s, loc.ID, r)
		}

		var ids []string
		for _, n := range last {
			if n.Type == model.NotificationAchievementUnlocked {
				ids = append(ids, n.AchievementID)
			}
		}
		assert.Contains(t, ids, "all-area-conqueror")
		assert.NotContains(t, ids, "nap-legend", "nap-legend needs a finished quiz")
	})

	t.Run("rating every location with a finished quiz", func(t *testing.T) {
		s := model.NewSession("tester")
		s.Quiz.Finished = true
		r := model.Rating{Comfort: 3, Quietness: 3, Accessibility: 3, VibeCheck: 3, Danger: 3}

		var last []model.Notification
		for _, loc := range cat.Locations {
			last = rate(s, loc.ID, r)
		}

		var ids []string
		for _, n := range last {
			if n.Type == model.NotificationAchievementUnlocked {
				ids = append(ids, n.AchievementID)
			}
		}
		assert.Contains(t, ids, "all-area-conqueror")
		assert.Contains(t, ids, "nap-legend")
	})
}

func Test_achievementService_EvaluateCheckInRules(t *testing.T) {
	ctx := context.Background()
	svc, cat := newAchievementFixture()

	t.Run("secret spot unlocks explorer and boss", func(t *testing.T) {
		s := model.NewSession("tester")
		loc, ok := cat.Location("the-rooftop-sanctum")
		require.True(t, ok)
		s.CheckedIn[loc.ID] = true

		notifs, err := svc.EvaluateCheckInRules(ctx, s, loc)
		require.NoError(t, err)

		var ids []string
		for _, n := range notifs {
			if n.Type == model.NotificationAchievementUnlocked {
				ids = append(ids, n.AchievementID)
			}
		}
		assert.Equal(t, []string{"secret-spot-explorer", "secret-boss-defeated"}, ids)
	})

	t.Run("collection completes on the last member", func(t *testing.T) {
		s := model.NewSession("tester")
		members := cat.Collections["library-legend"]
		require.Len(t, members, 3)

		for _, id := range members[:2] {
			loc, ok := cat.Location(id)
			require.True(t, ok)
			s.CheckedIn[id] = true
			notifs, err := svc.EvaluateCheckInRules(ctx, s, loc)
			require.NoError(t, err)
			assert.Empty(t, notifs)
		}

		last, ok := cat.Location(members[2])
		require.True(t, ok)
		s.CheckedIn[last.ID] = true
		notifs, err := svc.EvaluateCheckInRules(ctx, s, last)
		require.NoError(t, err)
		require.Len(t, notifs, 1)
		assert.Equal(t, "library-legend", notifs[0].AchievementID)
	})
}

func Test_achievementService_EvaluateQuizCompletionRules(t *testing.T) {
	ctx := context.Background()
	svc, cat := newAchievementFixture()

	t.Run("no ratings yet means nothing unlocks", func(t *testing.T) {
		s := model.NewSession("tester")
		notifs, err := svc.EvaluateQuizCompletionRules(ctx, s)
		require.NoError(t, err)
		assert.Empty(t, notifs)
	})

	t.Run("finishing the quiz after rating everything grants nap-legend", func(t *testing.T) {
		s := model.NewSession("tester")
		r := model.Rating{Comfort: 3, Quietness: 3, Accessibility: 3, VibeCheck: 3, Danger: 3}
		for _, loc := range cat.Locations {
			s.Ratings[loc.ID] = append(s.Ratings[loc.ID], r)
		}

		notifs, err := svc.EvaluateQuizCompletionRules(ctx, s)
		require.NoError(t, err)
		require.Len(t, notifs, 1)
		assert.Equal(t, "nap-legend", notifs[0].AchievementID)
	})
}
