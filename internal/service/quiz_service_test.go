// internal/service/quiz_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

func newQuizFixture(completionXP int) (QuizService, *catalog.Catalog) {
	cat := catalog.Default()
	prog := NewProgression()
	return NewQuizService(cat, prog, NewAchievementService(cat, prog), completionXP), cat
}

// answerAll walks the whole quiz with the same choice and returns the final
// response.
func answerAll(t *testing.T, svc QuizService, s *model.Session, choice string, n int) *model.AnswerQuestionResponse {
	t.Helper()
	ctx := context.Background()
	var resp *model.AnswerQuestionResponse
	for i := 0; i < n; i++ {
		var err error
		resp, err = svc.RecordAnswer(ctx, s, i, choice)
		require.NoError(t, err)
	}
	return resp
}

func Test_quizService_RecordAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("advances the cursor and accumulates points", func(t *testing.T) {
		svc, cat := newQuizFixture(250)
		s := model.NewSession("tester")

		resp, err := svc.RecordAnswer(ctx, s, 0, "A")
		require.NoError(t, err)
		assert.False(t, resp.Finished)
		assert.Equal(t, 1, resp.NextQuestion)
		assert.Equal(t, 1, s.Quiz.CurrentQuestionIndex)
		assert.Equal(t, []string{"A"}, s.Quiz.Answers)

		// Question 1 choice A scores Comfort +2.
		wantDelta := cat.Questions[0].Choices["A"].Points
		for trait, delta := range wantDelta {
			assert.Equal(t, delta, s.Quiz.Scores.Get(trait))
		}
	})

	t.Run("out-of-order index fails fast", func(t *testing.T) {
		svc, _ := newQuizFixture(250)
		s := model.NewSession("tester")

		_, err := svc.RecordAnswer(ctx, s, 2, "A")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Empty(t, s.Quiz.Answers)
		assert.Equal(t, 0, s.Quiz.CurrentQuestionIndex)
	})

	t.Run("unknown choice fails fast", func(t *testing.T) {
		svc, _ := newQuizFixture(250)
		s := model.NewSession("tester")

		_, err := svc.RecordAnswer(ctx, s, 0, "X")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Empty(t, s.Quiz.Answers)
		assert.Equal(t, model.TraitScores{}, s.Quiz.Scores)
	})

	t.Run("answering a finished quiz is a conflict", func(t *testing.T) {
		svc, cat := newQuizFixture(250)
		s := model.NewSession("tester")
		answerAll(t, svc, s, "A", len(cat.Questions))

		_, err := svc.RecordAnswer(ctx, s, len(cat.Questions)-1, "A")
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("final answer finishes and credits completion XP", func(t *testing.T) {
		svc, cat := newQuizFixture(250)
		s := model.NewSession("tester")

		resp := answerAll(t, svc, s, "A", len(cat.Questions))
		assert.True(t, resp.Finished)
		assert.True(t, s.Quiz.Finished)
		assert.Equal(t, 100, resp.Progress)
		assert.Equal(t, 250, s.XP)

		require.NotEmpty(t, resp.Notifications)
		assert.Equal(t, model.NotificationXPGained, resp.Notifications[0].Type)
		assert.Equal(t, 250, resp.Notifications[0].Amount)
	})

	t.Run("zero completion XP credits nothing", func(t *testing.T) {
		svc, cat := newQuizFixture(0)
		s := model.NewSession("tester")

		resp := answerAll(t, svc, s, "A", len(cat.Questions))
		assert.True(t, resp.Finished)
		assert.Equal(t, 0, s.XP)
		assert.Empty(t, resp.Notifications)
	})
}

func Test_quizService_ResetQuiz(t *testing.T) {
	ctx := context.Background()
	svc, cat := newQuizFixture(250)
	s := model.NewSession("tester")

	answerAll(t, svc, s, "A", len(cat.Questions))
	require.True(t, s.Quiz.Finished)
	xpBefore := s.XP

	svc.ResetQuiz(ctx, s)

	assert.Equal(t, model.QuizProgress{}, s.Quiz)
	// XP earned by the previous run stays.
	assert.Equal(t, xpBefore, s.XP)

	// The quiz can be retaken from the start.
	resp, err := svc.RecordAnswer(ctx, s, 0, "B")
	require.NoError(t, err)
	assert.False(t, resp.Finished)
}

func Test_quizService_Result(t *testing.T) {
	ctx := context.Background()

	t.Run("unfinished quiz is a conflict", func(t *testing.T) {
		svc, _ := newQuizFixture(250)
		s := model.NewSession("tester")

		_, err := svc.Result(ctx, s)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("finished quiz classifies and reports stats", func(t *testing.T) {
		svc, cat := newQuizFixture(250)
		s := model.NewSession("tester")

		answerAll(t, svc, s, "A", len(cat.Questions))

		resp, err := svc.Result(ctx, s)
		require.NoError(t, err)
		assert.NotEqual(t, model.ArchetypeDefault, resp.Archetype.Key)
		assert.Equal(t, s.Quiz.Scores, resp.Scores)
		assert.Len(t, resp.AnswerStats, len(cat.Questions))
		for _, q := range cat.Questions {
			pct, ok := resp.AnswerStats[q.ID]
			assert.True(t, ok, "missing stats for %s", q.ID)
			assert.GreaterOrEqual(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		}
	})

	t.Run("same answers always classify the same", func(t *testing.T) {
		var firstKey model.ArchetypeKey
		for i := 0; i < 5; i++ {
			svc, cat := newQuizFixture(250)
			s := model.NewSession("tester")
			answerAll(t, svc, s, "C", len(cat.Questions))

			resp, err := svc.Result(ctx, s)
			require.NoError(t, err)
			if i == 0 {
				firstKey = resp.Archetype.Key
			} else {
				assert.Equal(t, firstKey, resp.Archetype.Key)
			}
		}
	})
}
