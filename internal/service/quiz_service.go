// internal/service/quiz_service.go
package service

import (
	"context"
	"fmt"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// defaultAnswerPercentile is shown when a question or choice has no entry in
// the static stats table.
const defaultAnswerPercentile = 50

type QuizService interface {
	// RecordAnswer applies one choice at the session's cursor position. The
	// submitted index must match the cursor exactly; anything else fails fast
	// without touching quiz state.
	RecordAnswer(ctx context.Context, s *model.Session, questionIndex int, choice string) (*model.AnswerQuestionResponse, error)
	// ResetQuiz discards all quiz state, including a finished result. XP and
	// achievements earned from the previous run are untouched.
	ResetQuiz(ctx context.Context, s *model.Session)
	// Result classifies the finished quiz. Calling it before the quiz is
	// finished is a conflict.
	Result(ctx context.Context, s *model.Session) (*model.QuizResultResponse, error)
}

type quizService struct {
	cat          *catalog.Catalog
	prog         *Progression
	achievements AchievementService
	completionXP int
}

func NewQuizService(cat *catalog.Catalog, prog *Progression, achievements AchievementService, completionXP int) QuizService {
	return &quizService{cat: cat, prog: prog, achievements: achievements, completionXP: completionXP}
}

func (svc *quizService) RecordAnswer(ctx context.Context, s *model.Session, questionIndex int, choice string) (*model.AnswerQuestionResponse, error) {
	if s.Quiz.Finished {
		return nil, model.NewAppError("QUIZ_FINISHED", "The quiz is already finished. Reset it to retake.", "", model.ErrConflict)
	}
	if questionIndex != s.Quiz.CurrentQuestionIndex {
		return nil, model.NewAppError(
			"QUESTION_OUT_OF_ORDER",
			fmt.Sprintf("Expected an answer for question %d.", s.Quiz.CurrentQuestionIndex),
			"question_index",
			model.ErrInvalidInput,
		)
	}

	question := svc.cat.Questions[questionIndex]
	ch, ok := question.Choices[choice]
	if !ok {
		return nil, model.NewAppError("INVALID_CHOICE", "Choice is not valid for this question.", "choice", model.ErrInvalidInput)
	}

	s.Quiz.Answers = append(s.Quiz.Answers, choice)
	for _, t := range model.TraitPriority {
		if delta, ok := ch.Points[t]; ok {
			s.Quiz.Scores.Add(t, delta)
		}
	}

	resp := &model.AnswerQuestionResponse{}
	if questionIndex < len(svc.cat.Questions)-1 {
		s.Quiz.CurrentQuestionIndex++
		resp.NextQuestion = s.Quiz.CurrentQuestionIndex
		resp.Progress = s.Quiz.CurrentQuestionIndex * 100 / len(svc.cat.Questions)
		return resp, nil
	}

	s.Quiz.Finished = true
	resp.Finished = true
	resp.NextQuestion = questionIndex
	resp.Progress = 100

	resp.Notifications = svc.prog.GrantXP(s, svc.completionXP, "Quiz complete")

	achNotifs, err := svc.achievements.EvaluateQuizCompletionRules(ctx, s)
	if err != nil {
		return nil, err
	}
	resp.Notifications = append(resp.Notifications, achNotifs...)
	return resp, nil
}

func (svc *quizService) ResetQuiz(ctx context.Context, s *model.Session) {
	s.Quiz = model.QuizProgress{}
}

func (svc *quizService) Result(ctx context.Context, s *model.Session) (*model.QuizResultResponse, error) {
	if !s.Quiz.Finished {
		return nil, model.NewAppError("QUIZ_NOT_FINISHED", "The quiz is not finished yet.", "", model.ErrConflict)
	}

	key := Classify(s.Quiz.Scores, true)

	stats := make(map[string]int, len(s.Quiz.Answers))
	for i, q := range svc.cat.Questions {
		if i >= len(s.Quiz.Answers) {
			break
		}
		pct := defaultAnswerPercentile
		if byChoice, ok := svc.cat.AnswerStats[q.ID]; ok {
			if v, ok := byChoice[s.Quiz.Answers[i]]; ok {
				pct = v
			}
		}
		stats[q.ID] = pct
	}

	return &model.QuizResultResponse{
		Archetype:   svc.cat.Personality(key),
		Scores:      s.Quiz.Scores,
		AnswerStats: stats,
	}, nil
}
