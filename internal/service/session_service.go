// internal/service/session_service.go
package service

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/oriiizz/Poly-U-Nap/internal/catalog"
	"github.com/oriiizz/Poly-U-Nap/internal/config"
	"github.com/oriiizz/Poly-U-Nap/internal/middleware"
	"github.com/oriiizz/Poly-U-Nap/internal/model"
	"github.com/oriiizz/Poly-U-Nap/internal/session"
)

// NapService is the coordinator over the per-session aggregate. Handlers talk
// only to this interface; every operation resolves the session through the
// store, which serializes access per session id, then delegates to the peer
// services. The peers themselves never touch the store.
type NapService interface {
	CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.SessionResponse, error)

	Questions(ctx context.Context) []model.Question
	AnswerQuestion(ctx context.Context, sessionID uuid.UUID, questionIndex int, choice string) (*model.AnswerQuestionResponse, error)
	ResetQuiz(ctx context.Context, sessionID uuid.UUID) error
	QuizResult(ctx context.Context, sessionID uuid.UUID) (*model.QuizResultResponse, error)

	ListLocations(ctx context.Context, sessionID uuid.UUID) ([]*model.LocationResponse, error)
	GetLocation(ctx context.Context, sessionID uuid.UUID, locationID string) (*model.LocationResponse, error)
	SubmitRating(ctx context.Context, sessionID uuid.UUID, locationID string, r model.Rating) (*model.SubmitRatingResponse, error)
	CheckIn(ctx context.Context, sessionID uuid.UUID, locationID string) (*model.CheckInResponse, error)

	Profile(ctx context.Context, sessionID uuid.UUID) (*model.ProfileResponse, error)
	Achievements(ctx context.Context, sessionID uuid.UUID) ([]model.AchievementStatus, error)
}

type napService struct {
	store session.Store
	cat   *catalog.Catalog

	quiz         QuizService
	ratings      RatingService
	checkins     CheckInService
	achievements AchievementService
}

// NewNapService wires the peer services. Only the coordinator knows the full
// composition; the peers take their collaborators through their constructors
// and stay independently testable.
func NewNapService(store session.Store, cat *catalog.Catalog, cfg *config.Config) NapService {
	prog := NewProgression()
	achievements := NewAchievementService(cat, prog)
	return &napService{
		store:        store,
		cat:          cat,
		quiz:         NewQuizService(cat, prog, achievements, cfg.App.QuizCompletionXP),
		ratings:      NewRatingService(cat, prog, achievements),
		checkins:     NewCheckInService(cat, prog, achievements),
		achievements: achievements,
	}
}

func (s *napService) CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.SessionResponse, error) {
	logger := middleware.GetLogger(ctx)

	gamertag := req.Gamertag
	if gamertag == "" {
		gamertag = "Anonymous Napper"
	}

	sess := model.NewSession(gamertag)
	if err := s.store.Create(ctx, sess); err != nil {
		logger.Error("Error creating session", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Session created", "session_id", sess.SessionID, "gamertag", gamertag)
	return &model.SessionResponse{
		SessionID:  sess.SessionID,
		Gamertag:   sess.Gamertag,
		XP:         sess.XP,
		Level:      sess.Level(),
		LevelTitle: sess.LevelTitle(),
	}, nil
}

func (s *napService) Questions(ctx context.Context) []model.Question {
	return s.cat.Questions
}

func (s *napService) AnswerQuestion(ctx context.Context, sessionID uuid.UUID, questionIndex int, choice string) (*model.AnswerQuestionResponse, error) {
	var resp *model.AnswerQuestionResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		var err error
		resp, err = s.quiz.RecordAnswer(ctx, sess, questionIndex, choice)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *napService) ResetQuiz(ctx context.Context, sessionID uuid.UUID) error {
	return s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		s.quiz.ResetQuiz(ctx, sess)
		return nil
	})
}

func (s *napService) QuizResult(ctx context.Context, sessionID uuid.UUID) (*model.QuizResultResponse, error) {
	var resp *model.QuizResultResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		var err error
		resp, err = s.quiz.Result(ctx, sess)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListLocations returns the visible catalog with per-session averages. Secret
// spots stay hidden until the session has checked into them; they are still
// reachable by direct id (the QR code on site carries it).
func (s *napService) ListLocations(ctx context.Context, sessionID uuid.UUID) ([]*model.LocationResponse, error) {
	var out []*model.LocationResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		for i := range s.cat.Locations {
			loc := &s.cat.Locations[i]
			if loc.IsSecret && !sess.CheckedIn[loc.ID] {
				continue
			}
			resp, err := s.locationView(sess, loc)
			if err != nil {
				return err
			}
			out = append(out, resp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *napService) GetLocation(ctx context.Context, sessionID uuid.UUID, locationID string) (*model.LocationResponse, error) {
	var resp *model.LocationResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		loc, ok := s.cat.Location(locationID)
		if !ok {
			return model.NewAppError("LOCATION_NOT_FOUND", "Unknown location id.", "location_id", model.ErrNotFound)
		}
		var err error
		resp, err = s.locationView(sess, loc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *napService) locationView(sess *model.Session, loc *model.Location) (*model.LocationResponse, error) {
	avg, err := s.ratings.AverageFor(sess, loc.ID)
	if err != nil {
		return nil, err
	}
	return &model.LocationResponse{
		Location:     *loc,
		Average:      avg,
		RatingsCount: len(sess.Ratings[loc.ID]),
		CheckedIn:    sess.CheckedIn[loc.ID],
	}, nil
}

func (s *napService) SubmitRating(ctx context.Context, sessionID uuid.UUID, locationID string, r model.Rating) (*model.SubmitRatingResponse, error) {
	var resp *model.SubmitRatingResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		var err error
		resp, err = s.ratings.SubmitRating(ctx, sess, locationID, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *napService) CheckIn(ctx context.Context, sessionID uuid.UUID, locationID string) (*model.CheckInResponse, error) {
	var resp *model.CheckInResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		var err error
		resp, err = s.checkins.CheckIn(ctx, sess, locationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Profile assembles the dashboard. Everything is derived on read; nothing
// here mutates the session.
func (s *napService) Profile(ctx context.Context, sessionID uuid.UUID) (*model.ProfileResponse, error) {
	var resp *model.ProfileResponse
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		resp = s.buildProfile(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *napService) buildProfile(sess *model.Session) *model.ProfileResponse {
	totalRatings := 0
	sRank := 0
	sumMeans := 0.0
	for _, list := range sess.Ratings {
		totalRatings += len(list)
		for _, r := range list {
			if r.AllMax() {
				sRank++
			}
			sumMeans += r.Mean()
		}
	}

	avgGiven := 0.0
	if totalRatings > 0 {
		avgGiven = round1(sumMeans / float64(totalRatings))
	}

	// Favorite is the most-rated location; ties resolve in catalog order.
	favorite := ""
	favoriteCount := 0
	for i := range s.cat.Locations {
		loc := &s.cat.Locations[i]
		if n := len(sess.Ratings[loc.ID]); n > favoriteCount {
			favorite = loc.Name
			favoriteCount = n
		}
	}

	secrets := 0
	for id := range sess.CheckedIn {
		if loc, ok := s.cat.Location(id); ok && loc.IsSecret {
			secrets++
		}
	}

	unlocked := len(sess.UnlockedAchievements)
	total := len(s.cat.Achievements)

	return &model.ProfileResponse{
		SessionID:  sess.SessionID,
		Gamertag:   sess.Gamertag,
		XP:         sess.XP,
		Level:      sess.Level(),
		LevelTitle: sess.LevelTitle(),
		XPToNext:   sess.XPToNextLevel(),
		XPProgress: sess.XPProgressPercent(),
		Titles:     sess.Titles,

		Personality: s.cat.Personality(Classify(sess.Quiz.Scores, sess.Quiz.Finished)),

		MissionsCount:         len(sess.Ratings),
		ExploredCount:         len(sess.CheckedIn),
		SRankCount:            sRank,
		SecretsFound:          secrets,
		TotalRatings:          totalRatings,
		FavoriteLocation:      favorite,
		AverageRatingGiven:    avgGiven,
		CompletionPercent:     len(sess.Ratings) * 100 / len(s.cat.Locations),
		AchievementsUnlocked:  unlocked,
		AchievementsTotal:     total,
		AchievementCompletion: unlocked * 100 / total,

		Quote: s.cat.Quotes[rand.Intn(len(s.cat.Quotes))],
	}
}

func (s *napService) Achievements(ctx context.Context, sessionID uuid.UUID) ([]model.AchievementStatus, error) {
	var out []model.AchievementStatus
	err := s.store.Do(ctx, sessionID, func(sess *model.Session) error {
		out = make([]model.AchievementStatus, 0, len(s.cat.Achievements))
		for _, ach := range s.cat.Achievements {
			out = append(out, model.AchievementStatus{
				Achievement: ach,
				Unlocked:    sess.UnlockedAchievements[ach.ID],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
