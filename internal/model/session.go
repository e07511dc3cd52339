// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// XPPerLevel is the flat XP width of every level band.
const XPPerLevel = 500

// Session is the aggregate owning all mutable per-user state. One instance
// per session, created empty at session start and held in memory only.
// A Session is NOT safe for concurrent use; the session store serializes
// access per session id.
type Session struct {
	SessionID uuid.UUID `json:"session_id"`
	Gamertag  string    `json:"gamertag"`
	CreatedAt time.Time `json:"created_at"`

	Quiz QuizProgress `json:"quiz"`

	// XP is monotonically non-decreasing; level and titles derive from it on
	// read and are never stored.
	XP     int      `json:"xp"`
	Titles []string `json:"titles"`

	UnlockedAchievements map[string]bool     `json:"-"`
	Ratings              map[string][]Rating `json:"-"` // append-only per location
	CheckedIn            map[string]bool     `json:"-"`
}

func NewSession(gamertag string) *Session {
	return &Session{
		SessionID:            uuid.New(),
		Gamertag:             gamertag,
		CreatedAt:            time.Now(),
		Titles:               []string{"SLEEPY NEWBIE"},
		UnlockedAchievements: make(map[string]bool),
		Ratings:              make(map[string][]Rating),
		CheckedIn:            make(map[string]bool),
	}
}

// Level is a pure function of XP: level 1 starts at 0 XP, one level per 500.
func (s *Session) Level() int {
	return s.XP/XPPerLevel + 1
}

func (s *Session) XPToNextLevel() int {
	return XPPerLevel - s.XP%XPPerLevel
}

func (s *Session) XPProgressPercent() int {
	return (s.XP % XPPerLevel) * 100 / XPPerLevel
}

// LevelTitle returns the highest qualifying band for the current level.
func (s *Session) LevelTitle() string {
	return LevelTitle(s.Level())
}

func LevelTitle(level int) string {
	switch {
	case level >= 20:
		return "NAP DEITY"
	case level >= 15:
		return "SLEEP LEGEND"
	case level >= 10:
		return "DREAM MASTER"
	case level >= 7:
		return "REST WARRIOR"
	case level >= 5:
		return "DOZE EXPERT"
	case level >= 3:
		return "SNOOZE SCOUT"
	default:
		return "SLEEPY NEWBIE"
	}
}

// HasTitle reports whether a title was already unlocked.
func (s *Session) HasTitle(title string) bool {
	for _, t := range s.Titles {
		if t == title {
			return true
		}
	}
	return false
}

type CreateSessionRequest struct {
	Gamertag string `json:"gamertag" validate:"omitempty,max=32"`
}

type SessionResponse struct {
	SessionID  uuid.UUID `json:"session_id"`
	Gamertag   string    `json:"gamertag"`
	XP         int       `json:"xp"`
	Level      int       `json:"level"`
	LevelTitle string    `json:"level_title"`
}
