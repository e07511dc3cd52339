// internal/model/quiz.go
package model

// ChoiceKeys is the fixed display order for a question's choices.
var ChoiceKeys = []string{"A", "B", "C", "D"}

// Choice is one selectable answer with its trait point deltas.
type Choice struct {
	Title  string        `json:"title"`
	Emoji  string        `json:"emoji"`
	Points map[Trait]int `json:"points"`
}

// Question is one entry of the static quiz catalog.
type Question struct {
	ID      string            `json:"id"`
	Part    string            `json:"part"`
	Text    string            `json:"text"`
	Layout  string            `json:"layout"`
	Choices map[string]Choice `json:"choices"`
}

// ArchetypeKey identifies a personality result bucket.
type ArchetypeKey string

const (
	ArchetypeLDP     ArchetypeKey = "LDP" // Stimulation dominant
	ArchetypeCDM     ArchetypeKey = "CDM" // Comfort dominant
	ArchetypePNP     ArchetypeKey = "PNP" // Ritual dominant
	ArchetypeWSD     ArchetypeKey = "WSD" // Adaptability dominant
	ArchetypeLHP     ArchetypeKey = "LHP" // S/R hybrid
	ArchetypeDefault ArchetypeKey = "Default"
)

// Personality is a static archetype record. Default is a placeholder used
// while the quiz is unfinished and must never be returned as a final result.
type Personality struct {
	Key         ArchetypeKey `json:"key"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Spots       []string     `json:"spots"` // recommended location ids, ordered
}

// QuizProgress is the per-session quiz state.
type QuizProgress struct {
	CurrentQuestionIndex int         `json:"current_question_index"`
	Answers              []string    `json:"answers"`
	Scores               TraitScores `json:"scores"`
	Finished             bool        `json:"finished"`
}

// AnswerQuestionRequest records one choice for the question at the session's
// current cursor position.
type AnswerQuestionRequest struct {
	QuestionIndex *int   `json:"question_index" validate:"required,min=0"`
	Choice        string `json:"choice" validate:"required,oneof=A B C D"`
}

type AnswerQuestionResponse struct {
	Finished      bool           `json:"finished"`
	NextQuestion  int            `json:"next_question_index"`
	Progress      int            `json:"progress_percent"`
	Notifications []Notification `json:"notifications"`
}

type QuizResultResponse struct {
	Archetype   Personality    `json:"archetype"`
	Scores      TraitScores    `json:"scores"`
	AnswerStats map[string]int `json:"answer_stats"`
}
