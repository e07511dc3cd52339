// internal/model/trait.go
package model

// Trait is one axis of the quiz's personality scoring.
type Trait string

const (
	TraitStimulation  Trait = "S"
	TraitComfort      Trait = "C"
	TraitRitual       Trait = "R"
	TraitAdaptability Trait = "A"
)

// TraitPriority is the fixed tie-break order used by the classifier. All trait
// iteration in scoring and classification goes through this slice, never
// through map order.
var TraitPriority = []Trait{TraitStimulation, TraitComfort, TraitRitual, TraitAdaptability}

// TraitScores holds the running accumulator for each trait. Deltas are only
// ever added, never subtracted; ResetQuiz replaces the whole value.
type TraitScores struct {
	Stimulation  int `json:"S"`
	Comfort      int `json:"C"`
	Ritual       int `json:"R"`
	Adaptability int `json:"A"`
}

func (ts TraitScores) Get(t Trait) int {
	switch t {
	case TraitStimulation:
		return ts.Stimulation
	case TraitComfort:
		return ts.Comfort
	case TraitRitual:
		return ts.Ritual
	case TraitAdaptability:
		return ts.Adaptability
	}
	return 0
}

func (ts *TraitScores) Add(t Trait, delta int) {
	switch t {
	case TraitStimulation:
		ts.Stimulation += delta
	case TraitComfort:
		ts.Comfort += delta
	case TraitRitual:
		ts.Ritual += delta
	case TraitAdaptability:
		ts.Adaptability += delta
	}
}

// Max returns the highest accumulator value.
func (ts TraitScores) Max() int {
	max := ts.Stimulation
	for _, t := range TraitPriority[1:] {
		if v := ts.Get(t); v > max {
			max = v
		}
	}
	return max
}

// Dominant returns the traits tied at Max, in priority order.
func (ts TraitScores) Dominant() []Trait {
	max := ts.Max()
	var dominant []Trait
	for _, t := range TraitPriority {
		if ts.Get(t) == max {
			dominant = append(dominant, t)
		}
	}
	return dominant
}
