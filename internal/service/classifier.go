// internal/service/classifier.go
package service

import "github.com/oriiizz/Poly-U-Nap/internal/model"

// archetypeForTrait binds each trait to its archetype for the priority-order
// resolution step.
var archetypeForTrait = map[model.Trait]model.ArchetypeKey{
	model.TraitStimulation:  model.ArchetypeLDP,
	model.TraitComfort:      model.ArchetypeCDM,
	model.TraitRitual:       model.ArchetypePNP,
	model.TraitAdaptability: model.ArchetypeWSD,
}

// Classify maps final trait scores to an archetype key. Pure and
// deterministic: all iteration follows model.TraitPriority, so an all-zero
// tie always resolves to the Stimulation archetype.
//
// The hybrid LHP result requires the dominant set to be exactly {S, R} with a
// positive score; a third trait tying the max breaks the hybrid and falls
// back to priority order.
func Classify(scores model.TraitScores, finished bool) model.ArchetypeKey {
	if !finished {
		return model.ArchetypeDefault
	}

	max := scores.Max()
	dominant := scores.Dominant()

	if max > 0 && len(dominant) == 2 &&
		dominant[0] == model.TraitStimulation && dominant[1] == model.TraitRitual {
		return model.ArchetypeLHP
	}

	for _, t := range model.TraitPriority {
		if scores.Get(t) == max {
			return archetypeForTrait[t]
		}
	}
	return model.ArchetypeDefault
}
