// internal/service/classifier_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

func Test_Classify(t *testing.T) {
	tests := []struct {
		name     string
		scores   model.TraitScores
		finished bool
		want     model.ArchetypeKey
	}{
		{
			name:     "unfinished quiz is always the placeholder",
			scores:   model.TraitScores{Stimulation: 10},
			finished: false,
			want:     model.ArchetypeDefault,
		},
		{
			name:     "stimulation dominant",
			scores:   model.TraitScores{Stimulation: 8, Comfort: 3, Ritual: 2, Adaptability: 1},
			finished: true,
			want:     model.ArchetypeLDP,
		},
		{
			name:     "comfort dominant",
			scores:   model.TraitScores{Stimulation: 2, Comfort: 9, Ritual: 4, Adaptability: 1},
			finished: true,
			want:     model.ArchetypeCDM,
		},
		{
			name:     "ritual dominant",
			scores:   model.TraitScores{Stimulation: 1, Comfort: 2, Ritual: 7, Adaptability: 3},
			finished: true,
			want:     model.ArchetypePNP,
		},
		{
			name:     "adaptability dominant",
			scores:   model.TraitScores{Stimulation: 1, Comfort: 2, Ritual: 3, Adaptability: 9},
			finished: true,
			want:     model.ArchetypeWSD,
		},
		{
			name:     "S and R tied produce the hybrid",
			scores:   model.TraitScores{Stimulation: 4, Comfort: 1, Ritual: 4, Adaptability: 1},
			finished: true,
			want:     model.ArchetypeLHP,
		},
		{
			name:     "S and C tied break by priority to S",
			scores:   model.TraitScores{Stimulation: 3, Comfort: 3},
			finished: true,
			want:     model.ArchetypeLDP,
		},
		{
			name:     "third trait tying the max breaks the hybrid",
			scores:   model.TraitScores{Stimulation: 4, Comfort: 4, Ritual: 4, Adaptability: 1},
			finished: true,
			want:     model.ArchetypeLDP,
		},
		{
			// A zero max means every trait ties, so the hybrid rule must not
			// fire even though S and R are "tied".
			name:     "all-zero scores resolve by priority",
			scores:   model.TraitScores{},
			finished: true,
			want:     model.ArchetypeLDP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.scores, tt.finished)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Classify_Deterministic(t *testing.T) {
	scores := model.TraitScores{Stimulation: 2, Comfort: 2, Ritual: 2, Adaptability: 2}
	first := Classify(scores, true)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(scores, true))
	}
}
