// internal/catalog/catalog.go
package catalog

import (
	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// Catalog bundles the static, read-only data the services operate over. It is
// constructed once at startup and never mutated afterwards.
type Catalog struct {
	Questions     []model.Question
	Personalities map[model.ArchetypeKey]model.Personality
	Locations     []model.Location
	Achievements  []model.Achievement

	// Collections maps a check-in achievement id to the location ids that
	// must all be checked into for it to unlock.
	Collections map[string][]string

	// AnswerStats holds the static percentile table per question id and
	// choice key, used for the "X% picked this" display.
	AnswerStats map[string]map[string]int

	Quotes []string

	locationsByID    map[string]*model.Location
	achievementsByID map[string]*model.Achievement
}

// Default returns the canonical catalog: 4 traits, 6 questions, 5 archetypes
// plus the Default sentinel, 10 campus locations plus one secret spot.
func Default() *Catalog {
	c := &Catalog{
		Questions:     questions,
		Personalities: personalities,
		Locations:     locations,
		Achievements:  achievements,
		AnswerStats:   answerStats,
		Quotes:        quotes,
	}
	c.Collections = map[string][]string{
		"library-legend":     {"cloud-nine-credit", "the-spynap-alley", "the-public-isolation"},
		"outdoor-enthusiast": {"the-urban-zen", "the-shade-throne", "the-stonecold-zen"},
		"jcit-master":        {"the-bobafueled-snooze", "the-stairwell-stealth", "the-curtaincall-nap", "the-modular-dream"},
		"comfort-seeker":     c.LocationIDsByRarity(model.RarityLegendary),
	}
	c.locationsByID = make(map[string]*model.Location, len(c.Locations))
	for i := range c.Locations {
		c.locationsByID[c.Locations[i].ID] = &c.Locations[i]
	}
	c.achievementsByID = make(map[string]*model.Achievement, len(c.Achievements))
	for i := range c.Achievements {
		c.achievementsByID[c.Achievements[i].ID] = &c.Achievements[i]
	}
	return c
}

// Location looks up a location by id.
func (c *Catalog) Location(id string) (*model.Location, bool) {
	loc, ok := c.locationsByID[id]
	return loc, ok
}

// Achievement looks up an achievement definition by id.
func (c *Catalog) Achievement(id string) (*model.Achievement, bool) {
	a, ok := c.achievementsByID[id]
	return a, ok
}

// Personality returns the archetype for a key, falling back to the Default
// sentinel for unknown keys.
func (c *Catalog) Personality(key model.ArchetypeKey) model.Personality {
	if p, ok := c.Personalities[key]; ok {
		return p
	}
	return c.Personalities[model.ArchetypeDefault]
}

// LocationIDsByRarity returns the ids of all locations with the given rarity,
// in catalog order.
func (c *Catalog) LocationIDsByRarity(r model.Rarity) []string {
	var ids []string
	for i := range locations {
		if locations[i].Rarity == r {
			ids = append(ids, locations[i].ID)
		}
	}
	return ids
}
