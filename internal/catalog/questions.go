// internal/catalog/questions.go
package catalog

import "github.com/oriiizz/Poly-U-Nap/internal/model"

var questions = []model.Question{
	{
		ID:     "nq1",
		Part:   "PART I: The Bedside Creed",
		Text:   "When you spot a bed, what's your instinct?",
		Layout: "grid",
		Choices: map[string]model.Choice{
			"A": {
				Title:  "The Iron Spine (Hard as justice, firm as fate)",
				Emoji:  "🪵",
				Points: map[model.Trait]int{model.TraitComfort: 2},
			},
			"B": {
				Title:  "The Cloud Whisperer (Soft, cozy, infinite fluff)",
				Emoji:  "☁️",
				Points: map[model.Trait]int{model.TraitComfort: 3},
			},
			"C": {
				Title:  "The Ritualist (Your altar, your temple, your sacred zone)",
				Emoji:  "🕯️",
				Points: map[model.Trait]int{model.TraitRitual: 3},
			},
			"D": {
				Title:  "The Battle Sleeper (Sleep is WAR, thrive in hostile conditions)",
				Emoji:  "⚔️",
				Points: map[model.Trait]int{model.TraitStimulation: 2},
			},
		},
	},
	{
		ID:     "nq2",
		Part:   "PART I: The Bedside Creed",
		Text:   "What makes a perfect nap?",
		Layout: "grid",
		Choices: map[string]model.Choice{
			"A": {
				Title:  "Thrill of the Spot (Nap where you shouldn't)",
				Emoji:  "⚡",
				Points: map[model.Trait]int{model.TraitStimulation: 3},
			},
			"B": {
				Title:  "Sweet Serenity (Soft, quiet, kind environment)",
				Emoji:  "🌸",
				Points: map[model.Trait]int{model.TraitComfort: 2},
			},
			"C": {
				Title:  "The Ceremony (Candles, music, the same blanket every time)",
				Emoji:  "🔮",
				Points: map[model.Trait]int{model.TraitRitual: 3},
			},
			"D": {
				Title:  "Driftwood Soul (Any time, any place, any floor)",
				Emoji:  "🍃",
				Points: map[model.Trait]int{model.TraitAdaptability: 3},
			},
		},
	},
	{
		ID:     "q2",
		Part:   "Part 1: The Spark",
		Text:   "Your ideal napping light level?",
		Layout: "grid",
		Choices: map[string]model.Choice{
			"A": {
				Title:  "Pitch Black Void",
				Emoji:  "🌑",
				Points: map[model.Trait]int{model.TraitComfort: 2},
			},
			"B": {
				Title:  "A Little Ambient Light (Curtains drawn)",
				Emoji:  "🌤️",
				Points: map[model.Trait]int{model.TraitComfort: 1},
			},
			"C": {
				Title:  "Direct, Blazing Sunlight (Window seat)",
				Emoji:  "☀️",
				Points: map[model.Trait]int{model.TraitAdaptability: 2},
			},
			"D": {
				Title:  "Dim, non-disruptive, specific light (e.g. nightlight)",
				Emoji:  "🕯️",
				Points: map[model.Trait]int{model.TraitRitual: 2},
			},
		},
	},
	{
		ID:     "nq4",
		Part:   "PART II: Field Test Simulation",
		Text:   "A new nap spot appears on your map. Your move?",
		Layout: "grid",
		Choices: map[string]model.Choice{
			"A": {
				Title:  "Hardcore Challenge (The harder the surface, the greater the glory)",
				Emoji:  "🧗",
				Points: map[model.Trait]int{model.TraitStimulation: 2},
			},
			"B": {
				Title:  "Cozy Den (If it's soft and quiet, it's already home)",
				Emoji:  "🪶",
				Points: map[model.Trait]int{model.TraitComfort: 3},
			},
			"C": {
				Title:  "Hidden Nook (Secret corners call to your inner stealth napper)",
				Emoji:  "🕳️",
				Points: map[model.Trait]int{model.TraitStimulation: 1, model.TraitRitual: 1},
			},
			"D": {
				Title:  "Public Legend (Napping proudly in plain sight)",
				Emoji:  "🌆",
				Points: map[model.Trait]int{model.TraitAdaptability: 2},
			},
		},
	},
	{
		ID:     "nq5",
		Part:   "PART III: Deep Nap Philosophy",
		Text:   "Your nap soundtrack of choice?",
		Layout: "grid",
		Choices: map[string]model.Choice{
			"A": {
				Title:  "Chaos Ambience (Arguing neighbors, street sounds)",
				Emoji:  "🔊",
				Points: map[model.Trait]int{model.TraitStimulation: 3},
			},
			"B": {
				Title:  "Sleep Sanctuary (Total silence or a soft lullaby)",
				Emoji:  "🎧",
				Points: map[model.Trait]int{model.TraitComfort: 2},
			},
			"C": {
				Title:  "Ritual Noise (White noise machine, specific playlist)",
				Emoji:  "🎛️",
				Points: map[model.Trait]int{model.TraitRitual: 2},
			},
			"D": {
				Title:  "Freestyler (Can nap through anything, from construction to karaoke)",
				Emoji:  "🌀",
				Points: map[model.Trait]int{model.TraitAdaptability: 3},
			},
		},
	},
	{
		ID:     "q10",
		Part:   "Part 4: The Chameleon",
		Text:   "Napping in public?",
		Layout: "grid",
		Choices: map[string]model.Choice{
			"A": {
				Title:  "A big no from me (Need absolute privacy)",
				Emoji:  "🙅",
				Points: map[model.Trait]int{model.TraitComfort: 1},
			},
			"B": {
				Title:  "Anywhere is a good spot (Embrace the chaos)",
				Emoji:  "😎",
				Points: map[model.Trait]int{model.TraitAdaptability: 2},
			},
			"C": {
				Title:  "Only if I am desperate (A last resort)",
				Emoji:  "😥",
				Points: map[model.Trait]int{model.TraitRitual: 1, model.TraitComfort: 1},
			},
			"D": {
				Title:  "A quiet, public place is ideal (Like a library nook)",
				Emoji:  "🤫",
				Points: map[model.Trait]int{model.TraitStimulation: 1, model.TraitRitual: 1},
			},
		},
	},
}

var answerStats = map[string]map[string]int{
	"nq1": {"A": 20, "B": 50, "C": 10, "D": 20},
	"nq2": {"A": 15, "B": 40, "C": 30, "D": 15},
	"q2":  {"A": 40, "B": 60, "C": 0, "D": 0},
	"nq4": {"A": 10, "B": 50, "C": 20, "D": 20},
	"nq5": {"A": 10, "B": 40, "C": 30, "D": 20},
	"q10": {"A": 15, "B": 85, "C": 0, "D": 0},
}
