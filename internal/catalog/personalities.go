// internal/catalog/personalities.go
package catalog

import "github.com/oriiizz/Poly-U-Nap/internal/model"

var personalities = map[model.ArchetypeKey]model.Personality{
	model.ArchetypeLDP: {
		Key:         model.ArchetypeLDP,
		Title:       "Lecture Hall Phantom (LDP)",
		Description: "Thrives on tension and danger. You nap at the edge of chaos. Your ability to nap is triggered by stimulation, not the lack of it.",
		Icon:        "⚡",
		Spots:       []string{"the-spynap-alley", "the-stairwell-stealth"},
	},
	model.ArchetypeCDM: {
		Key:         model.ArchetypeCDM,
		Title:       "Couch Daydreamer (CDM)",
		Description: "Comfort is law. You rest like royalty, anywhere soft. You are a connoisseur of cushions, a baron of blankets, and a master of the plush arts.",
		Icon:        "☁️",
		Spots:       []string{"cloud-nine-credit", "the-public-isolation"},
	},
	model.ArchetypePNP: {
		Key:         model.ArchetypePNP,
		Title:       "Precision Napper (PNP)",
		Description: "Every nap is a sacred rite, optimized to perfection. You have a designated time, a perfect spot, and a full pre-sleep checklist.",
		Icon:        "🕯️",
		Spots:       []string{"the-curtaincall-nap", "the-modular-dream"},
	},
	model.ArchetypeWSD: {
		Key:         model.ArchetypeWSD,
		Title:       "Wandering Sleep Deity (WSD)",
		Description: "Can nap on clouds, cliffs, or chaos. The world is your bed. Your adaptability is legendary.",
		Icon:        "🍃",
		Spots:       []string{"the-urban-zen", "the-shade-throne"},
	},
	model.ArchetypeLHP: {
		Key:         model.ArchetypeLHP,
		Title:       "Library Slacker (LHP)",
		Description: "A rare hybrid forged from equal parts Stimulation (S) and Ritual (R). You thrive in peaceful, public realms where stealth and ceremony intertwine.",
		Icon:        "book-user",
		Spots:       []string{"the-spynap-alley", "the-stonecold-zen"},
	},
	model.ArchetypeDefault: {
		Key:         model.ArchetypeDefault,
		Title:       "Calculating Persona...",
		Description: "Your unique sleep profile is being analyzed by our highly-trained digital gnomes.",
		Icon:        "loader",
		Spots:       []string{},
	},
}
