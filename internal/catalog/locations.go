// internal/catalog/locations.go
package catalog

import "github.com/oriiizz/Poly-U-Nap/internal/model"

var locations = []model.Location{
	{
		ID:          "cloud-nine-credit",
		Spot:        "Study room on the G floor of the library",
		Name:        "Cloud Nine Credit Charge",
		Description: "Your demand for comfort rivals that of a five-star hotel sleep tester. Here, the sofa is a cloud, the power outlet is a magical spring. With stable Wi-Fi, you might even dream of being rewarded with credit hours.",
		Icon:        "sofa",
		ModelID:     "b67d3200015b48db9546fc8e2afd6168",
		Rarity:      model.RarityLegendary,
		SampleRating: model.Rating{
			Comfort: 5, Quietness: 5, Accessibility: 3, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-spynap-alley",
		Spot:        "The corridor of bookshelves on the G floor of the library",
		Name:        "The Spy-Nap Alley",
		Description: "Your sleep here is like a footnote in a thesis: precise, brief, yet indispensable. Each time you close your eyes, it's like activating 'Deep Recovery Mode,' restoring 80% energy in 5 minutes. But, sleeping here... is this bookshelf about to fall over...?",
		Icon:        "zap",
		ModelID:     "d682b1a9ea2f4683914f9e6384dcb845",
		Rarity:      model.RarityEpic,
		SampleRating: model.Rating{
			Comfort: 4, Quietness: 3, Accessibility: 4, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-public-isolation",
		Spot:        "Sofa on the G floor of the library",
		Name:        "The Public Isolation Island",
		Description: "This isn't a sofa; it's your 'Ergonomic Island.' People passing by? They're just the sightseers in your dream's bullet comments. You recharge your energy and your inspiration, waking up fully charged with inspiration unlocked in a new skin.",
		Icon:        "sofa",
		ModelID:     "5d549bf015bf49f8add67eb74e86ad26",
		Rarity:      model.RarityLegendary,
		SampleRating: model.Rating{
			Comfort: 4, Quietness: 4, Accessibility: 5, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-urban-zen",
		Spot:        "Outdoor wooden chair",
		Name:        "The Urban Zen Bench",
		Description: "You sleep on the city's pulse. The subway vibrations are white noise, the passing shadows are your dynamic screensaver. You're not napping outdoors; you're starring in a live performance of 'Urban Sleep Log.'",
		Icon:        "compass",
		ModelID:     "932a64b422a94be9bec6899d36c6f6ea",
		Rarity:      model.RarityUncommon,
		SampleRating: model.Rating{
			Comfort: 2, Quietness: 2, Accessibility: 4, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-shade-throne",
		Spot:        "Outdoor dining chair",
		Name:        "The Shade Throne",
		Description: "Under the sunshade umbrella, you are your own shopkeeper. Occasionally someone studying? They're just extras in your dream~",
		Icon:        "compass",
		ModelID:     "0201608218144d65892e4f63647774d0",
		Rarity:      model.RarityUncommon,
		SampleRating: model.Rating{
			Comfort: 3, Quietness: 3, Accessibility: 5, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-stonecold-zen",
		Spot:        "Outdoor stone chair",
		Name:        "The Stone-Cold Zen Zone",
		Description: "A four-person stone bench, you occupy one corner, the greenery is your screen. An occasional passerby? They're just forest spirits in your dream~",
		Icon:        "compass",
		ModelID:     "d33020d326bb4e6bbcf6043f6f5dfb1b",
		Rarity:      model.RarityUncommon,
		SampleRating: model.Rating{
			Comfort: 1, Quietness: 1, Accessibility: 4, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-bobafueled-snooze",
		Spot:        "JCIT Milk Tea Shop",
		Name:        "The Boba-Fueled Snooze Booth",
		Description: "Fall asleep to the scent of milk tea, wake up at the round table. I will strategically choose the 'off-peak hours'!",
		Icon:        "bed-double",
		ModelID:     "6c59d214f3224a6b9fa9f135937ff3ff",
		Rarity:      model.RarityRare,
		SampleRating: model.Rating{
			Comfort: 3, Quietness: 2, Accessibility: 3, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-stairwell-stealth",
		Spot:        "JCIT Stairwell",
		Name:        "The Stairwell Stealth Suite",
		Description: "The stench is your barrier, the emptiness is your dojo. No people, right? That's called 'Stealth Skill Activated'!",
		Icon:        "zap",
		ModelID:     "f0ca0a25820646bf9575d7e075aefae2",
		Rarity:      model.RarityEpic,
		SampleRating: model.Rating{
			Comfort: 1, Quietness: 1, Accessibility: 2, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-curtaincall-nap",
		Spot:        "JCIT Study Room Partition Area",
		Name:        "The Curtain-Call Nap Studio",
		Description: "Curtain drawn, reclining on the small chair, game console on standby~ The people around are just the audience of your sleep livestream!",
		Icon:        "sofa",
		ModelID:     "b1c28102ab3a4a7193e7b89a2130a19f",
		Rarity:      model.RarityLegendary,
		SampleRating: model.Rating{
			Comfort: 3, Quietness: 3, Accessibility: 4, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-modular-dream",
		Spot:        "JCIT Study Room Sofa",
		Name:        "The Modular Dream Fort",
		Description: "Modular sofas for you to arrange, the view outside for you to enjoy~ Just love the 'shared sleep experience'!",
		Icon:        "sofa",
		ModelID:     "85aa52c8637b42d18d7fb082bd11d265",
		Rarity:      model.RarityLegendary,
		SampleRating: model.Rating{
			Comfort: 4, Quietness: 5, Accessibility: 5, VibeCheck: 3, Danger: 1,
		},
	},
	{
		ID:          "the-rooftop-sanctum",
		Spot:        "Unmarked stairway behind the podium garden",
		Name:        "The Rooftop Sanctum",
		Description: "A spot that appears on no map. The wind is your blanket, the skyline your ceiling. If you found this, you were not looking for a nap; the nap was looking for you.",
		Icon:        "ghost",
		ModelID:     "",
		Rarity:      model.RarityMythical,
		IsSecret:    true,
		SampleRating: model.Rating{
			Comfort: 2, Quietness: 5, Accessibility: 1, VibeCheck: 5, Danger: 4,
		},
	},
}
