// internal/catalog/achievements.go
package catalog

import "github.com/oriiizz/Poly-U-Nap/internal/model"

var achievements = []model.Achievement{
	{
		ID:          "5-star-sleeper",
		Title:       "5-Star Sleeper",
		Description: "Rate a single location with a perfect 5-star score in all categories.",
		Icon:        "star",
	},
	{
		ID:          "secret-spot-explorer",
		Title:       "Secret Spot Explorer",
		Description: "Submit ratings for at least 3 different nap spots.",
		Icon:        "map-pin",
	},
	{
		ID:          "all-area-conqueror",
		Title:       "All-Area Conqueror",
		Description: "Leave your mark by rating all available nap locations.",
		Icon:        "crown",
	},
	{
		ID:          "nap-legend",
		Title:       "Nap Legend",
		Description: "Complete the personality quiz and rate every single location. A true master of rest.",
		Icon:        "shield-check",
	},
	{
		ID:          "living-on-the-edge",
		Title:       "Living on the Edge",
		Description: "Rate a location with maximum Danger level. You laugh in the face of peril.",
		Icon:        "skull",
	},
	{
		ID:          "zen-master",
		Title:       "Zen Master",
		Description: "Find a spot with perfect Quietness. Inner peace achieved.",
		Icon:        "flower",
	},
	{
		ID:          "social-sleeper",
		Title:       "Social Sleeper",
		Description: "Rate a spot that is loud but has immaculate vibes. Who needs quiet?",
		Icon:        "users",
	},
	{
		ID:          "night-owl",
		Title:       "The Night Owl",
		Description: "Access the app during the witching hours (Late Night).",
		Icon:        "moon",
	},
	{
		ID:          "secret-boss-defeated",
		Title:       "Secret Boss Defeated",
		Description: "Discover the hidden nap spot. You found the easter egg.",
		Icon:        "ghost",
	},
	{
		ID:          "library-legend",
		Title:       "Library Legend",
		Description: "Check in at all library locations (G floor study room, bookshelf corridor, and sofa).",
		Icon:        "book-open",
	},
	{
		ID:          "outdoor-enthusiast",
		Title:       "Outdoor Enthusiast",
		Description: "Check in at all outdoor seating areas (wooden, dining, and stone chairs).",
		Icon:        "sun",
	},
	{
		ID:          "jcit-master",
		Title:       "JCIT Master",
		Description: "Check in at all JCIT locations (Milk Tea Shop, Stairwell, Study Room areas).",
		Icon:        "building",
	},
	{
		ID:          "comfort-seeker",
		Title:       "Comfort Seeker",
		Description: "Check in at all LEGENDARY rarity locations.",
		Icon:        "sofa",
	},
	{
		ID:          "speed-napper",
		Title:       "Speed Napper",
		Description: "Complete a quiz in under 2 minutes.",
		Icon:        "zap",
	},
}

var quotes = []string{
	"To sleep, perchance to dream... ay, there's the rub... for in that sleep of death what dreams may come? Or, y'know, just drool on your textbook.",
	"The best bridge between despair and hope is a good night's sleep. Or a really, really good nap in the library.",
	"I think, therefore I am... tired.",
	"I have a dream... that one day I will get 8 full hours of sleep.",
	"Is it a crime to be this tired? Asking for a friend.",
	"My bed is a magical place where I suddenly remember everything I was supposed to do.",
	"They say 'go big or go home' as if going home to nap isn't a big win.",
	"I'm not a morning person or a night owl. I'm some form of permanently exhausted pigeon.",
	"If you love someone, let them sleep.",
	"Sleep is the best meditation. Also, it's a great way to avoid responsibilities.",
	"I've reached that age where my train of thought often leaves the station without me.",
	"Why fall in love when you can fall asleep?",
	"The only thing getting lit this weekend are my scented candles for a pre-nap vibe.",
	"A day without a nap is like... just kidding, I have no idea.",
	"I'm not lazy, I'm on energy-saving mode.",
	"Reality is a construct, and I'm constructing a nap.",
}
