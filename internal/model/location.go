// internal/model/location.go
package model

// Rarity is a static tier controlling check-in XP. The ordering
// UNCOMMON < RARE < EPIC < LEGENDARY < MYTHICAL is used only for XP
// weighting, never for score comparison.
type Rarity string

const (
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
	RarityMythical  Rarity = "MYTHICAL"
)

// CheckInXP returns the XP awarded for a first check-in at a location of this
// rarity. Unlisted tiers fall back to the UNCOMMON reward.
func (r Rarity) CheckInXP() int {
	switch r {
	case RarityLegendary:
		return 150
	case RarityEpic:
		return 100
	case RarityRare:
		return 75
	default:
		return 50
	}
}

// Location is one entry of the static nap spot catalog. Never mutated at
// runtime; user ratings are stored on the session keyed by location id.
type Location struct {
	ID           string `json:"id"`
	Spot         string `json:"location"` // physical description
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	ModelID      string `json:"model_id"` // external 3D model reference
	Rarity       Rarity `json:"rarity"`
	IsSecret     bool   `json:"is_secret"`
	SampleRating Rating `json:"sample_rating"` // shown until the first user rating exists
}

// Rating is a single submission with exactly five dimensions, each in [1,5].
type Rating struct {
	Comfort       int `json:"comfort" validate:"required,min=1,max=5"`
	Quietness     int `json:"quietness" validate:"required,min=1,max=5"`
	Accessibility int `json:"accessibility" validate:"required,min=1,max=5"`
	VibeCheck     int `json:"vibe_check" validate:"required,min=1,max=5"`
	Danger        int `json:"danger" validate:"required,min=1,max=5"`
}

func (r Rating) values() [5]int {
	return [5]int{r.Comfort, r.Quietness, r.Accessibility, r.VibeCheck, r.Danger}
}

// InRange reports whether every dimension is within [1,5]. The handler
// validates this already; services re-check defensively.
func (r Rating) InRange() bool {
	for _, v := range r.values() {
		if v < 1 || v > 5 {
			return false
		}
	}
	return true
}

// AllMax reports whether every dimension is 5 (an "S-rank" submission).
func (r Rating) AllMax() bool {
	for _, v := range r.values() {
		if v != 5 {
			return false
		}
	}
	return true
}

// Mean returns the unrounded mean of the five dimensions.
func (r Rating) Mean() float64 {
	sum := 0
	for _, v := range r.values() {
		sum += v
	}
	return float64(sum) / 5
}

// RatingAverage is the derived per-location view, all values rounded to one
// decimal.
type RatingAverage struct {
	Comfort       float64 `json:"comfort"`
	Quietness     float64 `json:"quietness"`
	Accessibility float64 `json:"accessibility"`
	VibeCheck     float64 `json:"vibe_check"`
	Danger        float64 `json:"danger"`
	Overall       float64 `json:"overall"`
}

type LocationResponse struct {
	Location
	Average      RatingAverage `json:"average_rating"`
	RatingsCount int           `json:"ratings_count"`
	CheckedIn    bool          `json:"checked_in"`
}

type SubmitRatingResponse struct {
	Average       RatingAverage  `json:"average_rating"`
	Notifications []Notification `json:"notifications"`
}

type CheckInResponse struct {
	AlreadyCheckedIn bool           `json:"already_checked_in"`
	Notifications    []Notification `json:"notifications"`
}
