package domain

import (
	"encoding/json"
	"strings"
)

type Category string

const (
	CategorySteps Category = "steps"
	CategorySleep Category = "sleep"
	// CategoryHeart is recognized so scans of legacy heart-rate tags can be
	// rejected with an accurate message instead of a misleading limit one.
	CategoryHeart Category = "heart"
)

// DisplayName is the user-facing label for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategorySteps:
		return "physical activity"
	case CategorySleep:
		return "sleep"
	case CategoryHeart:
		return "heart rate"
	default:
		return string(c)
	}
}

var categorySynonyms = map[string]Category{
	"steps":             CategorySteps,
	"activity":          CategorySteps,
	"physical_activity": CategorySteps,
	"physical-activity": CategorySteps,
	"sleep":             CategorySleep,
	"heart":             CategoryHeart,
	"heartrate":         CategoryHeart,
	"heart_rate":        CategoryHeart,
}

// Token is the closed union of things a tag payload can encode.
type Token interface {
	isToken()
}

// AutomatedToken is a quantity earned from tracked health metrics.
type AutomatedToken struct {
	Category Category
	Amount   int
}

// MoodToken is an uncapped qualitative emotional-state scan.
type MoodToken struct {
	Label string
}

func (AutomatedToken) isToken() {}
func (MoodToken) isToken()      {}

type tokenPayload struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Mood     string `json:"mood"`
	Amount   int    `json:"amount"`
}

// ParseToken turns a decoded payload string into a validated token. Anything
// unparseable or invalid reports ok=false; the caller moves on to the next
// record.
func ParseToken(raw string) (Token, bool) {
	var payload tokenPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	switch payload.Type {
	case "automated":
		category, known := categorySynonyms[strings.ToLower(strings.TrimSpace(payload.Category))]
		amount := payload.Amount
		if amount < 0 {
			amount = 0
		}
		if !known || amount == 0 {
			return nil, false
		}
		return AutomatedToken{Category: category, Amount: amount}, true
	case "mood":
		label := strings.TrimSpace(payload.Mood)
		if label == "" {
			return nil, false
		}
		// Mood scans always count as one.
		return MoodToken{Label: payload.Mood}, true
	default:
		return nil, false
	}
}
