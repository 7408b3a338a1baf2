package tarot

import (
	"math/rand"
	"strings"
)

// Spread is a named card layout. Positions are ordered; each carries the
// positional meaning woven into prompts and fallback text.
type Spread struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Positions []string `json:"positions"`
}

var spreads = []Spread{
	{
		Name:      "single",
		Title:     "Single Card",
		Positions: []string{"The heart of the matter"},
	},
	{
		Name:      "three_card",
		Title:     "Past, Present, Future",
		Positions: []string{"Past", "Present", "Future"},
	},
	{
		Name:  "celtic_cross",
		Title: "Celtic Cross",
		Positions: []string{
			"Present situation",
			"The challenge crossing you",
			"Distant past, the root",
			"Recent past",
			"Best outcome you can aim for",
			"Immediate future",
			"Your own attitude",
			"Outside influences",
			"Hopes and fears",
			"Final outcome",
		},
	},
}

// Spreads returns the available layouts.
func Spreads() []Spread {
	out := make([]Spread, len(spreads))
	copy(out, spreads)
	return out
}

// SpreadByName resolves a spread by its API name (case-insensitive).
func SpreadByName(name string) (Spread, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range spreads {
		if s.Name == name {
			return s, true
		}
	}
	return Spread{}, false
}

// DrawnCard is one card placed at a spread position.
type DrawnCard struct {
	Position string `json:"position"`
	Card     Card   `json:"card"`
	Reversed bool   `json:"reversed"`
}

// Meaning returns the orientation-appropriate short meaning.
func (d DrawnCard) Meaning() string {
	if d.Reversed {
		return d.Card.Reversed
	}
	return d.Card.Upright
}

// Draw picks one unique card per spread position with a random orientation.
// The rng is injected so callers (and tests) control determinism; readings
// pass a time-seeded source, tests a fixed one.
func Draw(spread Spread, rng *rand.Rand) []DrawnCard {
	perm := rng.Perm(len(deck))
	out := make([]DrawnCard, len(spread.Positions))
	for i, pos := range spread.Positions {
		out[i] = DrawnCard{
			Position: pos,
			Card:     deck[perm[i]],
			Reversed: rng.Intn(2) == 1,
		}
	}
	return out
}
