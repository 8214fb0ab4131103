// Package generator produces plausible college players for roster slots that have no
// curated data.
package generator

import (
	"math/rand"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// Generated ratings are clamped to this range.
const (
	MinRating = 68
	MaxRating = 99
	MinAge    = 18
	MaxAge    = 23
)

type statRange struct {
	lo, hi float64
}

type positionProfile struct {
	ppg, apg, rpg statRange
	fg, three     statRange
}

var profiles = map[models.Position]positionProfile{
	models.PositionPointGuard: {
		ppg: statRange{8, 16}, apg: statRange{4, 8}, rpg: statRange{2, 5},
		fg: statRange{0.40, 0.48}, three: statRange{0.32, 0.42},
	},
	models.PositionShootingGuard: {
		ppg: statRange{10, 18}, apg: statRange{2, 5}, rpg: statRange{3, 6},
		fg: statRange{0.42, 0.50}, three: statRange{0.35, 0.45},
	},
	models.PositionSmallForward: {
		ppg: statRange{12, 20}, apg: statRange{2, 4}, rpg: statRange{4, 8},
		fg: statRange{0.44, 0.52}, three: statRange{0.33, 0.40},
	},
	models.PositionPowerForward: {
		ppg: statRange{10, 16}, apg: statRange{1, 3}, rpg: statRange{6, 10},
		fg: statRange{0.46, 0.54}, three: statRange{0.28, 0.38},
	},
	models.PositionCenter: {
		ppg: statRange{8, 14}, apg: statRange{1, 2}, rpg: statRange{7, 12},
		fg: statRange{0.50, 0.58}, three: statRange{0.20, 0.35},
	},
}

// Generator draws every random value from its own source, so a fixed seed reproduces a run.
type Generator struct {
	rng *rand.Rand
}

// New constructs a Generator around rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded constructs a Generator with its own source seeded from seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Player generates a full roster entry for the position, jersey and quality tier.
// Positions outside 0-4 are generated as centers.
func (g *Generator) Player(pos models.Position, jersey int, tier models.Tier) models.RosterEntry {
	if !pos.Valid() {
		pos = models.PositionCenter
	}
	profile := profiles[pos]

	first := g.pick(firstNames)
	last := g.pick(lastNames)

	mult := tier.Multiplier()
	variation := g.uniform(statRange{0.85, 1.15})
	scale := mult * variation

	stats := models.Stats{
		PPG:      g.uniform(profile.ppg) * scale,
		APG:      g.uniform(profile.apg) * scale,
		RPG:      g.uniform(profile.rpg) * scale,
		FGPct:    g.uniform(profile.fg),
		ThreePct: g.uniform(profile.three),
	}
	stats.FTPct = g.uniform(statRange{0.65, 0.85})
	stats.SPG = g.uniform(statRange{0.5, 2.0}) * scale
	if pos >= models.PositionPowerForward {
		stats.BPG = g.uniform(statRange{0.2, 1.5}) * scale
	} else {
		stats.BPG = g.uniform(statRange{0.0, 0.5})
	}

	rating := Rating(stats, mult, variation)

	return models.RosterEntry{
		FirstName: models.Ptr(first),
		LastName:  models.Ptr(last),
		Position:  models.Ptr(int(pos)),
		Jersey:    models.Ptr(jersey),
		Height:    models.Ptr(g.pick(heights[pos])),
		Weight:    models.Ptr(g.pick(weights[pos])),
		Age:       models.Ptr(MinAge + g.rng.Intn(MaxAge-MinAge+1)),
		Rating:    models.Ptr(rating),
		Stats:     models.Ptr(stats.Rounded()),
	}
}

// Rating folds a stat line into an overall rating scaled by the tier multiplier and the
// player's variation factor, clamped to [68, 99].
func Rating(s models.Stats, mult, variation float64) int {
	base := (s.PPG*3.0 + s.RPG*2.5 + s.APG*3.0 + s.FGPct*50 + s.ThreePct*30 + s.FTPct*20) / 15
	scaled := base * mult * variation
	if scaled >= MaxRating {
		return MaxRating
	}
	if scaled <= MinRating {
		return MinRating
	}
	return int(scaled)
}

// BalancedPlan returns n positions with two of each position per ten slots, shuffled.
func (g *Generator) BalancedPlan(n int) []models.Position {
	base := []models.Position{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}
	plan := make([]models.Position, n)
	for i := range plan {
		plan[i] = base[i%len(base)]
	}
	g.rng.Shuffle(len(plan), func(i, j int) {
		plan[i], plan[j] = plan[j], plan[i]
	})
	return plan
}

// FillPlan cycles PG through C for the generated tail of a curated roster.
func FillPlan(n int) []models.Position {
	plan := make([]models.Position, n)
	for i := range plan {
		plan[i] = models.Positions[i%len(models.Positions)]
	}
	return plan
}

func (g *Generator) uniform(r statRange) float64 {
	return r.lo + (r.hi-r.lo)*g.rng.Float64()
}

func (g *Generator) pick(choices []string) string {
	return choices[g.rng.Intn(len(choices))]
}
