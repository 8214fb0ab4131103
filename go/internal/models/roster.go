package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Position is the numeric position code stored under a player's "pos" key.
type Position int

const (
	PositionPointGuard    Position = 0
	PositionShootingGuard Position = 1
	PositionSmallForward  Position = 2
	PositionPowerForward  Position = 3
	PositionCenter        Position = 4
)

// Positions lists the five primary positions in code order.
var Positions = []Position{
	PositionPointGuard,
	PositionShootingGuard,
	PositionSmallForward,
	PositionPowerForward,
	PositionCenter,
}

// String returns the position abbreviation.
func (p Position) String() string {
	switch p {
	case PositionPointGuard:
		return "PG"
	case PositionShootingGuard:
		return "SG"
	case PositionSmallForward:
		return "SF"
	case PositionPowerForward:
		return "PF"
	case PositionCenter:
		return "C"
	default:
		return fmt.Sprintf("POS%d", int(p))
	}
}

// Valid reports whether p is one of the five primary positions.
func (p Position) Valid() bool {
	return p >= PositionPointGuard && p <= PositionCenter
}

// Tier biases generated stats for teams without curated data.
type Tier string

const (
	TierElite   Tier = "elite"
	TierGood    Tier = "good"
	TierAverage Tier = "average"
	TierPoor    Tier = "poor"
)

// Multiplier scales generated counting stats and ratings.
func (t Tier) Multiplier() float64 {
	switch t {
	case TierElite:
		return 1.15
	case TierGood:
		return 1.05
	case TierPoor:
		return 0.95
	default:
		return 1.0
	}
}

// ParseTier accepts any casing of a tier name.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierElite, TierGood, TierAverage, TierPoor:
		return t, nil
	default:
		return "", fmt.Errorf("unknown quality tier %q", s)
	}
}

// UnmarshalText lets tiers be decoded from YAML and JSON strings.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RosterEntry is replacement data for one roster slot, either curated from real rosters
// or produced by the generator. Nil fields are left untouched on the target player.
type RosterEntry struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Position  *int    `json:"position,omitempty"`
	Jersey    *int    `json:"jersey,omitempty"`
	Height    *string `json:"height,omitempty"`
	Weight    *string `json:"weight,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Stats     *Stats  `json:"stats,omitempty"`

	// RawStats holds the stats object exactly as the source supplied it. Stats fills
	// missing keys with defaults for rating purposes; RawStats is what gets written.
	RawStats map[string]any `json:"-"`
}

// UnmarshalJSON decodes the entry and keeps the supplied stats keys in RawStats.
func (e *RosterEntry) UnmarshalJSON(data []byte) error {
	type plain RosterEntry
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}

	if out.Stats != nil {
		var raw struct {
			Stats json.RawMessage `json:"stats"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(raw.Stats))
		dec.UseNumber()
		if err := dec.Decode(&out.RawStats); err != nil {
			return fmt.Errorf("failed to decode stats: %w", err)
		}
	}

	*e = RosterEntry(out)
	return nil
}

// Empty reports whether the entry carries no replacement data at all.
func (e RosterEntry) Empty() bool {
	return e.FirstName == nil && e.LastName == nil && e.Position == nil && e.Jersey == nil &&
		e.Height == nil && e.Weight == nil && e.Age == nil && e.Rating == nil && e.Stats == nil
}

// StatsValues returns the stats keys to write onto a player: the supplied keys when the
// entry was decoded from a source, every canonical key otherwise. Nil without stats.
func (e RosterEntry) StatsValues() map[string]any {
	if e.Stats == nil {
		return nil
	}
	if e.RawStats == nil {
		return e.Stats.Map()
	}
	out := make(map[string]any, len(e.RawStats))
	for k, v := range e.RawStats {
		out[k] = deepCopy(v)
	}
	return out
}

// FullName joins the entry's name parts.
func (e RosterEntry) FullName() string {
	var parts []string
	if e.FirstName != nil {
		parts = append(parts, *e.FirstName)
	}
	if e.LastName != nil {
		parts = append(parts, *e.LastName)
	}
	return strings.Join(parts, " ")
}
