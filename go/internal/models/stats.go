package models

import (
	"encoding/json"
	"math"
)

// Stats is the canonical per-game box score carried by roster entries.
type Stats struct {
	PPG      float64 `json:"ppg"`
	RPG      float64 `json:"rpg"`
	APG      float64 `json:"apg"`
	FGPct    float64 `json:"fg_pct"`
	ThreePct float64 `json:"three_pct"`
	FTPct    float64 `json:"ft_pct"`
	SPG      float64 `json:"spg"`
	BPG      float64 `json:"bpg"`
}

// DefaultStats holds the values assumed for keys missing from a stats object.
func DefaultStats() Stats {
	return Stats{
		PPG:      10,
		RPG:      5,
		APG:      3,
		FGPct:    0.45,
		ThreePct: 0.35,
		FTPct:    0.75,
		SPG:      1,
		BPG:      0.5,
	}
}

// UnmarshalJSON fills keys absent from the payload with DefaultStats.
func (s *Stats) UnmarshalJSON(data []byte) error {
	type plain Stats
	out := plain(DefaultStats())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*s = Stats(out)
	return nil
}

// Rounded trims counting stats to one decimal and percentages to three.
func (s Stats) Rounded() Stats {
	return Stats{
		PPG:      round(s.PPG, 1),
		RPG:      round(s.RPG, 1),
		APG:      round(s.APG, 1),
		FGPct:    round(s.FGPct, 3),
		ThreePct: round(s.ThreePct, 3),
		FTPct:    round(s.FTPct, 3),
		SPG:      round(s.SPG, 1),
		BPG:      round(s.BPG, 1),
	}
}

// Map renders the stats as the key/value object stored on a save-file player.
func (s Stats) Map() map[string]any {
	return map[string]any{
		"ppg":       s.PPG,
		"rpg":       s.RPG,
		"apg":       s.APG,
		"fg_pct":    s.FGPct,
		"three_pct": s.ThreePct,
		"ft_pct":    s.FTPct,
		"spg":       s.SPG,
		"bpg":       s.BPG,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
