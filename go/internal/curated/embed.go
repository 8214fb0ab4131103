// Package curated ships the hand-maintained 2025-26 college rosters and the team quality
// table, and serves them to the patch pass.
package curated

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

//go:embed data/rosters.json
var rostersJSON []byte

//go:embed data/tiers.yaml
var tiersYAML []byte

// Rosters decodes the embedded curated rosters keyed by team display name.
func Rosters() (map[string][]models.RosterEntry, error) {
	var rosters map[string][]models.RosterEntry
	if err := json.Unmarshal(rostersJSON, &rosters); err != nil {
		return nil, fmt.Errorf("failed to decode embedded rosters: %w", err)
	}
	return rosters, nil
}

// TierTable maps team display names to a quality tier.
type TierTable struct {
	Default models.Tier            `yaml:"default"`
	Teams   map[string]models.Tier `yaml:"teams"`
}

// Lookup returns the team's tier, or the table default when the team is not listed.
func (t TierTable) Lookup(team string) models.Tier {
	if tier, ok := t.Teams[team]; ok {
		return tier
	}
	if t.Default == "" {
		return models.TierAverage
	}
	return t.Default
}

// Tiers decodes the embedded quality table.
func Tiers() (TierTable, error) {
	var table TierTable
	if err := yaml.Unmarshal(tiersYAML, &table); err != nil {
		return TierTable{}, fmt.Errorf("failed to decode embedded tiers: %w", err)
	}
	return table, nil
}
