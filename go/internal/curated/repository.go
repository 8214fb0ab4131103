package curated

import (
	"context"
	"sort"

	"github.com/mcdev12/rosterpatch/go/clients"
	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// Repository serves curated rosters and quality tiers by team display name.
type Repository struct {
	rosters map[string][]models.RosterEntry
	tiers   TierTable
}

// NewRepository wraps rosters already merged from every source. Empty lists are dropped.
func NewRepository(rosters map[string][]models.RosterEntry, tiers TierTable) *Repository {
	kept := make(map[string][]models.RosterEntry, len(rosters))
	for team, entries := range rosters {
		if len(entries) > 0 {
			kept[team] = entries
		}
	}
	return &Repository{
		rosters: kept,
		tiers:   tiers,
	}
}

// LoadRepository merges the exports found in sourcesDir with the embedded rosters, in
// source priority order. Per-source failures are returned alongside the repository and
// never prevent it from being built.
func LoadRepository(ctx context.Context, sourcesDir string) (*Repository, []error, error) {
	manual, err := Rosters()
	if err != nil {
		return nil, nil, err
	}
	tiers, err := Tiers()
	if err != nil {
		return nil, nil, err
	}

	rosters, errs := clients.MergeRosters(ctx, clients.NewProviders(sourcesDir, manual))
	return NewRepository(rosters, tiers), errs, nil
}

// CuratedRoster returns the team's curated entries in roster order.
func (r *Repository) CuratedRoster(team string) ([]models.RosterEntry, bool) {
	entries, ok := r.rosters[team]
	return entries, ok
}

// TeamTier returns the team's quality tier.
func (r *Repository) TeamTier(team string) models.Tier {
	return r.tiers.Lookup(team)
}

// Teams lists every team with curated data, sorted.
func (r *Repository) Teams() []string {
	teams := make([]string, 0, len(r.rosters))
	for team := range r.rosters {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}
