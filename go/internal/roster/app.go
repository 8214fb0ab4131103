package roster

import (
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/rosterpatch/go/internal/generator"
	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// RosterSource defines what the app layer needs from the curated tables
type RosterSource interface {
	CuratedRoster(team string) ([]models.RosterEntry, bool)
	TeamTier(team string) models.Tier
}

// Options tunes a patch pass.
type Options struct {
	LeagueType         int
	FillJerseyCap      int
	GeneratedJerseyCap int
}

// DefaultOptions patches college leagues with the standard jersey caps.
func DefaultOptions() Options {
	return Options{
		LeagueType:         models.LeagueTypeCollege,
		FillJerseyCap:      DefaultFillJerseyCap,
		GeneratedJerseyCap: DefaultGeneratedJerseyCap,
	}
}

// TeamMode says where a team's new roster came from.
type TeamMode string

const (
	TeamModeCurated   TeamMode = "curated"
	TeamModeGenerated TeamMode = "generated"
)

// TeamResult reports the patch of one team.
type TeamResult struct {
	Team      string
	Mode      TeamMode
	Curated   int
	Generated int
	Preserved int
}

// Summary totals a patch pass.
type Summary struct {
	TeamsUpdated     int
	PlayersUpdated   int
	PlayersPreserved int
	CuratedTeams     int
	GeneratedTeams   int
	Teams            []TeamResult
}

// App handles roster patching business logic
type App struct {
	updater   *Updater
	generator *generator.Generator
	source    RosterSource
	opts      Options
}

// NewApp creates a new roster App
func NewApp(updater *Updater, gen *generator.Generator, source RosterSource, opts Options) *App {
	return &App{
		updater:   updater,
		generator: gen,
		source:    source,
		opts:      opts,
	}
}

// PatchDocument rewrites the roster of every team in every league of the configured type.
// Teams without a roster, or with an empty one, are skipped.
func (a *App) PatchDocument(doc *models.Document) Summary {
	var sum Summary
	for _, team := range doc.TeamsOfLeagueType(a.opts.LeagueType) {
		if team.RosterSize() == 0 {
			continue
		}
		res := a.PatchTeam(team)

		sum.TeamsUpdated++
		sum.PlayersUpdated += res.Curated + res.Generated
		sum.PlayersPreserved += res.Preserved
		if res.Mode == TeamModeCurated {
			sum.CuratedTeams++
		} else {
			sum.GeneratedTeams++
		}
		sum.Teams = append(sum.Teams, res)
	}
	return sum
}

// PatchTeam applies curated data when the source has it for the team, and fills every
// other slot with generated players of the team's tier. Protected slots are taken out
// of the sequence first, so neither curated nor generated entries are spent on them.
func (a *App) PatchTeam(team models.Team) TeamResult {
	name := team.DisplayName()
	slots, skipped := a.indexableSlots(team)
	tier := a.source.TeamTier(name)
	res := TeamResult{Team: name, Preserved: len(skipped)}

	for _, slot := range skipped {
		log.Info().
			Str("team", name).
			Int("slot", slot).
			Str("player", team.PlayerAt(slot).FullName()).
			Msg("preserved career player")
	}

	entries, ok := a.source.CuratedRoster(name)
	if ok && len(entries) > 0 {
		res.Mode = TeamModeCurated
		res.Curated = a.ApplyCurated(team, slots, entries)

		applied := min(len(entries), len(slots))
		used := jerseysAt(team, append(append([]int{}, skipped...), slots[:applied]...))
		res.Generated = a.generate(team, slots[applied:], generator.FillPlan(len(slots)-applied), tier,
			NewJerseyPool(a.opts.FillJerseyCap, used))

		log.Info().
			Str("team", name).
			Int("curated", res.Curated).
			Int("generated", res.Generated).
			Msg("updated with real roster")
		return res
	}

	res.Mode = TeamModeGenerated
	res.Generated = a.generate(team, slots, a.generator.BalancedPlan(len(slots)), tier,
		NewJerseyPool(a.opts.GeneratedJerseyCap, jerseysAt(team, skipped)))

	log.Info().
		Str("team", name).
		Str("tier", string(tier)).
		Int("generated", res.Generated).
		Msg("generated realistic roster")
	return res
}

// ApplyCurated writes entries positionally onto slots and returns how many were applied.
// It draws nothing from the random source.
func (a *App) ApplyCurated(team models.Team, slots []int, entries []models.RosterEntry) int {
	applied := 0
	for k := 0; k < len(entries) && k < len(slots); k++ {
		if _, ok := a.updater.Apply(team.PlayerAt(slots[k]), entries[k]); ok {
			applied++
		}
	}
	return applied
}

func (a *App) generate(team models.Team, slots []int, plan []models.Position, tier models.Tier, pool *JerseyPool) int {
	applied := 0
	for i, slot := range slots {
		jersey, ok := pool.Next()
		if !ok {
			log.Warn().
				Str("team", team.DisplayName()).
				Int("slot", slot).
				Msg("no free jersey number left, using 0")
		}
		entry := a.generator.Player(plan[i], jersey, tier)
		if _, ok := a.updater.Apply(team.PlayerAt(slot), entry); ok {
			applied++
		}
	}
	return applied
}

// indexableSlots splits roster indexes into the slots a pass may write and the stable
// skip set of protected slots. Slots that are not player objects belong to neither.
func (a *App) indexableSlots(team models.Team) (slots, skipped []int) {
	for i, p := range team.Roster() {
		switch {
		case p == nil:
			continue
		case a.updater.Protected(p):
			skipped = append(skipped, i)
		default:
			slots = append(slots, i)
		}
	}
	return slots, skipped
}

func jerseysAt(team models.Team, slots []int) map[int]bool {
	used := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if n, ok := team.PlayerAt(slot).Jersey(); ok {
			used[n] = true
		}
	}
	return used
}
