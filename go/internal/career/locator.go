package career

import (
	"strings"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// Defaults for a career player synthesized from scratch.
const (
	CreatedPosition = models.PositionPointGuard
	CreatedJersey   = 1
	CreatedAge      = 20
	CreatedRating   = 99
)

// Outcome is the terminal state of a locate pass.
type Outcome int

const (
	OutcomeFoundOnHome Outcome = iota
	OutcomeRelocated
	OutcomeCreated
	OutcomeNoHomeTeam
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFoundOnHome:
		return "found_on_home"
	case OutcomeRelocated:
		return "relocated"
	case OutcomeCreated:
		return "created"
	case OutcomeNoHomeTeam:
		return "no_home_team"
	default:
		return "unknown"
	}
}

// HomeTeam names the team the career player must end up on. Name is compared exactly
// first; Aliases are substrings tried when no team has the exact display name.
type HomeTeam struct {
	Name    string
	Aliases []string
}

// DefaultHomeTeam is the North Carolina Tar Heels.
func DefaultHomeTeam() HomeTeam {
	return HomeTeam{
		Name:    "North Carolina Tar Heels",
		Aliases: []string{"North Carolina", "Tar Heels"},
	}
}

// Result reports what the locator did.
type Result struct {
	Outcome           Outcome
	Match             MatchKind
	FromTeam          string
	HomeTeam          string
	DuplicatesRemoved int
	Player            models.Player
}

// Locator guarantees a single career player sits at the front of the home roster.
type Locator struct {
	identity   Identity
	home       HomeTeam
	leagueType int
}

// NewLocator scans leagues whose leagueType equals leagueType.
func NewLocator(identity Identity, home HomeTeam, leagueType int) *Locator {
	return &Locator{
		identity:   identity,
		home:       home,
		leagueType: leagueType,
	}
}

type hit struct {
	team int
	slot int
	kind MatchKind
}

// Run locates the career player, keeps exactly one copy, and moves or creates it on the
// home team. The first match by id or name is kept; without one, the first maxed attribute
// match is. Every other match is removed.
func (l *Locator) Run(doc *models.Document) Result {
	teams := doc.TeamsOfLeagueType(l.leagueType)

	var hits []hit
	keep := -1
	for ti, team := range teams {
		for si, p := range team.Roster() {
			kind := l.identity.Match(p)
			if kind == MatchNone {
				continue
			}
			switch {
			case keep < 0, kind.Strong() && !hits[keep].kind.Strong():
				keep = len(hits)
			}
			hits = append(hits, hit{team: ti, slot: si, kind: kind})
		}
	}

	var keeper *hit
	if keep >= 0 {
		k := hits[keep]
		keeper = &k
	}
	removed := 0
	for i := len(hits) - 1; i >= 0; i-- {
		if i == keep {
			continue
		}
		teams[hits[i].team].RemovePlayer(hits[i].slot)
		removed++
		if hits[i].team == keeper.team && hits[i].slot < keeper.slot {
			keeper.slot--
		}
	}

	homeIdx, ok := l.findHome(teams)
	if !ok {
		res := Result{Outcome: OutcomeNoHomeTeam, DuplicatesRemoved: removed}
		if keeper != nil {
			res.Match = keeper.kind
			res.FromTeam = teams[keeper.team].DisplayName()
			res.Player = teams[keeper.team].PlayerAt(keeper.slot)
		}
		return res
	}
	home := teams[homeIdx]

	res := Result{HomeTeam: home.DisplayName(), DuplicatesRemoved: removed}
	switch {
	case keeper == nil:
		p := l.Synthesize(home.PlayerAt(0))
		home.InsertPlayerFront(p)
		res.Outcome = OutcomeCreated
		res.Player = p
	case keeper.team == homeIdx:
		res.Outcome = OutcomeFoundOnHome
		res.Match = keeper.kind
		res.FromTeam = home.DisplayName()
		res.Player = home.PlayerAt(keeper.slot)
	default:
		from := teams[keeper.team]
		p := from.RemovePlayer(keeper.slot)
		home.InsertPlayerFront(p)
		res.Outcome = OutcomeRelocated
		res.Match = keeper.kind
		res.FromTeam = from.DisplayName()
		res.Player = p
	}
	return res
}

func (l *Locator) findHome(teams []models.Team) (int, bool) {
	if l.home.Name != "" {
		for i, t := range teams {
			if strings.EqualFold(t.DisplayName(), l.home.Name) {
				return i, true
			}
		}
	}
	for i, t := range teams {
		name := t.DisplayName()
		for _, alias := range l.home.Aliases {
			if alias != "" && strings.Contains(name, alias) {
				return i, true
			}
		}
	}
	return 0, false
}

// Synthesize builds a career player shaped like sample: every key of sample is copied,
// then identity, ratings and skills are overwritten. Sample stats are kept; when sample has
// none, a season line is added in the same list-or-object shape the save uses.
func (l *Locator) Synthesize(sample models.Player) models.Player {
	p := models.Player{}
	if sample != nil {
		p = sample.Clone()
	}

	p[models.KeyPID] = l.identity.PID
	p[models.KeyFirstName] = l.identity.FirstName
	p[models.KeyLastName] = l.identity.LastName
	p[models.KeyPosition] = int(CreatedPosition)
	p[models.KeyJersey] = CreatedJersey
	p[models.KeyAge] = CreatedAge
	p[models.KeyRating] = CreatedRating
	p[models.KeySkills] = []any{}

	attrs := models.MaxedAttributes()
	for k, v := range p.Attributes() {
		if _, _, ok := models.PairValues(v); ok {
			attrs[k] = models.AttributePair{models.MaxAttributeValue, models.MaxAttributeValue}
		}
	}
	p[models.KeyAttributes] = map[string]any{}
	p.MergeAttributes(attrs)

	if statsEmpty(p[models.KeyStats]) {
		season := map[string]any{
			"season": map[string]any{"ppg": 25.0, "rpg": 5.0, "apg": 8.0},
		}
		if sample != nil && sample.StatsShape() == models.StatsMapping {
			p[models.KeyStats] = season
		} else {
			p[models.KeyStats] = []any{season}
		}
	}
	return p
}

func statsEmpty(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(s) == 0
	case []any:
		return len(s) == 0
	default:
		return false
	}
}
