package career

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

func decodeDoc(t *testing.T, src string) *models.Document {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(src))
	dec.UseNumber()
	var raw map[string]any
	require.NoError(t, dec.Decode(&raw))
	return models.NewDocument(raw)
}

func decodePlayer(t *testing.T, src string) models.Player {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(src))
	dec.UseNumber()
	var raw map[string]any
	require.NoError(t, dec.Decode(&raw))
	return models.Player(raw)
}

func countMatches(doc *models.Document, id Identity) (total int, onHome int) {
	for _, team := range doc.TeamsOfLeagueType(models.LeagueTypeCollege) {
		for _, p := range team.Roster() {
			if id.IsProtected(p) {
				total++
				if team.DisplayName() == "North Carolina Tar Heels" {
					onHome++
				}
			}
		}
	}
	return total, onHome
}

func TestIdentity_Match(t *testing.T) {
	id := DefaultIdentity()

	tests := []struct {
		name   string
		player string
		want   MatchKind
	}{
		{"by pid", `{"pid": 706, "fn": "Someone", "ln": "Else"}`, MatchByID},
		{"by exact name", `{"pid": 1, "fn": "Isaac", "ln": "Condrey"}`, MatchByName},
		{"by name any case", `{"pid": 1, "fn": "ISAAC J.", "ln": "condrey"}`, MatchByName},
		{"first name only", `{"pid": 1, "fn": "Isaac", "ln": "Newton"}`, MatchNone},
		{"all maxed", `{"pid": 2, "fn": "A", "ln": "B", "attributes": {"LAY": [20, 20], "SPD": [20, 20]}}`, MatchByAttributes},
		{"one maxed", `{"pid": 2, "fn": "A", "ln": "B", "attributes": {"LAY": [20, 20], "SPD": [19, 20]}}`, MatchNone},
		{"no attributes", `{"pid": 2, "fn": "A", "ln": "B", "attributes": {}}`, MatchNone},
		{"pid as float text", `{"pid": 706.0}`, MatchByID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, id.Match(decodePlayer(t, tt.player)))
		})
	}
}

func TestIdentity_Disabled(t *testing.T) {
	p := decodePlayer(t, `{"pid": 706, "fn": "Isaac", "ln": "Condrey", "attributes": {"LAY": [20, 20]}}`)

	assert.False(t, Identity{}.IsProtected(p))
	assert.Equal(t, MatchNone, Identity{}.Match(nil))
}

const threeTeams = `{
  "seasonLeagues": [
    {"leagueType": 0, "teams": [
      {"city": "Pro", "name": "Team", "roster": [{"pid": 706, "fn": "Isaac", "ln": "Condrey"}]}
    ]},
    {"leagueType": 1, "teams": [
      {"city": "Duke", "name": "Blue Devils", "roster": [
        {"pid": 10, "fn": "A", "ln": "One"},
        %s
      ]},
      {"city": "North Carolina", "name": "Tar Heels", "roster": [
        {"pid": 20, "fn": "B", "ln": "Two", "stats": [], "attributes": {"LAY": [5, 9], "SPD": [7, 12]}},
        %s
      ]}
    ]}
  ]
}`

func TestLocator_Run(t *testing.T) {
	filler := `{"pid": 11, "fn": "C", "ln": "Three"}`
	career := `{"pid": 706, "fn": "Isaac", "ln": "Condrey", "rating": 99}`
	maxed := `{"pid": 55, "fn": "Max", "ln": "Ed", "attributes": {"LAY": [20, 20]}}`

	tests := []struct {
		name        string
		duke, unc   string
		wantOutcome Outcome
		wantRemoved int
	}{
		{"zero copies", filler, filler, OutcomeCreated, 0},
		{"one copy on home", filler, career, OutcomeFoundOnHome, 0},
		{"one copy elsewhere", career, filler, OutcomeRelocated, 0},
		{"two copies", career, career, OutcomeRelocated, 1},
		{"maxed only on home", filler, maxed, OutcomeFoundOnHome, 0},
		{"two maxed", maxed, maxed, OutcomeRelocated, 1},
		{"id elsewhere and maxed on home", career, maxed, OutcomeRelocated, 1},
		{"maxed elsewhere and id on home", maxed, career, OutcomeFoundOnHome, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := decodeDoc(t, fmt.Sprintf(threeTeams, tt.duke, tt.unc))
			loc := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege)

			res := loc.Run(doc)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantRemoved, res.DuplicatesRemoved)
			assert.Equal(t, "North Carolina Tar Heels", res.HomeTeam)

			total, onHome := countMatches(doc, DefaultIdentity())
			assert.Equal(t, 1, total)
			assert.Equal(t, 1, onHome)

			// pro league copy is outside the college scan and untouched
			pro := doc.TeamsOfLeagueType(0)
			require.Len(t, pro, 1)
			assert.Equal(t, 1, pro[0].RosterSize())
		})
	}
}

func TestLocator_RelocatesToFront(t *testing.T) {
	career := `{"pid": 706, "fn": "Isaac", "ln": "Condrey", "rating": 99}`
	doc := decodeDoc(t, fmt.Sprintf(threeTeams, career, `{"pid": 21, "fn": "D", "ln": "Four"}`))

	res := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege).Run(doc)
	require.Equal(t, OutcomeRelocated, res.Outcome)
	assert.Equal(t, "Duke Blue Devils", res.FromTeam)
	assert.Equal(t, MatchByID, res.Match)

	teams := doc.TeamsOfLeagueType(models.LeagueTypeCollege)
	assert.Equal(t, 1, teams[0].RosterSize())
	require.Equal(t, 3, teams[1].RosterSize())
	pid, _ := teams[1].PlayerAt(0).PID()
	assert.Equal(t, 706, pid)
}

func TestLocator_PrefersStableKeyOverMaxedAttributes(t *testing.T) {
	maxed := `{"pid": 55, "fn": "Max", "ln": "Ed", "attributes": {"LAY": [20, 20]}}`
	career := `{"pid": 706, "fn": "Isaac", "ln": "Condrey"}`
	doc := decodeDoc(t, fmt.Sprintf(threeTeams, maxed, career))

	res := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege).Run(doc)

	assert.Equal(t, OutcomeFoundOnHome, res.Outcome)
	assert.Equal(t, MatchByID, res.Match)
	assert.Equal(t, 1, res.DuplicatesRemoved)
	assert.Equal(t, 1, doc.TeamsOfLeagueType(models.LeagueTypeCollege)[0].RosterSize())
}

func TestLocator_KeeperSlotShiftsAfterEarlierRemoval(t *testing.T) {
	maxed := `{"pid": 55, "fn": "Max", "ln": "Ed", "attributes": {"LAY": [20, 20]}}`
	career := `{"pid": 706, "fn": "Isaac", "ln": "Condrey"}`
	doc := decodeDoc(t, fmt.Sprintf(threeTeams, `{"pid": 11}`, maxed+", "+career))

	res := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege).Run(doc)

	require.Equal(t, OutcomeFoundOnHome, res.Outcome)
	assert.Equal(t, 1, res.DuplicatesRemoved)
	pid, _ := res.Player.PID()
	assert.Equal(t, 706, pid)

	unc := doc.TeamsOfLeagueType(models.LeagueTypeCollege)[1]
	require.Equal(t, 2, unc.RosterSize())
	pid, _ = unc.PlayerAt(1).PID()
	assert.Equal(t, 706, pid)
}

func TestLocator_CreatesFromSample(t *testing.T) {
	filler := `{"pid": 11, "fn": "C", "ln": "Three"}`
	doc := decodeDoc(t, fmt.Sprintf(threeTeams, filler, filler))

	res := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege).Run(doc)
	require.Equal(t, OutcomeCreated, res.Outcome)

	p := doc.TeamsOfLeagueType(models.LeagueTypeCollege)[1].PlayerAt(0)
	pid, _ := p.PID()
	assert.Equal(t, 706, pid)
	assert.Equal(t, "Isaac", p.FirstName())
	assert.Equal(t, "Condrey", p.LastName())
	assert.Equal(t, CreatedRating, p[models.KeyRating])
	assert.Equal(t, CreatedJersey, p[models.KeyJersey])
	assert.Equal(t, []any{}, p[models.KeySkills])
	assert.True(t, p.AllAttributesMaxed())
	for _, k := range append([]string{"SPD"}, models.AttributeKeys...) {
		c, m, ok := models.PairValues(p.Attributes()[k])
		require.True(t, ok, k)
		assert.Equal(t, 20, c, k)
		assert.Equal(t, 20, m, k)
	}
	// sample had list shaped empty stats
	assert.Equal(t, models.StatsList, p.StatsShape())

	// the sample itself was not modified
	sample := doc.TeamsOfLeagueType(models.LeagueTypeCollege)[1].PlayerAt(1)
	assert.Equal(t, "B", sample.FirstName())
	c, _, _ := models.PairValues(sample.Attributes()["LAY"])
	assert.Equal(t, 5, c)
}

func TestLocator_SynthesizeShapes(t *testing.T) {
	loc := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege)

	mapping := loc.Synthesize(decodePlayer(t, `{"pid": 3, "stats": {}}`))
	assert.Equal(t, models.StatsMapping, mapping.StatsShape())

	kept := loc.Synthesize(decodePlayer(t, `{"pid": 3, "stats": {"ppg": 4}}`))
	assert.Equal(t, json.Number("4"), kept[models.KeyStats].(map[string]any)["ppg"])

	bare := loc.Synthesize(nil)
	assert.Equal(t, models.StatsList, bare.StatsShape())
	assert.Equal(t, 706, bare[models.KeyPID])
}

func TestLocator_NoHomeTeam(t *testing.T) {
	doc := decodeDoc(t, `{"seasonLeagues": [{"leagueType": 1, "teams": [
		{"city": "Duke", "name": "Blue Devils", "roster": [{"pid": 1}]}
	]}]}`)

	res := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege).Run(doc)

	assert.Equal(t, OutcomeNoHomeTeam, res.Outcome)
	assert.Equal(t, 1, doc.TeamsOfLeagueType(models.LeagueTypeCollege)[0].RosterSize())
}

func TestLocator_HomeAliasFallback(t *testing.T) {
	doc := decodeDoc(t, `{"seasonLeagues": [{"leagueType": 1, "teams": [
		{"city": "Duke", "name": "Blue Devils", "roster": [{"pid": 1}]},
		{"city": "UNC", "name": "Tar Heels", "roster": [{"pid": 2}]}
	]}]}`)

	res := NewLocator(DefaultIdentity(), DefaultHomeTeam(), models.LeagueTypeCollege).Run(doc)

	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, "UNC Tar Heels", res.HomeTeam)
}
