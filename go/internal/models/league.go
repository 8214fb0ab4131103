package models

// Keys of the save document and its leagues.
const (
	KeySeasonLeagues = "seasonLeagues"
	KeyLeagueType    = "leagueType"
	KeyLeagueTeams   = "teams"
)

// LeagueTypeCollege is the leagueType value of college leagues in mobile saves.
const LeagueTypeCollege = 1

// League wraps a save-file league object.
type League struct {
	raw map[string]any
}

// NewLeague wraps a decoded league object.
func NewLeague(raw map[string]any) League {
	return League{raw: raw}
}

// Type returns the numeric league type.
func (l League) Type() (int, bool) {
	v, ok := l.raw[KeyLeagueType]
	if !ok {
		return 0, false
	}
	return IntValue(v)
}

// Teams returns the league's team objects in order.
func (l League) Teams() []Team {
	raw, _ := l.raw[KeyLeagueTeams].([]any)
	teams := make([]Team, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			teams = append(teams, NewTeam(m))
		}
	}
	return teams
}

// Document is a decoded mobile save file.
type Document struct {
	raw map[string]any
}

// NewDocument wraps a decoded save object.
func NewDocument(raw map[string]any) *Document {
	return &Document{raw: raw}
}

// Raw exposes the underlying object.
func (d *Document) Raw() map[string]any {
	return d.raw
}

// Leagues returns every league object in order.
func (d *Document) Leagues() []League {
	raw, _ := d.raw[KeySeasonLeagues].([]any)
	leagues := make([]League, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			leagues = append(leagues, NewLeague(m))
		}
	}
	return leagues
}

// TeamsOfLeagueType flattens the teams of every league with the given type, in document order.
func (d *Document) TeamsOfLeagueType(leagueType int) []Team {
	var teams []Team
	for _, league := range d.Leagues() {
		if t, ok := league.Type(); !ok || t != leagueType {
			continue
		}
		teams = append(teams, league.Teams()...)
	}
	return teams
}
