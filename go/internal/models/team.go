package models

import "strings"

// Keys of a save-file team object.
const (
	KeyTeamCity   = "city"
	KeyTeamName   = "name"
	KeyTeamRoster = "roster"
)

// Team wraps a save-file team object. Roster edits write through to the document.
type Team struct {
	raw map[string]any
}

// NewTeam wraps a decoded team object.
func NewTeam(raw map[string]any) Team {
	return Team{raw: raw}
}

// Raw exposes the underlying object.
func (t Team) Raw() map[string]any {
	return t.raw
}

// City returns the team's city.
func (t Team) City() string {
	return StringValue(t.raw[KeyTeamCity])
}

// Name returns the team's nickname.
func (t Team) Name() string {
	return StringValue(t.raw[KeyTeamName])
}

// DisplayName is "<city> <name>", the key used by curated tables.
func (t Team) DisplayName() string {
	return strings.TrimSpace(t.City() + " " + t.Name())
}

func (t Team) rosterSlice() []any {
	roster, _ := t.raw[KeyTeamRoster].([]any)
	return roster
}

// RosterSize returns the number of roster slots.
func (t Team) RosterSize() int {
	return len(t.rosterSlice())
}

// Roster returns one Player per slot. Slots that are not JSON objects come back nil.
func (t Team) Roster() []Player {
	roster := t.rosterSlice()
	out := make([]Player, len(roster))
	for i, v := range roster {
		out[i] = asPlayer(v)
	}
	return out
}

// PlayerAt returns the player in slot i, or nil.
func (t Team) PlayerAt(i int) Player {
	roster := t.rosterSlice()
	if i < 0 || i >= len(roster) {
		return nil
	}
	return asPlayer(roster[i])
}

// RemovePlayer deletes slot i and returns the removed player.
func (t Team) RemovePlayer(i int) Player {
	roster := t.rosterSlice()
	if i < 0 || i >= len(roster) {
		return nil
	}
	removed := asPlayer(roster[i])
	next := make([]any, 0, len(roster)-1)
	next = append(next, roster[:i]...)
	next = append(next, roster[i+1:]...)
	t.raw[KeyTeamRoster] = next
	return removed
}

// InsertPlayerFront puts p in slot 0, shifting the roster down.
func (t Team) InsertPlayerFront(p Player) {
	roster := t.rosterSlice()
	next := make([]any, 0, len(roster)+1)
	next = append(next, map[string]any(p))
	next = append(next, roster...)
	t.raw[KeyTeamRoster] = next
}

func asPlayer(v any) Player {
	switch p := v.(type) {
	case map[string]any:
		return Player(p)
	case Player:
		return p
	default:
		return nil
	}
}
