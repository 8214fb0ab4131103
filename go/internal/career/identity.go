// Package career finds, guards and relocates the user's career player inside a save.
package career

import (
	"strings"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// MatchKind says how a player was recognised as the career player.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchByID
	MatchByName
	// MatchByAttributes is the legacy fallback for saves where the career player lost
	// its id and name: every attribute pair sits at the maximum.
	MatchByAttributes
)

func (k MatchKind) String() string {
	switch k {
	case MatchByID:
		return "pid"
	case MatchByName:
		return "name"
	case MatchByAttributes:
		return "maxed_attributes"
	default:
		return "none"
	}
}

// Strong reports whether the match came from a stable key rather than attribute values.
func (k MatchKind) Strong() bool {
	return k == MatchByID || k == MatchByName
}

// Identity describes the career player. A zero PID or empty name disables that check.
type Identity struct {
	PID                  int
	FirstName            string
	LastName             string
	MatchMaxedAttributes bool
}

// DefaultIdentity is Isaac Condrey, pid 706.
func DefaultIdentity() Identity {
	return Identity{
		PID:                  706,
		FirstName:            "Isaac",
		LastName:             "Condrey",
		MatchMaxedAttributes: true,
	}
}

// Match runs the id check, then the name check, then the maxed attribute fallback.
func (id Identity) Match(p models.Player) MatchKind {
	if p == nil {
		return MatchNone
	}
	if id.PID > 0 {
		if pid, ok := p.PID(); ok && pid == id.PID {
			return MatchByID
		}
	}
	if id.matchesName(p) {
		return MatchByName
	}
	if id.MatchMaxedAttributes && p.AllAttributesMaxed() {
		return MatchByAttributes
	}
	return MatchNone
}

// IsProtected reports whether p must never be overwritten.
func (id Identity) IsProtected(p models.Player) bool {
	return id.Match(p) != MatchNone
}

func (id Identity) matchesName(p models.Player) bool {
	if id.FirstName == "" || id.LastName == "" {
		return false
	}
	fn := strings.ToLower(p.FirstName())
	ln := strings.ToLower(p.LastName())
	return strings.Contains(fn, strings.ToLower(id.FirstName)) &&
		strings.Contains(ln, strings.ToLower(id.LastName))
}
