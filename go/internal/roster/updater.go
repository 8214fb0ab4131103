package roster

import (
	"github.com/mcdev12/rosterpatch/go/internal/career"
	"github.com/mcdev12/rosterpatch/go/internal/models"
	"github.com/mcdev12/rosterpatch/go/internal/ratings"
)

// Updater copies roster entries onto save-file players.
type Updater struct {
	identity career.Identity
}

// NewUpdater guards every player identity recognises as the career player.
func NewUpdater(identity career.Identity) *Updater {
	return &Updater{identity: identity}
}

// Protected reports whether p must be left untouched.
func (u *Updater) Protected(p models.Player) bool {
	return u.identity.IsProtected(p)
}

// Apply writes every non-nil field of e onto p and reports whether the entry was applied.
// The career player, nil slots and empty entries are returned as-is. When e carries stats,
// the derived attributes are merged over the existing ones and only the supplied stats keys
// are written; a list-shaped stats value belongs to the game's season history and is left alone.
func (u *Updater) Apply(p models.Player, e models.RosterEntry) (models.Player, bool) {
	if p == nil || e.Empty() || u.Protected(p) {
		return p, false
	}

	if e.FirstName != nil {
		p[models.KeyFirstName] = *e.FirstName
	}
	if e.LastName != nil {
		p[models.KeyLastName] = *e.LastName
	}
	if e.Position != nil {
		p[models.KeyPosition] = *e.Position
	}
	if e.Jersey != nil {
		p[models.KeyJersey] = *e.Jersey
	}
	if e.Height != nil {
		p[models.KeyHeight] = *e.Height
	}
	if e.Weight != nil {
		p[models.KeyWeight] = *e.Weight
	}
	if e.Age != nil {
		p[models.KeyAge] = *e.Age
	}
	if e.Rating != nil {
		p[models.KeyRating] = *e.Rating
	}

	if e.Stats != nil {
		p.MergeAttributes(ratings.FromStats(*e.Stats))

		values := e.StatsValues()
		switch p.StatsShape() {
		case models.StatsMapping:
			existing := p[models.KeyStats].(map[string]any)
			for k, v := range values {
				existing[k] = v
			}
		case models.StatsList:
			// left as is
		default:
			p[models.KeyStats] = values
		}
	}

	return p, true
}
