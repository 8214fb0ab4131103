package models

import "strings"

// Keys of a save-file player object.
const (
	KeyPID        = "pid"
	KeyFirstName  = "fn"
	KeyLastName   = "ln"
	KeyPosition   = "pos"
	KeyJersey     = "num"
	KeyHeight     = "ht"
	KeyWeight     = "wt"
	KeyAge        = "age"
	KeyRating     = "rating"
	KeyAttributes = "attributes"
	KeyStats      = "stats"
	KeySkills     = "skills"
)

// StatsShape describes how a save-file player stores its "stats" value.
type StatsShape int

const (
	StatsAbsent StatsShape = iota
	StatsMapping
	StatsList
	StatsOther
)

// Player is a save-file player object. The game owns the schema, so the record is kept
// as a decoded JSON object and every key this program does not touch survives a round trip.
type Player map[string]any

// PID returns the player id.
func (p Player) PID() (int, bool) {
	v, ok := p[KeyPID]
	if !ok {
		return 0, false
	}
	return IntValue(v)
}

// FirstName returns the "fn" value as text.
func (p Player) FirstName() string {
	return StringValue(p[KeyFirstName])
}

// LastName returns the "ln" value as text.
func (p Player) LastName() string {
	return StringValue(p[KeyLastName])
}

// FullName joins first and last name.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName() + " " + p.LastName())
}

// Jersey returns the jersey number, if the player has one.
func (p Player) Jersey() (int, bool) {
	v, ok := p[KeyJersey]
	if !ok {
		return 0, false
	}
	return IntValue(v)
}

// Attributes returns the attribute object or nil when missing or not an object.
func (p Player) Attributes() map[string]any {
	attrs, _ := p[KeyAttributes].(map[string]any)
	return attrs
}

// AllAttributesMaxed reports whether the player has at least one attribute pair and
// every pair sits at [20, 20].
func (p Player) AllAttributesMaxed() bool {
	attrs := p.Attributes()
	pairs := 0
	for _, v := range attrs {
		current, potential, ok := PairValues(v)
		if !ok {
			continue
		}
		if current != MaxAttributeValue || potential != MaxAttributeValue {
			return false
		}
		pairs++
	}
	return pairs > 0
}

// MergeAttributes writes attrs over the existing attribute object, keeping other keys.
func (p Player) MergeAttributes(attrs Attributes) {
	existing := p.Attributes()
	if existing == nil {
		existing = make(map[string]any, len(attrs))
	}
	for k, v := range attrs {
		existing[k] = v
	}
	p[KeyAttributes] = existing
}

// StatsShape classifies the stored "stats" value.
func (p Player) StatsShape() StatsShape {
	v, ok := p[KeyStats]
	if !ok || v == nil {
		return StatsAbsent
	}
	switch v.(type) {
	case map[string]any:
		return StatsMapping
	case []any:
		return StatsList
	default:
		return StatsOther
	}
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	out := make(Player, len(p))
	for k, v := range p {
		out[k] = deepCopy(v)
	}
	return out
}
