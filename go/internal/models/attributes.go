package models

// Attribute keys as stored under a player's "attributes" object.
const (
	AttrLayup      = "LAY"
	AttrDunk       = "DNK"
	AttrInside     = "INS"
	AttrMidRange   = "MID"
	AttrThreePoint = "TPT"
	AttrFreeThrow  = "FTS"
	AttrDribbling  = "DRB"
	AttrPassing    = "PAS"
	AttrOffRebound = "ORE"
	AttrDefRebound = "DRE"
	AttrSteal      = "STL"
	AttrBlock      = "BLK"
)

// Attribute pairs are bounded to this range.
const (
	MinAttributeValue = 0
	MaxAttributeValue = 20
)

// AttributeKeys lists the attributes derived from box-score stats, in display order.
var AttributeKeys = []string{
	AttrLayup, AttrDunk, AttrInside, AttrMidRange, AttrThreePoint, AttrFreeThrow,
	AttrDribbling, AttrPassing, AttrOffRebound, AttrDefRebound, AttrSteal, AttrBlock,
}

// AttributePair is a [current, max] skill value. It marshals as a two element JSON array.
type AttributePair [2]int

// Current returns the current rating.
func (p AttributePair) Current() int { return p[0] }

// Max returns the potential rating.
func (p AttributePair) Max() int { return p[1] }

// Attributes maps an attribute key to its pair.
type Attributes map[string]AttributePair

// MaxedAttributes returns every derived attribute at [20, 20].
func MaxedAttributes() Attributes {
	attrs := make(Attributes, len(AttributeKeys))
	for _, k := range AttributeKeys {
		attrs[k] = AttributePair{MaxAttributeValue, MaxAttributeValue}
	}
	return attrs
}

// PairValues unpacks an attribute value from a decoded document. Values loaded from disk
// are []any of json.Number; values written during a run are AttributePair.
func PairValues(v any) (current, potential int, ok bool) {
	switch p := v.(type) {
	case AttributePair:
		return p[0], p[1], true
	case [2]int:
		return p[0], p[1], true
	case []int:
		if len(p) != 2 {
			return 0, 0, false
		}
		return p[0], p[1], true
	case []any:
		if len(p) != 2 {
			return 0, 0, false
		}
		c, okC := IntValue(p[0])
		m, okM := IntValue(p[1])
		if !okC || !okM {
			return 0, 0, false
		}
		return c, m, true
	default:
		return 0, 0, false
	}
}
