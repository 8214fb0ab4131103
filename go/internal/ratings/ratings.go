// Package ratings converts per-game box-score stats into 0-20 attribute pairs.
package ratings

import (
	"math"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// FromStats maps a stat line onto the twelve derived attributes. Each value is truncated
// toward zero and clamped to [0, 20]; current and max are set to the same value.
func FromStats(s models.Stats) models.Attributes {
	layup := clamp(s.PPG*0.6 + s.FGPct*30)
	dunk := clamp(s.RPG*0.5 + float64(layup)*0.3)
	inside := clamp(s.FGPct*35 + s.RPG*0.8)
	midRange := clamp(s.FGPct*30 + s.PPG*0.5)
	threePoint := clamp(s.ThreePct*40 + s.PPG*0.3)
	freeThrow := clamp(s.FTPct * 20)
	dribbling := clamp(s.APG*1.2 + s.PPG*0.3)
	passing := clamp(s.APG)
	offRebound := clamp(s.RPG * 0.6)
	defRebound := clamp(s.RPG * 0.8)
	steal := clamp(s.SPG * 10)
	block := clamp(s.BPG * 10)

	return models.Attributes{
		models.AttrLayup:      pair(layup),
		models.AttrDunk:       pair(dunk),
		models.AttrInside:     pair(inside),
		models.AttrMidRange:   pair(midRange),
		models.AttrThreePoint: pair(threePoint),
		models.AttrFreeThrow:  pair(freeThrow),
		models.AttrDribbling:  pair(dribbling),
		models.AttrPassing:    pair(passing),
		models.AttrOffRebound: pair(offRebound),
		models.AttrDefRebound: pair(defRebound),
		models.AttrSteal:      pair(steal),
		models.AttrBlock:      pair(block),
	}
}

func pair(v int) models.AttributePair {
	return models.AttributePair{v, v}
}

func clamp(v float64) int {
	// compare before converting so huge inputs cannot overflow int
	if v >= models.MaxAttributeValue {
		return models.MaxAttributeValue
	}
	if v <= models.MinAttributeValue || math.IsNaN(v) {
		return models.MinAttributeValue
	}
	return int(v)
}
