package ratings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

func TestFromStats_AllZero(t *testing.T) {
	attrs := FromStats(models.Stats{})

	require.Len(t, attrs, len(models.AttributeKeys))
	for _, k := range models.AttributeKeys {
		assert.Equal(t, models.AttributePair{0, 0}, attrs[k], k)
	}
}

func TestFromStats_Saturates(t *testing.T) {
	huge := models.Stats{
		PPG: 1e12, RPG: 1e12, APG: 1e12, FGPct: 1e12,
		ThreePct: 1e12, FTPct: 1e12, SPG: 1e12, BPG: 1e12,
	}
	attrs := FromStats(huge)

	for _, k := range models.AttributeKeys {
		assert.Equal(t, models.AttributePair{20, 20}, attrs[k], k)
	}
}

func TestFromStats_Bounded(t *testing.T) {
	cases := []models.Stats{
		models.DefaultStats(),
		{PPG: -5, RPG: -1, APG: -3, FGPct: -0.2, ThreePct: -1, FTPct: -1, SPG: -2, BPG: -2},
		{PPG: 30.5, RPG: 14.2, APG: 11, FGPct: 0.61, ThreePct: 0.48, FTPct: 0.93, SPG: 2.7, BPG: 3.9},
		{PPG: math.Inf(1), RPG: math.NaN(), APG: math.Inf(-1)},
	}

	for _, stats := range cases {
		for k, v := range FromStats(stats) {
			assert.GreaterOrEqual(t, v.Current(), 0, k)
			assert.LessOrEqual(t, v.Current(), 20, k)
			assert.Equal(t, v.Current(), v.Max(), k)
		}
	}
}

func TestFromStats_KnownLine(t *testing.T) {
	// 14.2 / 3.8 / 5.1 on .445 / .365 / .820 with 1.2 steals and 0.3 blocks
	attrs := FromStats(models.Stats{
		PPG: 14.2, RPG: 3.8, APG: 5.1, FGPct: 0.445,
		ThreePct: 0.365, FTPct: 0.820, SPG: 1.2, BPG: 0.3,
	})

	want := map[string]int{
		models.AttrLayup:      20, // 8.52 + 13.35
		models.AttrDunk:       7,  // 1.9 + 6
		models.AttrInside:     18, // 15.575 + 3.04
		models.AttrMidRange:   20, // 13.35 + 7.1
		models.AttrThreePoint: 18, // 14.6 + 4.26
		models.AttrFreeThrow:  16,
		models.AttrDribbling:  10, // 6.12 + 4.26
		models.AttrPassing:    5,
		models.AttrOffRebound: 2,
		models.AttrDefRebound: 3,
		models.AttrSteal:      12,
		models.AttrBlock:      3,
	}
	for k, v := range want {
		assert.Equal(t, models.AttributePair{v, v}, attrs[k], k)
	}
}

func TestFromStats_DunkUsesClampedLayup(t *testing.T) {
	attrs := FromStats(models.Stats{PPG: 100, FGPct: 1})

	// layup saturates at 20, so dunk is 20*0.3 with no rebounds
	assert.Equal(t, models.AttributePair{6, 6}, attrs[models.AttrDunk])
}
