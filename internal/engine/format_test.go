package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorTo(t *testing.T) {
	assert.Equal(t, 120e8, floorTo(120.7e8, 8))
	assert.Equal(t, 0.0, floorTo(0.9e8, 8))
	assert.Equal(t, 1072.0, floorTo(1072.5, 0))

	// Flooring an already floored value changes nothing.
	for _, v := range []float64{0, 1, 99999999, 120.7e8, 2160.0001e8, 123456789.123} {
		once := floorTo(v, 8)
		assert.Equal(t, once, floorTo(once, 8))
	}
}

func TestCritChanceRoundTrip(t *testing.T) {
	convert := critChanceFormula(1e8)
	for _, raw := range []float64{0, 12e8, 24e8, 100e8, 2400e8} {
		pct := convert(raw)
		back := (pct/1e8 - 0.1) * 2400 * 1e8
		assert.InDelta(t, raw, back, 1e-3)
	}
}

func TestDefenseFormulaShipDivisor(t *testing.T) {
	charConvert := defenseFormula(1e8, 85, false)
	shipConvert := defenseFormula(1e8, 85, true)

	// 637.5 raw armor matches the character divisor at level 85 exactly.
	assert.InDelta(t, 0.5e8, charConvert(637.5e8), 1)
	// Ships divide by 300 + 5*level instead.
	assert.InDelta(t, 637.5/(725+637.5)*1e8, shipConvert(637.5e8), 1)
}

func TestAccuracyFormula(t *testing.T) {
	convert := accuracyFormula(1e8)
	assert.InDelta(t, 0.1e8, convert(120e8), 1)
}

func TestCritAvoidanceFormula(t *testing.T) {
	convert := critAvoidanceFormula(1e8)
	assert.InDelta(t, 0.05e8, convert(120e8), 1)
}

func TestNoSpaceName(t *testing.T) {
	assert.Equal(t, "physicalCriticalChance", noSpaceName("Physical Critical Chance"))
	assert.Equal(t, "health", noSpaceName("Health"))
	assert.Equal(t, "speed", noSpaceName("speed"))
	assert.Equal(t, "", noSpaceName(""))
}
