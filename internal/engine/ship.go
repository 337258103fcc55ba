package engine

import (
	"strings"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// shipStats runs the ship pipeline: crew rating, crew-contributed stats,
// then the shared base stat finalization and formatting.
func (e *statEngine) shipStats(
	ship *swgoh.Unit,
	def *swgoh.UnitDefinition,
	crew []*crewMember,
	opts *StatOptions,
) (*swgoh.UnitStats, error) {
	b, err := e.shipRawStats(ship, def, crew)
	if err != nil {
		return nil, err
	}
	e.finalizeBaseStats(b, ship.Level, def)
	formatStats(b, ship.Level, opts)
	return e.renameStats(b, opts), nil
}

// verifyCrew checks the supplied crew against the ship definition's crew
// list: same size, and every member named by the definition.
func verifyCrew(ship *swgoh.Unit, def *swgoh.UnitDefinition, crew []*crewMember) error {
	if len(crew) != len(def.Crew) {
		return errors.InvalidArgumentf(
			"ship %s requires %d crew members, got %d", ship.DefID, len(def.Crew), len(crew))
	}
	for _, member := range crew {
		found := false
		for _, id := range def.Crew {
			if id == member.unit.DefID {
				found = true
				break
			}
		}
		if !found {
			return errors.InvalidArgumentf(
				"unit %s is not in %s's crew", member.unit.DefID, ship.DefID)
		}
	}
	return nil
}

// shipRawStats seeds the base bucket from the ship definition and the crew
// bucket from the crew-contribution stats scaled by rarity and crew rating.
func (e *statEngine) shipRawStats(
	ship *swgoh.Unit,
	def *swgoh.UnitDefinition,
	crew []*crewMember,
) (*statBuckets, error) {
	growth, ok := def.GrowthModifiers[ship.Rarity]
	if !ok {
		return nil, errors.OutOfRangef("ship %s has no rarity %d", ship.DefID, ship.Rarity)
	}

	rating := e.crewlessRating(ship)
	if len(crew) > 0 {
		rating = e.crewRating(crew)
	}
	multiplier := e.tables.CR.ShipRarityFactor[ship.Rarity] * rating

	b := &statBuckets{
		base:   copyStats(def.Stats),
		crew:   make(map[int]float64),
		growth: copyStats(growth),
	}
	for statID, value := range def.CrewStats {
		// Stats 1-15 and 28 have integer final values; the rest need the
		// full eight decimals of fixed-point precision.
		digits := 0
		if statID < 16 || statID == swgoh.StatProtection {
			digits = 8
		}
		b.crew[statID] = floorTo(value*multiplier, digits)
	}
	return b, nil
}

// crewRating sums each crew member's rating contribution from its level,
// rarity, gear, skills, mods and relic.
func (e *statEngine) crewRating(crew []*crewMember) float64 {
	cr := e.tables.CR
	total := 0.0
	for _, member := range crew {
		unit := member.unit
		total += cr.UnitLevel[unit.Level] + cr.CrewRarity[unit.Rarity] + cr.GearLevel[unit.Gear]
		if unit.Gear < swgoh.MaxGearTier {
			total += cr.GearPiece[unit.Gear] * float64(len(unit.Equipped))
		}
		for _, skill := range unit.Skills {
			total += cr.AbilityLevel[skill.Tier+2]
		}
		for _, mod := range unit.Mods {
			total += cr.ModRarityLevel[mod.ID.Pips][mod.Level]
		}
		if unit.Relic > 2 {
			total += cr.RelicTier[unit.Relic]
			total += float64(unit.Level) * cr.RelicTierLevelFactor[unit.Relic]
		}
	}
	return total
}

// crewlessRating approximates the rating of ships without crew. The
// multipliers are empirical; they reproduce the game's observed values and
// have no documented derivation.
func (e *statEngine) crewlessRating(ship *swgoh.Unit) float64 {
	cr := e.tables.CR
	rating := cr.CrewRarity[ship.Rarity] + 3.5*cr.UnitLevel[ship.Level]
	for _, skill := range ship.Skills {
		factor := 2.46
		if strings.HasPrefix(skill.ID, "hardware") {
			factor = 0.696
		}
		rating += factor * cr.AbilityLevel[skill.Tier+2]
	}
	return floorTo(rating, 0)
}
