package engine

import (
	"sort"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// statBuckets is the working state of one calculation, keyed by numeric stat
// id in the game's unscaled fixed-point units.
type statBuckets struct {
	base   map[int]float64
	gear   map[int]float64
	mods   map[int]float64
	crew   map[int]float64
	growth map[int]float64
	final  map[int]float64
}

func (b *statBuckets) isShip() bool {
	return b.crew != nil
}

// charStats runs the full character pipeline and returns renamed output.
func (e *statEngine) charStats(
	unit *swgoh.Unit,
	def *swgoh.UnitDefinition,
	opts *StatOptions,
) (*swgoh.UnitStats, error) {
	b, err := e.charRawStats(unit, def)
	if err != nil {
		return nil, err
	}
	e.finalizeBaseStats(b, unit.Level, def)
	if len(unit.Mods) > 0 && !opts.WithoutModCalc {
		b.mods = e.modStats(b.base, unit)
	}
	formatStats(b, unit.Level, opts)
	return e.renameStats(b, opts), nil
}

// charRawStats seeds the base and gear buckets from the unit's gear tier,
// equipped pieces and relic bonuses, and the growth bucket from its rarity.
func (e *statEngine) charRawStats(
	unit *swgoh.Unit,
	def *swgoh.UnitDefinition,
) (*statBuckets, error) {
	gearTier, ok := def.GearLevels[unit.Gear]
	if !ok {
		return nil, errors.OutOfRangef("unit %s has no gear tier %d", unit.DefID, unit.Gear)
	}
	growth, ok := def.GrowthModifiers[unit.Rarity]
	if !ok {
		return nil, errors.OutOfRangef("unit %s has no rarity %d", unit.DefID, unit.Rarity)
	}

	b := &statBuckets{
		base:   copyStats(gearTier.Stats),
		gear:   make(map[int]float64),
		growth: copyStats(growth),
	}

	for _, piece := range unit.Equipped {
		gear, ok := e.tables.Gear[piece.EquipmentID]
		if !ok {
			e.logger.Debug("skipping unknown gear piece",
				"defId", unit.DefID, "equipmentId", piece.EquipmentID)
			continue
		}
		for statID, value := range gear.Stats {
			switch statID {
			case swgoh.StatStrength, swgoh.StatAgility, swgoh.StatTactics:
				// Primary stats apply before mods.
				b.base[statID] += value
			default:
				// Everything else applies after mods.
				b.gear[statID] += value
			}
		}
	}

	if unit.Relic > 2 {
		relicID, ok := def.Relic[unit.Relic]
		if !ok {
			return nil, errors.OutOfRangef("unit %s has no relic tier %d", unit.DefID, unit.Relic)
		}
		relic, ok := e.tables.Relics[relicID]
		if !ok {
			return nil, errors.DataLossf("relic definition %s is missing", relicID)
		}
		for statID, value := range relic.Stats {
			b.base[statID] += value
		}
		for statID, value := range relic.GrowthModifiers {
			b.growth[statID] += value
		}
	}
	return b, nil
}

// finalizeBaseStats applies level growth, mastery, and the derivation of
// secondary stats from primaries, then the engine-wide stat floors.
func (e *statEngine) finalizeBaseStats(b *statBuckets, level int, def *swgoh.UnitDefinition) {
	base := b.base
	for _, statID := range []int{swgoh.StatStrength, swgoh.StatAgility, swgoh.StatTactics} {
		base[statID] += floorTo(b.growth[statID]*float64(level), 8)
	}

	if mastery := base[swgoh.StatMastery]; mastery != 0 {
		modifiers, ok := e.tables.CR.Mastery[def.MasteryModifierID]
		if !ok {
			e.logger.Warn("mastery modifier table missing",
				"masteryModifierId", def.MasteryModifierID)
		}
		for statID, modifier := range modifiers {
			base[statID] += mastery * modifier
		}
	}

	base[swgoh.StatHealth] += base[swgoh.StatStrength] * 18
	base[swgoh.StatPhysicalDmg] = floorTo(
		base[swgoh.StatPhysicalDmg]+base[def.PrimaryStat]*1.4, 8)
	base[swgoh.StatSpecialDmg] = floorTo(
		base[swgoh.StatSpecialDmg]+base[swgoh.StatTactics]*2.4, 8)
	base[swgoh.StatArmor] = floorTo(
		base[swgoh.StatArmor]+base[swgoh.StatStrength]*0.14+base[swgoh.StatAgility]*0.07, 8)
	base[swgoh.StatResistance] = floorTo(
		base[swgoh.StatResistance]+base[swgoh.StatTactics]*0.1, 8)
	base[swgoh.StatPhysicalCrit] = floorTo(
		base[swgoh.StatPhysicalCrit]+base[swgoh.StatAgility]*0.4, 8)

	// Hard minimums every unit carries.
	base[swgoh.StatDodge] += 24e8
	base[swgoh.StatDeflection] += 24e8
	base[swgoh.StatSpecialCrit] += 0
	base[swgoh.StatCritDamage] += 150e6
	base[swgoh.StatTenacity] += 15e6
}

// modStats accumulates primary and secondary rolls plus completed set
// bonuses, then translates composite stat ids into their concrete deltas.
// Percentage composites apply against the finalized base value.
func (e *statEngine) modStats(base map[int]float64, unit *swgoh.Unit) map[int]float64 {
	type setBonus struct {
		count    int
		maxLevel int
	}
	sets := make(map[int]*setBonus)
	raw := make(map[int]float64)

	for _, mod := range unit.Mods {
		if mod.ID.Set != 0 {
			sb := sets[mod.ID.Set]
			if sb == nil {
				sb = &setBonus{}
				sets[mod.ID.Set] = sb
			}
			sb.count++
			if mod.Level == swgoh.MaxModLevel {
				sb.maxLevel++
			}
		}
		if mod.Primary != nil {
			raw[mod.Primary.StatID] += mod.Primary.Value
		}
		for _, secondary := range mod.Secondaries {
			raw[secondary.StatID] += secondary.Value
		}
	}

	for setID, sb := range sets {
		setDef, ok := e.tables.ModSets[setID]
		if !ok {
			e.logger.Debug("skipping unknown mod set", "setId", setID)
			continue
		}
		// A completed set at max level grants its bonus twice.
		multiplier := sb.count/setDef.Count + sb.maxLevel/setDef.Count
		raw[setDef.StatID] += setDef.Value * float64(multiplier)
	}

	// Composite ids expand in ascending id order so flat bonuses land
	// before the percentage bonuses that floor against them.
	statIDs := make([]int, 0, len(raw))
	for statID := range raw {
		statIDs = append(statIDs, statID)
	}
	sort.Ints(statIDs)

	mods := make(map[int]float64)
	pct := func(target int, value float64) {
		mods[target] = floorTo(mods[target]+base[target]*1e-8*value, 8)
	}
	for _, statID := range statIDs {
		value := raw[statID]
		switch statID {
		case swgoh.StatOffense:
			mods[swgoh.StatPhysicalDmg] += value
			mods[swgoh.StatSpecialDmg] += value
		case swgoh.StatDefense:
			mods[swgoh.StatArmor] += value
			mods[swgoh.StatResistance] += value
		case swgoh.StatOffensePct:
			pct(swgoh.StatPhysicalDmg, value)
			pct(swgoh.StatSpecialDmg, value)
		case swgoh.StatDefensePct:
			pct(swgoh.StatArmor, value)
			pct(swgoh.StatResistance, value)
		case swgoh.StatCritChancePct:
			mods[swgoh.StatPhysCritPct] += value
			mods[swgoh.StatSpecCritPct] += value
		case swgoh.StatCritAvoidPct:
			mods[swgoh.StatPhysCritAvoidPct] += value
			mods[swgoh.StatSpecCritAvoidPct] += value
		case swgoh.StatHealthPct:
			pct(swgoh.StatHealth, value)
		case swgoh.StatProtectionPct:
			pct(swgoh.StatProtection, value)
		case swgoh.StatSpeedPct:
			pct(swgoh.StatSpeed, value)
		default:
			mods[statID] += value
		}
	}
	return mods
}

func copyStats(src map[int]float64) map[int]float64 {
	dst := make(map[int]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
