package databuilder

import (
	"strconv"
	"strings"

	"github.com/swgoh-tools/statcalc/internal/clients/comlink"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// buildCoefficientTables translates the generic key/value lookup tables into
// the crew-rating and Galactic Power coefficient sets. Key munging mirrors
// the game's table encodings: TIER_ prefixes, zero-padded numbers, +2 relic
// offsets, 1-based slots and rarity enum names all normalize to plain ints.
func buildCoefficientTables(tables []comlink.Table, xpTables []comlink.XPTable) (*swgoh.CRTables, *swgoh.GPTables, error) {
	cr := &swgoh.CRTables{
		ModRarityLevel: make(map[int]map[int]float64),
		Mastery:        make(map[string]map[int]float64),
	}
	gp := &swgoh.GPTables{
		GearPiece:          make(map[int]map[int]float64),
		AbilitySpecial:     make(map[string]float64),
		ModRarityLevelTier: make(map[int]map[int]map[int]float64),
	}

	for _, t := range tables {
		var err error
		switch {
		case t.ID == "galactic_power_modifier_per_ship_crew_size_table":
			gp.CrewSizeFactor, err = intKeyed(t)

		case t.ID == "crew_rating_per_unit_rarity":
			cr.CrewRarity, err = rarityKeyed(t)
			gp.UnitRarity = cr.CrewRarity

		case t.ID == "crew_rating_per_gear_piece_at_tier":
			cr.GearPiece, err = tierKeyed(t, 0)

		case t.ID == "galactic_power_per_complete_gear_tier_table":
			// The table scores completed tiers, so tier N's entry applies
			// once the unit reaches tier N+1. Tier 1 costs nothing.
			gp.GearLevel, err = tierKeyed(t, 1)
			if err == nil {
				gp.GearLevel[1] = 0
				cr.GearLevel = gp.GearLevel
			}

		case t.ID == "galactic_power_per_tier_slot_table":
			err = parseGearPieceGP(t, gp.GearPiece)

		case t.ID == "crew_contribution_multiplier_per_rarity":
			cr.ShipRarityFactor, err = rarityKeyed(t)
			gp.ShipRarityFactor = cr.ShipRarityFactor

		case t.ID == "galactic_power_per_tagged_ability_level_table":
			gp.AbilitySpecial, err = stringKeyed(t)

		case t.ID == "crew_rating_per_mod_rarity_level_tier":
			err = parseModTables(t, cr, gp)

		case t.ID == "crew_rating_modifier_per_relic_tier":
			cr.RelicTierLevelFactor, err = relicKeyed(t)

		case t.ID == "crew_rating_per_relic_tier":
			cr.RelicTier, err = relicKeyed(t)

		case t.ID == "galactic_power_modifier_per_relic_tier":
			gp.RelicTierLevelFactor, err = relicKeyed(t)

		case t.ID == "galactic_power_per_relic_tier":
			gp.RelicTier, err = relicKeyed(t)

		case t.ID == "crew_rating_modifier_per_ability_crewless_ships":
			cr.CrewlessAbilityFactor, err = stringKeyed(t)

		case t.ID == "galactic_power_modifier_per_ability_crewless_ships":
			gp.CrewlessAbilityFactor, err = stringKeyed(t)

		case strings.HasSuffix(t.ID, "_mastery"):
			err = parseMasteryTable(t, cr.Mastery)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	for _, t := range xpTables {
		if !strings.HasPrefix(t.ID, "crew_rating") && !strings.HasPrefix(t.ID, "galactic_power") {
			continue
		}
		levels := make(map[int]float64, len(t.Row))
		for _, row := range t.Row {
			levels[row.Index+1] = row.XP
		}
		switch t.ID {
		case "crew_rating_per_unit_level":
			cr.UnitLevel = levels
			gp.UnitLevel = levels
		case "crew_rating_per_ability_level":
			cr.AbilityLevel = levels
			gp.AbilityLevel = levels
		case "galactic_power_per_ship_level_table":
			gp.ShipLevel = levels
		case "galactic_power_per_ship_ability_level_table":
			gp.ShipAbilityLevel = levels
		}
	}

	if err := verifyTables(cr, gp); err != nil {
		return nil, nil, err
	}
	return cr, gp, nil
}

func verifyTables(cr *swgoh.CRTables, gp *swgoh.GPTables) error {
	missing := func(name string, n int) error {
		if n == 0 {
			return errors.DataLossf("coefficient table %s is missing from game data", name)
		}
		return nil
	}
	checks := []struct {
		name string
		n    int
	}{
		{"unitLevelCR", len(cr.UnitLevel)},
		{"abilityLevelCR", len(cr.AbilityLevel)},
		{"crewRarityCR", len(cr.CrewRarity)},
		{"gearLevelCR", len(cr.GearLevel)},
		{"gearPieceCR", len(cr.GearPiece)},
		{"modRarityLevelCR", len(cr.ModRarityLevel)},
		{"relicTierCR", len(cr.RelicTier)},
		{"shipRarityFactor", len(cr.ShipRarityFactor)},
		{"shipLevelGP", len(gp.ShipLevel)},
		{"shipAbilityLevelGP", len(gp.ShipAbilityLevel)},
		{"gearPieceGP", len(gp.GearPiece)},
		{"abilitySpecialGP", len(gp.AbilitySpecial)},
		{"modRarityLevelTierGP", len(gp.ModRarityLevelTier)},
		{"relicTierGP", len(gp.RelicTier)},
		{"crewSizeFactor", len(gp.CrewSizeFactor)},
	}
	for _, c := range checks {
		if err := missing(c.name, c.n); err != nil {
			return err
		}
	}
	return nil
}

func rowValue(t comlink.Table, row comlink.TableRow) (float64, error) {
	v, err := strconv.ParseFloat(row.Value, 64)
	if err != nil {
		return 0, errors.DataLossf("table %s: key %s carries non-numeric value %q", t.ID, row.Key, row.Value)
	}
	return v, nil
}

func stringKeyed(t comlink.Table) (map[string]float64, error) {
	out := make(map[string]float64, len(t.Row))
	for _, row := range t.Row {
		v, err := rowValue(t, row)
		if err != nil {
			return nil, err
		}
		out[row.Key] = v
	}
	return out, nil
}

func intKeyed(t comlink.Table) (map[int]float64, error) {
	out := make(map[int]float64, len(t.Row))
	for _, row := range t.Row {
		k, err := strconv.Atoi(row.Key)
		if err != nil {
			return nil, errors.DataLossf("table %s: non-numeric key %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// tierKeyed decodes TIER_NN keys, shifting the tier by offset.
func tierKeyed(t comlink.Table, offset int) (map[int]float64, error) {
	out := make(map[int]float64, len(t.Row))
	for _, row := range t.Row {
		tier, err := strconv.Atoi(strings.TrimPrefix(row.Key, "TIER_"))
		if err != nil {
			return nil, errors.DataLossf("table %s: malformed tier key %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return nil, err
		}
		out[tier+offset] = v
	}
	return out, nil
}

// rarityKeyed decodes rarity enum names (ONE_STAR .. SEVEN_STAR) to ints.
func rarityKeyed(t comlink.Table) (map[int]float64, error) {
	out := make(map[int]float64, len(t.Row))
	for _, row := range t.Row {
		rarity, ok := swgoh.RarityByName[row.Key]
		if !ok {
			return nil, errors.DataLossf("table %s: unknown rarity %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return nil, err
		}
		out[rarity] = v
	}
	return out, nil
}

// relicKeyed shifts the raw relic tier onto the roster scale, which sits two
// above it to make room for the locked and unlocked states.
func relicKeyed(t comlink.Table) (map[int]float64, error) {
	out := make(map[int]float64, len(t.Row))
	for _, row := range t.Row {
		tier, err := strconv.Atoi(row.Key)
		if err != nil {
			return nil, errors.DataLossf("table %s: non-numeric relic key %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return nil, err
		}
		out[tier+2] = v
	}
	return out, nil
}

// parseGearPieceGP decodes tier:slot keys. Slots arrive 1-based but the
// roster equipment records index them from zero.
func parseGearPieceGP(t comlink.Table, out map[int]map[int]float64) error {
	for _, row := range t.Row {
		tierStr, slotStr, ok := strings.Cut(row.Key, ":")
		if !ok {
			return errors.DataLossf("table %s: malformed tier:slot key %q", t.ID, row.Key)
		}
		tier, err := strconv.Atoi(tierStr)
		if err != nil {
			return errors.DataLossf("table %s: malformed tier:slot key %q", t.ID, row.Key)
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil {
			return errors.DataLossf("table %s: malformed tier:slot key %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return err
		}
		if out[tier] == nil {
			out[tier] = make(map[int]float64)
		}
		out[tier][slot-1] = v
	}
	return nil
}

// parseModTables splits the pips:level:tier:set keyed table into the CR map
// (tier 1 entries only) and the full GP map. Rows for incomplete sets
// (set != 0) are skipped.
func parseModTables(t comlink.Table, cr *swgoh.CRTables, gp *swgoh.GPTables) error {
	for _, row := range t.Row {
		parts := strings.Split(row.Key, ":")
		if len(parts) != 4 {
			return errors.DataLossf("table %s: malformed mod key %q", t.ID, row.Key)
		}
		if parts[3] != "0" {
			continue
		}
		pips, err1 := strconv.Atoi(parts[0])
		level, err2 := strconv.Atoi(parts[1])
		tier, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return errors.DataLossf("table %s: malformed mod key %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return err
		}

		if tier == 1 {
			if cr.ModRarityLevel[pips] == nil {
				cr.ModRarityLevel[pips] = make(map[int]float64)
			}
			cr.ModRarityLevel[pips][level] = v
		}
		if gp.ModRarityLevelTier[pips] == nil {
			gp.ModRarityLevelTier[pips] = make(map[int]map[int]float64)
		}
		if gp.ModRarityLevelTier[pips][level] == nil {
			gp.ModRarityLevelTier[pips][level] = make(map[int]float64)
		}
		gp.ModRarityLevelTier[pips][level][tier] = v
	}
	return nil
}

// parseMasteryTable records one primary-stat/role mastery table, translating
// the stat enum names in its keys to stat ids.
func parseMasteryTable(t comlink.Table, out map[string]map[int]float64) error {
	modifiers := make(map[int]float64, len(t.Row))
	for _, row := range t.Row {
		statID, ok := swgoh.StatTableKeys[row.Key]
		if !ok {
			return errors.DataLossf("table %s: unknown stat key %q", t.ID, row.Key)
		}
		v, err := rowValue(t, row)
		if err != nil {
			return err
		}
		modifiers[statID] = v
	}
	out[t.ID] = modifiers
	return nil
}
