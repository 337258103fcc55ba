// Package databuilder normalizes the raw game-definition collections into
// the flat lookup tables the stat engine runs on.
package databuilder

import (
	"strconv"
	"strings"

	"github.com/swgoh-tools/statcalc/internal/clients/comlink"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// Build transforms one raw game-data export into the normalized tables.
// It is a pure function of its input. A missing collection or malformed
// field is a data-shape error and fails the whole build; nothing here is
// worth retrying against the same export.
func Build(raw *comlink.GameData) (*swgoh.Tables, error) {
	if raw == nil {
		return nil, errors.InvalidArgument("game data is required")
	}
	for name, n := range map[string]int{
		"statProgression":     len(raw.StatProgression),
		"equipment":           len(raw.Equipment),
		"statModSet":          len(raw.StatModSet),
		"table":               len(raw.Table),
		"xpTable":             len(raw.XPTable),
		"relicTierDefinition": len(raw.RelicTierDefinition),
		"units":               len(raw.Units),
		"skill":               len(raw.Skill),
	} {
		if n == 0 {
			return nil, errors.DataLossf("game data collection %q is missing or empty", name)
		}
	}

	statTables, err := buildStatProgressions(raw.StatProgression)
	if err != nil {
		return nil, err
	}

	modSets, err := buildModSets(raw.StatModSet)
	if err != nil {
		return nil, err
	}

	cr, gp, err := buildCoefficientTables(raw.Table, raw.XPTable)
	if err != nil {
		return nil, err
	}

	gear, err := buildGear(raw.Equipment)
	if err != nil {
		return nil, err
	}

	relics, err := buildRelics(raw.RelicTierDefinition, statTables)
	if err != nil {
		return nil, err
	}

	units, err := buildUnits(raw.Units, raw.Skill, statTables)
	if err != nil {
		return nil, err
	}

	return &swgoh.Tables{
		Units:   units,
		Gear:    gear,
		ModSets: modSets,
		CR:      cr,
		GP:      gp,
		Relics:  relics,
	}, nil
}

func statValue(e comlink.StatEntry, where string) (float64, error) {
	v, err := strconv.ParseFloat(e.UnscaledDecimalValue, 64)
	if err != nil {
		return 0, errors.DataLossf("%s: stat %d carries non-numeric value %q", where, e.UnitStatID, e.UnscaledDecimalValue)
	}
	return v, nil
}

func statMap(list comlink.StatList, where string) (map[int]float64, error) {
	stats := make(map[int]float64, len(list.Stat))
	for _, e := range list.Stat {
		v, err := statValue(e, where)
		if err != nil {
			return nil, err
		}
		stats[e.UnitStatID] = v
	}
	return stats, nil
}

// buildStatProgressions keeps only the growth curves, identified by a
// "stattable" fragment in their id.
func buildStatProgressions(list []comlink.StatProgression) (map[string]map[int]float64, error) {
	tables := make(map[string]map[int]float64)
	for _, p := range list {
		if !strings.Contains(p.ID, "stattable") {
			continue
		}
		stats, err := statMap(p.Stat, "statProgression "+p.ID)
		if err != nil {
			return nil, err
		}
		tables[p.ID] = stats
	}
	if len(tables) == 0 {
		return nil, errors.DataLoss("statProgression carries no stattable entries")
	}
	return tables, nil
}

func buildModSets(list []comlink.StatModSet) (map[int]*swgoh.ModSetDefinition, error) {
	sets := make(map[int]*swgoh.ModSetDefinition, len(list))
	for _, ms := range list {
		v, err := statValue(ms.CompleteBonus.Stat, "statModSet "+strconv.Itoa(ms.ID))
		if err != nil {
			return nil, err
		}
		sets[ms.ID] = &swgoh.ModSetDefinition{
			StatID: ms.CompleteBonus.Stat.UnitStatID,
			Count:  ms.SetCount,
			Value:  v,
		}
	}
	return sets, nil
}

// buildGear keeps only pieces that actually grant stats.
func buildGear(list []comlink.Equipment) (map[string]*swgoh.GearDefinition, error) {
	gear := make(map[string]*swgoh.GearDefinition, len(list))
	for _, eq := range list {
		if len(eq.EquipmentStat.Stat) == 0 {
			continue
		}
		stats, err := statMap(eq.EquipmentStat, "equipment "+eq.ID)
		if err != nil {
			return nil, err
		}
		gear[eq.ID] = &swgoh.GearDefinition{Stats: stats}
	}
	return gear, nil
}

func buildRelics(list []comlink.RelicTierDefinition, statTables map[string]map[int]float64) (map[string]*swgoh.RelicDefinition, error) {
	relics := make(map[string]*swgoh.RelicDefinition, len(list))
	for _, r := range list {
		gms, ok := statTables[r.RelicStatTable]
		if !ok {
			return nil, errors.DataLossf("relic %s references unknown stat table %s", r.ID, r.RelicStatTable)
		}
		stats, err := statMap(r.Stat, "relic "+r.ID)
		if err != nil {
			return nil, err
		}
		relics[r.ID] = &swgoh.RelicDefinition{Stats: stats, GrowthModifiers: gms}
	}
	return relics, nil
}
