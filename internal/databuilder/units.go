package databuilder

import (
	"strconv"
	"strings"

	"github.com/swgoh-tools/statcalc/internal/clients/comlink"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// parseSkills indexes the skill collection by id. MaxTier and the power
// override tags use the internal tier scale, two above the roster tier.
func parseSkills(list []comlink.Skill) map[string]swgoh.SkillDefinition {
	skills := make(map[string]swgoh.SkillDefinition, len(list))
	for _, sk := range list {
		def := swgoh.SkillDefinition{
			ID:      sk.ID,
			MaxTier: len(sk.Tier) + 1,
		}
		for idx, tier := range sk.Tier {
			if tier.IsZetaTier || tier.IsOmicronTier {
				def.IsZeta = tier.IsZetaTier
				def.IsOmicron = tier.IsOmicronTier
			}
			if tier.PowerOverrideTag != "" {
				if def.PowerOverrideTags == nil {
					def.PowerOverrideTags = make(map[int]string)
				}
				def.PowerOverrideTags[idx+2] = tier.PowerOverrideTag
			}
		}
		skills[sk.ID] = def
	}
	return skills
}

var masteryPrimaryStats = map[int]string{
	2: "strength",
	3: "agility",
	4: "intelligence",
}

// masteryModifierID derives the mastery table key from a unit's primary stat
// and its non-leader role tag.
func masteryModifierID(baseID string, primaryStat int, tags []string) (string, error) {
	primary, ok := masteryPrimaryStats[primaryStat]
	if !ok {
		return "", errors.DataLossf("unit %s: unknown primary stat %d", baseID, primaryStat)
	}
	for _, tag := range tags {
		if strings.Contains(tag, "role") && !strings.Contains(tag, "leader") {
			return primary + "_" + tag + "_mastery", nil
		}
	}
	return "", errors.DataLossf("unit %s: no role tag among categories", baseID)
}

func mapSkills(baseID string, refs []comlink.SkillReference, skills map[string]swgoh.SkillDefinition) ([]swgoh.SkillDefinition, error) {
	mapped := make([]swgoh.SkillDefinition, 0, len(refs))
	for _, ref := range refs {
		def, ok := skills[ref.SkillID]
		if !ok {
			return nil, errors.DataLossf("unit %s references unknown skill %s", baseID, ref.SkillID)
		}
		mapped = append(mapped, def)
	}
	return mapped, nil
}

// buildUnits assembles the unit definitions. The collection carries one
// record per rarity; rarity 1 holds the definition and every record
// contributes its growth-modifier curve.
func buildUnits(list []comlink.Unit, skillList []comlink.Skill, statTables map[string]map[int]float64) (map[string]*swgoh.UnitDefinition, error) {
	skills := parseSkills(skillList)

	growth := make(map[string]map[int]map[int]float64)
	var base []comlink.Unit
	for _, unit := range list {
		if !unit.Obtainable || unit.ObtainableTime != "0" {
			continue
		}
		gm, ok := statTables[unit.StatProgressionID]
		if !ok {
			return nil, errors.DataLossf("unit %s rarity %d references unknown stat progression %s",
				unit.BaseID, unit.Rarity, unit.StatProgressionID)
		}
		if growth[unit.BaseID] == nil {
			growth[unit.BaseID] = make(map[int]map[int]float64)
		}
		growth[unit.BaseID][unit.Rarity] = gm
		if unit.Rarity == 1 {
			base = append(base, unit)
		}
	}

	units := make(map[string]*swgoh.UnitDefinition, len(base))
	for _, unit := range base {
		unitSkills, err := mapSkills(unit.BaseID, unit.SkillReference, skills)
		if err != nil {
			return nil, err
		}

		def := &swgoh.UnitDefinition{
			CombatType:      unit.CombatType,
			PrimaryStat:     unit.PrimaryUnitStat,
			GrowthModifiers: growth[unit.BaseID],
			Skills:          unitSkills,
		}

		if unit.CombatType == swgoh.CombatTypeChar {
			if err := buildCharacter(unit, def); err != nil {
				return nil, err
			}
		} else {
			if err := buildShip(unit, def, skills, statTables); err != nil {
				return nil, err
			}
		}
		units[unit.BaseID] = def
	}
	return units, nil
}

func buildCharacter(unit comlink.Unit, def *swgoh.UnitDefinition) error {
	def.GearLevels = make(map[int]*swgoh.GearTier, len(unit.UnitTier))
	for _, gearTier := range unit.UnitTier {
		stats, err := statMap(gearTier.BaseStat, "unit "+unit.BaseID+" tier "+strconv.Itoa(gearTier.Tier))
		if err != nil {
			return err
		}
		def.GearLevels[gearTier.Tier] = &swgoh.GearTier{
			Gear:  gearTier.EquipmentSet,
			Stats: stats,
		}
	}

	// Relic definition ids end in a zero-padded tier number, shifted onto
	// the roster scale past the locked and unlocked states.
	def.Relic = make(map[int]string, len(unit.RelicDefinition.RelicTierDefinitionID))
	for _, tierID := range unit.RelicDefinition.RelicTierDefinitionID {
		if len(tierID) < 2 {
			return errors.DataLossf("unit %s: malformed relic tier id %q", unit.BaseID, tierID)
		}
		tier, err := strconv.Atoi(tierID[len(tierID)-2:])
		if err != nil {
			return errors.DataLossf("unit %s: malformed relic tier id %q", unit.BaseID, tierID)
		}
		def.Relic[tier+2] = tierID
	}

	mastery, err := masteryModifierID(unit.BaseID, unit.PrimaryUnitStat, unit.CategoryID)
	if err != nil {
		return err
	}
	def.MasteryModifierID = mastery
	return nil
}

func buildShip(unit comlink.Unit, def *swgoh.UnitDefinition, skills map[string]swgoh.SkillDefinition, statTables map[string]map[int]float64) error {
	stats, err := statMap(unit.BaseStat, "ship "+unit.BaseID)
	if err != nil {
		return err
	}
	def.Stats = stats

	crewStats, ok := statTables[unit.CrewContributionTableID]
	if !ok {
		return errors.DataLossf("ship %s references unknown crew contribution table %s",
			unit.BaseID, unit.CrewContributionTableID)
	}
	def.CrewStats = crewStats

	def.Crew = make([]string, 0, len(unit.Crew))
	for _, crew := range unit.Crew {
		def.Crew = append(def.Crew, crew.UnitID)
		crewSkills, err := mapSkills(unit.BaseID, crew.SkillReference, skills)
		if err != nil {
			return err
		}
		def.Skills = append(def.Skills, crewSkills...)
	}
	return nil
}
