package engine

import (
	"math"
	"strings"

	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// charGP sums the Galactic Power contributions of a character: level,
// rarity, gear tier, equipped pieces, skills, purchased abilities, mods and
// relic, with the flat 1.5 multiplier the game applies on top.
func (e *statEngine) charGP(unit *swgoh.Unit, def *swgoh.UnitDefinition) int64 {
	gp := e.tables.GP
	total := gp.UnitLevel[unit.Level] + gp.UnitRarity[unit.Rarity] + gp.GearLevel[unit.Gear]

	for _, piece := range unit.Equipped {
		total += gp.GearPiece[unit.Gear][piece.Slot]
	}
	for _, skill := range unit.Skills {
		total += e.skillGP(def, skill)
	}
	total += float64(len(unit.PurchasedAbilityIDs)) * gp.AbilitySpecial["ultimate"]
	for _, mod := range unit.Mods {
		total += gp.ModRarityLevelTier[mod.ID.Pips][mod.Level][mod.Tier]
	}
	if unit.Relic > 2 {
		total += gp.RelicTier[unit.Relic]
		total += float64(unit.Level) * gp.RelicTierLevelFactor[unit.Relic]
	}
	return int64(math.Floor(total * 1.5))
}

// shipGP composes crew GP scaled by rarity and crew-size factors, or the
// crewless formula, plus the ship's own level and skill contributions.
func (e *statEngine) shipGP(ship *swgoh.Unit, def *swgoh.UnitDefinition, crew []*crewMember) int64 {
	gp := e.tables.GP
	var total float64
	if len(crew) == 0 {
		level := gp.UnitLevel[ship.Level]
		ability, reinforcement := e.crewlessSkillsGP(def, ship.Skills)
		total = (level*3.5 + ability*5.74 + reinforcement*1.61) * gp.ShipRarityFactor[ship.Rarity]
		total += level + ability + reinforcement
	} else {
		for _, member := range crew {
			total += float64(e.charGP(member.unit, member.def))
		}
		total *= gp.ShipRarityFactor[ship.Rarity] * gp.CrewSizeFactor[len(crew)]
		total += gp.UnitLevel[ship.Level]
		for _, skill := range ship.Skills {
			total += e.skillGP(def, skill)
		}
	}
	return int64(math.Floor(total * 1.5))
}

// skillGP returns one skill's GP contribution. Tiers with a power override
// tag (zeta, omicron, ultimate, reinforcement) price via the special table;
// plain tiers price via the per-tier table.
func (e *statEngine) skillGP(def *swgoh.UnitDefinition, skill swgoh.SkillTier) float64 {
	gp := e.tables.GP
	for i := range def.Skills {
		s := &def.Skills[i]
		if s.ID != skill.ID {
			continue
		}
		tier := skill.Tier + 2
		if tier > s.MaxTier {
			tier = s.MaxTier
		}
		if tag, ok := s.PowerOverrideTags[tier]; ok && tag != "" {
			return gp.AbilitySpecial[tag]
		}
		return gp.AbilityLevel[tier]
	}
	return 0
}

// crewlessSkillsGP splits a crewless ship's skill GP into regular ability
// and reinforcement pools, which carry different multipliers.
func (e *statEngine) crewlessSkillsGP(
	def *swgoh.UnitDefinition,
	skills []swgoh.SkillTier,
) (ability, reinforcement float64) {
	gp := e.tables.GP
	for _, skill := range skills {
		var tag string
		tier := skill.Tier + 2
		for i := range def.Skills {
			s := &def.Skills[i]
			if s.ID != skill.ID {
				continue
			}
			if tier > s.MaxTier {
				tier = s.MaxTier
			}
			tag = s.PowerOverrideTags[tier]
			break
		}
		switch {
		case strings.HasPrefix(tag, "reinforcement"):
			reinforcement += gp.AbilitySpecial[tag]
		case tag != "":
			ability += gp.AbilitySpecial[tag]
		default:
			ability += gp.AbilityLevel[tier]
		}
	}
	return ability, reinforcement
}
