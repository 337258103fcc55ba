package swgoh

import (
	"strconv"
	"strings"
)

// RosterUnit is a player-owned unit snapshot as it arrives from a caller.
// Two historical wire shapes are accepted: the raw game roster shape
// (definitionId, currentRarity, currentLevel, currentTier, equipment,
// equippedStatMod, skill) and the legacy shape (defId, rarity, level, gear,
// equipped, mods, skills). Normalize collapses either into a Unit before any
// calculation runs.
type RosterUnit struct {
	ID           string `json:"id,omitempty"`
	DefID        string `json:"defId,omitempty"`
	DefinitionID string `json:"definitionId,omitempty"`
	BaseID       string `json:"baseId,omitempty"`

	CurrentRarity int `json:"currentRarity,omitempty"`
	CurrentLevel  int `json:"currentLevel,omitempty"`
	CurrentTier   int `json:"currentTier,omitempty"`
	Rarity        int `json:"rarity,omitempty"`
	Level         int `json:"level,omitempty"`
	Gear          int `json:"gear,omitempty"`

	Equipment []EquippedGear `json:"equipment,omitempty"`
	Equipped  []EquippedGear `json:"equipped,omitempty"`

	EquippedStatMods []StatMod `json:"equippedStatMod,omitempty"`
	Mods             []StatMod `json:"mods,omitempty"`

	// Skill holds roster-scale tiers; Skills holds internal-scale tiers
	// (roster tier + 2) as produced by hypothetical-value projection.
	Skill  []SkillTier `json:"skill,omitempty"`
	Skills []SkillTier `json:"skills,omitempty"`

	Relic               *RelicState `json:"relic,omitempty"`
	PurchasedAbilityIDs []string    `json:"purchasedAbilityId,omitempty"`

	// Output fields populated by the stat engine.
	Stats *UnitStats `json:"stats,omitempty"`
	GP    int64      `json:"gp,omitempty"`
}

// EquippedGear is one equipped gear piece reference.
type EquippedGear struct {
	EquipmentID string `json:"equipmentId"`
	Slot        int    `json:"slot"`
}

// StatMod is an equipped mod in either wire shape. The raw roster shape
// carries DefinitionID plus primary/secondary stat entries; the legacy shape
// carries Set/Pips directly and no stat entries.
type StatMod struct {
	ID           string `json:"id,omitempty"`
	DefinitionID string `json:"definitionId,omitempty"`
	Level        int    `json:"level"`
	Tier         int    `json:"tier,omitempty"`
	Set          int    `json:"set,omitempty"`
	Pips         int    `json:"pips,omitempty"`

	PrimaryStat    *ModStatEntry  `json:"primaryStat,omitempty"`
	SecondaryStats []ModStatEntry `json:"secondaryStat,omitempty"`
}

// ModStatEntry wraps one primary or secondary mod stat.
type ModStatEntry struct {
	Stat ModStatValue `json:"stat"`
}

// ModStatValue carries a mod stat value in the game's unscaled fixed-point
// decimal string form.
type ModStatValue struct {
	UnitStatID           int    `json:"unitStatId"`
	UnscaledDecimalValue string `json:"unscaledDecimalValue"`
}

// Value parses the unscaled decimal string; malformed values read as zero,
// matching the game's own lenient handling of empty stat slots.
func (v ModStatValue) Value() float64 {
	f, err := strconv.ParseFloat(v.UnscaledDecimalValue, 64)
	if err != nil {
		return 0
	}
	return f
}

// SkillTier is one skill's current upgrade tier.
type SkillTier struct {
	ID   string `json:"id"`
	Tier int    `json:"tier"`
}

// RelicState is the relic progress of a character. CurrentTier is on the
// internal scale: 0 locked, 1 unlocked, displayed relic level + 2 otherwise.
type RelicState struct {
	CurrentTier int `json:"currentTier"`
}

// UnitStats is the calculation output attached to a RosterUnit. Keys are
// stat ids, enum names or localized names depending on the requested output
// options.
type UnitStats struct {
	Base            map[string]float64 `json:"base,omitempty"`
	Gear            map[string]float64 `json:"gear,omitempty"`
	Mods            map[string]float64 `json:"mods,omitempty"`
	Crew            map[string]float64 `json:"crew,omitempty"`
	GrowthModifiers map[string]float64 `json:"growthModifiers,omitempty"`
	Final           map[string]float64 `json:"final,omitempty"`
	GP              int64              `json:"gp,omitempty"`
}

// Unit is the canonical calculation input. Every public engine entry point
// normalizes its RosterUnit argument into this shape exactly once; nothing
// downstream branches on wire shape again.
type Unit struct {
	DefID  string
	Rarity int
	Level  int
	Gear   int

	Equipped []EquippedGear
	Mods     []Mod

	// Relic is the internal-scale relic tier; bonuses apply only above 2.
	Relic int

	// Skills carries roster-scale tiers; table lookups add the +2 offset.
	Skills []SkillTier

	PurchasedAbilityIDs []string
}

// Mod is a canonical equipped mod with its composite id decoded.
type Mod struct {
	ID    ModID
	Level int
	Tier  int

	Primary     *ModStat
	Secondaries []ModStat
}

// ModStat is one decoded mod stat contribution.
type ModStat struct {
	StatID int
	Value  float64
}

// ResolveDefID resolves the unit's definition base id from whichever field
// the wire shape populated. Returns "" when none is present.
func (u *RosterUnit) ResolveDefID() string {
	if u.DefID != "" {
		return u.DefID
	}
	if u.DefinitionID != "" {
		return strings.SplitN(u.DefinitionID, ":", 2)[0]
	}
	return u.BaseID
}

// Normalize collapses the roster unit into the canonical Unit shape.
// Returns nil when no definition id can be resolved.
func (u *RosterUnit) Normalize() *Unit {
	defID := u.ResolveDefID()
	if defID == "" {
		return nil
	}

	n := &Unit{
		DefID:               defID,
		PurchasedAbilityIDs: u.PurchasedAbilityIDs,
	}

	if u.CurrentLevel > 0 {
		n.Rarity = u.CurrentRarity
		n.Level = u.CurrentLevel
		n.Gear = u.CurrentTier
	} else {
		n.Rarity = u.Rarity
		n.Level = u.Level
		n.Gear = u.Gear
	}

	switch {
	case len(u.Equipment) > 0:
		n.Equipped = u.Equipment
	default:
		n.Equipped = u.Equipped
	}

	mods := u.EquippedStatMods
	if len(mods) == 0 {
		mods = u.Mods
	}
	for _, m := range mods {
		n.Mods = append(n.Mods, normalizeMod(m))
	}

	switch {
	case len(u.Skill) > 0:
		n.Skills = u.Skill
	case len(u.Skills) > 0:
		// Internal-scale tiers; shift back to the roster scale.
		for _, s := range u.Skills {
			n.Skills = append(n.Skills, SkillTier{ID: s.ID, Tier: s.Tier - 2})
		}
	}

	if u.Relic != nil {
		n.Relic = u.Relic.CurrentTier
	}
	return n
}

func normalizeMod(m StatMod) Mod {
	out := Mod{Level: m.Level, Tier: m.Tier}
	if id, err := DecodeModID(m.DefinitionID); err == nil {
		out.ID = id
	} else {
		out.ID = ModID{Set: m.Set, Pips: m.Pips}
	}
	if m.PrimaryStat != nil {
		out.Primary = &ModStat{
			StatID: m.PrimaryStat.Stat.UnitStatID,
			Value:  m.PrimaryStat.Stat.Value(),
		}
	}
	for _, s := range m.SecondaryStats {
		out.Secondaries = append(out.Secondaries, ModStat{
			StatID: s.Stat.UnitStatID,
			Value:  s.Stat.Value(),
		})
	}
	return out
}
