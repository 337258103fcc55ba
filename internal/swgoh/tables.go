package swgoh

// DataVersion identifies the game-data snapshot the tables were built from.
type DataVersion struct {
	Game         string `json:"game"`
	Localization string `json:"language"`
}

// Tables holds the six normalized lookup tables the stat engine runs on.
// A Tables value is built once per data version and never mutated afterward,
// so it may be shared across goroutines freely.
type Tables struct {
	Version DataVersion                 `json:"version"`
	Units   map[string]*UnitDefinition  `json:"unitData"`
	Gear    map[string]*GearDefinition  `json:"gearData"`
	ModSets map[int]*ModSetDefinition   `json:"modSetData"`
	CR      *CRTables                   `json:"crTables"`
	GP      *GPTables                   `json:"gpTables"`
	Relics  map[string]*RelicDefinition `json:"relicData"`
}

// UnitDefinition is the normalized game definition of one base unit.
// Characters carry GearLevels, Relic and MasteryModifierID; ships carry
// Stats, CrewStats and Crew.
type UnitDefinition struct {
	CombatType  int `json:"combatType"`
	PrimaryStat int `json:"primaryStat"`

	// GrowthModifiers maps rarity (1-7) to per-level linear growth
	// coefficients for the three primary stats.
	GrowthModifiers map[int]map[int]float64 `json:"growthModifiers"`

	Skills []SkillDefinition `json:"skills"`

	// Character fields.
	GearLevels        map[int]*GearTier `json:"gearLvl,omitempty"`
	Relic             map[int]string    `json:"relic,omitempty"`
	MasteryModifierID string            `json:"masteryModifierID,omitempty"`

	// Ship fields.
	Stats     map[int]float64 `json:"stats,omitempty"`
	CrewStats map[int]float64 `json:"crewStats,omitempty"`
	Crew      []string        `json:"crew,omitempty"`
}

// IsShip reports whether the unit fights in the fleet arena.
func (u *UnitDefinition) IsShip() bool {
	return u.CombatType == CombatTypeShip
}

// Combat types as reported by the units collection.
const (
	CombatTypeChar = 1
	CombatTypeShip = 2
)

// GearTier is one gear level of a character: the equipment set that
// completes it and the stat deltas the tier itself grants.
type GearTier struct {
	Gear  []string        `json:"gear"`
	Stats map[int]float64 `json:"stats"`
}

// SkillDefinition describes one skill of a unit. MaxTier and the
// PowerOverrideTags keys are on the internal tier scale, which sits two
// above the tier index reported in player rosters.
type SkillDefinition struct {
	ID                string         `json:"id"`
	MaxTier           int            `json:"maxTier"`
	IsZeta            bool           `json:"isZeta"`
	IsOmicron         bool           `json:"isOmicron"`
	PowerOverrideTags map[int]string `json:"powerOverrideTags,omitempty"`
}

// GearDefinition is the stat delta map of a single gear piece.
type GearDefinition struct {
	Stats map[int]float64 `json:"stats"`
}

// ModSetDefinition describes one mod set bonus: the stat it boosts, how many
// equipped pieces complete the set, and the bonus granted per completed
// multiple.
type ModSetDefinition struct {
	StatID int     `json:"id"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

// RelicDefinition holds the direct stat bonuses and growth-modifier bonuses
// of one relic tier definition.
type RelicDefinition struct {
	Stats           map[int]float64 `json:"stats"`
	GrowthModifiers map[int]float64 `json:"gms"`
}

// CRTables are the crew-rating coefficient tables, plus the mastery modifier
// tables which the game stores alongside them.
type CRTables struct {
	UnitLevel             map[int]float64         `json:"unitLevelCR"`
	AbilityLevel          map[int]float64         `json:"abilityLevelCR"`
	CrewRarity            map[int]float64         `json:"crewRarityCR"`
	GearLevel             map[int]float64         `json:"gearLevelCR"`
	GearPiece             map[int]float64         `json:"gearPieceCR"`
	ModRarityLevel        map[int]map[int]float64 `json:"modRarityLevelCR"`
	RelicTier             map[int]float64         `json:"relicTierCR"`
	RelicTierLevelFactor  map[int]float64         `json:"relicTierLevelFactor"`
	ShipRarityFactor      map[int]float64         `json:"shipRarityFactor"`
	CrewlessAbilityFactor map[string]float64      `json:"crewlessAbilityFactor"`

	// Mastery maps a unit's mastery modifier id (primary stat + role) to
	// the per-stat modifiers applied against the mastery stat.
	Mastery map[string]map[int]float64 `json:"mastery"`
}

// GPTables are the Galactic Power coefficient tables.
type GPTables struct {
	UnitLevel             map[int]float64                 `json:"unitLevelGP"`
	UnitRarity            map[int]float64                 `json:"unitRarityGP"`
	AbilityLevel          map[int]float64                 `json:"abilityLevelGP"`
	ShipLevel             map[int]float64                 `json:"shipLevelGP"`
	ShipAbilityLevel      map[int]float64                 `json:"shipAbilityLevelGP"`
	GearLevel             map[int]float64                 `json:"gearLevelGP"`
	GearPiece             map[int]map[int]float64         `json:"gearPieceGP"`
	AbilitySpecial        map[string]float64              `json:"abilitySpecialGP"`
	ModRarityLevelTier    map[int]map[int]map[int]float64 `json:"modRarityLevelTierGP"`
	RelicTier             map[int]float64                 `json:"relicTierGP"`
	RelicTierLevelFactor  map[int]float64                 `json:"relicTierLevelFactor"`
	ShipRarityFactor      map[int]float64                 `json:"shipRarityFactor"`
	CrewSizeFactor        map[int]float64                 `json:"crewSizeFactor"`
	CrewlessAbilityFactor map[string]float64              `json:"crewlessAbilityFactor"`
}
