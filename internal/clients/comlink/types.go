package comlink

// Raw game-definition collections as served by a comlink instance. Only the
// fields the table builder consumes are mapped; everything else in the
// payload is ignored during decoding.

// StatEntry is a single stat amount inside a raw stat list. Values arrive as
// decimal strings scaled by 1e8.
type StatEntry struct {
	UnitStatID           int    `json:"unitStatId"`
	UnscaledDecimalValue string `json:"unscaledDecimalValue"`
}

// StatList wraps the doubly nested stat array the game data uses everywhere.
type StatList struct {
	Stat []StatEntry `json:"stat"`
}

// StatProgression is one growth curve. Only entries whose id contains
// "stattable" carry per-stat values.
type StatProgression struct {
	ID   string   `json:"id"`
	Stat StatList `json:"stat"`
}

// Equipment is one gear piece definition.
type Equipment struct {
	ID            string   `json:"id"`
	EquipmentStat StatList `json:"equipmentStat"`
}

// StatModSet describes a mod set bonus.
type StatModSet struct {
	ID            int `json:"id"`
	SetCount      int `json:"setCount"`
	CompleteBonus struct {
		Stat StatEntry `json:"stat"`
	} `json:"completeBonus"`
}

// TableRow is a key/value pair inside a generic lookup table.
type TableRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Table is a generic keyed lookup table (crew rating, galactic power,
// mastery multipliers).
type Table struct {
	ID  string     `json:"id"`
	Row []TableRow `json:"row"`
}

// XPTableRow is one level step in an experience-indexed table.
type XPTableRow struct {
	Index int     `json:"index"`
	XP    float64 `json:"xp"`
}

// XPTable is an experience-indexed lookup table.
type XPTable struct {
	ID  string       `json:"id"`
	Row []XPTableRow `json:"row"`
}

// RelicTierDefinition carries the flat stat bonuses and the growth-modifier
// table reference for one relic tier.
type RelicTierDefinition struct {
	ID             string   `json:"id"`
	Stat           StatList `json:"stat"`
	RelicStatTable string   `json:"relicStatTable"`
}

// SkillReference points from a unit to a skill definition.
type SkillReference struct {
	SkillID string `json:"skillId"`
}

// UnitTier is one gear tier of a ground unit: the equipment set needed to
// complete it and the stat deltas it grants.
type UnitTier struct {
	Tier         int      `json:"tier"`
	EquipmentSet []string `json:"equipmentSet"`
	BaseStat     StatList `json:"baseStat"`
}

// UnitCrew is one crew slot of a ship.
type UnitCrew struct {
	UnitID         string           `json:"unitId"`
	SkillReference []SkillReference `json:"skillReference"`
}

// Unit is one raw unit record. The collection holds one record per rarity;
// the definition itself is taken from the rarity-1 record.
type Unit struct {
	BaseID            string `json:"baseId"`
	Obtainable        bool   `json:"obtainable"`
	ObtainableTime    string `json:"obtainableTime"`
	Rarity            int    `json:"rarity"`
	CombatType        int    `json:"combatType"`
	PrimaryUnitStat   int    `json:"primaryUnitStat"`
	StatProgressionID string `json:"statProgressionId"`

	CategoryID     []string         `json:"categoryId"`
	SkillReference []SkillReference `json:"skillReference"`
	UnitTier       []UnitTier       `json:"unitTier"`

	RelicDefinition struct {
		RelicTierDefinitionID []string `json:"relicTierDefinitionId"`
	} `json:"relicDefinition"`

	// Ship-only fields.
	BaseStat                StatList   `json:"baseStat"`
	CrewContributionTableID string     `json:"crewContributionTableId"`
	Crew                    []UnitCrew `json:"crew"`
}

// SkillTierDef is one upgrade step of a skill.
type SkillTierDef struct {
	PowerOverrideTag string `json:"powerOverrideTag"`
	IsZetaTier       bool   `json:"isZetaTier"`
	IsOmicronTier    bool   `json:"isOmicronTier"`
}

// Skill is one raw skill definition.
type Skill struct {
	ID   string         `json:"id"`
	Tier []SkillTierDef `json:"tier"`
}

// GameData bundles the raw collections a single data export carries.
type GameData struct {
	StatProgression     []StatProgression     `json:"statProgression"`
	Equipment           []Equipment           `json:"equipment"`
	StatModSet          []StatModSet          `json:"statModSet"`
	Table               []Table               `json:"table"`
	XPTable             []XPTable             `json:"xpTable"`
	RelicTierDefinition []RelicTierDefinition `json:"relicTierDefinition"`
	Units               []Unit                `json:"units"`
	Skill               []Skill               `json:"skill"`
}
