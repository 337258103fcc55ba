package swgoh

// Every unit statistic is addressed by a small integer id with a fixed
// meaning. The ids referenced directly by the calculation formulas get named
// constants; the full catalog lives in the maps below.
const (
	StatHealth           = 1
	StatStrength         = 2
	StatAgility          = 3
	StatTactics          = 4
	StatSpeed            = 5
	StatPhysicalDmg      = 6
	StatSpecialDmg       = 7
	StatArmor            = 8
	StatResistance       = 9
	StatDodge            = 12
	StatDeflection       = 13
	StatPhysicalCrit     = 14
	StatSpecialCrit      = 15
	StatCritDamage       = 16
	StatTenacity         = 18
	StatPhysCritPct      = 21
	StatSpecCritPct      = 22
	StatProtection       = 28
	StatPhysCritAvoidPct = 35
	StatSpecCritAvoidPct = 36
	StatPhysicalAccuracy = 37
	StatSpecialAccuracy  = 38
	StatPhysCritAvoid    = 39
	StatSpecCritAvoid    = 40
	StatOffense          = 41
	StatDefense          = 42
	StatOffensePct       = 48
	StatDefensePct       = 49
	StatCritChancePct    = 53
	StatCritAvoidPct     = 54
	StatHealthPct        = 55
	StatProtectionPct    = 56
	StatSpeedPct         = 57
	StatMastery          = 61
)

// MaxStatID is the highest stat id the game currently defines.
const MaxStatID = 61

// StatNameKeys maps each stat id to the localization nameKey used to look up
// its translated display name.
var StatNameKeys = map[int]string{
	1:  "UnitStat_Health",
	2:  "UnitStat_Strength",
	3:  "UnitStat_Agility",
	4:  "UnitStat_Intelligence",
	5:  "UnitStat_Speed",
	6:  "UnitStat_AttackDamage",
	7:  "UnitStat_AbilityPower",
	8:  "UnitStat_Armor",
	9:  "UnitStat_Suppression",
	10: "UnitStat_ArmorPenetration",
	11: "UnitStat_SuppressionPenetration",
	12: "UnitStat_DodgeRating_TU5V",
	13: "UnitStat_DeflectionRating_TU5V",
	14: "UnitStat_AttackCriticalRating_TU5V",
	15: "UnitStat_AbilityCriticalRating_TU5V",
	16: "UnitStat_CriticalDamage",
	17: "UnitStat_Accuracy",
	18: "UnitStat_Resistance",
	19: "UnitStat_DodgePercentAdditive",
	20: "UnitStat_DeflectionPercentAdditive",
	21: "UnitStat_AttackCriticalPercentAdditive",
	22: "UnitStat_AbilityCriticalPercentAdditive",
	23: "UnitStat_ArmorPercentAdditive",
	24: "UnitStat_SuppressionPercentAdditive",
	25: "UnitStat_ArmorPenetrationPercentAdditive",
	26: "UnitStat_SuppressionPenetrationPercentAdditive",
	27: "UnitStat_HealthSteal",
	28: "UnitStat_MaxShield",
	29: "UnitStat_ShieldPenetration",
	30: "UnitStat_HealthRegen",
	31: "UnitStat_AttackDamagePercentAdditive",
	32: "UnitStat_AbilityPowerPercentAdditive",
	33: "UnitStat_DodgeNegatePercentAdditive",
	34: "UnitStat_DeflectionNegatePercentAdditive",
	35: "UnitStat_AttackCriticalNegatePercentAdditive",
	36: "UnitStat_AbilityCriticalNegatePercentAdditive",
	37: "UnitStat_DodgeNegateRating",
	38: "UnitStat_DeflectionNegateRating",
	39: "UnitStat_AttackCriticalNegateRating",
	40: "UnitStat_AbilityCriticalNegateRating",
	41: "UnitStat_Offense",
	42: "UnitStat_Defense",
	43: "UnitStat_DefensePenetration",
	44: "UnitStat_EvasionRating",
	45: "UnitStat_CriticalRating",
	46: "UnitStat_EvasionNegateRating",
	47: "UnitStat_CriticalNegateRating",
	48: "UnitStat_OffensePercentAdditive",
	49: "UnitStat_DefensePercentAdditive",
	50: "UnitStat_DefensePenetrationPercentAdditive",
	51: "UnitStat_EvasionPercentAdditive",
	52: "UnitStat_EvasionNegatePercentAdditive",
	53: "UnitStat_CriticalChancePercentAdditive",
	54: "UnitStat_CriticalNegateChancePercentAdditive",
	55: "UnitStat_MaxHealthPercentAdditive",
	56: "UnitStat_MaxShieldPercentAdditive",
	57: "UnitStat_SpeedPercentAdditive",
	58: "UnitStat_CounterAttackRating",
	59: "UnitStat_Taunt",
	60: "UnitStat_DefensePenetrationTargetPercentAdditive",
	61: "UNIT_STAT_STAT_VIEW_MASTERY",
}

// StatEnumNames maps each stat id to its game enum spelling, used when the
// caller requests enum-style stat keys.
var StatEnumNames = map[int]string{
	1:  "UNITSTATMAXHEALTH",
	2:  "UNITSTATSTRENGTH",
	3:  "UNITSTATAGILITY",
	4:  "UNITSTATINTELLIGENCE",
	5:  "UNITSTATSPEED",
	6:  "UNITSTATATTACKDAMAGE",
	7:  "UNITSTATABILITYPOWER",
	8:  "UNITSTATARMOR",
	9:  "UNITSTATSUPPRESSION",
	10: "UNITSTATARMORPENETRATION",
	11: "UNITSTATSUPPRESSIONPENETRATION",
	12: "UNITSTATDODGERATING",
	13: "UNITSTATDEFLECTIONRATING",
	14: "UNITSTATATTACKCRITICALRATING",
	15: "UNITSTATABILITYCRITICALRATING",
	16: "UNITSTATCRITICALDAMAGE",
	17: "UNITSTATACCURACY",
	18: "UNITSTATRESISTANCE",
	19: "UNITSTATDODGEPERCENTADDITIVE",
	20: "UNITSTATDEFLECTIONPERCENTADDITIVE",
	21: "UNITSTATATTACKCRITICALPERCENTADDITIVE",
	22: "UNITSTATABILITYCRITICALPERCENTADDITIVE",
	23: "UNITSTATARMORPERCENTADDITIVE",
	24: "UNITSTATSUPPRESSIONPERCENTADDITIVE",
	25: "UNITSTATARMORPENETRATIONPERCENTADDITIVE",
	26: "UNITSTATSUPPRESSIONPENETRATIONPERCENTADDITIVE",
	27: "UNITSTATHEALTHSTEAL",
	28: "UNITSTATMAXSHIELD",
	29: "UNITSTATSHIELDPENETRATION",
	30: "UNITSTATHEALTHREGEN",
	31: "UNITSTATATTACKDAMAGEPERCENTADDITIVE",
	32: "UNITSTATABILITYPOWERPERCENTADDITIVE",
	33: "UNITSTATDODGENEGATEPERCENTADDITIVE",
	34: "UNITSTATDEFLECTIONNEGATEPERCENTADDITIVE",
	35: "UNITSTATATTACKCRITICALNEGATEPERCENTADDITIVE",
	36: "UNITSTATABILITYCRITICALNEGATEPERCENTADDITIVE",
	37: "UNITSTATDODGENEGATERATING",
	38: "UNITSTATDEFLECTIONNEGATERATING",
	39: "UNITSTATATTACKCRITICALNEGATERATING",
	40: "UNITSTATABILITYCRITICALNEGATERATING",
	41: "UNITSTATOFFENSE",
	42: "UNITSTATDEFENSE",
	43: "UNITSTATDEFENSEPENETRATION",
	44: "UNITSTATEVASIONRATING",
	45: "UNITSTATCRITICALRATING",
	46: "UNITSTATEVASIONNEGATERATING",
	47: "UNITSTATCRITICALNEGATERATING",
	48: "UNITSTATOFFENSEPERCENTADDITIVE",
	49: "UNITSTATDEFENSEPERCENTADDITIVE",
	50: "UNITSTATDEFENSEPENETRATIONPERCENTADDITIVE",
	51: "UNITSTATEVASIONPERCENTADDITIVE",
	52: "UNITSTATEVASIONNEGATEPERCENTADDITIVE",
	53: "UNITSTATCRITICALCHANCEPERCENTADDITIVE",
	54: "UNITSTATCRITICALNEGATECHANCEPERCENTADDITIVE",
	55: "UNITSTATMAXHEALTHPERCENTADDITIVE",
	56: "UNITSTATMAXSHIELDPERCENTADDITIVE",
	57: "UNITSTATSPEEDPERCENTADDITIVE",
	58: "UNITSTATCOUNTERATTACKRATING",
	59: "UNITSTATTAUNT",
	60: "UNITSTATDEFENSEPENETRATIONTARGETPERCENTADDITIVE",
	61: "UNITSTATMASTERY",
}

// StatTableKeys maps the TABLE_KEY spellings used by game stat tables
// (mastery tables in particular) back to stat ids.
var StatTableKeys = map[string]int{
	"MAX_HEALTH":              1,
	"STRENGTH":                2,
	"AGILITY":                 3,
	"INTELLIGENCE":            4,
	"SPEED":                   5,
	"ATTACK_DAMAGE":           6,
	"ABILITY_POWER":           7,
	"ARMOR":                   8,
	"SUPPRESSION":             9,
	"ARMOR_PENETRATION":       10,
	"SUPPRESSION_PENETRATION": 11,
	"DODGE_RATING":            12,
	"DEFLECTION_RATING":       13,
	"ATTACK_CRITICAL_RATING":  14,
	"ABILITY_CRITICAL_RATING": 15,
	"CRITICAL_DAMAGE":         16,
	"ACCURACY":                17,
	"RESISTANCE":              18,
	"DODGE_PERCENT_ADDITIVE":      19,
	"DEFLECTION_PERCENT_ADDITIVE": 20,
	"ATTACK_CRITICAL_PERCENT_ADDITIVE":  21,
	"ABILITY_CRITICAL_PERCENT_ADDITIVE": 22,
	"ARMOR_PERCENT_ADDITIVE":            23,
	"SUPPRESSION_PERCENT_ADDITIVE":      24,
	"ARMOR_PENETRATION_PERCENT_ADDITIVE":       25,
	"SUPPRESSION_PENETRATION_PERCENT_ADDITIVE": 26,
	"HEALTH_STEAL":       27,
	"MAX_SHIELD":         28,
	"SHIELD_PENETRATION": 29,
	"HEALTH_REGEN":       30,
	"ATTACK_DAMAGE_PERCENT_ADDITIVE":    31,
	"ABILITY_POWER_PERCENT_ADDITIVE":    32,
	"DODGE_NEGATE_PERCENT_ADDITIVE":     33,
	"DEFLECTION_NEGATE_PERCENT_ADDITIVE": 34,
	"ATTACK_CRITICAL_NEGATE_PERCENT_ADDITIVE":  35,
	"ABILITY_CRITICAL_NEGATE_PERCENT_ADDITIVE": 36,
	"DODGE_NEGATE_RATING":            37,
	"DEFLECTION_NEGATE_RATING":       38,
	"ATTACK_CRITICAL_NEGATE_RATING":  39,
	"ABILITY_CRITICAL_NEGATE_RATING": 40,
	"OFFENSE":             41,
	"DEFENSE":             42,
	"DEFENSE_PENETRATION": 43,
	"EVASION_RATING":      44,
	"CRITICAL_RATING":     45,
	"EVASION_NEGATE_RATING":  46,
	"CRITICAL_NEGATE_RATING": 47,
	"OFFENSE_PERCENT_ADDITIVE":             48,
	"DEFENSE_PERCENT_ADDITIVE":             49,
	"DEFENSE_PENETRATION_PERCENT_ADDITIVE": 50,
	"EVASION_PERCENT_ADDITIVE":             51,
	"EVASION_NEGATE_PERCENT_ADDITIVE":      52,
	"CRITICAL_CHANCE_PERCENT_ADDITIVE":     53,
	"CRITICAL_NEGATE_CHANCE_PERCENT_ADDITIVE": 54,
	"MAX_HEALTH_PERCENT_ADDITIVE": 55,
	"MAX_SHIELD_PERCENT_ADDITIVE": 56,
	"SPEED_PERCENT_ADDITIVE":      57,
	"COUNTER_ATTACK_RATING":       58,
	"TAUNT":                       59,
	"DEFENSE_PENETRATION_TARGET_PERCENT_ADDITIVE": 60,
	"MASTERY": 61,
}

// statIDsByNameKey is the inverse of StatNameKeys, built once at init.
var statIDsByNameKey = func() map[string]int {
	m := make(map[string]int, len(StatNameKeys))
	for id, key := range StatNameKeys {
		m[key] = id
	}
	return m
}()

// StatIDForNameKey returns the stat id for a localization nameKey, or 0 when
// the key does not identify a unit stat.
func StatIDForNameKey(nameKey string) int {
	return statIDsByNameKey[nameKey]
}

// ScaleStatValue converts a displayed stat value to the "unscaled"
// fixed-point representation used throughout the calculations. Health,
// speed, protection, offense and defense use a 1e8 scale; everything else
// uses 1e6.
func ScaleStatValue(statID int, value float64) float64 {
	switch statID {
	case StatHealth, StatSpeed, StatProtection, StatOffense, StatDefense:
		return value * 1e8
	default:
		return value * 1e6
	}
}
