package engine

import (
	"strconv"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// StatValues overrides roster attributes with hypothetical ones before a
// calculation runs, e.g. "this roster at gear 13 with maxed skills". Each
// section applies to the matching unit kind; nil sections leave roster
// values untouched.
type StatValues struct {
	Char *UnitValues
	Ship *ShipValues
	Crew *UnitValues
}

// UnitValues overrides character attributes. Nil fields keep the roster
// value; set fields replace it.
type UnitValues struct {
	Rarity *int
	Level  *int
	Gear   *int

	// Relic is the internal-scale relic tier (1 locked, 2 unlocked,
	// relic level + 2 otherwise).
	Relic *int

	Skills    *SkillsSpec
	Equipment *EquipmentSpec

	// ModRarity, ModLevel and ModTier replace equipped mods with six
	// synthetic mods of the given quality when any of them is set. Unset
	// fields default to the game maximums.
	ModRarity *int
	ModLevel  *int
	ModTier   *int

	PurchasedAbilityIDs []string
}

// ShipValues overrides ship attributes.
type ShipValues struct {
	Rarity *int
	Level  *int
	Skills *SkillsSpec
}

// SkillsSpec selects skill tiers for a projection. Exactly one selector may
// be used: one of the Max flags, or an explicit roster-scale Tier.
type SkillsSpec struct {
	// Max raises every skill to its maximum tier. MaxNoZeta stops one
	// tier short on zeta abilities (unless the zeta tier is an omicron),
	// MaxNoOmicron stops short of omicron tiers.
	Max          bool
	MaxNoZeta    bool
	MaxNoOmicron bool

	// Tier sets every skill to the given roster-scale tier, capped at
	// each skill's maximum.
	Tier int
}

// EquipmentSpec selects equipped gear pieces for a projection.
type EquipmentSpec struct {
	// All equips every craftable piece of the unit's current gear tier.
	All bool

	// None strips all equipped gear.
	None bool

	// Slots equips the pieces at the given zero-based slots of the
	// current gear tier.
	Slots []int
}

// Validate checks every populated section for out-of-range values.
func (v *StatValues) Validate() error {
	if v == nil {
		return nil
	}
	if err := v.Char.validate("char"); err != nil {
		return err
	}
	if err := v.Crew.validate("crew"); err != nil {
		return err
	}
	if v.Ship != nil {
		b := errors.NewValidationBuilder()
		validateRange(b, "ship.rarity", v.Ship.Rarity, 1, swgoh.MaxRarity)
		validateRange(b, "ship.level", v.Ship.Level, 1, swgoh.MaxLevel)
		if err := b.Build(); err != nil {
			return err
		}
		if err := v.Ship.Skills.validate("ship"); err != nil {
			return err
		}
	}
	return nil
}

func (v *UnitValues) validate(section string) error {
	if v == nil {
		return nil
	}
	b := errors.NewValidationBuilder()
	validateRange(b, section+".rarity", v.Rarity, 1, swgoh.MaxRarity)
	validateRange(b, section+".level", v.Level, 1, swgoh.MaxLevel)
	validateRange(b, section+".gear", v.Gear, 1, swgoh.MaxGearTier)
	validateRange(b, section+".relic", v.Relic, 1, swgoh.MaxRelicTier)
	validateRange(b, section+".modRarity", v.ModRarity, 1, swgoh.MaxModPips)
	validateRange(b, section+".modLevel", v.ModLevel, 1, swgoh.MaxModLevel)
	validateRange(b, section+".modTier", v.ModTier, 1, swgoh.MaxModTier)
	if err := b.Build(); err != nil {
		return err
	}
	if err := v.Skills.validate(section); err != nil {
		return err
	}
	if v.Equipment != nil && v.Equipment.All && v.Equipment.None {
		return errors.InvalidArgumentf("%s.equipment: all and none are mutually exclusive", section)
	}
	return nil
}

func (s *SkillsSpec) validate(section string) error {
	if s == nil {
		return nil
	}
	selectors := 0
	for _, set := range []bool{s.Max, s.MaxNoZeta, s.MaxNoOmicron, s.Tier > 0} {
		if set {
			selectors++
		}
	}
	if selectors != 1 {
		return errors.InvalidArgumentf("%s.skills: exactly one selector must be set", section)
	}
	return nil
}

func validateRange(vb *errors.ValidationBuilder, field string, v *int, minValue, maxValue int) {
	if v == nil {
		return
	}
	errors.ValidateRange(field, *v, minValue, maxValue, vb)
}

// crewMember pairs a resolved crew unit with its definition.
type crewMember struct {
	unit *swgoh.Unit
	def  *swgoh.UnitDefinition
}

// resolveUnit normalizes a roster unit, looks up its definition, and applies
// any value overrides. Units addressed by baseId alone are treated as game
// defaults and projected at maximum values.
func (e *statEngine) resolveUnit(
	roster *swgoh.RosterUnit,
	values *UnitValues,
) (*swgoh.Unit, *swgoh.UnitDefinition, error) {
	unit := roster.Normalize()
	if unit == nil {
		return nil, nil, errors.InvalidArgument("unit definition id is missing")
	}
	def, ok := e.tables.Units[unit.DefID]
	if !ok {
		return nil, nil, errors.NotFoundf("unknown unit: %s", unit.DefID)
	}

	if roster.DefID == "" && roster.DefinitionID == "" && roster.BaseID != "" {
		e.projectGameDefault(unit, def)
	}
	if values != nil {
		if err := e.applyUnitValues(unit, def, values); err != nil {
			return nil, nil, err
		}
	}
	return unit, def, nil
}

// resolveShip is resolveUnit for the ship section of StatValues.
func (e *statEngine) resolveShip(
	roster *swgoh.RosterUnit,
	values *ShipValues,
) (*swgoh.Unit, *swgoh.UnitDefinition, error) {
	ship, def, err := e.resolveUnit(roster, nil)
	if err != nil {
		return nil, nil, err
	}
	if !def.IsShip() {
		return nil, nil, errors.InvalidArgumentf("unit %s is not a ship", ship.DefID)
	}
	if values != nil {
		if values.Rarity != nil {
			ship.Rarity = *values.Rarity
		}
		if values.Level != nil {
			ship.Level = *values.Level
		}
		if values.Skills != nil {
			ship.Skills = selectSkills(def, values.Skills)
		}
	}
	return ship, def, nil
}

// projectGameDefault raises a definition-only unit to maximum values, the
// shape used for "what would this unit look like maxed" queries.
func (e *statEngine) projectGameDefault(unit *swgoh.Unit, def *swgoh.UnitDefinition) {
	unit.Rarity = swgoh.MaxRarity
	unit.Level = swgoh.MaxLevel
	if !def.IsShip() {
		unit.Gear = swgoh.MaxGearTier
		unit.Relic = swgoh.MaxRelicTier
	}
	unit.Skills = selectSkills(def, &SkillsSpec{Max: true})
	unit.Equipped = nil
	unit.Mods = nil
}

func (e *statEngine) applyUnitValues(
	unit *swgoh.Unit,
	def *swgoh.UnitDefinition,
	values *UnitValues,
) error {
	if values.Rarity != nil {
		unit.Rarity = *values.Rarity
	}
	if values.Level != nil {
		unit.Level = *values.Level
	}
	if values.Gear != nil {
		unit.Gear = *values.Gear
	}
	if values.Relic != nil {
		unit.Relic = *values.Relic
	}
	if values.Skills != nil {
		unit.Skills = selectSkills(def, values.Skills)
	}
	if values.PurchasedAbilityIDs != nil {
		unit.PurchasedAbilityIDs = values.PurchasedAbilityIDs
	}
	if values.ModRarity != nil || values.ModLevel != nil || values.ModTier != nil {
		unit.Mods = syntheticMods(values)
	}
	if values.Equipment != nil {
		equipped, err := selectEquipment(unit, def, values.Equipment)
		if err != nil {
			return err
		}
		unit.Equipped = equipped
	}
	return nil
}

// selectSkills builds the skill list a SkillsSpec describes, on the roster
// tier scale.
func selectSkills(def *swgoh.UnitDefinition, spec *SkillsSpec) []swgoh.SkillTier {
	skills := make([]swgoh.SkillTier, 0, len(def.Skills))
	for _, s := range def.Skills {
		tier := s.MaxTier
		switch {
		case spec.MaxNoZeta && s.IsZeta && !s.IsOmicron:
			tier--
		case spec.MaxNoOmicron && s.IsOmicron:
			tier--
		case spec.Tier > 0:
			tier = min(spec.Tier+2, s.MaxTier)
		}
		skills = append(skills, swgoh.SkillTier{ID: s.ID, Tier: tier - 2})
	}
	return skills
}

// syntheticMods builds six identical mods of the requested quality. They
// carry no stat rolls, so they contribute only to crew rating and Galactic
// Power.
func syntheticMods(values *UnitValues) []swgoh.Mod {
	pips := swgoh.MaxModPips
	level := swgoh.MaxModLevel
	tier := swgoh.MaxModTier
	if values.ModRarity != nil {
		pips = *values.ModRarity
	}
	if values.ModLevel != nil {
		level = *values.ModLevel
	}
	if values.ModTier != nil {
		tier = *values.ModTier
	}
	mods := make([]swgoh.Mod, swgoh.ModsPerUnit)
	for i := range mods {
		mods[i] = swgoh.Mod{ID: swgoh.ModID{Pips: pips}, Level: level, Tier: tier}
	}
	return mods
}

// selectEquipment resolves an EquipmentSpec against the unit's current gear
// tier. Gear ids of 9990 and above are uncraftable placeholder pieces and
// are never equipped by the All selector.
func selectEquipment(
	unit *swgoh.Unit,
	def *swgoh.UnitDefinition,
	spec *EquipmentSpec,
) ([]swgoh.EquippedGear, error) {
	if spec.None {
		return nil, nil
	}
	gearTier, ok := def.GearLevels[unit.Gear]
	if !ok {
		return nil, errors.OutOfRangef("unit %s has no gear tier %d", unit.DefID, unit.Gear)
	}
	if spec.All {
		equipped := make([]swgoh.EquippedGear, 0, len(gearTier.Gear))
		for slot, gearID := range gearTier.Gear {
			if id, err := strconv.Atoi(gearID); err == nil && id >= 9990 {
				continue
			}
			equipped = append(equipped, swgoh.EquippedGear{EquipmentID: gearID, Slot: slot})
		}
		return equipped, nil
	}
	equipped := make([]swgoh.EquippedGear, 0, len(spec.Slots))
	for _, slot := range spec.Slots {
		if slot < 0 || slot >= len(gearTier.Gear) {
			return nil, errors.OutOfRangef(
				"unit %s gear tier %d has no slot %d", unit.DefID, unit.Gear, slot)
		}
		equipped = append(equipped, swgoh.EquippedGear{EquipmentID: gearTier.Gear[slot], Slot: slot})
	}
	return equipped, nil
}
