package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/localization"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// testTables builds a small but complete data snapshot with round numbers so
// every expected value below can be followed by hand.
func testTables() *swgoh.Tables {
	return &swgoh.Tables{
		Version: swgoh.DataVersion{Game: "0.36.5:test", Localization: "loc:test"},
		Units: map[string]*swgoh.UnitDefinition{
			"HERO": {
				CombatType:  swgoh.CombatTypeChar,
				PrimaryStat: swgoh.StatStrength,
				GrowthModifiers: map[int]map[int]float64{
					5: {2: 1e8, 3: 1e8, 4: 1e8},
					7: {2: 2e8, 3: 1e8, 4: 1e8},
				},
				GearLevels: map[int]*swgoh.GearTier{
					1: {Stats: map[int]float64{2: 100e8, 3: 50e8, 4: 40e8}},
					2: {
						Gear:  []string{"101", "102", "9999"},
						Stats: map[int]float64{2: 200e8, 3: 80e8, 4: 60e8},
					},
					3: {Stats: map[int]float64{2: 100e8, 3: 50e8, 4: 40e8, 61: 10e8}},
				},
				Relic:             map[int]string{9: "relic_t7"},
				MasteryModifierID: "strength_role_attacker_mastery",
				Skills: []swgoh.SkillDefinition{
					{
						ID:                "basicskill_HERO",
						MaxTier:           8,
						IsZeta:            true,
						PowerOverrideTags: map[int]string{8: "zeta"},
					},
					{
						ID:                "specialskill_HERO",
						MaxTier:           8,
						IsOmicron:         true,
						PowerOverrideTags: map[int]string{8: "omicron"},
					},
				},
			},
			"FIGHTER": {
				CombatType:      swgoh.CombatTypeShip,
				PrimaryStat:     swgoh.StatStrength,
				GrowthModifiers: map[int]map[int]float64{7: {2: 0, 3: 0, 4: 0}},
				Stats:           map[int]float64{2: 10e8, 3: 10e8, 4: 10e8},
				CrewStats:       map[int]float64{1: 10e8, 5: 1e8, 17: 123.456},
				Crew:            []string{"HERO"},
			},
			"DRONE": {
				CombatType:      swgoh.CombatTypeShip,
				PrimaryStat:     swgoh.StatStrength,
				GrowthModifiers: map[int]map[int]float64{5: {2: 0, 3: 0, 4: 0}},
				Stats:           map[int]float64{2: 10e8, 3: 10e8, 4: 10e8},
				CrewStats:       map[int]float64{1: 1e8},
				Skills: []swgoh.SkillDefinition{
					{ID: "hardwareskill_DRONE", MaxTier: 4},
					{
						ID:                "specialskill_DRONE",
						MaxTier:           4,
						PowerOverrideTags: map[int]string{4: "reinforcement_tier2"},
					},
				},
			},
		},
		Gear: map[string]*swgoh.GearDefinition{
			"101": {Stats: map[int]float64{2: 10e8, 8: 10e8}},
			"102": {Stats: map[int]float64{5: 4e8}},
		},
		ModSets: map[int]*swgoh.ModSetDefinition{
			1: {StatID: 5, Count: 2, Value: 1e8},
		},
		CR: &swgoh.CRTables{
			UnitLevel:            map[int]float64{10: 40, 50: 100, 85: 200},
			AbilityLevel:         map[int]float64{3: 100, 8: 150},
			CrewRarity:           map[int]float64{5: 50, 7: 100},
			GearLevel:            map[int]float64{1: 50, 2: 60},
			GearPiece:            map[int]float64{1: 5, 2: 6},
			ModRarityLevel:       map[int]map[int]float64{6: {15: 10}},
			RelicTier:            map[int]float64{9: 500},
			RelicTierLevelFactor: map[int]float64{9: 1},
			ShipRarityFactor:     map[int]float64{5: 1.5, 7: 2},
			Mastery: map[string]map[int]float64{
				"strength_role_attacker_mastery": {14: 0.5},
			},
		},
		GP: &swgoh.GPTables{
			UnitLevel:    map[int]float64{10: 30, 50: 60, 85: 100},
			UnitRarity:   map[int]float64{5: 20, 7: 50},
			AbilityLevel: map[int]float64{3: 50, 7: 80},
			GearLevel:    map[int]float64{1: 0, 2: 10},
			GearPiece:    map[int]map[int]float64{2: {0: 5, 1: 5}},
			AbilitySpecial: map[string]float64{
				"zeta":                300,
				"omicron":             400,
				"ultimate":            120,
				"reinforcement_tier2": 90,
			},
			ModRarityLevelTier:   map[int]map[int]map[int]float64{6: {15: {5: 40}}},
			RelicTier:            map[int]float64{9: 200},
			RelicTierLevelFactor: map[int]float64{9: 2},
			ShipRarityFactor:     map[int]float64{5: 1.5, 7: 2},
			CrewSizeFactor:       map[int]float64{1: 1.5},
		},
		Relics: map[string]*swgoh.RelicDefinition{
			"relic_t7": {
				Stats:           map[int]float64{2: 10e8},
				GrowthModifiers: map[int]float64{2: 1e8},
			},
		},
	}
}

func testNamesIndex() *localization.Index {
	return localization.NewIndexFromNames(map[string]*localization.Names{
		"eng_us": {StatNames: map[int]string{
			1:  "Health",
			2:  "Strength",
			5:  "Speed",
			14: "Physical Critical Chance",
		}},
	})
}

type EngineTestSuite struct {
	suite.Suite

	ctx    context.Context
	engine engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{
		Tables: testTables(),
		Names:  testNamesIndex(),
	})
	s.Require().NoError(err)
	s.engine = eng
}

// rawOptions asks for unscaled values keyed by numeric id, the form every
// hand-computed expectation below is written in.
func rawOptions() *engine.StatOptions {
	return &engine.StatOptions{Unscaled: true, StatIDs: true}
}

func (s *EngineTestSuite) calcChar(unit *swgoh.RosterUnit, opts *engine.StatOptions) *swgoh.UnitStats {
	out, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{Unit: unit, Options: opts})
	s.Require().NoError(err)
	s.Require().NotNil(out.Unit.Stats)
	return out.Unit.Stats
}

func heroAt(level, rarity, gear int) *swgoh.RosterUnit {
	return &swgoh.RosterUnit{
		DefID:         "HERO",
		CurrentRarity: rarity,
		CurrentLevel:  level,
		CurrentTier:   gear,
	}
}

func (s *EngineTestSuite) TestCharBaseStats() {
	stats := s.calcChar(heroAt(10, 7, 1), rawOptions())

	// Primaries: gear tier stats plus growth modifier times level.
	s.InDelta(120e8, stats.Base["2"], 1)
	s.InDelta(60e8, stats.Base["3"], 1)
	s.InDelta(50e8, stats.Base["4"], 1)

	// Secondaries derived from the primaries.
	s.InDelta(2160e8, stats.Base["1"], 1)  // STR * 18
	s.InDelta(167e8, stats.Base["6"], 1)   // primary * 1.4, floored
	s.InDelta(120e8, stats.Base["7"], 1)   // TAC * 2.4
	s.InDelta(21e8, stats.Base["8"], 1)    // STR*0.14 + AGI*0.07
	s.InDelta(5e8, stats.Base["9"], 1)     // TAC * 0.1
	s.InDelta(24e8, stats.Base["14"], 1)   // AGI * 0.4

	// Hard minimums.
	s.InDelta(24e8, stats.Base["12"], 1)
	s.InDelta(24e8, stats.Base["13"], 1)
	s.Contains(stats.Base, "15")
	s.InDelta(150e6, stats.Base["16"], 1)
	s.InDelta(15e6, stats.Base["18"], 1)

	s.Empty(stats.Gear)
	s.Nil(stats.Mods)
}

func (s *EngineTestSuite) TestCharDefaultScaling() {
	stats := s.calcChar(heroAt(10, 7, 1), &engine.StatOptions{StatIDs: true})

	s.InDelta(2160, stats.Base["1"], 1e-6)
	s.InDelta(120, stats.Base["2"], 1e-6)
}

func (s *EngineTestSuite) TestCharScaledOutput() {
	stats := s.calcChar(heroAt(10, 7, 1), &engine.StatOptions{Scaled: true, StatIDs: true})

	s.InDelta(2160e4, stats.Base["1"], 1e-2)
}

func (s *EngineTestSuite) TestCharEquipmentSplit() {
	unit := heroAt(10, 7, 2)
	unit.Equipment = []swgoh.EquippedGear{
		{EquipmentID: "101", Slot: 0},
		{EquipmentID: "102", Slot: 1},
	}
	stats := s.calcChar(unit, rawOptions())

	// Primary stat gear applies to base before growth-derived secondaries.
	s.InDelta(230e8, stats.Base["2"], 1)
	// Non-primary gear stats land in the gear bucket.
	s.InDelta(10e8, stats.Gear["8"], 1)
	s.InDelta(4e8, stats.Gear["5"], 1)
}

func (s *EngineTestSuite) TestCharUnknownGearSkipped() {
	unit := heroAt(10, 7, 1)
	unit.Equipment = []swgoh.EquippedGear{{EquipmentID: "does-not-exist", Slot: 0}}
	stats := s.calcChar(unit, rawOptions())

	s.Empty(stats.Gear)
}

func (s *EngineTestSuite) TestGearTierMonotonic() {
	lower := s.calcChar(heroAt(10, 7, 1), rawOptions())
	higher := s.calcChar(heroAt(10, 7, 2), rawOptions())

	for _, statID := range []string{"1", "2", "3", "4", "6", "8"} {
		s.GreaterOrEqual(higher.Base[statID], lower.Base[statID], "stat %s", statID)
	}
}

func (s *EngineTestSuite) TestRelicBonuses() {
	unit := heroAt(10, 7, 1)
	unit.Relic = &swgoh.RelicState{CurrentTier: 9}
	stats := s.calcChar(unit, rawOptions())

	// 100e8 tier + 10e8 relic + (2e8+1e8 relic gm) * level 10.
	s.InDelta(140e8, stats.Base["2"], 1)
}

func (s *EngineTestSuite) TestRelicBelowThresholdAddsNothing() {
	locked := heroAt(10, 7, 1)
	locked.Relic = &swgoh.RelicState{CurrentTier: 2}
	without := s.calcChar(heroAt(10, 7, 1), rawOptions())
	with := s.calcChar(locked, rawOptions())

	s.Equal(without.Base, with.Base)
}

func (s *EngineTestSuite) TestMasteryAppliesWhenPresent() {
	stats := s.calcChar(heroAt(10, 7, 3), rawOptions())

	// Gear tier 3 carries 10e8 mastery; the modifier adds half of it to
	// crit rating before the AGI derivation (60e8 * 0.4 = 24e8).
	s.InDelta(29e8, stats.Base["14"], 1)
}

func (s *EngineTestSuite) TestMasteryGate() {
	stats := s.calcChar(heroAt(10, 7, 1), rawOptions())

	// No mastery stat at this gear tier, so no mastery contribution.
	s.InDelta(24e8, stats.Base["14"], 1)
}

func modWith(definitionID string, level int, primary, secondary *swgoh.ModStatValue) swgoh.StatMod {
	m := swgoh.StatMod{DefinitionID: definitionID, Level: level, Tier: 5}
	if primary != nil {
		m.PrimaryStat = &swgoh.ModStatEntry{Stat: *primary}
	}
	if secondary != nil {
		m.SecondaryStats = []swgoh.ModStatEntry{{Stat: *secondary}}
	}
	return m
}

func (s *EngineTestSuite) TestModStats() {
	unit := heroAt(10, 7, 1)
	unit.EquippedStatMods = []swgoh.StatMod{
		modWith("161", 15,
			&swgoh.ModStatValue{UnitStatID: 5, UnscaledDecimalValue: "1700000000"},
			&swgoh.ModStatValue{UnitStatID: 41, UnscaledDecimalValue: "100000000"}),
		modWith("162", 15,
			&swgoh.ModStatValue{UnitStatID: 55, UnscaledDecimalValue: "1000000"}, nil),
	}
	stats := s.calcChar(unit, rawOptions())

	// 17e8 primary speed plus a twice-granted 1e8 set bonus (two pieces,
	// both at max level, set size two).
	s.InDelta(19e8, stats.Mods["5"], 1)
	// Flat offense feeds both damage stats.
	s.InDelta(1e8, stats.Mods["6"], 1)
	s.InDelta(1e8, stats.Mods["7"], 1)
	// Health % of the finalized base health 2160e8, floored.
	s.InDelta(21e8, stats.Mods["1"], 1)
}

func (s *EngineTestSuite) TestWithoutModCalc() {
	unit := heroAt(10, 7, 1)
	unit.EquippedStatMods = []swgoh.StatMod{
		modWith("161", 15,
			&swgoh.ModStatValue{UnitStatID: 5, UnscaledDecimalValue: "1700000000"}, nil),
	}
	opts := rawOptions()
	opts.WithoutModCalc = true
	stats := s.calcChar(unit, opts)

	s.Nil(stats.Mods)
}

func (s *EngineTestSuite) TestPercentConversion() {
	opts := rawOptions()
	opts.PercentVals = true
	stats := s.calcChar(heroAt(10, 7, 1), opts)

	// Crit rating 24e8: 24/2400 + 0.1 = 0.11 of the 1e8 range.
	s.InDelta(0.11e8, stats.Base["14"], 1)
	// Dodge rating 24e8: 24/1200 = 0.02.
	s.InDelta(0.02e8, stats.Base["12"], 1)
	// Armor 21e8 at level 10: 21 / (75 + 21).
	s.InDelta(21.0/96.0*1e8, stats.Base["8"], 1)
	// Crit avoidance has no +0.1 floor.
	s.InDelta(0, stats.Base["39"], 1)
}

func (s *EngineTestSuite) TestPercentConversionLayering() {
	unit := heroAt(10, 7, 2)
	unit.Equipment = []swgoh.EquippedGear{{EquipmentID: "101", Slot: 0}}
	opts := rawOptions()
	opts.PercentVals = true
	stats := s.calcChar(unit, opts)

	// Flat armor is 38e8 base (230e8*0.14 + 90e8*0.07 floored) plus 10e8
	// from gear. The converted layers must sum to the conversion of the
	// flat total.
	s.InDelta(38.0/113.0*1e8, stats.Base["8"], 2)
	s.InDelta(48.0/123.0*1e8, stats.Base["8"]+stats.Gear["8"], 2)
}

func (s *EngineTestSuite) TestGameStyleCollapse() {
	unit := heroAt(10, 7, 2)
	unit.Equipment = []swgoh.EquippedGear{{EquipmentID: "102", Slot: 1}}
	opts := rawOptions()
	opts.GameStyle = true
	stats := s.calcChar(unit, opts)

	s.Require().NotNil(stats.Final)
	s.Nil(stats.Base)
	s.Nil(stats.Gear)

	// Gear speed folds into the final view.
	s.InDelta(4e8, stats.Final["5"], 1)
	s.Contains(stats.Final, "1")
	s.Contains(stats.Final, "14")
}

func (s *EngineTestSuite) TestGameStyleFoldsPercentPairs() {
	unit := heroAt(10, 7, 1)
	unit.EquippedStatMods = []swgoh.StatMod{
		modWith("161", 15,
			&swgoh.ModStatValue{UnitStatID: 53, UnscaledDecimalValue: "1000000"}, nil),
	}
	opts := rawOptions()
	opts.GameStyle = true
	stats := s.calcChar(unit, opts)

	// Crit chance % (21) folds onto the converted crit rating stat (14).
	s.NotContains(stats.Final, "21")
	s.InDelta(0.11e8+1e6, stats.Final["14"], 1)
	// The mod layer survives for callers that want the breakdown.
	s.InDelta(1e6, stats.Mods["21"], 1)
}

func (s *EngineTestSuite) TestRenameLocalized() {
	stats := s.calcChar(heroAt(10, 7, 1), &engine.StatOptions{Unscaled: true})

	s.InDelta(2160e8, stats.Base["Health"], 1)
	s.InDelta(120e8, stats.Base["Strength"], 1)
	// Ids without a localized name keep their numeric key.
	s.Contains(stats.Base, "4")
}

func (s *EngineTestSuite) TestRenameNoSpace() {
	stats := s.calcChar(heroAt(10, 7, 1), &engine.StatOptions{Unscaled: true, NoSpace: true})

	s.Contains(stats.Base, "physicalCriticalChance")
	s.Contains(stats.Base, "health")
}

func (s *EngineTestSuite) TestRenameEnumNames() {
	stats := s.calcChar(heroAt(10, 7, 1), &engine.StatOptions{Unscaled: true, EnumNames: true})

	s.InDelta(2160e8, stats.Base["UNITSTATMAXHEALTH"], 1)
	s.InDelta(120e8, stats.Base["UNITSTATSTRENGTH"], 1)
}

func (s *EngineTestSuite) TestRenameFallbackLanguage() {
	stats := s.calcChar(heroAt(10, 7, 1), &engine.StatOptions{Unscaled: true, Language: "ger_de"})

	// No German names in the fixture; the default language answers.
	s.Contains(stats.Base, "Health")
}

func (s *EngineTestSuite) TestOptionValidation() {
	_, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    heroAt(10, 7, 1),
		Options: &engine.StatOptions{Scaled: true, Unscaled: true},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    heroAt(10, 7, 1),
		Options: &engine.StatOptions{StatIDs: true, EnumNames: true},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    heroAt(10, 7, 1),
		Options: &engine.StatOptions{Language: "xx_yy"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestUnknownUnit() {
	_, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit: &swgoh.RosterUnit{DefID: "NOBODY", CurrentLevel: 10, CurrentRarity: 7, CurrentTier: 1},
	})
	s.True(errors.IsNotFound(err))
}

func (s *EngineTestSuite) TestMissingDefID() {
	_, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit: &swgoh.RosterUnit{CurrentLevel: 10},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestShipRejectedByCharPath() {
	_, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit: &swgoh.RosterUnit{DefID: "FIGHTER", CurrentLevel: 85, CurrentRarity: 7},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestDefinitionIDResolution() {
	unit := &swgoh.RosterUnit{
		DefinitionID:  "HERO:SEVEN_STAR",
		CurrentRarity: 7,
		CurrentLevel:  10,
		CurrentTier:   1,
	}
	stats := s.calcChar(unit, rawOptions())
	s.InDelta(120e8, stats.Base["2"], 1)
}

func (s *EngineTestSuite) TestLanguages() {
	s.Equal([]string{"eng_us"}, s.engine.Languages())
}
