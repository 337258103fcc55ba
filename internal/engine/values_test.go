package engine_test

import (
	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

func intPtr(v int) *int { return &v }

func (s *EngineTestSuite) charGPWithValues(unit *swgoh.RosterUnit, values *engine.StatValues) int64 {
	out, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    unit,
		Options: &engine.StatOptions{OnlyGP: true},
		Values:  values,
	})
	s.Require().NoError(err)
	return out.Unit.GP
}

func (s *EngineTestSuite) TestGameDefaultProjection() {
	// A unit addressed by baseId alone is projected at 7★, level 85 and
	// maxed skills (300 zeta + 400 omicron special in this data set).
	gp := s.charGPWithValues(&swgoh.RosterUnit{BaseID: "HERO"}, nil)
	s.Equal(int64(1275), gp)
}

func (s *EngineTestSuite) TestValueOverrides() {
	unit := heroAt(10, 5, 1)
	gp := s.charGPWithValues(unit, &engine.StatValues{Char: &engine.UnitValues{
		Rarity:    intPtr(7),
		Level:     intPtr(85),
		Gear:      intPtr(2),
		Equipment: &engine.EquipmentSpec{All: true},
	}})
	// Gear tier 2 grants 10, plus 5 per craftable piece. The "9999"
	// placeholder slot stays empty.
	s.Equal(int64(255), gp)
}

func (s *EngineTestSuite) TestEquipmentSlots() {
	unit := heroAt(85, 7, 2)
	gp := s.charGPWithValues(unit, &engine.StatValues{Char: &engine.UnitValues{
		Equipment: &engine.EquipmentSpec{Slots: []int{0}},
	}})
	s.Equal(int64(247), gp)
}

func (s *EngineTestSuite) TestEquipmentSlotOutOfRange() {
	_, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    heroAt(85, 7, 2),
		Options: &engine.StatOptions{OnlyGP: true},
		Values: &engine.StatValues{Char: &engine.UnitValues{
			Equipment: &engine.EquipmentSpec{Slots: []int{7}},
		}},
	})
	s.True(errors.IsOutOfRange(err))
}

func (s *EngineTestSuite) TestEquipmentNoneStripsGear() {
	unit := heroAt(85, 7, 2)
	unit.Equipment = []swgoh.EquippedGear{{EquipmentID: "101", Slot: 0}}
	stats := s.calcChar(unit, rawOptions())
	s.NotEmpty(stats.Gear)

	unit = heroAt(85, 7, 2)
	unit.Equipment = []swgoh.EquippedGear{{EquipmentID: "101", Slot: 0}}
	out, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    unit,
		Options: rawOptions(),
		Values: &engine.StatValues{Char: &engine.UnitValues{
			Equipment: &engine.EquipmentSpec{None: true},
		}},
	})
	s.Require().NoError(err)
	s.Empty(out.Unit.Stats.Gear)
}

func (s *EngineTestSuite) TestSkillSelectors() {
	tests := []struct {
		name   string
		skills engine.SkillsSpec
		gp     int64
	}{
		{"max", engine.SkillsSpec{Max: true}, 1275},
		{"max no zeta", engine.SkillsSpec{MaxNoZeta: true}, 945},
		{"max no omicron", engine.SkillsSpec{MaxNoOmicron: true}, 795},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			gp := s.charGPWithValues(heroAt(85, 7, 1), &engine.StatValues{
				Char: &engine.UnitValues{Skills: &tt.skills},
			})
			s.Equal(tt.gp, gp)
		})
	}
}

func (s *EngineTestSuite) TestSyntheticMods() {
	gp := s.charGPWithValues(heroAt(85, 7, 1), &engine.StatValues{
		Char: &engine.UnitValues{ModRarity: intPtr(6)},
	})
	// Six synthetic 6-dot mods at max level and tier, 40 GP each.
	s.Equal(int64(585), gp)
}

func (s *EngineTestSuite) TestPurchasedAbilities() {
	gp := s.charGPWithValues(heroAt(85, 7, 1), &engine.StatValues{
		Char: &engine.UnitValues{PurchasedAbilityIDs: []string{"ultimateability_HERO"}},
	})
	s.Equal(int64(405), gp)
}

func (s *EngineTestSuite) TestValueValidation() {
	_, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:   heroAt(85, 7, 1),
		Values: &engine.StatValues{Char: &engine.UnitValues{Rarity: intPtr(9)}},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit: heroAt(85, 7, 1),
		Values: &engine.StatValues{Char: &engine.UnitValues{
			Skills: &engine.SkillsSpec{Max: true, MaxNoZeta: true},
		}},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit: heroAt(85, 7, 1),
		Values: &engine.StatValues{Char: &engine.UnitValues{
			Equipment: &engine.EquipmentSpec{All: true, None: true},
		}},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestShipValueOverrides() {
	out, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship:    fighterAt(10, 5),
		Crew:    []*swgoh.RosterUnit{heroAt(85, 7, 1)},
		Options: rawOptions(),
		Values: &engine.StatValues{Ship: &engine.ShipValues{
			Rarity: intPtr(7),
			Level:  intPtr(85),
		}},
	})
	s.Require().NoError(err)
	s.InDelta(7000e8, out.Ship.Stats.Crew["1"], 1)
}

func (s *EngineTestSuite) TestCrewValueOverrides() {
	// Dropping the crew member to level 10 cuts its crew rating to
	// 40+100+50 = 190, so the multiplier becomes 2*190 = 380.
	out, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship:    fighterAt(85, 7),
		Crew:    []*swgoh.RosterUnit{heroAt(85, 7, 1)},
		Options: rawOptions(),
		Values: &engine.StatValues{Crew: &engine.UnitValues{
			Level: intPtr(10),
		}},
	})
	s.Require().NoError(err)
	s.InDelta(3800e8, out.Ship.Stats.Crew["1"], 1)
}
