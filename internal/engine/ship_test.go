package engine_test

import (
	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

func fighterAt(level, rarity int) *swgoh.RosterUnit {
	return &swgoh.RosterUnit{
		DefID:         "FIGHTER",
		CurrentRarity: rarity,
		CurrentLevel:  level,
	}
}

func droneAt(level, rarity int) *swgoh.RosterUnit {
	return &swgoh.RosterUnit{
		DefID:         "DRONE",
		CurrentRarity: rarity,
		CurrentLevel:  level,
		Skill: []swgoh.SkillTier{
			{ID: "hardwareskill_DRONE", Tier: 1},
			{ID: "specialskill_DRONE", Tier: 1},
		},
	}
}

func (s *EngineTestSuite) calcShip(
	ship *swgoh.RosterUnit,
	crew []*swgoh.RosterUnit,
	opts *engine.StatOptions,
) *swgoh.UnitStats {
	out, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship:    ship,
		Crew:    crew,
		Options: opts,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Ship.Stats)
	return out.Ship.Stats
}

func (s *EngineTestSuite) TestShipCrewStats() {
	// HERO at 85/7★/G1 contributes 200+100+50 crew rating; the rarity 7
	// ship factor of 2 makes the crew stat multiplier 700.
	stats := s.calcShip(fighterAt(85, 7), []*swgoh.RosterUnit{heroAt(85, 7, 1)}, rawOptions())

	s.InDelta(7000e8, stats.Crew["1"], 1)
	s.InDelta(700e8, stats.Crew["5"], 1)
	// Stats at id 16 and above floor to whole numbers.
	s.InDelta(86419, stats.Crew["17"], 1e-6)
}

func (s *EngineTestSuite) TestShipBaseStats() {
	stats := s.calcShip(fighterAt(85, 7), []*swgoh.RosterUnit{heroAt(85, 7, 1)}, rawOptions())

	// Ship definition stats run through the same base derivations.
	s.InDelta(180e8, stats.Base["1"], 1)
	s.InDelta(14e8, stats.Base["6"], 1)
	s.InDelta(24e8, stats.Base["7"], 1)
}

func (s *EngineTestSuite) TestShipCrewRatingComponents() {
	// Equipped pieces, mods and relic all raise the crew rating. Gear
	// piece rating only counts below the max gear tier.
	crew := heroAt(85, 7, 1)
	crew.Equipment = []swgoh.EquippedGear{{EquipmentID: "101", Slot: 0}}
	crew.EquippedStatMods = []swgoh.StatMod{{DefinitionID: "161", Level: 15, Tier: 5}}
	crew.Relic = &swgoh.RelicState{CurrentTier: 9}
	crew.Skill = []swgoh.SkillTier{{ID: "basicskill_HERO", Tier: 6}}

	// Rating: 200 + 100 + 50 + 5*1 + 150 (ability tier 8) + 10 (mod)
	// + 500 + 85*1 (relic) = 1100; multiplier 2200.
	stats := s.calcShip(fighterAt(85, 7), []*swgoh.RosterUnit{crew}, rawOptions())
	s.InDelta(22000e8, stats.Crew["1"], 1)
}

func (s *EngineTestSuite) TestCrewlessShipStats() {
	// Rating floor(50 + 3.5*100 + 0.696*100 + 2.46*100) = 715; rarity 5
	// factor 1.5 makes the multiplier 1072.5, floored per stat.
	stats := s.calcShip(droneAt(50, 5), nil, rawOptions())

	s.InDelta(1072e8, stats.Crew["1"], 1)
}

func (s *EngineTestSuite) TestShipGameStyle() {
	opts := rawOptions()
	opts.GameStyle = true
	stats := s.calcShip(fighterAt(85, 7), []*swgoh.RosterUnit{heroAt(85, 7, 1)}, opts)

	s.Require().NotNil(stats.Final)
	s.Nil(stats.Base)
	// Crew and base health fold together; the crew layer survives.
	s.InDelta(7180e8, stats.Final["1"], 1)
	s.InDelta(7000e8, stats.Crew["1"], 1)
}

func (s *EngineTestSuite) TestShipCrewCountMismatch() {
	_, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship: fighterAt(85, 7),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestShipWrongCrewMember() {
	_, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship: droneAt(50, 5),
		Crew: []*swgoh.RosterUnit{heroAt(85, 7, 1)},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestCharRejectedByShipPath() {
	_, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship: heroAt(85, 7, 1),
	})
	s.True(errors.IsInvalidArgument(err))
}
