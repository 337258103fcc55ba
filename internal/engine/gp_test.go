package engine_test

import (
	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

func gpOptions() *engine.StatOptions {
	return &engine.StatOptions{OnlyGP: true}
}

func (s *EngineTestSuite) charGP(unit *swgoh.RosterUnit) int64 {
	out, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    unit,
		Options: gpOptions(),
	})
	s.Require().NoError(err)
	return out.Unit.GP
}

func (s *EngineTestSuite) TestCharGPBaseline() {
	// Level 100 + rarity 50, times the flat 1.5 multiplier.
	s.Equal(int64(225), s.charGP(heroAt(85, 7, 1)))
}

func (s *EngineTestSuite) TestCharGPAllComponents() {
	unit := heroAt(85, 7, 2)
	unit.Equipment = []swgoh.EquippedGear{
		{EquipmentID: "101", Slot: 0},
		{EquipmentID: "102", Slot: 1},
	}
	unit.Skill = []swgoh.SkillTier{{ID: "basicskill_HERO", Tier: 6}}
	unit.PurchasedAbilityIDs = []string{"ultimateability_HERO"}
	unit.EquippedStatMods = []swgoh.StatMod{{DefinitionID: "161", Level: 15, Tier: 5}}
	unit.Relic = &swgoh.RelicState{CurrentTier: 9}

	// 100 level + 50 rarity + 10 gear tier + 5+5 pieces + 300 zeta
	// + 120 ultimate + 40 mod + 200 relic + 85*2 relic level = 1000.
	s.Equal(int64(1500), s.charGP(unit))
}

func (s *EngineTestSuite) TestSkillGPTierCapped() {
	capped := heroAt(85, 7, 1)
	capped.Skill = []swgoh.SkillTier{{ID: "basicskill_HERO", Tier: 99}}
	maxed := heroAt(85, 7, 1)
	maxed.Skill = []swgoh.SkillTier{{ID: "basicskill_HERO", Tier: 6}}

	s.Equal(s.charGP(maxed), s.charGP(capped))
}

func (s *EngineTestSuite) TestSkillGPPlainTier() {
	unit := heroAt(85, 7, 1)
	unit.Skill = []swgoh.SkillTier{{ID: "basicskill_HERO", Tier: 5}}

	// Tier 5+2 has no override tag, so the per-tier table answers: 80.
	s.Equal(int64(345), s.charGP(unit))
}

func (s *EngineTestSuite) TestGPAttachedAlongsideStats() {
	out, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    heroAt(85, 7, 1),
		Options: &engine.StatOptions{CalcGP: true, StatIDs: true},
	})
	s.Require().NoError(err)
	s.Equal(int64(225), out.Unit.GP)
	s.Equal(int64(225), out.Unit.Stats.GP)
	s.NotEmpty(out.Unit.Stats.Base)
}

func (s *EngineTestSuite) TestOnlyGPSkipsStats() {
	out, err := s.engine.CalcCharStats(s.ctx, &engine.CalcCharStatsInput{
		Unit:    heroAt(85, 7, 1),
		Options: gpOptions(),
	})
	s.Require().NoError(err)
	s.Empty(out.Unit.Stats.Base)
	s.Equal(int64(225), out.Unit.Stats.GP)
}

func (s *EngineTestSuite) TestShipGPCrewed() {
	out, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship:    fighterAt(85, 7),
		Crew:    []*swgoh.RosterUnit{heroAt(85, 7, 1)},
		Options: gpOptions(),
	})
	s.Require().NoError(err)

	// Crew GP 225 times rarity factor 2 and crew-size factor 1.5, plus
	// ship level 100, floored after the 1.5 multiplier.
	s.Equal(int64(1162), out.Ship.GP)
}

func (s *EngineTestSuite) TestShipGPCrewless() {
	ship := droneAt(50, 5)
	ship.Skill = []swgoh.SkillTier{
		{ID: "hardwareskill_DRONE", Tier: 1},
		{ID: "specialskill_DRONE", Tier: 2},
	}
	out, err := s.engine.CalcShipStats(s.ctx, &engine.CalcShipStatsInput{
		Ship:    ship,
		Options: gpOptions(),
	})
	s.Require().NoError(err)

	// Ability pool 50, reinforcement pool 90, level 60:
	// (60*3.5 + 50*5.74 + 90*1.61) * 1.5 + 200, floored after *1.5.
	s.Equal(int64(1744), out.Ship.GP)
}
