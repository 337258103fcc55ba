package engine_test

import (
	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

func (s *EngineTestSuite) TestRosterStats() {
	ship := fighterAt(85, 7)
	char := heroAt(85, 7, 1)
	out, err := s.engine.CalcRosterStats(s.ctx, &engine.CalcRosterStatsInput{
		Units:   []*swgoh.RosterUnit{ship, char},
		Options: rawOptions(),
	})
	s.Require().NoError(err)

	// Input order survives, ships included.
	s.Require().Len(out.Units, 2)
	s.Same(ship, out.Units[0])
	s.Same(char, out.Units[1])

	s.Require().NotNil(char.Stats)
	s.Require().NotNil(ship.Stats)
	// The ship's crew was resolved from the same roster.
	s.InDelta(7000e8, ship.Stats.Crew["1"], 1)
}

func (s *EngineTestSuite) TestRosterMatchesSingleUnitCalcs() {
	rosterShip := fighterAt(85, 7)
	rosterChar := heroAt(85, 7, 1)
	_, err := s.engine.CalcRosterStats(s.ctx, &engine.CalcRosterStatsInput{
		Units:   []*swgoh.RosterUnit{rosterShip, rosterChar},
		Options: rawOptions(),
	})
	s.Require().NoError(err)

	soloChar := s.calcChar(heroAt(85, 7, 1), rawOptions())
	soloShip := s.calcShip(fighterAt(85, 7), []*swgoh.RosterUnit{heroAt(85, 7, 1)}, rawOptions())

	s.Equal(soloChar, rosterChar.Stats)
	s.Equal(soloShip, rosterShip.Stats)
}

func (s *EngineTestSuite) TestRosterDeterministic() {
	build := func() []*swgoh.RosterUnit {
		char := heroAt(10, 7, 1)
		char.EquippedStatMods = []swgoh.StatMod{
			modWith("161", 15,
				&swgoh.ModStatValue{UnitStatID: 41, UnscaledDecimalValue: "100000000"},
				&swgoh.ModStatValue{UnitStatID: 48, UnscaledDecimalValue: "500000"}),
		}
		return []*swgoh.RosterUnit{char, fighterAt(85, 7), heroAt(85, 7, 1)}
	}

	first := build()
	second := build()
	for _, units := range [][]*swgoh.RosterUnit{first, second} {
		_, err := s.engine.CalcRosterStats(s.ctx, &engine.CalcRosterStatsInput{
			Units:   units,
			Options: rawOptions(),
		})
		s.Require().NoError(err)
	}
	for i := range first {
		s.Equal(first[i].Stats, second[i].Stats)
	}
}

func (s *EngineTestSuite) TestRosterSkipsUnknownUnits() {
	known := heroAt(85, 7, 1)
	unknown := &swgoh.RosterUnit{DefID: "NOBODY", CurrentLevel: 85}
	out, err := s.engine.CalcRosterStats(s.ctx, &engine.CalcRosterStatsInput{
		Units:   []*swgoh.RosterUnit{unknown, known},
		Options: rawOptions(),
	})
	s.Require().NoError(err)

	s.Nil(unknown.Stats)
	s.NotNil(known.Stats)
	s.Len(out.Units, 2)
}

func (s *EngineTestSuite) TestRosterMissingCrew() {
	_, err := s.engine.CalcRosterStats(s.ctx, &engine.CalcRosterStatsInput{
		Units: []*swgoh.RosterUnit{fighterAt(85, 7)},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestPlayerStats() {
	player := &swgoh.Player{
		Name:        "player one",
		AllyCode:    123456789,
		RosterUnits: []*swgoh.RosterUnit{heroAt(85, 7, 1)},
	}
	out, err := s.engine.CalcPlayerStats(s.ctx, &engine.CalcPlayerStatsInput{
		Players: []*swgoh.Player{player},
		Options: rawOptions(),
	})
	s.Require().NoError(err)

	s.Same(player, out.Players[0])
	s.NotNil(player.RosterUnits[0].Stats)
}

func (s *EngineTestSuite) TestPlayerStatsMissingRoster() {
	_, err := s.engine.CalcPlayerStats(s.ctx, &engine.CalcPlayerStatsInput{
		Players: []*swgoh.Player{{Name: "empty"}},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestPlayerStatsRequiresPlayers() {
	_, err := s.engine.CalcPlayerStats(s.ctx, &engine.CalcPlayerStatsInput{})
	s.True(errors.IsInvalidArgument(err))
}
