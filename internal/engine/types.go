package engine

import (
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// CalcCharStatsInput carries one character roster unit plus calculation
// options and optional hypothetical value overrides.
type CalcCharStatsInput struct {
	Unit    *swgoh.RosterUnit
	Options *StatOptions
	Values  *StatValues
}

// CalcCharStatsOutput returns the annotated unit.
type CalcCharStatsOutput struct {
	Unit *swgoh.RosterUnit
}

// CalcShipStatsInput carries one ship roster unit with its crew members.
// Crew must contain exactly the characters the ship definition names, in any
// order, and must be empty for crewless ships.
type CalcShipStatsInput struct {
	Ship    *swgoh.RosterUnit
	Crew    []*swgoh.RosterUnit
	Options *StatOptions
	Values  *StatValues
}

// CalcShipStatsOutput returns the annotated ship.
type CalcShipStatsOutput struct {
	Ship *swgoh.RosterUnit
}

// CalcRosterStatsInput carries a full roster. Characters are calculated
// first so that ship crews can be resolved from the same roster.
type CalcRosterStatsInput struct {
	Units   []*swgoh.RosterUnit
	Options *StatOptions
	Values  *StatValues
}

// CalcRosterStatsOutput returns the annotated units in input order.
type CalcRosterStatsOutput struct {
	Units []*swgoh.RosterUnit
}

// CalcPlayerStatsInput carries one or more player profiles.
type CalcPlayerStatsInput struct {
	Players []*swgoh.Player
	Options *StatOptions
	Values  *StatValues
}

// CalcPlayerStatsOutput returns the players with annotated rosters.
type CalcPlayerStatsOutput struct {
	Players []*swgoh.Player
}
