// Package engine computes unit statistics and Galactic Power from prepared
// game data tables.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/swgoh-tools/statcalc/internal/engine Engine

import (
	"context"
)

// Engine calculates character, ship, roster and player stats. All entry
// points annotate the units they are given and return them; an engine holds
// an immutable snapshot of game data tables and is safe for concurrent use.
type Engine interface {
	// CalcCharStats calculates stats for a single character.
	CalcCharStats(ctx context.Context, input *CalcCharStatsInput) (*CalcCharStatsOutput, error)

	// CalcShipStats calculates stats for a single ship and its crew.
	CalcShipStats(ctx context.Context, input *CalcShipStatsInput) (*CalcShipStatsOutput, error)

	// CalcRosterStats calculates stats for a full roster, resolving ship
	// crews from the characters in the same roster.
	CalcRosterStats(ctx context.Context, input *CalcRosterStatsInput) (*CalcRosterStatsOutput, error)

	// CalcPlayerStats calculates roster stats for one or more players.
	CalcPlayerStats(ctx context.Context, input *CalcPlayerStatsInput) (*CalcPlayerStatsOutput, error)

	// Languages lists the localization languages available for stat renaming.
	Languages() []string
}
