package engine

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/localization"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// Config holds the engine dependencies.
type Config struct {
	// Tables is the prepared game data snapshot. Required.
	Tables *swgoh.Tables

	// Names provides localized stat names for output renaming. Optional;
	// without it stats keep their numeric id keys.
	Names *localization.Index

	Logger *slog.Logger
}

// Validate checks required fields and applies defaults.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.Tables == nil {
		return errors.InvalidArgument("tables are required")
	}
	if cfg.Tables.CR == nil || cfg.Tables.GP == nil {
		return errors.InvalidArgument("tables are missing coefficient data")
	}
	if cfg.Names == nil {
		cfg.Names = localization.NewIndexFromNames(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

type statEngine struct {
	tables *swgoh.Tables
	names  *localization.Index
	logger *slog.Logger
}

var _ Engine = (*statEngine)(nil)

// New creates an Engine over an immutable game data snapshot.
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &statEngine{
		tables: cfg.Tables,
		names:  cfg.Names,
		logger: cfg.Logger,
	}, nil
}

func (e *statEngine) Languages() []string {
	return e.names.Languages()
}

func (e *statEngine) CalcCharStats(
	ctx context.Context,
	input *CalcCharStatsInput,
) (*CalcCharStatsOutput, error) {
	if input == nil || input.Unit == nil {
		return nil, errors.InvalidArgument("unit is required")
	}
	opts, err := normalizeOptions(input.Options)
	if err != nil {
		return nil, err
	}
	var values *UnitValues
	if input.Values != nil {
		if err := input.Values.Validate(); err != nil {
			return nil, err
		}
		values = input.Values.Char
	}

	unit, def, err := e.resolveUnit(input.Unit, values)
	if err != nil {
		return nil, err
	}
	if def.IsShip() {
		return nil, errors.InvalidArgumentf("unit %s is a ship, use CalcShipStats", unit.DefID)
	}

	if !opts.OnlyGP {
		stats, err := e.charStats(unit, def, opts)
		if err != nil {
			return nil, err
		}
		input.Unit.Stats = stats
	}
	if opts.CalcGP || opts.OnlyGP {
		gp := e.charGP(unit, def)
		input.Unit.GP = gp
		if input.Unit.Stats == nil {
			input.Unit.Stats = &swgoh.UnitStats{}
		}
		input.Unit.Stats.GP = gp
	}
	return &CalcCharStatsOutput{Unit: input.Unit}, nil
}

func (e *statEngine) CalcShipStats(
	ctx context.Context,
	input *CalcShipStatsInput,
) (*CalcShipStatsOutput, error) {
	if input == nil || input.Ship == nil {
		return nil, errors.InvalidArgument("ship is required")
	}
	opts, err := normalizeOptions(input.Options)
	if err != nil {
		return nil, err
	}
	var shipValues *ShipValues
	var crewValues *UnitValues
	if input.Values != nil {
		if err := input.Values.Validate(); err != nil {
			return nil, err
		}
		shipValues = input.Values.Ship
		crewValues = input.Values.Crew
	}

	ship, def, err := e.resolveShip(input.Ship, shipValues)
	if err != nil {
		return nil, err
	}

	crew := make([]*crewMember, 0, len(input.Crew))
	for _, c := range input.Crew {
		member, memberDef, err := e.resolveUnit(c, crewValues)
		if err != nil {
			return nil, err
		}
		crew = append(crew, &crewMember{unit: member, def: memberDef})
	}
	if err := verifyCrew(ship, def, crew); err != nil {
		return nil, err
	}

	if !opts.OnlyGP {
		stats, err := e.shipStats(ship, def, crew, opts)
		if err != nil {
			return nil, err
		}
		input.Ship.Stats = stats
	}
	if opts.CalcGP || opts.OnlyGP {
		gp := e.shipGP(ship, def, crew)
		input.Ship.GP = gp
		if input.Ship.Stats == nil {
			input.Ship.Stats = &swgoh.UnitStats{}
		}
		input.Ship.Stats.GP = gp
	}
	return &CalcShipStatsOutput{Ship: input.Ship}, nil
}

func (e *statEngine) CalcRosterStats(
	ctx context.Context,
	input *CalcRosterStatsInput,
) (*CalcRosterStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var chars, ships []*swgoh.RosterUnit
	crewMembers := make(map[string]*swgoh.RosterUnit)
	for _, unit := range input.Units {
		if unit == nil {
			continue
		}
		defID := unit.ResolveDefID()
		def, ok := e.tables.Units[defID]
		if !ok {
			e.logger.Warn("skipping unknown unit", "defId", defID)
			continue
		}
		if def.IsShip() {
			ships = append(ships, unit)
		} else {
			crewMembers[defID] = unit
			chars = append(chars, unit)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, char := range chars {
		char := char
		g.Go(func() error {
			_, err := e.CalcCharStats(ctx, &CalcCharStatsInput{
				Unit:    char,
				Options: input.Options,
				Values:  input.Values,
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, ctx = errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, ship := range ships {
		ship := ship
		g.Go(func() error {
			crew, err := e.resolveRosterCrew(ship, crewMembers)
			if err != nil {
				return err
			}
			_, err = e.CalcShipStats(ctx, &CalcShipStatsInput{
				Ship:    ship,
				Crew:    crew,
				Options: input.Options,
				Values:  input.Values,
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CalcRosterStatsOutput{Units: input.Units}, nil
}

// resolveRosterCrew collects the roster units named by the ship's crew list.
func (e *statEngine) resolveRosterCrew(
	ship *swgoh.RosterUnit,
	crewMembers map[string]*swgoh.RosterUnit,
) ([]*swgoh.RosterUnit, error) {
	defID := ship.ResolveDefID()
	def := e.tables.Units[defID]
	crew := make([]*swgoh.RosterUnit, 0, len(def.Crew))
	for _, id := range def.Crew {
		member, ok := crewMembers[id]
		if !ok {
			return nil, errors.InvalidArgumentf(
				"ship %s crew member %s is not in the roster", defID, id)
		}
		crew = append(crew, member)
	}
	return crew, nil
}

func (e *statEngine) CalcPlayerStats(
	ctx context.Context,
	input *CalcPlayerStatsInput,
) (*CalcPlayerStatsOutput, error) {
	if input == nil || len(input.Players) == 0 {
		return nil, errors.InvalidArgument("at least one player is required")
	}
	for _, player := range input.Players {
		if player == nil {
			return nil, errors.InvalidArgument("player is required")
		}
		if player.RosterUnits == nil {
			return nil, errors.InvalidArgumentf("player %s has no roster", player.Name)
		}
		if _, err := e.CalcRosterStats(ctx, &CalcRosterStatsInput{
			Units:   player.RosterUnits,
			Options: input.Options,
			Values:  input.Values,
		}); err != nil {
			return nil, errors.Wrapf(err, "player %s", player.Name)
		}
	}
	return &CalcPlayerStatsOutput{Players: input.Players}, nil
}

// normalizeOptions copies the caller's options so validation defaults do not
// mutate shared state.
func normalizeOptions(in *StatOptions) (*StatOptions, error) {
	opts := &StatOptions{}
	if in != nil {
		*opts = *in
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
