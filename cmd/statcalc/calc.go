package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/orchestrators/gamedata"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

var (
	calcOutput  string
	calcPlayers bool
	calcOpts    engine.StatOptions
)

var calcCmd = &cobra.Command{
	Use:   "calc <roster.json>",
	Short: "Calculate stats for a roster file",
	Long: `Calc reads a roster JSON file (an array of roster units, or with
--players an array of player records), annotates every unit with its computed
stats and writes the result as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcOutput, "output", "o", "", "output file (defaults to stdout)")
	calcCmd.Flags().BoolVar(&calcPlayers, "players", false, "input holds player records instead of a bare roster")

	calcCmd.Flags().BoolVar(&calcOpts.WithoutModCalc, "without-mod-calc", false, "skip mod stat contributions")
	calcCmd.Flags().BoolVar(&calcOpts.PercentVals, "percent-vals", false, "convert flat ratings to percentages")
	calcCmd.Flags().BoolVar(&calcOpts.GameStyle, "game-style", false, "produce the in-game final stat view")
	calcCmd.Flags().BoolVar(&calcOpts.Scaled, "scaled", false, "scale values by 1e-4")
	calcCmd.Flags().BoolVar(&calcOpts.Unscaled, "unscaled", false, "keep raw 1e8-scaled values")
	calcCmd.Flags().BoolVar(&calcOpts.CalcGP, "gp", false, "also compute Galactic Power")
	calcCmd.Flags().BoolVar(&calcOpts.OnlyGP, "only-gp", false, "compute Galactic Power only")
	calcCmd.Flags().BoolVar(&calcOpts.StatIDs, "stat-ids", false, "key stats by numeric id")
	calcCmd.Flags().BoolVar(&calcOpts.EnumNames, "enum-names", false, "key stats by enum name")
	calcCmd.Flags().BoolVar(&calcOpts.NoSpace, "no-space", false, "camelCase localized stat names")
	calcCmd.Flags().StringVar(&calcOpts.Language, "language", "", "localization language for stat names")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if _, err := svc.Initialize(ctx, &gamedata.InitializeInput{}); err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read roster %s: %w", args[0], err)
	}

	var result any
	if calcPlayers {
		var players []*swgoh.Player
		if err := json.Unmarshal(content, &players); err != nil {
			return fmt.Errorf("failed to parse players %s: %w", args[0], err)
		}
		out, err := svc.CalcPlayerStats(ctx, &engine.CalcPlayerStatsInput{
			Players: players,
			Options: &calcOpts,
		})
		if err != nil {
			return err
		}
		result = out.Players
	} else {
		var units []*swgoh.RosterUnit
		if err := json.Unmarshal(content, &units); err != nil {
			return fmt.Errorf("failed to parse roster %s: %w", args[0], err)
		}
		out, err := svc.CalcRosterStats(ctx, &engine.CalcRosterStatsInput{
			Units:   units,
			Options: &calcOpts,
		})
		if err != nil {
			return err
		}
		result = out.Units
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if calcOutput == "" {
		fmt.Println(string(encoded))
		return nil
	}
	if err := os.WriteFile(calcOutput, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", calcOutput, err)
	}
	return nil
}
