package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/swgoh-tools/statcalc/internal/orchestrators/gamedata"
)

var (
	buildForce bool
	buildWatch bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the game data tables",
	Long: `Build fetches the current game data from comlink, normalizes it into
the calculation tables and stores the result. When the stored tables already
match the server version nothing is fetched unless --force is given.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildForce, "force", false, "rebuild even when the stored tables are current")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "keep running and refresh when a new version ships")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	started := time.Now()
	out, err := svc.Initialize(ctx, &gamedata.InitializeInput{ForceReload: buildForce})
	if err != nil {
		return err
	}
	if out.Updated {
		fmt.Printf("tables built for version %s in %s\n", out.Version.Game, time.Since(started).Round(time.Millisecond))
	} else {
		fmt.Printf("tables already current for version %s\n", out.Version.Game)
	}

	if !buildWatch {
		return nil
	}
	interval := time.Duration(cfg.UpdateIntervalMinutes) * time.Minute
	if err := svc.WatchUpdates(ctx, &gamedata.WatchUpdatesInput{Interval: interval}); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
