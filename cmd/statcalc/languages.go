package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swgoh-tools/statcalc/internal/orchestrators/gamedata"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the loaded localization languages",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
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
	out, err := svc.Languages(ctx, &gamedata.LanguagesInput{})
	if err != nil {
		return err
	}
	for _, lang := range out.Languages {
		fmt.Println(lang)
	}
	return nil
}
