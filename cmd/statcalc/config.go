package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swgoh-tools/statcalc/internal/clients/comlink"
	"github.com/swgoh-tools/statcalc/internal/orchestrators/gamedata"
	"github.com/swgoh-tools/statcalc/internal/redis"
	"github.com/swgoh-tools/statcalc/internal/repositories/tables"
)

// config is the YAML file shape. Every field has a workable default, so an
// empty or absent file runs against a local comlink with on-disk storage.
type config struct {
	Comlink struct {
		URL       string `yaml:"url"`
		AccessKey string `yaml:"accessKey"`
		SecretKey string `yaml:"secretKey"`
	} `yaml:"comlink"`

	// DataDir stores the built tables as JSON files. Ignored when a redis
	// endpoint is configured.
	DataDir string `yaml:"dataDir"`
	Redis   string `yaml:"redis"`

	// Languages limits which localization bundles are built and loaded
	Languages []string `yaml:"languages"`

	IncludePveUnits       bool `yaml:"includePveUnits"`
	UpdateIntervalMinutes int  `yaml:"updateIntervalMinutes"`
}

func loadConfig() (*config, error) {
	cfg := &config{}
	if configPath == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	return cfg, nil
}

// newService wires the comlink client, the table store and the orchestrator
// from the loaded config.
func newService(cfg *config) (gamedata.Service, error) {
	client, err := comlink.New(&comlink.Config{
		BaseURL:   cfg.Comlink.URL,
		AccessKey: cfg.Comlink.AccessKey,
		SecretKey: cfg.Comlink.SecretKey,
	})
	if err != nil {
		return nil, err
	}

	var repo tables.Repository
	if cfg.Redis != "" {
		redisClient, err := redis.NewClient(cfg.Redis, nil)
		if err != nil {
			return nil, err
		}
		repo = tables.NewRedisRepository(redisClient)
	} else {
		repo, err = tables.NewFileRepository(&tables.FileConfig{DataDir: cfg.DataDir})
		if err != nil {
			return nil, err
		}
	}

	return gamedata.NewOrchestrator(&gamedata.Config{
		Comlink:         client,
		Repository:      repo,
		IncludePveUnits: cfg.IncludePveUnits,
		Languages:       cfg.Languages,
		UpdateInterval:  time.Duration(cfg.UpdateIntervalMinutes) * time.Minute,
	})
}
