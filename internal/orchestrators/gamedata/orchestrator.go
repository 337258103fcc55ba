// Package gamedata implements the data-preparation orchestrator. It keeps
// the normalized tables in step with the upstream comlink instance and
// exposes the calculation operations over the active snapshot.
package gamedata

//go:generate mockgen -destination=mock/mock_service.go -package=gamedatamock github.com/swgoh-tools/statcalc/internal/orchestrators/gamedata Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/swgoh-tools/statcalc/internal/clients/comlink"
	"github.com/swgoh-tools/statcalc/internal/databuilder"
	"github.com/swgoh-tools/statcalc/internal/engine"
	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/localization"
	"github.com/swgoh-tools/statcalc/internal/repositories/tables"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

const (
	// DefaultUpdateInterval is how often WatchUpdates checks for a new
	// data version when no interval is configured.
	DefaultUpdateInterval = 60 * time.Minute

	// MinUpdateInterval caps how aggressively the watcher polls upstream.
	MinUpdateInterval = 30 * time.Minute
)

// Service defines the interface for game data lifecycle and calculations
type Service interface {
	// Initialize prepares the engine exactly once: it loads stored tables
	// when their stamp matches the server version and rebuilds otherwise.
	// Repeat calls without ForceReload reuse the prepared engine.
	Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error)

	// Refresh re-checks the server version and rebuilds when stale
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// WatchUpdates runs Refresh on an interval until the context ends
	WatchUpdates(ctx context.Context, input *WatchUpdatesInput) error

	// Version reports the active snapshot version
	Version(ctx context.Context, input *VersionInput) (*VersionOutput, error)

	// Languages lists the loaded localization languages
	Languages(ctx context.Context, input *LanguagesInput) (*LanguagesOutput, error)

	// Calculation operations, delegated to the engine over the active
	// snapshot. All fail with FailedPrecondition before Initialize.
	CalcCharStats(ctx context.Context, input *engine.CalcCharStatsInput) (*engine.CalcCharStatsOutput, error)
	CalcShipStats(ctx context.Context, input *engine.CalcShipStatsInput) (*engine.CalcShipStatsOutput, error)
	CalcRosterStats(ctx context.Context, input *engine.CalcRosterStatsInput) (*engine.CalcRosterStatsOutput, error)
	CalcPlayerStats(ctx context.Context, input *engine.CalcPlayerStatsInput) (*engine.CalcPlayerStatsOutput, error)
}

// Config holds the dependencies for the gamedata orchestrator
type Config struct {
	Comlink    comlink.Client
	Repository tables.Repository

	// IncludePveUnits forwards the matching game-data request flag
	IncludePveUnits bool

	// Languages selects which localization languages to build and load.
	// Defaults to every language the game ships.
	Languages []string

	// UpdateInterval is the default WatchUpdates polling interval
	UpdateInterval time.Duration

	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Comlink == nil {
		vb.RequiredField("Comlink")
	}
	if cfg.Repository == nil {
		vb.RequiredField("Repository")
	}
	for _, lang := range cfg.Languages {
		if !swgoh.SupportedLanguage(lang) {
			vb.InvalidField("Languages", "unsupported language "+lang)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = swgoh.Languages
	}
	if cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = DefaultUpdateInterval
	}
	if cfg.UpdateInterval < MinUpdateInterval {
		cfg.UpdateInterval = MinUpdateInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

type orchestrator struct {
	comlink         comlink.Client
	repo            tables.Repository
	includePveUnits bool
	languages       []string
	updateInterval  time.Duration
	log             *slog.Logger

	mu      sync.RWMutex
	engine  engine.Engine
	version *swgoh.DataVersion
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new gamedata orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		comlink:         cfg.Comlink,
		repo:            cfg.Repository,
		includePveUnits: cfg.IncludePveUnits,
		languages:       cfg.Languages,
		updateInterval:  cfg.UpdateInterval,
		log:             cfg.Logger,
	}, nil
}

func (o *orchestrator) Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	force := input != nil && input.ForceReload

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.engine != nil && !force {
		return &InitializeOutput{Version: o.version}, nil
	}

	version, err := o.comlink.GetLatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	if !force {
		if loaded, err := o.loadStored(ctx, version); err != nil {
			return nil, err
		} else if loaded {
			o.log.Info("engine initialized from stored tables", "version", version.Game)
			return &InitializeOutput{Version: version}, nil
		}
	}

	if err := o.rebuild(ctx, version); err != nil {
		return nil, err
	}
	return &InitializeOutput{Version: version, Updated: true}, nil
}

func (o *orchestrator) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	version, err := o.comlink.GetLatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	if o.engine != nil && o.version != nil && *o.version == *version {
		return &RefreshOutput{Version: o.version}, nil
	}

	if err := o.rebuild(ctx, version); err != nil {
		return nil, err
	}
	return &RefreshOutput{Version: version, Updated: true}, nil
}

func (o *orchestrator) WatchUpdates(ctx context.Context, input *WatchUpdatesInput) error {
	interval := o.updateInterval
	if input != nil && input.Interval > 0 {
		interval = max(input.Interval, MinUpdateInterval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	o.log.Info("watching for data updates", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			out, err := o.Refresh(ctx, &RefreshInput{})
			if err != nil {
				o.log.Error("refresh failed", "error", err)
				continue
			}
			if out.Updated {
				o.log.Info("tables refreshed", "version", out.Version.Game)
			}
		}
	}
}

// loadStored builds the engine from repository data when the stored stamp
// matches the server version. Returns false when a rebuild is needed.
func (o *orchestrator) loadStored(ctx context.Context, version *swgoh.DataVersion) (bool, error) {
	stamp, err := o.repo.Version(ctx, tables.VersionInput{})
	if errors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stamp.Version == nil || *stamp.Version != *version {
		return false, nil
	}

	stored, err := o.repo.LoadTables(ctx, tables.LoadTablesInput{})
	if errors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	names := make(map[string]*localization.Names, len(o.languages))
	for _, lang := range o.languages {
		out, err := o.repo.LoadNames(ctx, tables.LoadNamesInput{Language: lang})
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return false, err
		}
		names[lang] = out.Names
	}

	return true, o.install(stored.Tables, localization.NewIndexFromNames(names), version)
}

// rebuild fetches the raw export, normalizes it, persists the result and
// swaps in a fresh engine.
func (o *orchestrator) rebuild(ctx context.Context, version *swgoh.DataVersion) error {
	started := time.Now()

	raw, err := o.comlink.GetGameData(ctx, version.Game, o.includePveUnits)
	if err != nil {
		return err
	}
	built, err := databuilder.Build(raw)
	if err != nil {
		return err
	}
	built.Version = *version

	if _, err := o.repo.SaveTables(ctx, tables.SaveTablesInput{Tables: built}); err != nil {
		return err
	}

	bundle, err := o.comlink.GetLocalizationBundle(ctx, version.Localization)
	if err != nil {
		return err
	}
	names := make(map[string]*localization.Names, len(o.languages))
	for _, lang := range o.languages {
		content, ok := bundle[lang]
		if !ok {
			o.log.Warn("bundle is missing language", "language", lang)
			continue
		}
		parsed := localization.Parse(content)
		if _, err := o.repo.SaveNames(ctx, tables.SaveNamesInput{Language: lang, Names: parsed}); err != nil {
			return err
		}
		names[lang] = parsed
	}

	if err := o.install(built, localization.NewIndexFromNames(names), version); err != nil {
		return err
	}
	o.log.Info("tables rebuilt",
		"version", version.Game,
		"languages", len(names),
		"duration", time.Since(started).String())
	return nil
}

// install swaps the active engine. Callers hold the write lock.
func (o *orchestrator) install(t *swgoh.Tables, names *localization.Index, version *swgoh.DataVersion) error {
	eng, err := engine.New(&engine.Config{
		Tables: t,
		Names:  names,
		Logger: o.log,
	})
	if err != nil {
		return err
	}
	o.engine = eng
	o.version = version
	return nil
}

// activeEngine returns the prepared engine for a calculation call.
func (o *orchestrator) activeEngine() (engine.Engine, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.engine == nil {
		return nil, errors.FailedPrecondition("engine not initialized")
	}
	return o.engine, nil
}

func (o *orchestrator) Version(ctx context.Context, input *VersionInput) (*VersionOutput, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.version == nil {
		return nil, errors.FailedPrecondition("engine not initialized")
	}
	return &VersionOutput{Version: o.version}, nil
}

func (o *orchestrator) Languages(ctx context.Context, input *LanguagesInput) (*LanguagesOutput, error) {
	eng, err := o.activeEngine()
	if err != nil {
		return nil, err
	}
	return &LanguagesOutput{Languages: eng.Languages()}, nil
}

func (o *orchestrator) CalcCharStats(ctx context.Context, input *engine.CalcCharStatsInput) (*engine.CalcCharStatsOutput, error) {
	eng, err := o.activeEngine()
	if err != nil {
		return nil, err
	}
	return eng.CalcCharStats(ctx, input)
}

func (o *orchestrator) CalcShipStats(ctx context.Context, input *engine.CalcShipStatsInput) (*engine.CalcShipStatsOutput, error) {
	eng, err := o.activeEngine()
	if err != nil {
		return nil, err
	}
	return eng.CalcShipStats(ctx, input)
}

func (o *orchestrator) CalcRosterStats(ctx context.Context, input *engine.CalcRosterStatsInput) (*engine.CalcRosterStatsOutput, error) {
	eng, err := o.activeEngine()
	if err != nil {
		return nil, err
	}
	return eng.CalcRosterStats(ctx, input)
}

func (o *orchestrator) CalcPlayerStats(ctx context.Context, input *engine.CalcPlayerStatsInput) (*engine.CalcPlayerStatsOutput, error) {
	eng, err := o.activeEngine()
	if err != nil {
		return nil, err
	}
	return eng.CalcPlayerStats(ctx, input)
}
