package tables

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/localization"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

const (
	gameSubdir      = "game"
	languagesSubdir = "languages"
	unitsSubdir     = "units"

	versionFile      = "dataVersion.json"
	unitNameSuffix   = "_unit_name_keys.json"
	errLanguageEmpty = "language cannot be empty"
	errTablesNil     = "tables cannot be nil"
	errNamesNil      = "names cannot be nil"
)

// gameDataFiles maps each table-file stem under game/ to an accessor pair.
var gameDataFiles = []string{"unitData", "gearData", "modSetData", "crTables", "gpTables", "relicData"}

// FileConfig contains configuration options for the file-backed repository.
type FileConfig struct {
	// DataDir is the root of the on-disk layout (optional, defaults to ./data)
	DataDir string
}

// Validate validates the FileConfig and sets defaults if not provided.
func (cfg *FileConfig) Validate() error {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return nil
}

type fileRepository struct {
	dataDir string
}

// NewFileRepository creates a file-backed repository storing JSON files
// under DataDir in game/, languages/ and units/ sub-folders.
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{dataDir: cfg.DataDir}, nil
}

var _ Repository = (*fileRepository)(nil)

func (r *fileRepository) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func (r *fileRepository) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("%s does not exist", path)
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}
	return nil
}

// tableSections returns the per-file views into a Tables value, keyed by
// file stem.
func tableSections(t *swgoh.Tables) map[string]any {
	return map[string]any{
		"unitData":   &t.Units,
		"gearData":   &t.Gear,
		"modSetData": &t.ModSets,
		"crTables":   &t.CR,
		"gpTables":   &t.GP,
		"relicData":  &t.Relics,
	}
}

func (r *fileRepository) SaveTables(_ context.Context, input SaveTablesInput) (*SaveTablesOutput, error) {
	if input.Tables == nil {
		return nil, errors.InvalidArgument(errTablesNil)
	}

	sections := tableSections(input.Tables)
	for _, stem := range gameDataFiles {
		path := filepath.Join(r.dataDir, gameSubdir, stem+".json")
		if err := r.writeJSON(path, sections[stem]); err != nil {
			return nil, err
		}
	}
	if err := r.writeJSON(filepath.Join(r.dataDir, versionFile), input.Tables.Version); err != nil {
		return nil, err
	}
	return &SaveTablesOutput{}, nil
}

func (r *fileRepository) LoadTables(_ context.Context, _ LoadTablesInput) (*LoadTablesOutput, error) {
	tables := &swgoh.Tables{}
	sections := tableSections(tables)
	for _, stem := range gameDataFiles {
		path := filepath.Join(r.dataDir, gameSubdir, stem+".json")
		if err := r.readJSON(path, sections[stem]); err != nil {
			return nil, err
		}
	}
	if err := r.readJSON(filepath.Join(r.dataDir, versionFile), &tables.Version); err != nil {
		return nil, err
	}
	return &LoadTablesOutput{Tables: tables}, nil
}

func (r *fileRepository) SaveNames(_ context.Context, input SaveNamesInput) (*SaveNamesOutput, error) {
	if input.Language == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}
	if input.Names == nil {
		return nil, errors.InvalidArgument(errNamesNil)
	}

	lang := normalizeLang(input.Language)
	statPath := filepath.Join(r.dataDir, languagesSubdir, lang+".json")
	if err := r.writeJSON(statPath, input.Names.StatNames); err != nil {
		return nil, err
	}
	unitPath := filepath.Join(r.dataDir, unitsSubdir, lang+unitNameSuffix)
	if err := r.writeJSON(unitPath, input.Names.UnitNames); err != nil {
		return nil, err
	}
	return &SaveNamesOutput{}, nil
}

func (r *fileRepository) LoadNames(_ context.Context, input LoadNamesInput) (*LoadNamesOutput, error) {
	if input.Language == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}

	lang := normalizeLang(input.Language)
	names := &localization.Names{}
	statPath := filepath.Join(r.dataDir, languagesSubdir, lang+".json")
	if err := r.readJSON(statPath, &names.StatNames); err != nil {
		return nil, err
	}
	unitPath := filepath.Join(r.dataDir, unitsSubdir, lang+unitNameSuffix)
	if err := r.readJSON(unitPath, &names.UnitNames); err != nil {
		return nil, err
	}
	return &LoadNamesOutput{Names: names}, nil
}

func (r *fileRepository) Version(_ context.Context, _ VersionInput) (*VersionOutput, error) {
	var version swgoh.DataVersion
	if err := r.readJSON(filepath.Join(r.dataDir, versionFile), &version); err != nil {
		return nil, err
	}
	return &VersionOutput{Version: &version}, nil
}
