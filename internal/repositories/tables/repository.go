// Package tables defines the interface for persisting the normalized game
// data tables and per-language name maps between runs.
package tables

//go:generate mockgen -destination=mock/mock_repository.go -package=tablesmock github.com/swgoh-tools/statcalc/internal/repositories/tables Repository

import (
	"context"
	"strings"

	"github.com/swgoh-tools/statcalc/internal/localization"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// normalizeLang lowercases a language code; stored keys and file names are
// always lowercase.
func normalizeLang(lang string) string {
	return strings.ToLower(lang)
}

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveTables stores the normalized tables and their version stamp
	// Returns errors.InvalidArgument when the tables are nil
	// Returns errors.Internal for storage failures
	SaveTables(ctx context.Context, input SaveTablesInput) (*SaveTablesOutput, error)

	// LoadTables retrieves the stored tables
	// Returns errors.NotFound when no tables have been stored
	// Returns errors.Internal for storage failures
	LoadTables(ctx context.Context, input LoadTablesInput) (*LoadTablesOutput, error)

	// SaveNames stores the stat and unit name maps of one language
	// Returns errors.InvalidArgument for an empty language or nil names
	// Returns errors.Internal for storage failures
	SaveNames(ctx context.Context, input SaveNamesInput) (*SaveNamesOutput, error)

	// LoadNames retrieves the name maps of one language
	// Returns errors.InvalidArgument for an empty language
	// Returns errors.NotFound when the language has not been stored
	// Returns errors.Internal for storage failures
	LoadNames(ctx context.Context, input LoadNamesInput) (*LoadNamesOutput, error)

	// Version reads the stored version stamp without loading the tables
	// Returns errors.NotFound when no stamp exists
	Version(ctx context.Context, input VersionInput) (*VersionOutput, error)
}

// SaveTablesInput defines the input for storing tables
type SaveTablesInput struct {
	Tables *swgoh.Tables
}

// SaveTablesOutput defines the output for storing tables
type SaveTablesOutput struct{}

// LoadTablesInput defines the input for loading tables
type LoadTablesInput struct{}

// LoadTablesOutput defines the output for loading tables
type LoadTablesOutput struct {
	Tables *swgoh.Tables
}

// SaveNamesInput defines the input for storing one language's names
type SaveNamesInput struct {
	Language string
	Names    *localization.Names
}

// SaveNamesOutput defines the output for storing one language's names
type SaveNamesOutput struct{}

// LoadNamesInput defines the input for loading one language's names
type LoadNamesInput struct {
	Language string
}

// LoadNamesOutput defines the output for loading one language's names
type LoadNamesOutput struct {
	Names *localization.Names
}

// VersionInput defines the input for reading the version stamp
type VersionInput struct{}

// VersionOutput defines the output for reading the version stamp
type VersionOutput struct {
	Version *swgoh.DataVersion
}
