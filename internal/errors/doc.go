// Package errors provides structured error handling for the stat engine.
//
// It extends Go's standard error handling with error codes, metadata, and
// wrapping helpers so that callers can react to the kind of failure rather
// than substring-matching messages.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("unit not found")
//	err := errors.InvalidArgumentf("invalid rarity: %d", rarity)
//
// Adding metadata:
//
//	err := errors.NotFound("unit not found").
//	    WithMeta("def_id", defID).
//	    WithMeta("version", version)
//
// Wrapping errors:
//
//	if err := store.Load(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load game data tables")
//	}
//
// Changing error semantics:
//
//	if err := src.GetGameData(ctx, version); err != nil {
//	    if isTimeout(err) {
//	        return errors.WrapWithCode(err, errors.CodeUnavailable, "game data source unreachable")
//	    }
//	    return errors.Wrap(err, "game data fetch failed")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("rarity", values.Rarity, 1, 7, vb)
//	errors.ValidateRange("level", values.Level, 1, 90, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant keys and versions in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions (data initialized) and return FailedPrecondition errors
//   - Wrap client and repository errors with pipeline context
//
// CLI layer:
//   - Extract user-friendly messages
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Unit, table, or key not found
//   - InvalidArgument: Invalid option or value provided
//   - AlreadyExists: Resource already exists
//   - Internal: Unexpected failure inside the engine
//   - Unavailable: Data source or store temporarily unavailable
//   - FailedPrecondition: Operation called before game data was initialized
//   - OutOfRange: Value out of valid range
//   - DataLoss: Game data failed to parse into usable tables
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
