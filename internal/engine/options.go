package engine

import (
	"strings"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// StatOptions controls the shape of calculation output. The zero value
// produces flat unconverted stats keyed by localized English names.
type StatOptions struct {
	// WithoutModCalc skips mod bonus calculation even when mods are present.
	WithoutModCalc bool

	// PercentVals converts flat rating stats (crit, defense, accuracy,
	// evasion, crit avoidance) into their percentage form.
	PercentVals bool

	// GameStyle collapses base, gear and mod values into a single final
	// view matching the in-game character sheet. Implies PercentVals.
	GameStyle bool

	// Scaled emits values scaled by 1e-4; Unscaled emits the raw
	// fixed-point values. At most one may be set; neither means the
	// conventional 1e-8 scaling to displayed units.
	Scaled   bool
	Unscaled bool

	// CalcGP attaches Galactic Power alongside stats; OnlyGP computes
	// Galactic Power alone and skips the stat pipeline entirely.
	CalcGP bool
	OnlyGP bool

	// StatIDs keeps numeric stat ids as output keys. EnumNames uses the
	// game's enum spellings instead of localized names. NoSpace strips
	// spaces from localized names and lowercases the first letter.
	StatIDs   bool
	EnumNames bool
	NoSpace   bool

	// Language selects the localization used for stat names. Defaults to
	// eng_us; unsupported languages are rejected.
	Language string
}

// Validate checks for conflicting flags and fills the language default.
func (o *StatOptions) Validate() error {
	if o.Scaled && o.Unscaled {
		return errors.InvalidArgument("scaled and unscaled options are mutually exclusive")
	}
	if o.StatIDs && o.EnumNames {
		return errors.InvalidArgument("statIDs and enumNames options are mutually exclusive")
	}
	if o.Language == "" {
		o.Language = swgoh.DefaultLanguage
	}
	o.Language = strings.ToLower(o.Language)
	if !swgoh.SupportedLanguage(o.Language) {
		return errors.InvalidArgumentf("unsupported language: %s", o.Language)
	}
	return nil
}

// scale returns the output multiplier selected by the scaling flags.
func (o *StatOptions) scale() float64 {
	switch {
	case o.Unscaled:
		return 1
	case o.Scaled:
		return 1e-4
	default:
		return 1e-8
	}
}
