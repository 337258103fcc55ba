package engine

import (
	"math"
	"strconv"

	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// floorTo truncates value toward zero keeping digits of fixed-point
// precision, e.g. floorTo(v, 8) works on hundred-millionths of a point.
func floorTo(value float64, digits int) float64 {
	precision := math.Pow(10, float64(digits))
	return math.Floor(value/precision) * precision
}

// percentFormula converts an unscaled flat rating into its percentage form.
// scale restores the output to the caller's numeric range.
type percentFormula func(value float64) float64

func defenseFormula(scale float64, level int, isShip bool) percentFormula {
	levelEffect := float64(level) * 7.5
	if isShip {
		levelEffect = 300 + float64(level)*5
	}
	return func(value float64) float64 {
		v := value / scale
		return v / (levelEffect + v) * scale
	}
}

func critChanceFormula(scale float64) percentFormula {
	return func(value float64) float64 {
		return (value/scale/2400 + 0.1) * scale
	}
}

func accuracyFormula(scale float64) percentFormula {
	return func(value float64) float64 {
		return value / scale / 1200 * scale
	}
}

func critAvoidanceFormula(scale float64) percentFormula {
	return func(value float64) float64 {
		return value / scale / 2400 * scale
	}
}

// formatStats rescales the buckets, converts flat ratings to percentages,
// and collapses everything into the final view when gameStyle is requested.
func formatStats(b *statBuckets, level int, opts *StatOptions) {
	scale := opts.scale()

	// Mod sums carry float noise from repeated addition; settle them
	// before scaling.
	for statID, value := range b.mods {
		b.mods[statID] = math.Round(value*1e6) / 1e6
	}

	if scale != 1 {
		for _, bucket := range []map[int]float64{b.base, b.gear, b.crew, b.growth, b.mods} {
			for statID := range bucket {
				bucket[statID] *= scale
			}
		}
	}

	if opts.PercentVals || opts.GameStyle {
		// The formulas operate on unscaled values, so they are handed the
		// factor that undoes the output scaling.
		s := scale * 1e8
		cc := critChanceFormula(s)
		def := defenseFormula(s, level, b.isShip())
		acc := accuracyFormula(s)
		ca := critAvoidanceFormula(s)

		convertPercent(b, swgoh.StatPhysicalCrit, cc)
		convertPercent(b, swgoh.StatSpecialCrit, cc)
		convertPercent(b, swgoh.StatArmor, def)
		convertPercent(b, swgoh.StatResistance, def)
		convertPercent(b, swgoh.StatPhysicalAccuracy, acc)
		convertPercent(b, swgoh.StatSpecialAccuracy, acc)
		convertPercent(b, swgoh.StatDodge, acc)
		convertPercent(b, swgoh.StatDeflection, acc)
		convertPercent(b, swgoh.StatPhysCritAvoid, ca)
		convertPercent(b, swgoh.StatSpecCritAvoid, ca)
	}

	if opts.GameStyle {
		collapseGameStyle(b)
	}
}

// convertPercent converts one stat across all layers so that the converted
// deltas still sum to the conversion of the flat total.
func convertPercent(b *statBuckets, statID int, convert percentFormula) {
	flat := b.base[statID]
	last := convert(flat)
	b.base[statID] = last

	if b.isShip() {
		if crew, ok := b.crew[statID]; ok && crew != 0 {
			flat += crew
			b.crew[statID] = convert(flat) - last
		}
		return
	}
	if gear, ok := b.gear[statID]; ok && gear != 0 {
		flat += gear
		percent := convert(flat)
		b.gear[statID] = percent - last
		last = percent
	}
	if mod, ok := b.mods[statID]; ok && mod != 0 {
		flat += mod
		b.mods[statID] = convert(flat) - last
	}
}

// collapseGameStyle folds base plus gear plus mods (base plus crew for
// ships) into the final bucket, mapping percent-pair ids onto the converted
// flat stat the game actually displays. The mod and crew layers survive
// untouched for callers that still want the breakdown.
func collapseGameStyle(b *statBuckets) {
	b.final = make(map[int]float64)

	if b.isShip() {
		for statID := range b.base {
			b.final[statID] = b.base[statID] + b.crew[statID]
		}
		for statID := range b.crew {
			b.final[statID] = b.base[statID] + b.crew[statID]
		}
		b.base, b.gear, b.growth = nil, nil, nil
		return
	}

	union := make(map[int]struct{})
	for statID := range b.base {
		union[statID] = struct{}{}
	}
	for statID := range b.gear {
		union[statID] = struct{}{}
	}
	for statID := range b.mods {
		union[statID] = struct{}{}
	}
	for statID := range union {
		displayID := statID
		switch statID {
		case swgoh.StatPhysCritPct, swgoh.StatSpecCritPct:
			displayID = statID - 7
		case swgoh.StatPhysCritAvoidPct, swgoh.StatSpecCritAvoidPct:
			displayID = statID + 4
		}
		b.final[displayID] += b.base[statID] + b.gear[statID] + b.mods[statID]
	}
	b.base, b.gear, b.growth = nil, nil, nil
}

// renameStats renders the buckets into output maps keyed per the naming
// options.
func (e *statEngine) renameStats(b *statBuckets, opts *StatOptions) *swgoh.UnitStats {
	key := e.statKeyFunc(opts)
	out := &swgoh.UnitStats{
		Base:            renameBucket(b.base, key),
		Gear:            renameBucket(b.gear, key),
		Mods:            renameBucket(b.mods, key),
		Crew:            renameBucket(b.crew, key),
		GrowthModifiers: renameBucket(b.growth, key),
		Final:           renameBucket(b.final, key),
	}
	return out
}

func (e *statEngine) statKeyFunc(opts *StatOptions) func(int) string {
	if opts.StatIDs {
		return strconv.Itoa
	}
	if opts.EnumNames {
		return func(statID int) string {
			if name, ok := swgoh.StatEnumNames[statID]; ok {
				return name
			}
			return strconv.Itoa(statID)
		}
	}
	names := e.names.ForLanguage(opts.Language)
	return func(statID int) string {
		name := ""
		if names != nil {
			name = names.StatNames[statID]
		}
		if name == "" {
			return strconv.Itoa(statID)
		}
		if opts.NoSpace {
			name = noSpaceName(name)
		}
		return name
	}
}

func noSpaceName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r != ' ' {
			out = append(out, r)
		}
	}
	if len(out) > 0 && out[0] >= 'A' && out[0] <= 'Z' {
		out[0] += 'a' - 'A'
	}
	return string(out)
}

func renameBucket(bucket map[int]float64, key func(int) string) map[string]float64 {
	if bucket == nil {
		return nil
	}
	out := make(map[string]float64, len(bucket))
	for statID, value := range bucket {
		out[key(statID)] = value
	}
	return out
}
