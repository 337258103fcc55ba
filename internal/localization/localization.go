// Package localization parses the pipe-delimited language files shipped in
// the game's localization bundle and indexes the names the calculator needs:
// localized stat names keyed by stat id and unit display names keyed by
// their UNIT_*_NAME keys.
package localization

import (
	"bufio"
	"bytes"
	"regexp"
	"sort"
	"strings"

	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

var (
	// Lines carry a [hex] revision prefix and sometimes a trailing
	// grammatical-context annotation like " (BASE)[-]". Both are noise.
	prePattern  = regexp.MustCompile(`^\[[0-9A-F]*?]`)
	postPattern = regexp.MustCompile(`\s+\(([A-Z]+)\)\[-]$`)
)

// Names holds the parsed name maps of one language.
type Names struct {
	// StatNames maps stat ids to their localized display names.
	StatNames map[int]string
	// UnitNames maps UNIT_*_NAME keys to localized unit names.
	UnitNames map[string]string
}

// Parse reads one language file. Comment lines and lines without a key|value
// separator are skipped; unrecognized keys are kept only in the unit-name
// map when they follow the UNIT_*_NAME convention.
func Parse(content []byte) *Names {
	names := &Names{
		StatNames: make(map[int]string),
		UnitNames: make(map[string]string),
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\n")
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "|")
		if !ok || key == "" || value == "" {
			continue
		}

		if statID := swgoh.StatIDForNameKey(key); statID != 0 {
			names.StatNames[statID] = cleanValue(value)
		}
		if strings.HasPrefix(key, "UNIT_") && strings.HasSuffix(key, "_NAME") {
			names.UnitNames[key] = cleanValue(value)
		}
	}
	return names
}

func cleanValue(value string) string {
	value = prePattern.ReplaceAllString(value, "")
	return postPattern.ReplaceAllString(value, "")
}

// Index holds the parsed names of every language in a bundle and answers
// lookups with a fallback to the default language.
type Index struct {
	languages map[string]*Names
}

// NewIndex parses a full bundle keyed by lowercase language code.
func NewIndex(files map[string][]byte) *Index {
	languages := make(map[string]*Names, len(files))
	for lang, content := range files {
		languages[strings.ToLower(lang)] = Parse(content)
	}
	return &Index{languages: languages}
}

// NewIndexFromNames wraps already-parsed name maps, as loaded from a
// repository.
func NewIndexFromNames(names map[string]*Names) *Index {
	languages := make(map[string]*Names, len(names))
	for lang, n := range names {
		languages[strings.ToLower(lang)] = n
	}
	return &Index{languages: languages}
}

// ForLanguage returns the names for a language code, falling back to the
// default language when the requested one is absent. Returns nil only when
// the fallback is missing too.
func (x *Index) ForLanguage(lang string) *Names {
	if names, ok := x.languages[strings.ToLower(lang)]; ok {
		return names
	}
	return x.languages[swgoh.DefaultLanguage]
}

// Languages lists the indexed language codes in sorted order.
func (x *Index) Languages() []string {
	langs := make([]string, 0, len(x.languages))
	for lang := range x.languages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
