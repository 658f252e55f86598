package localization

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocales are the upstream language names tried when the caller gives none
var DefaultLocales = []string{"zh-Hans", "zh-Hant"}

// LocalizedName is one entry of an upstream names array
type LocalizedName struct {
	Locale string
	Value  string
}

// Named is any upstream resource carrying a canonical name and a names array
type Named interface {
	CanonicalName() string
	LocalizedNames() []LocalizedName
}

// ResolveName returns the best locale variant of r's name, or its canonical
// name when no entry matches. It never fails.
func ResolveName(r Named, preferred []string) string {
	names := r.LocalizedNames()
	if n, ok := Pick(names, func(n LocalizedName) string { return n.Locale }, preferred); ok && n.Value != "" {
		return n.Value
	}
	return r.CanonicalName()
}

// Pick scans entries once and returns the one whose locale ranks highest in
// preferred. An entry matching preferred[0] ends the scan early.
func Pick[T any](entries []T, locale func(T) string, preferred []string) (T, bool) {
	var best T
	if len(preferred) == 0 {
		return best, false
	}

	ranks := make(map[string]int, len(preferred))
	for i, p := range preferred {
		key := localeKey(p)
		if _, seen := ranks[key]; !seen {
			ranks[key] = i
		}
	}

	bestRank := len(preferred)
	found := false
	for _, entry := range entries {
		rank, ok := ranks[localeKey(locale(entry))]
		if !ok || rank >= bestRank {
			continue
		}
		best, bestRank, found = entry, rank, true
		if rank == 0 {
			break
		}
	}
	return best, found
}

// localeKey canonicalizes BCP 47 names ("zh-hans" and "zh-Hans" agree) and
// lower-cases anything that does not parse, such as "roomaji".
func localeKey(locale string) string {
	if tag, err := language.Parse(locale); err == nil {
		return tag.String()
	}
	return strings.ToLower(locale)
}

// Humanize turns an upstream slug like "mr-mime" into "Mr Mime" for display
// when no localized name is available.
func Humanize(slug string) string {
	// Casers keep state, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
