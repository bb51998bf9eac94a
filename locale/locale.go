// Package locale provides BCP 47 locale identifiers, calendar
// conventions, and locale-aware date formatting for the parser bundles.
//
// Tags are always normalized to canonical lang[-Script][-REGION] casing
// before comparison. Malformed tags are the only construction-time
// error in the whole module; parse-time failure everywhere else is
// modeled as data.
package locale

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize parses tag and returns its canonical string form
// ("PT-br" → "pt-BR"). Malformed tags return a wrapped error.
func Normalize(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", errors.Wrapf(err, "locale: invalid tag %q", tag)
	}
	return t.String(), nil
}

// MustNormalize is Normalize for statically known tags; it panics on
// malformed input.
func MustNormalize(tag string) string {
	s, err := Normalize(tag)
	if err != nil {
		panic(err)
	}
	return s
}

// Compatible reports whether candidate can serve requests for target:
// the languages must match, and any script or region specified by
// target must be present and equal in candidate. A bare "pt" target is
// served by "pt-BR"; a "pt-BR" target is not served by bare "pt".
func Compatible(target, candidate string) bool {
	tt, err := language.Parse(target)
	if err != nil {
		return false
	}
	ct, err := language.Parse(candidate)
	if err != nil {
		return false
	}
	tb, ts, tr := tt.Raw()
	cb, cs, cr := ct.Raw()
	if tb != cb {
		return false
	}
	if ts.String() != "Zzzz" && ts != cs {
		return false
	}
	if tr.String() != "ZZ" && tr != cr {
		return false
	}
	return true
}

// Language returns the base language subtag of a (possibly unnormalized)
// tag, or "" for malformed input.
func Language(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, _ := t.Base()
	return base.String()
}

// sundayStart lists locales whose week starts on Sunday. Everything
// else defaults to Monday (the ISO convention).
var sundayStart = map[string]bool{
	"en":    true,
	"en-US": true,
	"en-CA": true,
	"pt-BR": true,
}

// WeekStart returns the first day of the week for tag. Unknown or
// malformed tags get the ISO default, Monday.
func WeekStart(tag string) time.Weekday {
	norm, err := Normalize(tag)
	if err != nil {
		return time.Monday
	}
	if sundayStart[norm] {
		return time.Sunday
	}
	if sundayStart[Language(norm)] {
		return time.Sunday
	}
	return time.Monday
}

// DisplayName returns the self-name of the locale ("Deutsch" for "de"),
// falling back to the English name, then to the tag itself.
func DisplayName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.Self.Name(t); name != "" {
		return name
	}
	if name := display.English.Tags().Name(t); name != "" {
		return name
	}
	return tag
}
