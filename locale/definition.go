package locale

import (
	"time"

	"github.com/dlclark/regexp2"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
)

// Definition is the complete bundle describing one language: its
// canonical tag, the configured grammar (base rules + ISO patches +
// locale rules), the week convention, and the anchor phrases that need
// two-pass resolution. Languages are data-plus-function bundles; there
// is no parser subclassing.
type Definition struct {
	// Tag is the canonical locale tag the bundle was authored for.
	Tag string

	// Config is the fully assembled rule list and refiner chain.
	Config *grammar.Config

	// WeekStart is the first day of week used by of-next-week and
	// of-previous-week resolutions.
	WeekStart time.Weekday

	// Anchors are coarse relative phrases ("next month", "last day of
	// March") the grammar alone cannot resolve: the phrase is resolved
	// to an anchor date first, and the full text is re-parsed against
	// that anchor.
	Anchors []Anchor
}

// Anchor is one two-pass phrase category: Pattern detects the phrase,
// Resolve derives the anchor date from the reference.
type Anchor struct {
	Name    string
	Pattern *regexp2.Regexp
	Resolve func(ref time.Time, m *regexp2.Match) time.Time
}

// FindAnchor returns the anchor date for text, if any anchor phrase
// matches.
func (d *Definition) FindAnchor(text string, ref time.Time) (time.Time, bool) {
	t, _, _, ok := d.FindAnchorSpan(text, ref)
	return t, ok
}

// FindAnchorSpan is FindAnchor with the byte span [from, to) of the
// matched phrase, so callers can tell a standalone anchor from one
// embedded in a larger expression the grammar resolves on its own
// ("mardi de la semaine prochaine" must not be anchored twice).
func (d *Definition) FindAnchorSpan(text string, ref time.Time) (t time.Time, from, to int, ok bool) {
	for _, a := range d.Anchors {
		m, err := a.Pattern.FindStringMatch(text)
		if err != nil || m == nil {
			continue
		}
		// regexp2 reports rune offsets.
		from = byteOffset(text, m.Index)
		to = byteOffset(text, m.Index+m.Length)
		return a.Resolve(ref, m), from, to, true
	}
	return time.Time{}, 0, 0, false
}

// byteOffset converts a rune index into a byte offset within s.
func byteOffset(s string, runeIdx int) int {
	i := 0
	for pos := range s {
		if i == runeIdx {
			return pos
		}
		i++
	}
	return len(s)
}

// Anchor date helpers shared by the language packages.

// StartOfWeek returns midnight of the first day of the week containing
// ref, offset by the given number of weeks.
func StartOfWeek(ref time.Time, weekStart time.Weekday, weeks int) time.Time {
	back := (int(ref.Weekday()) - int(weekStart) + 7) % 7
	t := ref.AddDate(0, 0, -back+7*weeks)
	return Midnight(t)
}

// StartOfMonth returns the first day of ref's month, offset by months.
func StartOfMonth(ref time.Time, months int) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, months, 0)
}

// EndOfMonth returns the last day of ref's month, offset by months.
func EndOfMonth(ref time.Time, months int) time.Time {
	return StartOfMonth(ref, months+1).AddDate(0, 0, -1)
}

// StartOfYear returns January 1st of ref's year, offset by years.
func StartOfYear(ref time.Time, years int) time.Time {
	return time.Date(ref.Year()+years, time.January, 1, 0, 0, 0, 0, ref.Location())
}

// MidOfMonth returns the 15th of ref's month, offset by months.
func MidOfMonth(ref time.Time, months int) time.Time {
	return StartOfMonth(ref, months).AddDate(0, 0, 14)
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
