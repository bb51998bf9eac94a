// Package langkit holds the rule builders shared by the language
// bundles. Each language is data plus a handful of patterns; the
// extraction logic for weekday phrases, ordinal dates, numbered weeks,
// holidays, era years, and quantity offsets lives here once,
// parameterized by the language's dictionaries.
package langkit

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/language"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
	"github.com/olivr70/nldates-obsidian-sub000/match"
	"github.com/olivr70/nldates-obsidian-sub000/weekdate"
)

// Names bundles the lookup tables and pre-built patterns every rule
// builder needs. The dictionaries merge long, short, and narrow forms
// for lookup; the Alt patterns are built from long and short surface
// forms only, since single-letter narrow forms would claim arbitrary
// letters in running text.
type Names struct {
	Tag       language.Tag
	Lang      string // base language subtag
	Weekdays  *match.Dict
	Months    *match.Dict
	Ordinals  *match.Dict
	WeekStart time.Weekday

	WeekdayAlt string // capturing alternation over weekday names
	MonthAlt   string // capturing alternation over month names
}

// MustCompile compiles a rule pattern case-insensitively.
func MustCompile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.IgnoreCase)
}

// Alternation renders all keys of d (surface and folded variants) as a
// capturing alternation group.
func Alternation(d *match.Dict) string {
	return match.AnyPattern(d.Keys(), match.PatternOptions{Capture: true})
}

// CaptureAlt builds a capturing trie alternation over the given name
// lists plus their folded variants, so diacritic variants of the same
// letter collapse into one character class.
func CaptureAlt(tag language.Tag, lists ...[]string) string {
	var items []string
	for _, list := range lists {
		for _, it := range list {
			if it == "" {
				continue
			}
			items = append(items, it, match.Fold(tag, it))
		}
	}
	return match.TriePattern(tag, items, match.PatternOptions{Capture: true})
}

// notFound is the lookup default treated as a veto.
const notFound = -1

// LookupWeekday resolves captured weekday text to a Sunday=0 index.
func (n *Names) LookupWeekday(s string) (int, bool) {
	v := n.Weekdays.FindPartial(strings.TrimSpace(s), notFound)
	if v < 0 || v > 6 {
		return 0, false
	}
	return v, true
}

// LookupMonth resolves captured month text to a 1-based month.
func (n *Names) LookupMonth(s string) (int, bool) {
	v := n.Months.FindPartial(strings.TrimSpace(s), notFound)
	if v < 0 || v > 11 {
		return 0, false
	}
	return v + 1, true
}

// LookupDay resolves an ordinal word or a bare/suffixed number ("3.",
// "1er", "21st") to a day of month.
func (n *Names) LookupDay(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v := n.Ordinals.FindPartial(s, notFound); v >= 1 && v <= 31 {
		return v, true
	}
	digits := leadingDigits(s)
	if digits == "" {
		return 0, false
	}
	d, err := strconv.Atoi(digits)
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// RelativeDayRule builds a rule resolving "<relation> <weekday>" or
// "<weekday> <relation>" phrases. relations maps the relation token to
// a weekdate.Relation; relationFirst picks the word order, so languages
// with both prefix and suffix constructions register two rules with two
// distinct dictionaries.
func RelativeDayRule(name string, n *Names, relations *match.Dict, relationFirst bool) grammar.Rule {
	rel := Alternation(relations)
	wd := n.WeekdayAlt
	var pattern string
	if relationFirst {
		pattern = rel + `\s+` + wd
	} else {
		pattern = wd + `\s+` + rel
	}
	relGroup, wdGroup := 1, 2
	if !relationFirst {
		wdGroup, relGroup = 1, 2
	}
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(pattern)),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			weekday, ok := n.LookupWeekday(grammar.GroupString(m, wdGroup))
			if !ok {
				return c, false
			}
			relation := relations.FindPartial(grammar.GroupString(m, relGroup), notFound)
			if relation < 0 {
				return c, false
			}
			t, ok := weekdate.Resolve(weekday, weekdate.Relation(relation), ctx.Ref, n.WeekStart)
			if !ok {
				return c, false
			}
			setDate(&c, t)
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// BareWeekdayRule resolves a weekday name with no qualifier to its next
// occurrence (or the nearest under ForwardDate-free semantics: the
// upcoming one, including a same-week later day).
func BareWeekdayRule(name string, n *Names) grammar.Rule {
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(n.WeekdayAlt)),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			weekday, ok := n.LookupWeekday(grammar.GroupString(m, 1))
			if !ok {
				return c, false
			}
			t, ok := weekdate.Resolve(weekday, weekdate.OfCurrentWeek, ctx.Ref, n.WeekStart)
			if !ok {
				return c, false
			}
			// A bare weekday earlier in the current week means the
			// upcoming one.
			if t.Before(locDate(ctx.Ref)) {
				t = t.AddDate(0, 0, 7)
			}
			setDate(&c, t)
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// DayOfWeekNRule builds the "weekday of week N" rule. The pattern must
// capture, in order: the weekday name, the week token (a number or a
// relative-week word), and optionally an explicit year. relWeeks maps
// relative-week tokens to an offset from the current ISO week.
func DayOfWeekNRule(name string, n *Names, pattern string, relWeeks *match.Dict) grammar.Rule {
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(pattern)),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			weekday, ok := n.LookupWeekday(grammar.GroupString(m, 1))
			if !ok {
				return c, false
			}
			isoYear, isoWeek := weekdate.ISOWeek(ctx.Ref)
			week := 0
			token := strings.TrimSpace(grammar.GroupString(m, 2))
			if w, err := strconv.Atoi(token); err == nil {
				week = w
			} else if off := relWeeks.FindPartial(token, match.Ambiguous); off != match.Ambiguous {
				week = isoWeek + off
			} else {
				return c, false
			}
			if week < 1 || week > 53 {
				return c, false
			}
			year := isoYear
			if ys := grammar.GroupString(m, 3); ys != "" {
				year = atoi(ys)
			}
			t := weekdate.DateFromWeek(year, week, weekday)
			setDate(&c, t)
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// Holiday is a fixed-date holiday.
type Holiday struct {
	Month int // 1-based
	Day   int
}

// HolidayRule builds a rule for fixed-date holidays. The pattern must
// capture the holiday name and optionally an explicit year.
func HolidayRule(name string, n *Names, holidays map[string]Holiday, pattern string) grammar.Rule {
	dict := match.NewDict(n.Tag)
	values := make([]Holiday, 0, len(holidays))
	names := make([]string, 0, len(holidays))
	for hname := range holidays {
		names = append(names, hname)
	}
	// Deterministic value indices regardless of map order.
	sort.Strings(names)
	for i, hname := range names {
		dict.Put(hname, i)
		values = append(values, holidays[hname])
	}
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(pattern)),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			idx := dict.FindPartial(strings.TrimSpace(grammar.GroupString(m, 1)), notFound)
			if idx < 0 || idx >= len(values) {
				return c, false
			}
			h := values[idx]
			c.Set(grammar.FieldMonth, h.Month)
			c.Set(grammar.FieldDay, h.Day)
			if ys := grammar.GroupString(m, 2); ys != "" {
				c.Set(grammar.FieldYear, atoi(ys))
			} else {
				c.Imply(grammar.FieldYear, ctx.Ref.Year())
			}
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// EraYearRule builds a rule for "<number> <era marker>" years. eras
// maps each marker to a signed multiplier (CE +1, BCE −1).
func EraYearRule(name string, n *Names, eras *match.Dict) grammar.Rule {
	pattern := `(\d{1,6})\s*` + Alternation(eras)
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(pattern)),
		Extract: func(_ *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			mult := eras.FindPartial(strings.TrimSpace(grammar.GroupString(m, 2)), 0)
			if mult != 1 && mult != -1 {
				return c, false
			}
			year := atoi(grammar.GroupString(m, 1))
			if year == 0 {
				return c, false
			}
			c.Set(grammar.FieldYear, mult*year)
			c.Imply(grammar.FieldMonth, 1)
			c.Imply(grammar.FieldDay, 1)
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// Unit is a quantity-offset unit.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// QuantityRule builds a "<qty> <unit> <direction>" relative-offset rule
// ("3 Tage später") or its "<direction> <qty> <unit>" prefix form
// ("vor 2 Minuten"). units maps unit words to Unit; direction is +1
// (future) or −1 (past) and is fixed per rule, so languages register
// one rule per direction word.
func QuantityRule(name string, n *Names, pattern string, units *match.Dict, direction int) grammar.Rule {
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(pattern)),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			qty := atoi(grammar.GroupString(m, 1))
			if qty <= 0 {
				return c, false
			}
			unit := units.FindPartial(strings.TrimSpace(grammar.GroupString(m, 2)), notFound)
			if unit < 0 {
				return c, false
			}
			t := ApplyQuantity(ctx.Ref, qty*direction, Unit(unit))
			setDate(&c, t)
			switch Unit(unit) {
			case UnitSecond, UnitMinute, UnitHour:
				c.Set(grammar.FieldHour, t.Hour())
				c.Set(grammar.FieldMinute, t.Minute())
				c.Set(grammar.FieldSecond, t.Second())
			default:
				c.Imply(grammar.FieldHour, 12)
			}
			return c, true
		},
	}
}

// ApplyQuantity offsets ref by qty units; negative qty moves into the
// past.
func ApplyQuantity(ref time.Time, qty int, unit Unit) time.Time {
	switch unit {
	case UnitSecond:
		return ref.Add(time.Duration(qty) * time.Second)
	case UnitMinute:
		return ref.Add(time.Duration(qty) * time.Minute)
	case UnitHour:
		return ref.Add(time.Duration(qty) * time.Hour)
	case UnitDay:
		return ref.AddDate(0, 0, qty)
	case UnitWeek:
		return ref.AddDate(0, 0, 7*qty)
	case UnitMonth:
		return ref.AddDate(0, qty, 0)
	case UnitYear:
		return ref.AddDate(qty, 0, 0)
	default:
		return ref
	}
}

// DayOffsetRule builds a rule for fixed day-offset words (today,
// tomorrow, avant-hier).
func DayOffsetRule(name string, n *Names, offsets *match.Dict) grammar.Rule {
	return grammar.Rule{
		Name:    name,
		Pattern: MustCompile(wordBound(Alternation(offsets))),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			off := offsets.FindPartial(strings.TrimSpace(grammar.GroupString(m, 1)), match.Ambiguous)
			if off == match.Ambiguous {
				return c, false
			}
			setDate(&c, ctx.Ref.AddDate(0, 0, off))
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// OrdinalDateComponents resolves a "<day> <month> [year]" word triple.
// monthText may be empty (current month implied); yearText may be empty
// (current year implied).
func (n *Names) OrdinalDateComponents(ctx *grammar.Context, dayText, monthText, yearText string) (grammar.Components, bool) {
	var c grammar.Components
	day, ok := n.LookupDay(dayText)
	if !ok {
		return c, false
	}
	c.Set(grammar.FieldDay, day)
	if monthText != "" {
		month, ok := n.LookupMonth(monthText)
		if !ok {
			return c, false
		}
		c.Set(grammar.FieldMonth, month)
	} else {
		c.Imply(grammar.FieldMonth, int(ctx.Ref.Month()))
	}
	if yearText != "" {
		c.Set(grammar.FieldYear, atoi(yearText))
	} else {
		c.Imply(grammar.FieldYear, ctx.Ref.Year())
	}
	c.Imply(grammar.FieldHour, 12)
	return c, true
}

// wordBound wraps a pattern in Unicode-aware word boundary assertions.
func wordBound(pattern string) string {
	return match.Regexp2.WordStart + pattern + match.Regexp2.WordEnd
}

func setDate(c *grammar.Components, t time.Time) {
	c.Set(grammar.FieldYear, t.Year())
	c.Set(grammar.FieldMonth, int(t.Month()))
	c.Set(grammar.FieldDay, t.Day())
}

func locDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
