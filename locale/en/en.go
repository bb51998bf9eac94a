// Package en is the English language bundle.
package en

import (
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/language"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
	"github.com/olivr70/nldates-obsidian-sub000/internal/langkit"
	"github.com/olivr70/nldates-obsidian-sub000/isopatch"
	"github.com/olivr70/nldates-obsidian-sub000/locale"
	"github.com/olivr70/nldates-obsidian-sub000/match"
	"github.com/olivr70/nldates-obsidian-sub000/weekdate"
)

var tag = language.English

// New builds the English definition. English weeks start on Sunday.
func New() *locale.Definition {
	n := names()
	cfg := grammar.Casual("en")
	isopatch.Register(cfg)

	cfg.AddRule(langkit.DayOffsetRule("en-day-offset", n, dayOffsets()))
	cfg.AddRule(dayOfWeekNRule(n))
	cfg.AddRule(ordinalDateRule(n))
	cfg.AddRule(monthOrdinalRule(n))
	cfg.AddRule(langkit.RelativeDayRule("en-weekday-prefix", n, prefixRelations(), true))
	cfg.AddRule(langkit.BareWeekdayRule("en-weekday", n))
	cfg.AddRule(holidayRule(n))
	cfg.AddRule(langkit.EraYearRule("en-era", n, eras()))
	cfg.AddRule(langkit.QuantityRule("en-ago", n, `(\d+)\s+`+unitAlt()+`\s+ago`, units(), -1))
	cfg.AddRule(langkit.QuantityRule("en-in", n, `in (\d+)\s+`+unitAlt(), units(), +1))

	return &locale.Definition{
		Tag:       "en",
		Config:    cfg,
		WeekStart: time.Sunday,
		Anchors:   anchors(n),
	}
}

func names() *langkit.Names {
	long := locale.MonthNames("en", locale.Long)
	short := locale.MonthNames("en", locale.Short)
	narrow := locale.MonthNames("en", locale.Narrow)
	wdLong := locale.WeekdayNames("en", locale.Long)
	wdShort := locale.WeekdayNames("en", locale.Short)
	wdNarrow := locale.WeekdayNames("en", locale.Narrow)

	return &langkit.Names{
		Tag:        tag,
		Lang:       "en",
		Weekdays:   match.FromArrays(tag, wdLong, wdShort, wdNarrow),
		Months:     match.FromArrays(tag, long, short, narrow),
		Ordinals:   ordinals(),
		WeekStart:  time.Sunday,
		WeekdayAlt: langkit.CaptureAlt(tag, wdLong, wdShort),
		MonthAlt:   langkit.CaptureAlt(tag, long, short),
	}
}

var ordinalWords = []string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth", "twenty-first", "twenty-second",
	"twenty-third", "twenty-fourth", "twenty-fifth", "twenty-sixth",
	"twenty-seventh", "twenty-eighth", "twenty-ninth", "thirtieth",
	"thirty-first",
}

func ordinals() *match.Dict {
	d := match.NewDict(tag)
	for i, word := range ordinalWords {
		d.Put(word, i+1)
		// "twenty first" alongside "twenty-first"
		if i >= 20 {
			d.Put(spaced(word), i+1)
		}
	}
	return d
}

func spaced(word string) string {
	out := []rune(word)
	for i, r := range out {
		if r == '-' {
			out[i] = ' '
		}
	}
	return string(out)
}

func prefixRelations() *match.Dict {
	d := match.NewDict(tag)
	for word, rel := range map[string]weekdate.Relation{
		"next":     weekdate.NextOccurring,
		"coming":   weekdate.NextOccurring,
		"this":     weekdate.OfCurrentWeek,
		"last":     weekdate.PreviousOccurring,
		"past":     weekdate.PreviousOccurring,
		"previous": weekdate.PreviousOccurring,
	} {
		d.Put(word, int(rel))
	}
	return d
}

func dayOffsets() *match.Dict {
	d := match.NewDict(tag)
	for word, off := range map[string]int{
		"today":                    0,
		"tomorrow":                 1,
		"the day after tomorrow":   2,
		"yesterday":                -1,
		"the day before yesterday": -2,
	} {
		d.Put(word, off)
	}
	return d
}

func units() *match.Dict {
	d := match.NewDict(tag)
	for word, u := range map[string]langkit.Unit{
		"second": langkit.UnitSecond, "seconds": langkit.UnitSecond,
		"minute": langkit.UnitMinute, "minutes": langkit.UnitMinute,
		"hour": langkit.UnitHour, "hours": langkit.UnitHour,
		"day": langkit.UnitDay, "days": langkit.UnitDay,
		"week": langkit.UnitWeek, "weeks": langkit.UnitWeek,
		"month": langkit.UnitMonth, "months": langkit.UnitMonth,
		"year": langkit.UnitYear, "years": langkit.UnitYear,
	} {
		d.Put(word, int(u))
	}
	return d
}

func unitAlt() string {
	return langkit.Alternation(units())
}

func eras() *match.Dict {
	d := match.NewDict(tag)
	for word, mult := range map[string]int{
		"BC": -1, "B.C.": -1, "BCE": -1, "B.C.E.": -1,
		"AD": 1, "A.D.": 1, "CE": 1, "C.E.": 1,
	} {
		d.Put(word, mult)
	}
	return d
}

// dayOfWeekNRule resolves "tuesday of week 4 [of 2024]" and the
// relative forms "of next/last week".
func dayOfWeekNRule(n *langkit.Names) grammar.Rule {
	relWeeks := match.NewDict(tag)
	relWeeks.Put("next", 1)
	relWeeks.Put("the following", 1)
	relWeeks.Put("last", -1)
	relWeeks.Put("the previous", -1)

	pattern := n.WeekdayAlt +
		`\s+of\s+(?:week\s+(\d{1,2})|` +
		langkit.Alternation(relWeeks) + `\s+week)` +
		`(?:\s+(?:of\s+)?(\d{4}))?`
	return grammar.Rule{
		Name:    "en-day-of-week-n",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + pattern + `(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			weekday, ok := n.LookupWeekday(grammar.GroupString(m, 1))
			if !ok {
				return c, false
			}
			isoYear, isoWeek := weekdate.ISOWeek(ctx.Ref)
			week := 0
			if num := grammar.GroupString(m, 2); num != "" {
				week = atoi(num)
			} else {
				off := relWeeks.FindPartial(grammar.GroupString(m, 3), match.Ambiguous)
				if off == match.Ambiguous {
					return c, false
				}
				week = isoWeek + off
			}
			if week < 1 || week > 53 {
				return c, false
			}
			year := isoYear
			if ys := grammar.GroupString(m, 4); ys != "" {
				year = atoi(ys)
			}
			t := weekdate.DateFromWeek(year, week, weekday)
			c.Set(grammar.FieldYear, t.Year())
			c.Set(grammar.FieldMonth, int(t.Month()))
			c.Set(grammar.FieldDay, t.Day())
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

// ordinalDateRule resolves "third of march", "3rd of march 2026".
func ordinalDateRule(n *langkit.Names) grammar.Rule {
	pattern := dayAlt() + `\s+(?:of\s+)?` + n.MonthAlt + `(?:\s+(\d{4}))?`
	return grammar.Rule{
		Name:    "en-ordinal-date",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + pattern + `(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			return n.OrdinalDateComponents(ctx,
				grammar.GroupString(m, 1), grammar.GroupString(m, 2), grammar.GroupString(m, 3))
		},
	}
}

// monthOrdinalRule resolves the month-first order "march 3rd [2026]",
// "january first".
func monthOrdinalRule(n *langkit.Names) grammar.Rule {
	pattern := n.MonthAlt + `\s+(?:the\s+)?` + dayAlt() + `(?:,?\s+(\d{4}))?`
	return grammar.Rule{
		Name:    "en-month-ordinal",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + pattern + `(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			return n.OrdinalDateComponents(ctx,
				grammar.GroupString(m, 2), grammar.GroupString(m, 1), grammar.GroupString(m, 3))
		},
	}
}

// dayAlt captures an ordinal word or a suffixed number ("3rd").
func dayAlt() string {
	return `(` + match.TriePattern(tag, ordinals().Keys(), match.PatternOptions{}) +
		`|\d{1,2}(?:st|nd|rd|th)?)`
}

func holidayRule(n *langkit.Names) grammar.Rule {
	holidays := map[string]langkit.Holiday{
		"christmas":      {Month: 12, Day: 25},
		"christmas eve":  {Month: 12, Day: 24},
		"new year":       {Month: 1, Day: 1},
		"new year's day": {Month: 1, Day: 1},
		"new year's eve": {Month: 12, Day: 31},
		"halloween":      {Month: 10, Day: 31},
	}
	names := make([]string, 0, len(holidays))
	for name := range holidays {
		names = append(names, name)
	}
	pattern := langkit.CaptureAlt(tag, names) + `(?:\s+(\d{4}))?`
	return langkit.HolidayRule("en-holiday", n, holidays, pattern)
}

func anchors(n *langkit.Names) []locale.Anchor {
	ws := n.WeekStart
	return []locale.Anchor{
		{
			Name:    "en-this-week",
			Pattern: langkit.MustCompile(`this\s+week`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 0) },
		},
		{
			Name:    "en-next-week",
			Pattern: langkit.MustCompile(`next\s+week`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 1) },
		},
		{
			Name:    "en-last-week",
			Pattern: langkit.MustCompile(`last\s+week`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, -1) },
		},
		{
			Name:    "en-next-month",
			Pattern: langkit.MustCompile(`next\s+month`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, 1) },
		},
		{
			Name:    "en-last-month",
			Pattern: langkit.MustCompile(`last\s+month`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, -1) },
		},
		{
			Name:    "en-next-year",
			Pattern: langkit.MustCompile(`next\s+year`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, 1) },
		},
		{
			Name:    "en-last-year",
			Pattern: langkit.MustCompile(`last\s+year`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, -1) },
		},
		{
			Name:    "en-last-day-of-month",
			Pattern: langkit.MustCompile(`last\s+day\s+of\s+` + n.MonthAlt),
			Resolve: func(ref time.Time, m *regexp2.Match) time.Time {
				return monthAnchor(n, ref, grammar.GroupString(m, 1), locale.EndOfMonth)
			},
		},
		{
			Name:    "en-mid-month",
			Pattern: langkit.MustCompile(`mid[- ]` + n.MonthAlt),
			Resolve: func(ref time.Time, m *regexp2.Match) time.Time {
				return monthAnchor(n, ref, grammar.GroupString(m, 1), locale.MidOfMonth)
			},
		},
	}
}

func monthAnchor(n *langkit.Names, ref time.Time, monthText string, f func(time.Time, int) time.Time) time.Time {
	if month, ok := n.LookupMonth(monthText); ok {
		ref = time.Date(ref.Year(), time.Month(month), 1, 0, 0, 0, 0, ref.Location())
	}
	return f(ref, 0)
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
