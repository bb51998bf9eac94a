// Package de is the German language bundle. German ordinals are built
// from roots crossed with their inflection endings ("dritt" × e/em/en/
// er/es), and the month dictionary carries the Austrian variants Jänner
// and Feber.
package de

import (
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

var tag = language.German

// New builds the German definition.
func New() *locale.Definition {
	n := names()
	cfg := grammar.Casual("de")
	isopatch.Register(cfg)

	cfg.AddRule(langkit.DayOffsetRule("de-day-offset", n, dayOffsets()))
	cfg.AddRule(dayOfWeekNRule(n))
	cfg.AddRule(ordinalDateRule(n))
	cfg.AddRule(langkit.RelativeDayRule("de-weekday-prefix", n, prefixRelations(), true))
	cfg.AddRule(langkit.BareWeekdayRule("de-weekday", n))
	cfg.AddRule(holidayRule(n))
	cfg.AddRule(langkit.EraYearRule("de-era", n, eras()))
	cfg.AddRule(langkit.QuantityRule("de-ago", n, `vor (\d+)\s+`+unitAlt(), units(), -1))
	cfg.AddRule(langkit.QuantityRule("de-in", n, `in (\d+)\s+`+unitAlt(), units(), +1))

	return &locale.Definition{
		Tag:       "de",
		Config:    cfg,
		WeekStart: time.Monday,
		Anchors:   anchors(n),
	}
}

func names() *langkit.Names {
	long := locale.MonthNames("de", locale.Long)
	short := locale.MonthNames("de", locale.Short)
	narrow := locale.MonthNames("de", locale.Narrow)
	wdLong := locale.WeekdayNames("de", locale.Long)
	wdShort := locale.WeekdayNames("de", locale.Short)
	wdNarrow := locale.WeekdayNames("de", locale.Narrow)

	months := match.FromArrays(tag, long, short, narrow)
	// Austrian and legacy variants.
	months.Put("jänner", 0)
	months.Put("jän", 0)
	months.Put("feber", 1)
	months.Put("mrz", 2)

	return &langkit.Names{
		Tag:        tag,
		Lang:       "de",
		Weekdays:   match.FromArrays(tag, wdLong, wdShort, wdNarrow),
		Months:     months,
		Ordinals:   ordinals(),
		WeekStart:  time.Monday,
		WeekdayAlt: langkit.CaptureAlt(tag, wdLong, wdShort),
		MonthAlt:   langkit.CaptureAlt(tag, long, short, []string{"jänner", "jän", "feber", "mrz"}),
	}
}

// ordinalRoots lists the uninflected German ordinal stems for 1–31.
var ordinalRoots = []string{
	"erst", "zweit", "dritt", "viert", "fünft", "sechst", "siebt",
	"acht", "neunt", "zehnt", "elft", "zwölft", "dreizehnt",
	"vierzehnt", "fünfzehnt", "sechzehnt", "siebzehnt", "achtzehnt",
	"neunzehnt", "zwanzigst", "einundzwanzigst", "zweiundzwanzigst",
	"dreiundzwanzigst", "vierundzwanzigst", "fünfundzwanzigst",
	"sechsundzwanzigst", "siebenundzwanzigst", "achtundzwanzigst",
	"neunundzwanzigst", "dreißigst", "einunddreißigst",
}

var ordinalEndings = []string{"e", "em", "en", "er", "es"}

func ordinals() *match.Dict {
	d := match.NewDict(tag)
	for i, root := range ordinalRoots {
		for _, end := range ordinalEndings {
			d.Put(root+end, i+1)
		}
	}
	d.Put("siebente", 7)
	d.Put("siebenten", 7)
	return d
}

// prefixRelations maps the article-like qualifiers before a weekday.
// "nächsten Mittwoch" is the Mittwoch of next week, not merely the next
// Mittwoch on the calendar; "kommenden" is the strictly-next occurrence.
func prefixRelations() *match.Dict {
	d := match.NewDict(tag)
	for word, rel := range map[string]weekdate.Relation{
		"nächsten":    weekdate.OfNextWeek,
		"nächste":     weekdate.OfNextWeek,
		"nächster":    weekdate.OfNextWeek,
		"kommenden":   weekdate.NextOccurring,
		"kommende":    weekdate.NextOccurring,
		"letzten":     weekdate.OfPreviousWeek,
		"letzte":      weekdate.OfPreviousWeek,
		"letzter":     weekdate.OfPreviousWeek,
		"vorigen":     weekdate.PreviousOccurring,
		"vorige":      weekdate.PreviousOccurring,
		"vergangenen": weekdate.PreviousOccurring,
		"vergangene":  weekdate.PreviousOccurring,
		"diesen":      weekdate.OfCurrentWeek,
		"diese":       weekdate.OfCurrentWeek,
		"dieser":      weekdate.OfCurrentWeek,
	} {
		d.Put(word, int(rel))
	}
	return d
}

func dayOffsets() *match.Dict {
	d := match.NewDict(tag)
	for word, off := range map[string]int{
		"heute":      0,
		"morgen":     1,
		"übermorgen": 2,
		"gestern":    -1,
		"vorgestern": -2,
	} {
		d.Put(word, off)
	}
	return d
}

func units() *match.Dict {
	d := match.NewDict(tag)
	for word, u := range map[string]langkit.Unit{
		"sekunde": langkit.UnitSecond, "sekunden": langkit.UnitSecond,
		"minute": langkit.UnitMinute, "minuten": langkit.UnitMinute,
		"stunde": langkit.UnitHour, "stunden": langkit.UnitHour,
		"tag": langkit.UnitDay, "tagen": langkit.UnitDay, "tage": langkit.UnitDay,
		"woche": langkit.UnitWeek, "wochen": langkit.UnitWeek,
		"monat": langkit.UnitMonth, "monaten": langkit.UnitMonth, "monate": langkit.UnitMonth,
		"jahr": langkit.UnitYear, "jahren": langkit.UnitYear, "jahre": langkit.UnitYear,
	} {
		d.Put(word, int(u))
	}
	return d
}

func unitAlt() string {
	return langkit.Alternation(units())
}

// eras maps German era markers, including the secular Zeitrechnung
// forms, to a year-sign multiplier.
func eras() *match.Dict {
	d := match.NewDict(tag)
	for word, mult := range map[string]int{
		"v. Chr.":                   -1,
		"v.Chr.":                    -1,
		"v. Chr":                    -1,
		"vor Christus":              -1,
		"vor Christi Geburt":        -1,
		"v. u. Z.":                  -1,
		"v.u.Z.":                    -1,
		"v. Ztr.":                   -1,
		"vor unserer Zeitrechnung":  -1,
		"n. Chr.":                   1,
		"n.Chr.":                    1,
		"n. Chr":                    1,
		"nach Christus":             1,
		"nach Christi Geburt":       1,
		"u. Z.":                     1,
		"n. Ztr.":                   1,
		"unserer Zeitrechnung":      1,
		"nach unserer Zeitrechnung": 1,
	} {
		d.Put(word, mult)
	}
	return d
}

// dayOfWeekNRule resolves "mittwoch der woche 4 [2024]" and the
// relative forms "der nächsten/letzten woche".
func dayOfWeekNRule(n *langkit.Names) grammar.Rule {
	relWeeks := match.NewDict(tag)
	relWeeks.Put("nächsten", 1)
	relWeeks.Put("nächste", 1)
	relWeeks.Put("kommenden", 1)
	relWeeks.Put("letzten", -1)
	relWeeks.Put("letzte", -1)
	relWeeks.Put("vorigen", -1)

	pattern := n.WeekdayAlt +
		`\s+(?:der|in)\s+(?:der\s+)?woche\s+(\d{1,2}|` +
		match.AnyPattern(relWeeks.Keys(), match.PatternOptions{}) + `)` +
		`(?:\s+(?:von\s+|des\s+Jahres\s+)?(\d{4}))?`
	return langkit.DayOfWeekNRule("de-day-of-week-n", n, pattern, relWeeks)
}

// ordinalDateRule resolves "dritter januar", "3. märz 2026".
func ordinalDateRule(n *langkit.Names) grammar.Rule {
	dayPattern := `(` + match.TriePattern(tag, ordinals().Keys(), match.PatternOptions{}) + `|\d{1,2}\.?)`
	pattern := dayPattern + `\s+` + n.MonthAlt + `(?:\s+(\d{4}))?`
	return grammar.Rule{
		Name:    "de-ordinal-date",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + pattern + `(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			return n.OrdinalDateComponents(ctx,
				grammar.GroupString(m, 1), grammar.GroupString(m, 2), grammar.GroupString(m, 3))
		},
	}
}

func holidayRule(n *langkit.Names) grammar.Rule {
	holidays := map[string]langkit.Holiday{
		"weihnachten": {Month: 12, Day: 25},
		"heiligabend": {Month: 12, Day: 24},
		"neujahr":     {Month: 1, Day: 1},
		"silvester":   {Month: 12, Day: 31},
	}
	names := make([]string, 0, len(holidays))
	for name := range holidays {
		names = append(names, name)
	}
	pattern := langkit.CaptureAlt(tag, names) + `(?:\s+(\d{4}))?`
	return langkit.HolidayRule("de-holiday", n, holidays, pattern)
}

func anchors(n *langkit.Names) []locale.Anchor {
	ws := n.WeekStart
	return []locale.Anchor{
		{
			Name:    "de-this-week",
			Pattern: langkit.MustCompile(`diese\s+woche`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 0) },
		},
		{
			Name:    "de-next-week",
			Pattern: langkit.MustCompile(`nächste\s+woche`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 1) },
		},
		{
			Name:    "de-last-week",
			Pattern: langkit.MustCompile(`(?:letzte|vorige)\s+woche`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, -1) },
		},
		{
			Name:    "de-next-month",
			Pattern: langkit.MustCompile(`nächste[nm]?\s+monat`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, 1) },
		},
		{
			Name:    "de-last-month",
			Pattern: langkit.MustCompile(`letzte[nm]?\s+monat`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, -1) },
		},
		{
			Name:    "de-next-year",
			Pattern: langkit.MustCompile(`nächstes\s+jahr`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, 1) },
		},
		{
			Name:    "de-last-year",
			Pattern: langkit.MustCompile(`letztes\s+jahr`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, -1) },
		},
		{
			Name:    "de-last-day-of-month",
			Pattern: langkit.MustCompile(`letzter?\s+tag\s+(?:des|im)\s+` + n.MonthAlt),
			Resolve: func(ref time.Time, m *regexp2.Match) time.Time {
				return monthAnchor(n, ref, grammar.GroupString(m, 1), locale.EndOfMonth)
			},
		},
		{
			Name:    "de-mid-month",
			Pattern: langkit.MustCompile(`mitte\s+` + n.MonthAlt),
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
