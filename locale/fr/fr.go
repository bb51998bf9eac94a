// Package fr is the French language bundle: name dictionaries, ordinal
// words, relative-day phrases, era markers, and the custom rules built
// from them ("mardi prochain", "1er janvier", "mardi de la semaine 4",
// "il y a 2 heures", "noël 2025").
package fr

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

var tag = language.French

// New builds the French definition. All dictionaries are constructed
// here once; the returned bundle is immutable.
func New() *locale.Definition {
	n := names()
	cfg := grammar.Casual("fr")
	isopatch.Register(cfg)

	cfg.AddRule(langkit.DayOffsetRule("fr-day-offset", n, dayOffsets()))
	cfg.AddRule(dayOfWeekNRule(n))
	cfg.AddRule(ordinalDateRule(n))
	cfg.AddRule(enHuitRule(n))
	cfg.AddRule(langkit.RelativeDayRule("fr-weekday-suffix", n, suffixRelations(), false))
	cfg.AddRule(langkit.RelativeDayRule("fr-weekday-prefix", n, prefixRelations(), true))
	cfg.AddRule(langkit.BareWeekdayRule("fr-weekday", n))
	cfg.AddRule(holidayRule(n))
	cfg.AddRule(langkit.EraYearRule("fr-era", n, eras()))
	cfg.AddRule(langkit.QuantityRule("fr-ago", n, `il y a (\d+)\s+`+unitAlt(), units(), -1))
	cfg.AddRule(langkit.QuantityRule("fr-in", n, `dans (\d+)\s+`+unitAlt(), units(), +1))

	return &locale.Definition{
		Tag:       "fr",
		Config:    cfg,
		WeekStart: time.Monday,
		Anchors:   anchors(n),
	}
}

func names() *langkit.Names {
	long := locale.MonthNames("fr", locale.Long)
	short := locale.MonthNames("fr", locale.Short)
	narrow := locale.MonthNames("fr", locale.Narrow)
	wdLong := locale.WeekdayNames("fr", locale.Long)
	wdShort := locale.WeekdayNames("fr", locale.Short)
	wdNarrow := locale.WeekdayNames("fr", locale.Narrow)

	return &langkit.Names{
		Tag:        tag,
		Lang:       "fr",
		Weekdays:   match.FromArrays(tag, wdLong, wdShort, wdNarrow),
		Months:     match.FromArrays(tag, long, short, narrow),
		Ordinals:   ordinals(),
		WeekStart:  time.Monday,
		WeekdayAlt: langkit.CaptureAlt(tag, wdLong, wdShort),
		MonthAlt:   langkit.CaptureAlt(tag, long, short),
	}
}

// ordinals maps French ordinal words (and digit forms like "1er") to
// 1–31. Compound forms carry both hyphenated and spaced spellings.
func ordinals() *match.Dict {
	d := match.NewDict(tag)
	base := map[string]int{
		"premier": 1, "première": 1, "1er": 1, "1ère": 1, "1re": 1,
		"deuxième": 2, "second": 2, "seconde": 2,
		"troisième": 3, "quatrième": 4, "cinquième": 5, "sixième": 6,
		"septième": 7, "huitième": 8, "neuvième": 9, "dixième": 10,
		"onzième": 11, "douzième": 12, "treizième": 13, "quatorzième": 14,
		"quinzième": 15, "seizième": 16, "dix-septième": 17,
		"dix-huitième": 18, "dix-neuvième": 19, "vingtième": 20,
		"trentième": 30,
	}
	for word, v := range base {
		d.Put(word, v)
	}
	units := []string{"", "unième", "deuxième", "troisième", "quatrième",
		"cinquième", "sixième", "septième", "huitième", "neuvième"}
	for i := 2; i <= 9; i++ {
		d.Put("vingt-"+units[i], 20+i)
	}
	d.Put("vingt et unième", 21)
	d.Put("vingt-et-unième", 21)
	d.Put("trente et unième", 31)
	d.Put("trente-et-unième", 31)
	return d
}

// suffixRelations qualifies a weekday from behind: "mardi prochain".
func suffixRelations() *match.Dict {
	d := match.NewDict(tag)
	for word, rel := range map[string]weekdate.Relation{
		"prochain":  weekdate.NextOccurring,
		"suivant":   weekdate.NextOccurring,
		"dernier":   weekdate.PreviousOccurring,
		"précédent": weekdate.PreviousOccurring,
		"passé":     weekdate.PreviousOccurring,
		"d'avant":   weekdate.PreviousOccurring,
	} {
		d.Put(word, int(rel))
	}
	return d
}

// prefixRelations qualifies a weekday from the front: "ce mardi".
func prefixRelations() *match.Dict {
	d := match.NewDict(tag)
	d.Put("ce", int(weekdate.OfCurrentWeek))
	d.Put("cette", int(weekdate.OfCurrentWeek))
	return d
}

func dayOffsets() *match.Dict {
	d := match.NewDict(tag)
	for word, off := range map[string]int{
		"aujourd'hui":  0,
		"demain":       1,
		"après-demain": 2,
		"hier":         -1,
		"avant-hier":   -2,
	} {
		d.Put(word, off)
	}
	return d
}

func units() *match.Dict {
	d := match.NewDict(tag)
	for word, u := range map[string]langkit.Unit{
		"seconde": langkit.UnitSecond, "secondes": langkit.UnitSecond,
		"minute": langkit.UnitMinute, "minutes": langkit.UnitMinute,
		"heure": langkit.UnitHour, "heures": langkit.UnitHour,
		"jour": langkit.UnitDay, "jours": langkit.UnitDay,
		"semaine": langkit.UnitWeek, "semaines": langkit.UnitWeek,
		"mois": langkit.UnitMonth,
		"an":   langkit.UnitYear, "ans": langkit.UnitYear,
		"année": langkit.UnitYear, "années": langkit.UnitYear,
	} {
		d.Put(word, int(u))
	}
	return d
}

func unitAlt() string {
	return langkit.Alternation(units())
}

// eras maps French era markers to a year-sign multiplier.
func eras() *match.Dict {
	d := match.NewDict(tag)
	for word, mult := range map[string]int{
		"av. J.-C.":          -1,
		"av. J.-C":           -1,
		"av JC":              -1,
		"avant Jésus-Christ": -1,
		"avant notre ère":    -1,
		"ap. J.-C.":          1,
		"ap. J.-C":           1,
		"apr. J.-C.":         1,
		"ap JC":              1,
		"après Jésus-Christ": 1,
		"de notre ère":       1,
	} {
		d.Put(word, mult)
	}
	return d
}

// dayOfWeekNRule resolves "mardi de la semaine 4 [de 2024]" and the
// relative-week forms "de la semaine prochaine/précédente".
func dayOfWeekNRule(n *langkit.Names) grammar.Rule {
	relWeeks := match.NewDict(tag)
	relWeeks.Put("prochaine", 1)
	relWeeks.Put("suivante", 1)
	relWeeks.Put("précédente", -1)
	relWeeks.Put("dernière", -1)
	relWeeks.Put("passée", -1)

	pattern := n.WeekdayAlt +
		`\s+de\s+la\s+semaine\s+(\d{1,2}|` + match.AnyPattern(relWeeks.Keys(), match.PatternOptions{}) + `)` +
		`(?:\s+(?:de\s+l'année\s+|de\s+)?(\d{4}))?`
	return langkit.DayOfWeekNRule("fr-day-of-week-n", n, pattern, relWeeks)
}

// ordinalDateRule resolves "1er janvier", "quinzième mars 2026",
// "3 avril".
func ordinalDateRule(n *langkit.Names) grammar.Rule {
	dayPattern := `(` + trieOf(ordinals()) + `|\d{1,2}(?:er|ère|re|e)?)`
	pattern := dayPattern + `\s+(?:de\s+)?` + n.MonthAlt + `(?:\s+(\d{4}))?`
	return grammar.Rule{
		Name:    "fr-ordinal-date",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + pattern + `(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			return n.OrdinalDateComponents(ctx,
				grammar.GroupString(m, 1), grammar.GroupString(m, 2), grammar.GroupString(m, 3))
		},
	}
}

// enHuitRule resolves the idiom "mardi en huit": the target weekday one
// week beyond its next occurrence.
func enHuitRule(n *langkit.Names) grammar.Rule {
	return grammar.Rule{
		Name:    "fr-en-huit",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + n.WeekdayAlt + `\s+en\s+huit(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			weekday, ok := n.LookupWeekday(grammar.GroupString(m, 1))
			if !ok {
				return c, false
			}
			t, ok := weekdate.Resolve(weekday, weekdate.NextOccurring, ctx.Ref, n.WeekStart)
			if !ok {
				return c, false
			}
			t = t.AddDate(0, 0, 7)
			c.Set(grammar.FieldYear, t.Year())
			c.Set(grammar.FieldMonth, int(t.Month()))
			c.Set(grammar.FieldDay, t.Day())
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

func holidayRule(n *langkit.Names) grammar.Rule {
	holidays := map[string]langkit.Holiday{
		"noël":            {Month: 12, Day: 25},
		"jour de l'an":    {Month: 1, Day: 1},
		"nouvel an":       {Month: 1, Day: 1},
		"saint-sylvestre": {Month: 12, Day: 31},
	}
	names := make([]string, 0, len(holidays))
	for name := range holidays {
		names = append(names, name)
	}
	pattern := langkit.CaptureAlt(tag, names) + `(?:\s+(\d{4}))?`
	return langkit.HolidayRule("fr-holiday", n, holidays, pattern)
}

// anchors lists the coarse phrases that need an anchor date before the
// text can be resolved.
func anchors(n *langkit.Names) []locale.Anchor {
	ws := n.WeekStart
	return []locale.Anchor{
		{
			Name:    "fr-this-week",
			Pattern: langkit.MustCompile(`cette\s+semaine`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 0) },
		},
		{
			Name:    "fr-next-week",
			Pattern: langkit.MustCompile(`(?:la\s+)?semaine\s+prochaine`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 1) },
		},
		{
			Name:    "fr-last-week",
			Pattern: langkit.MustCompile(`(?:la\s+)?semaine\s+(?:dernière|passée)`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, -1) },
		},
		{
			Name:    "fr-next-month",
			Pattern: langkit.MustCompile(`(?:le\s+)?mois\s+prochain`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, 1) },
		},
		{
			Name:    "fr-last-month",
			Pattern: langkit.MustCompile(`(?:le\s+)?mois\s+dernier`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, -1) },
		},
		{
			Name:    "fr-next-year",
			Pattern: langkit.MustCompile(`l'année\s+prochaine`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, 1) },
		},
		{
			Name:    "fr-last-year",
			Pattern: langkit.MustCompile(`l'année\s+(?:dernière|passée)`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, -1) },
		},
		{
			Name:    "fr-last-day-of-month",
			Pattern: langkit.MustCompile(`dernier\s+jour\s+(?:de\s+|d')` + n.MonthAlt),
			Resolve: func(ref time.Time, m *regexp2.Match) time.Time {
				return monthAnchor(n, ref, grammar.GroupString(m, 1), locale.EndOfMonth)
			},
		},
		{
			Name:    "fr-mid-month",
			Pattern: langkit.MustCompile(`(?:mi-|mi\s+|à la mi-)` + n.MonthAlt),
			Resolve: func(ref time.Time, m *regexp2.Match) time.Time {
				return monthAnchor(n, ref, grammar.GroupString(m, 1), locale.MidOfMonth)
			},
		},
	}
}

// monthAnchor resolves a captured month name to a date within it via f,
// falling back to the reference month when the name is unknown.
func monthAnchor(n *langkit.Names, ref time.Time, monthText string, f func(time.Time, int) time.Time) time.Time {
	if month, ok := n.LookupMonth(monthText); ok {
		ref = time.Date(ref.Year(), time.Month(month), 1, 0, 0, 0, 0, ref.Location())
	}
	return f(ref, 0)
}

// trieOf renders the keys of d as a non-capturing trie alternation.
func trieOf(d *match.Dict) string {
	return match.TriePattern(tag, d.Keys(), match.PatternOptions{})
}
