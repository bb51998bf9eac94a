// Package pt is the Portuguese language bundle. Relative weekdays use
// both a prefix construction ("próxima segunda-feira") and a suffix one
// ("segunda-feira passada"), so two rules with two dictionaries are
// registered. Ordinals carry masculine and feminine inflections.
package pt

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

var tag = language.Portuguese

// New builds the Portuguese definition. The bundle is authored for
// European Portuguese week conventions.
func New() *locale.Definition {
	n := names()
	cfg := grammar.Casual("pt")
	isopatch.Register(cfg)

	cfg.AddRule(langkit.DayOffsetRule("pt-day-offset", n, dayOffsets()))
	cfg.AddRule(dayOfWeekNRule(n))
	cfg.AddRule(ordinalDateRule(n))
	cfg.AddRule(langkit.RelativeDayRule("pt-weekday-prefix", n, prefixRelations(), true))
	cfg.AddRule(langkit.RelativeDayRule("pt-weekday-suffix", n, suffixRelations(), false))
	cfg.AddRule(langkit.BareWeekdayRule("pt-weekday", n))
	cfg.AddRule(holidayRule(n))
	cfg.AddRule(langkit.EraYearRule("pt-era", n, eras()))
	cfg.AddRule(langkit.QuantityRule("pt-ago", n, `há (\d+)\s+`+unitAlt(), units(), -1))
	cfg.AddRule(langkit.QuantityRule("pt-in", n, `(?:daqui a|em) (\d+)\s+`+unitAlt(), units(), +1))

	return &locale.Definition{
		Tag:       "pt",
		Config:    cfg,
		WeekStart: time.Monday,
		Anchors:   anchors(n),
	}
}

func names() *langkit.Names {
	long := locale.MonthNames("pt", locale.Long)
	short := locale.MonthNames("pt", locale.Short)
	narrow := locale.MonthNames("pt", locale.Narrow)
	wdLong := locale.WeekdayNames("pt", locale.Long)
	wdShort := locale.WeekdayNames("pt", locale.Short)
	wdNarrow := locale.WeekdayNames("pt", locale.Narrow)

	weekdays := match.FromArrays(tag, wdLong, wdShort, wdNarrow)
	// Spoken forms drop the -feira suffix.
	bare := []string{"", "segunda", "terça", "quarta", "quinta", "sexta", ""}
	for i, w := range bare {
		if w != "" {
			weekdays.Put(w, i)
		}
	}

	return &langkit.Names{
		Tag:        tag,
		Lang:       "pt",
		Weekdays:   weekdays,
		Months:     match.FromArrays(tag, long, short, narrow),
		Ordinals:   ordinals(),
		WeekStart:  time.Monday,
		WeekdayAlt: langkit.CaptureAlt(tag, wdLong, wdShort, bare),
		MonthAlt:   langkit.CaptureAlt(tag, long, short),
	}
}

// ordinalStems lists the masculine ordinal forms for 1–31; the feminine
// is derived by swapping the final -o for -a.
var ordinalStems = []string{
	"primeiro", "segundo", "terceiro", "quarto", "quinto", "sexto",
	"sétimo", "oitavo", "nono", "décimo",
	"décimo primeiro", "décimo segundo", "décimo terceiro",
	"décimo quarto", "décimo quinto", "décimo sexto", "décimo sétimo",
	"décimo oitavo", "décimo nono", "vigésimo",
	"vigésimo primeiro", "vigésimo segundo", "vigésimo terceiro",
	"vigésimo quarto", "vigésimo quinto", "vigésimo sexto",
	"vigésimo sétimo", "vigésimo oitavo", "vigésimo nono", "trigésimo",
	"trigésimo primeiro",
}

func ordinals() *match.Dict {
	d := match.NewDict(tag)
	for i, word := range ordinalStems {
		d.Put(word, i+1)
		d.Put(feminine(word), i+1)
	}
	d.Put("1º", 1)
	d.Put("1ª", 1)
	return d
}

// feminine swaps every trailing -o of each word for -a
// ("décimo primeiro" becomes "décima primeira").
func feminine(word string) string {
	out := []rune(word)
	for i, r := range out {
		if r == 'o' && (i+1 == len(out) || out[i+1] == ' ') {
			out[i] = 'a'
		}
	}
	return string(out)
}

// prefixRelations qualifies a weekday from the front: "próxima terça".
func prefixRelations() *match.Dict {
	d := match.NewDict(tag)
	for word, rel := range map[string]weekdate.Relation{
		"próxima": weekdate.NextOccurring,
		"próximo": weekdate.NextOccurring,
		"esta":    weekdate.OfCurrentWeek,
		"este":    weekdate.OfCurrentWeek,
		"nesta":   weekdate.OfCurrentWeek,
	} {
		d.Put(word, int(rel))
	}
	return d
}

// suffixRelations qualifies a weekday from behind: "terça passada".
func suffixRelations() *match.Dict {
	d := match.NewDict(tag)
	for word, rel := range map[string]weekdate.Relation{
		"passada":  weekdate.PreviousOccurring,
		"passado":  weekdate.PreviousOccurring,
		"anterior": weekdate.PreviousOccurring,
		"que vem":  weekdate.NextOccurring,
		"seguinte": weekdate.NextOccurring,
	} {
		d.Put(word, int(rel))
	}
	return d
}

func dayOffsets() *match.Dict {
	d := match.NewDict(tag)
	for word, off := range map[string]int{
		"hoje":             0,
		"amanhã":           1,
		"depois de amanhã": 2,
		"ontem":            -1,
		"anteontem":        -2,
	} {
		d.Put(word, off)
	}
	return d
}

func units() *match.Dict {
	d := match.NewDict(tag)
	for word, u := range map[string]langkit.Unit{
		"segundo": langkit.UnitSecond, "segundos": langkit.UnitSecond,
		"minuto": langkit.UnitMinute, "minutos": langkit.UnitMinute,
		"hora": langkit.UnitHour, "horas": langkit.UnitHour,
		"dia": langkit.UnitDay, "dias": langkit.UnitDay,
		"semana": langkit.UnitWeek, "semanas": langkit.UnitWeek,
		"mês": langkit.UnitMonth, "meses": langkit.UnitMonth,
		"ano": langkit.UnitYear, "anos": langkit.UnitYear,
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
		"a.C.":             -1,
		"a.C":              -1,
		"aC":               -1,
		"antes de Cristo":  -1,
		"d.C.":             1,
		"d.C":              1,
		"dC":               1,
		"depois de Cristo": 1,
	} {
		d.Put(word, mult)
	}
	return d
}

// dayOfWeekNRule resolves "terça da semana 4 [de 2024]" and the
// relative forms "da semana que vem/passada".
func dayOfWeekNRule(n *langkit.Names) grammar.Rule {
	relWeeks := match.NewDict(tag)
	relWeeks.Put("que vem", 1)
	relWeeks.Put("seguinte", 1)
	relWeeks.Put("passada", -1)
	relWeeks.Put("anterior", -1)

	pattern := n.WeekdayAlt +
		`\s+da\s+semana\s+(\d{1,2}|` +
		match.AnyPattern(relWeeks.Keys(), match.PatternOptions{}) + `)` +
		`(?:\s+(?:de\s+)?(\d{4}))?`
	return langkit.DayOfWeekNRule("pt-day-of-week-n", n, pattern, relWeeks)
}

// ordinalDateRule resolves "primeiro de janeiro", "3 de março de 2026".
func ordinalDateRule(n *langkit.Names) grammar.Rule {
	dayPattern := `(` + match.TriePattern(tag, ordinals().Keys(), match.PatternOptions{}) + `|\d{1,2}[ºª]?)`
	pattern := dayPattern + `\s+de\s+` + n.MonthAlt + `(?:\s+de\s+(\d{4}))?`
	return grammar.Rule{
		Name:    "pt-ordinal-date",
		Pattern: langkit.MustCompile(`(?<![\p{L}\p{N}])` + pattern + `(?![\p{L}\p{N}])`),
		Extract: func(ctx *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			return n.OrdinalDateComponents(ctx,
				grammar.GroupString(m, 1), grammar.GroupString(m, 2), grammar.GroupString(m, 3))
		},
	}
}

func holidayRule(n *langkit.Names) grammar.Rule {
	holidays := map[string]langkit.Holiday{
		"natal":            {Month: 12, Day: 25},
		"véspera de natal": {Month: 12, Day: 24},
		"ano novo":         {Month: 1, Day: 1},
		"réveillon":        {Month: 12, Day: 31},
	}
	names := make([]string, 0, len(holidays))
	for name := range holidays {
		names = append(names, name)
	}
	pattern := langkit.CaptureAlt(tag, names) + `(?:\s+(?:de\s+)?(\d{4}))?`
	return langkit.HolidayRule("pt-holiday", n, holidays, pattern)
}

func anchors(n *langkit.Names) []locale.Anchor {
	ws := n.WeekStart
	return []locale.Anchor{
		{
			Name:    "pt-this-week",
			Pattern: langkit.MustCompile(`esta\s+semana`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 0) },
		},
		{
			Name:    "pt-next-week",
			Pattern: langkit.MustCompile(`(?:a\s+)?(?:próxima\s+semana|semana\s+que\s+vem)`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, 1) },
		},
		{
			Name:    "pt-last-week",
			Pattern: langkit.MustCompile(`(?:a\s+)?semana\s+passada`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfWeek(ref, ws, -1) },
		},
		{
			Name:    "pt-next-month",
			Pattern: langkit.MustCompile(`(?:o\s+)?(?:próximo\s+mês|mês\s+que\s+vem)`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, 1) },
		},
		{
			Name:    "pt-last-month",
			Pattern: langkit.MustCompile(`(?:o\s+)?mês\s+passado`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfMonth(ref, -1) },
		},
		{
			Name:    "pt-next-year",
			Pattern: langkit.MustCompile(`(?:o\s+)?(?:próximo\s+ano|ano\s+que\s+vem)`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, 1) },
		},
		{
			Name:    "pt-last-year",
			Pattern: langkit.MustCompile(`(?:o\s+)?ano\s+passado`),
			Resolve: func(ref time.Time, _ *regexp2.Match) time.Time { return locale.StartOfYear(ref, -1) },
		},
		{
			Name:    "pt-last-day-of-month",
			Pattern: langkit.MustCompile(`último\s+dia\s+de\s+` + n.MonthAlt),
			Resolve: func(ref time.Time, m *regexp2.Match) time.Time {
				return monthAnchor(n, ref, grammar.GroupString(m, 1), locale.EndOfMonth)
			},
		},
		{
			Name:    "pt-mid-month",
			Pattern: langkit.MustCompile(`(?:em\s+)?meados\s+de\s+` + n.MonthAlt),
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
