// Package isopatch supplies the supplemental ISO 8601 rules the base
// grammar does not recognize: dates with a bare Z suffix and no time
// ("2024-01-01Z"), ISO week dates with a timezone designator
// ("2024-W02-1+01:00"), and signed extended years ("+10000-01-02",
// "-0050-02-14"), where year 0000 represents 1 BCE and maps to the
// internal year −1.
//
// Register appends all three rules to a locale configuration before the
// locale's own rules, so locale-specific rules claiming the same forms
// can still take precedence at identical spans.
package isopatch

import (
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
	"github.com/olivr70/nldates-obsidian-sub000/weekdate"
)

// Register appends the Zulu-date, ISO-week and signed-era rules to cfg.
func Register(cfg *grammar.Config) {
	cfg.AddRule(ZuluDate())
	cfg.AddRule(WeekDate())
	cfg.AddRule(SignedEra())
}

var reZuluDate = regexp2.MustCompile(`(?<![\d-])(\d{4})-(\d{2})-(\d{2})Z(?![\p{L}\d])`, regexp2.None)

// ZuluDate recognizes a date with a literal Z suffix but no time
// component. The offset is UTC and the hour defaults to noon, matching
// the base grammar's default-time convention.
func ZuluDate() grammar.Rule {
	return grammar.Rule{
		Name:    "iso-date-zulu",
		Pattern: reZuluDate,
		Extract: func(_ *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			year := atoi(grammar.GroupString(m, 1))
			month := atoi(grammar.GroupString(m, 2))
			day := atoi(grammar.GroupString(m, 3))
			if !grammar.ValidDate(year, month, day) {
				return c, false
			}
			c.Set(grammar.FieldYear, year)
			c.Set(grammar.FieldMonth, month)
			c.Set(grammar.FieldDay, day)
			c.Set(grammar.FieldOffset, 0)
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

var reWeekDate = regexp2.MustCompile(
	`(?<![\dW+-])([+-]?\d{4})-?W([0-4]\d|5[0-3])(?:-?([1-7]))?(Z|[+-]\d{2}(?::?\d{2})?)?(?!\d)`,
	regexp2.None)

// WeekDate recognizes ISO week dates, including a timezone designator
// the base grammar rejects. The day-in-week defaults to Monday (1) and
// the hour to noon.
func WeekDate() grammar.Rule {
	return grammar.Rule{
		Name:    "iso-week-date",
		Pattern: reWeekDate,
		Extract: func(_ *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			year, ok := parseSignedYear(grammar.GroupString(m, 1))
			if !ok {
				return c, false
			}
			week := atoi(grammar.GroupString(m, 2))
			if week < 1 {
				return c, false
			}
			isoDay := 1
			if ds := grammar.GroupString(m, 3); ds != "" {
				isoDay = atoi(ds)
			}
			t := weekdate.DateFromWeek(year, week, isoDay%7)
			c.Set(grammar.FieldYear, t.Year())
			c.Set(grammar.FieldMonth, int(t.Month()))
			c.Set(grammar.FieldDay, t.Day())
			if tzd := grammar.GroupString(m, 4); tzd != "" {
				off, ok := weekdate.ParseTzd(tzd)
				if !ok {
					return c, false
				}
				c.Set(grammar.FieldOffset, off)
			}
			c.Imply(grammar.FieldHour, 12)
			return c, true
		},
	}
}

var reSignedEra = regexp2.MustCompile(
	`(?<!\d)([+-]\d{4,6})(?:-(\d{2})(?:-(\d{2}))?)?`+
		`(?:[T ](\d{2}):(\d{2})(?::(\d{2}))?(Z|[+-]\d{2}(?::?\d{2})?)?)?(?![\d-])`,
	regexp2.None)

// SignedEra recognizes ±-prefixed extended years of 4–6 digits with
// optional month, day, and time. Plain unsigned 4-digit years are
// excluded by the mandatory sign; they are the base grammar's job.
// Year 0000 maps to the internal year −1 (1 BCE).
func SignedEra() grammar.Rule {
	return grammar.Rule{
		Name:    "iso-signed-era",
		Pattern: reSignedEra,
		Extract: func(_ *grammar.Context, m *regexp2.Match) (grammar.Components, bool) {
			var c grammar.Components
			year, ok := parseSignedYear(grammar.GroupString(m, 1))
			if !ok {
				return c, false
			}
			c.Set(grammar.FieldYear, year)
			if ms := grammar.GroupString(m, 2); ms != "" {
				month := atoi(ms)
				if month < 1 || month > 12 {
					return c, false
				}
				c.Set(grammar.FieldMonth, month)
				if ds := grammar.GroupString(m, 3); ds != "" {
					day := atoi(ds)
					if day < 1 || day > 31 {
						return c, false
					}
					c.Set(grammar.FieldDay, day)
				} else {
					c.Imply(grammar.FieldDay, 1)
				}
			}
			if hs := grammar.GroupString(m, 4); hs != "" {
				hour := atoi(hs)
				minute := atoi(grammar.GroupString(m, 5))
				if hour > 23 || minute > 59 {
					return c, false
				}
				c.Set(grammar.FieldHour, hour)
				c.Set(grammar.FieldMinute, minute)
				if ss := grammar.GroupString(m, 6); ss != "" {
					sec := atoi(ss)
					if sec > 59 {
						return c, false
					}
					c.Set(grammar.FieldSecond, sec)
				}
				if tzd := grammar.GroupString(m, 7); tzd != "" {
					off, ok := weekdate.ParseTzd(tzd)
					if !ok {
						return c, false
					}
					c.Set(grammar.FieldOffset, off)
				}
			} else {
				c.Imply(grammar.FieldHour, 12)
			}
			return c, true
		},
	}
}

// parseSignedYear parses an optionally signed year string. Signed year
// 0000 is 1 BCE, internally −1.
func parseSignedYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	raw, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if raw == 0 {
		return -1, true
	}
	return sign * raw, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
