package grammar

import (
	"strconv"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/olivr70/nldates-obsidian-sub000/weekdate"
)

// Casual returns the base configuration shared by every locale: ISO
// dates with optional time and timezone designator, numeric dates in
// the endianness of lang ("en" is month-first, everything else
// day-first), and clock times. Locale packages append their own rules
// on top of this bundle.
func Casual(lang string) *Config {
	c := &Config{}
	c.AddRule(isoDateRule())
	c.AddRule(numericDateRule(lang))
	c.AddRule(clockTimeRule())
	for _, r := range StandardRefiners() {
		c.AddRefiner(r)
	}
	return c
}

var reISODate = regexp2.MustCompile(
	`(?<![\d-])(\d{4})-(\d{2})-(\d{2})`+
		`(?:[T ](\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,3}))?)?(Z|[+-]\d{2}(?::?\d{2})?)?)?(?!\d)`,
	regexp2.None)

// isoDateRule matches YYYY-MM-DD with an optional time and timezone
// designator. A trailing Z on a date without a time is not consumed
// here; the Zulu patch claims the full span and wins on length.
func isoDateRule() Rule {
	return Rule{
		Name:    "iso-date",
		Pattern: reISODate,
		Extract: func(_ *Context, m *regexp2.Match) (Components, bool) {
			var c Components
			year := atoi(GroupString(m, 1))
			month := atoi(GroupString(m, 2))
			day := atoi(GroupString(m, 3))
			if !ValidDate(year, month, day) {
				return c, false
			}
			c.Set(FieldYear, year)
			c.Set(FieldMonth, month)
			c.Set(FieldDay, day)
			if hs := GroupString(m, 4); hs != "" {
				if !setClock(&c, hs, GroupString(m, 5), GroupString(m, 6)) {
					return c, false
				}
				if ms := GroupString(m, 7); ms != "" {
					c.Set(FieldMillisecond, atoi(padMillis(ms)))
				}
				if !setTzd(&c, GroupString(m, 8)) {
					return c, false
				}
			} else {
				c.Imply(FieldHour, 12)
			}
			return c, true
		},
	}
}

var (
	reNumericMDY = regexp2.MustCompile(`(?<![\d/.])(\d{1,2})[/.](\d{1,2})[/.](\d{4}|\d{2})(?![\d/.])`, regexp2.None)
	reNumericDMY = reNumericMDY // same shape; group roles differ per language
)

// numericDateRule matches slash and dot dates. English reads them
// month-first, all other languages day-first. Two-digit years resolve
// through the most-likely-century pivot.
func numericDateRule(lang string) Rule {
	pattern := reNumericDMY
	monthFirst := lang == "en"
	if monthFirst {
		pattern = reNumericMDY
	}
	return Rule{
		Name:    "numeric-date",
		Pattern: pattern,
		Extract: func(_ *Context, m *regexp2.Match) (Components, bool) {
			var c Components
			first := atoi(GroupString(m, 1))
			second := atoi(GroupString(m, 2))
			day, month := first, second
			if monthFirst {
				month, day = first, second
			}
			year := atoi(GroupString(m, 3))
			if len(GroupString(m, 3)) == 2 {
				year = weekdate.MostLikelyYear(year)
			}
			if !ValidDate(year, month, day) {
				return c, false
			}
			c.Set(FieldYear, year)
			c.Set(FieldMonth, month)
			c.Set(FieldDay, day)
			c.Imply(FieldHour, 12)
			return c, true
		},
	}
}

var reClockTime = regexp2.MustCompile(`(?<![\d:])(\d{1,2}):(\d{2})(?::(\d{2}))?(?![\d:])`, regexp2.None)

// clockTimeRule matches HH:MM and HH:MM:SS; the date is implied from
// the reference.
func clockTimeRule() Rule {
	return Rule{
		Name:    "clock-time",
		Pattern: reClockTime,
		Extract: func(ctx *Context, m *regexp2.Match) (Components, bool) {
			var c Components
			if !setClock(&c, GroupString(m, 1), GroupString(m, 2), GroupString(m, 3)) {
				return c, false
			}
			c.Imply(FieldYear, ctx.Ref.Year())
			c.Imply(FieldMonth, int(ctx.Ref.Month()))
			c.Imply(FieldDay, ctx.Ref.Day())
			return c, true
		},
	}
}

// ValidDate reports whether (year, month, day) is a real calendar date.
// time.Date normalizes overflow, so a round-trip mismatch means the
// input date does not exist (e.g. Feb 30).
func ValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

// setClock validates and stores hour/minute/second strings.
func setClock(c *Components, hourStr, minStr, secStr string) bool {
	hour := atoi(hourStr)
	mn := atoi(minStr)
	if hour > 23 || mn > 59 {
		return false
	}
	c.Set(FieldHour, hour)
	c.Set(FieldMinute, mn)
	if secStr != "" {
		sec := atoi(secStr)
		if sec > 59 {
			return false
		}
		c.Set(FieldSecond, sec)
	}
	return true
}

// setTzd parses and stores a timezone designator, if present.
func setTzd(c *Components, tzd string) bool {
	if tzd == "" {
		return true
	}
	off, ok := weekdate.ParseTzd(tzd)
	if !ok {
		return false
	}
	c.Set(FieldOffset, off)
	return true
}

// padMillis right-pads a fractional-second capture to milliseconds.
func padMillis(s string) string {
	for len(s) < 3 {
		s += "0"
	}
	return s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
