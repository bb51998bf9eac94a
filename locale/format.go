package locale

import (
	"strings"
	"time"
)

// Placeholders survive time.Format untouched: NUL never appears in
// layouts and the marker letters are not layout characters.
const (
	markMonthLong  = "\x00ML\x00"
	markMonthShort = "\x00MS\x00"
	markDayLong    = "\x00WL\x00"
	markDayShort   = "\x00WS\x00"
)

// layoutSubs rewrites name tokens in a Go layout, longest first so that
// "January" is never consumed as "Jan" plus text.
var layoutSubs = []struct{ token, mark string }{
	{"January", markMonthLong},
	{"Monday", markDayLong},
	{"Jan", markMonthShort},
	{"Mon", markDayShort},
}

// Format renders t with a Go reference layout, translating month and
// weekday names into the language of tag. Go's time.Format only emits
// English names, so the name tokens are masked out of the layout first
// and filled from the locale tables afterwards.
func Format(t time.Time, tag, layout string) string {
	lang := Language(tag)
	if lang == "" || lang == "en" {
		return t.Format(layout)
	}
	masked := layout
	for _, s := range layoutSubs {
		masked = strings.ReplaceAll(masked, s.token, s.mark)
	}
	out := t.Format(masked)

	month := int(t.Month()) - 1
	wd := int(t.Weekday())
	r := strings.NewReplacer(
		markMonthLong, MonthNames(lang, Long)[month],
		markMonthShort, MonthNames(lang, Short)[month],
		markDayLong, WeekdayNames(lang, Long)[wd],
		markDayShort, WeekdayNames(lang, Short)[wd],
	)
	return r.Replace(out)
}
