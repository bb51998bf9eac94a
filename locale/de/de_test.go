package de

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
)

// ref is Friday, 2026-02-20 10:30 UTC.
var ref = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

// monday is Monday, 2026-02-16.
var monday = time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC)

func dt(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func parseOne(t *testing.T, text string, at time.Time) time.Time {
	t.Helper()
	def := New()
	results := def.Config.Parse(text, at, grammar.Options{})
	require.NotEmpty(t, results, "no result for %q", text)
	return results[0].Time(at)
}

func TestWeekdayPhrases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		at   time.Time
		want time.Time
	}{
		// "nächsten" means the weekday of next week, not the nearest one:
		// from a Monday that is nine days out.
		{"naechsten from monday", "nächsten mittwoch", monday, dt(2026, time.February, 25, 12, 0)},
		{"naechsten from friday", "nächsten mittwoch", ref, dt(2026, time.February, 25, 12, 0)},
		// "kommenden" is the strictly-next occurrence.
		{"kommenden from monday", "kommenden mittwoch", monday, dt(2026, time.February, 18, 12, 0)},
		{"letzten", "letzten mittwoch", ref, dt(2026, time.February, 11, 12, 0)},
		{"vergangenen", "vergangenen mittwoch", ref, dt(2026, time.February, 18, 12, 0)},
		{"diesen", "diesen mittwoch", ref, dt(2026, time.February, 18, 12, 0)},
		{"bare weekday", "montag", ref, dt(2026, time.February, 23, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOne(t, tt.in, tt.at)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestQuantities(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "vor 2 minuten", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 20, 10, 28)), "got %v", got)

	got = parseOne(t, "vor 3 tagen", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 17, 12, 0)), "got %v", got)

	got = parseOne(t, "in 2 wochen", ref)
	assert.True(t, got.Equal(dt(2026, time.March, 6, 12, 0)), "got %v", got)
}

func TestOrdinalDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"dritter januar", dt(2026, time.January, 3, 12, 0)},
		{"3. märz 2024", dt(2024, time.March, 3, 12, 0)},
		{"einundzwanzigster juni", dt(2026, time.June, 21, 12, 0)},
		{"1. jänner 2027", dt(2027, time.January, 1, 12, 0)},
		{"15. feber", dt(2026, time.February, 15, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseOne(t, tt.in, ref)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDayOffsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"heute", dt(2026, time.February, 20, 12, 0)},
		{"morgen", dt(2026, time.February, 21, 12, 0)},
		{"übermorgen", dt(2026, time.February, 22, 12, 0)},
		{"gestern", dt(2026, time.February, 19, 12, 0)},
		{"vorgestern", dt(2026, time.February, 18, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseOne(t, tt.in, ref)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDayOfWeekN(t *testing.T) {
	t.Parallel()

	newYear := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	got := parseOne(t, "mittwoch der woche 4", newYear)
	want := dt(2024, time.January, 24, 12, 0)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)

	got = parseOne(t, "mittwoch in der woche 4 von 2024", ref)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestHolidays(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "weihnachten", ref)
	assert.True(t, got.Equal(dt(2026, time.December, 25, 12, 0)), "got %v", got)

	got = parseOne(t, "silvester 2027", ref)
	assert.True(t, got.Equal(dt(2027, time.December, 31, 12, 0)), "got %v", got)
}

func TestEraYears(t *testing.T) {
	t.Parallel()

	def := New()
	tests := []struct {
		in   string
		want int
	}{
		{"44 v. Chr.", -44},
		{"44 v.Chr.", -44},
		{"800 n. Chr.", 800},
		{"12 v. u. Z.", -12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			results := def.Config.Parse(tt.in, ref, grammar.Options{})
			require.NotEmpty(t, results)
			year, ok := results[0].Start.Get(grammar.FieldYear)
			require.True(t, ok)
			assert.Equal(t, tt.want, year)
		})
	}
}

func TestAnchors(t *testing.T) {
	t.Parallel()

	def := New()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"nächste woche", dt(2026, time.February, 23, 0, 0)},
		{"letzte woche", dt(2026, time.February, 9, 0, 0)},
		{"nächsten monat", dt(2026, time.March, 1, 0, 0)},
		{"letztes jahr", dt(2025, time.January, 1, 0, 0)},
		{"letzter tag im märz", dt(2026, time.March, 31, 0, 0)},
		{"mitte juni", dt(2026, time.June, 15, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := def.FindAnchor(tt.in, ref)
			require.True(t, ok, "no anchor for %q", tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestNumericDatesAreDayFirst(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "05.03.2026", ref)
	assert.True(t, got.Equal(dt(2026, time.March, 5, 12, 0)), "got %v", got)
}
