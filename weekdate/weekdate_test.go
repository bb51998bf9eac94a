package weekdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ref is the fixed reference time used across all tests:
// Friday, 2026-02-20 10:30 UTC.
var ref = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestISOWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       time.Time
		wantYear int
		wantWeek int
	}{
		{"mid-year", d(2026, time.February, 20), 2026, 8},
		{"monday of week 53", d(2020, time.December, 28), 2020, 53},
		{"january in previous iso year", d(2021, time.January, 1), 2020, 53},
		{"january 1st in week 1", d(2025, time.January, 1), 2025, 1},
		{"december in next iso year", d(2024, time.December, 30), 2025, 1},
		{"january in week 52", d(2023, time.January, 1), 2022, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := ISOWeek(tt.in)
			assert.Equal(t, tt.wantYear, year, "year")
			assert.Equal(t, tt.wantWeek, week, "week")
		})
	}
}

func TestDateFromWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		year int
		week int
		wd   int // Sunday=0
		want time.Time
	}{
		{"week 1 monday same year", 2024, 1, 1, d(2024, time.January, 1)},
		{"week 1 monday previous year", 2025, 1, 1, d(2024, time.December, 30)},
		{"week 53 thursday", 2020, 53, 4, d(2020, time.December, 31)},
		{"week 53 friday crosses into next year", 2020, 53, 5, d(2021, time.January, 1)},
		{"week 2 sunday", 2024, 2, 0, d(2024, time.January, 14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateFromWeek(tt.year, tt.week, tt.wd)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDateFromWeekRoundTrip(t *testing.T) {
	t.Parallel()

	// Every Monday of 2024 maps back to its own ISO week.
	for week := 1; week <= 52; week++ {
		got := DateFromWeek(2024, week, 1)
		y, w := ISOWeek(got)
		require.Equal(t, 2024, y, "week %d", week)
		require.Equal(t, week, w, "week %d", week)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	monday := d(2026, time.February, 16)

	tests := []struct {
		name      string
		target    int // Sunday=0
		rel       Relation
		from      time.Time
		weekStart time.Weekday
		want      time.Time
	}{
		// The reference weekday itself never resolves to today.
		{"next friday from friday", 5, NextOccurring, ref, time.Monday, d(2026, time.February, 27)},
		{"next monday from friday", 1, NextOccurring, ref, time.Monday, d(2026, time.February, 23)},
		{"next sunday as 7", 7, NextOccurring, ref, time.Monday, d(2026, time.February, 22)},
		{"previous friday from friday", 5, PreviousOccurring, ref, time.Monday, d(2026, time.February, 13)},
		{"previous monday from friday", 1, PreviousOccurring, ref, time.Monday, d(2026, time.February, 16)},
		// Of*Week is a position within the week, not a distance: the
		// wednesday of the current week lies before a friday reference.
		{"wednesday of current week", 3, OfCurrentWeek, ref, time.Monday, d(2026, time.February, 18)},
		{"wednesday of next week", 3, OfNextWeek, ref, time.Monday, d(2026, time.February, 25)},
		{"wednesday of previous week", 3, OfPreviousWeek, ref, time.Monday, d(2026, time.February, 11)},
		{"wednesday of next week from monday", 3, OfNextWeek, monday, time.Monday, d(2026, time.February, 25)},
		// Sunday-start weeks shift the window.
		{"sunday of current week sunday start", 0, OfCurrentWeek, ref, time.Sunday, d(2026, time.February, 15)},
		{"sunday of current week monday start", 0, OfCurrentWeek, ref, time.Monday, d(2026, time.February, 22)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.target, tt.rel, tt.from, tt.weekStart)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveRejects(t *testing.T) {
	t.Parallel()

	_, ok := Resolve(8, NextOccurring, ref, time.Monday)
	assert.False(t, ok, "target out of range")
	_, ok = Resolve(-1, NextOccurring, ref, time.Monday)
	assert.False(t, ok, "negative target")
	_, ok = Resolve(3, Relation(99), ref, time.Monday)
	assert.False(t, ok, "unknown relation")
}

func TestMostLikelyYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{0, 2000},
		{26, 2026},
		{49, 2049},
		{50, 1950},
		{99, 1999},
		{100, 100},
		{1984, 1984},
		{-44, -44},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MostLikelyYear(tt.in), "MostLikelyYear(%d)", tt.in)
	}
}

func TestParseTzd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"Z", 0, true},
		{"z", 0, true},
		{"+01:00", 60, true},
		{"-05:00", -300, true},
		{"+0530", 330, true},
		{"-0230", -150, true},
		{"+14", 840, true},
		// Minutes take the hour's sign.
		{"-01:30", -90, true},
		{"", 0, false},
		{"01:00", 0, false},
		{"+25:00", 0, false},
		{"+01:75", 0, false},
		// Signed components inside the designator are malformed.
		{"+01:-30", 0, false},
		{"+-1:30", 0, false},
		{"UTC", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTzd(tt.in)
		require.Equal(t, tt.wantOK, ok, "ParseTzd(%q) ok", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "ParseTzd(%q)", tt.in)
		}
	}
}
