package fr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
)

// ref is Friday, 2026-02-20 10:30 UTC.
var ref = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

// monday is Monday, 2024-01-01 (week 1 of 2024).
var monday = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

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
		in   string
		want time.Time
	}{
		{"mardi prochain", dt(2026, time.February, 24, 12, 0)},
		{"mardi suivant", dt(2026, time.February, 24, 12, 0)},
		{"mardi dernier", dt(2026, time.February, 17, 12, 0)},
		{"mardi précédent", dt(2026, time.February, 17, 12, 0)},
		{"ce mardi", dt(2026, time.February, 17, 12, 0)},
		// "en huit" is one week beyond the next occurrence.
		{"mardi en huit", dt(2026, time.March, 3, 12, 0)},
		// A bare weekday earlier in the week means the upcoming one.
		{"lundi", dt(2026, time.February, 23, 12, 0)},
		{"samedi", dt(2026, time.February, 21, 12, 0)},
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

	got := parseOne(t, "mardi de la semaine 4", monday)
	want := dt(2024, time.January, 23, 12, 0)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)

	got = parseOne(t, "vendredi de la semaine 4 de 2024", ref)
	want = dt(2024, time.January, 26, 12, 0)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)

	// Relative week token instead of a number.
	got = parseOne(t, "mardi de la semaine prochaine", monday)
	want = dt(2024, time.January, 9, 12, 0)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestOrdinalDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"1er janvier", dt(2026, time.January, 1, 12, 0)},
		{"premier janvier", dt(2026, time.January, 1, 12, 0)},
		{"quinzième mars 2024", dt(2024, time.March, 15, 12, 0)},
		{"3 avril", dt(2026, time.April, 3, 12, 0)},
		{"vingt et unième juin", dt(2026, time.June, 21, 12, 0)},
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
		{"aujourd'hui", dt(2026, time.February, 20, 12, 0)},
		{"demain", dt(2026, time.February, 21, 12, 0)},
		{"après-demain", dt(2026, time.February, 22, 12, 0)},
		{"hier", dt(2026, time.February, 19, 12, 0)},
		{"avant-hier", dt(2026, time.February, 18, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseOne(t, tt.in, ref)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestQuantities(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "il y a 2 heures", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 20, 8, 30)), "got %v", got)

	got = parseOne(t, "dans 3 jours", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 23, 12, 0)), "got %v", got)

	got = parseOne(t, "il y a 2 semaines", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 6, 12, 0)), "got %v", got)
}

func TestHolidays(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "noël", ref)
	assert.True(t, got.Equal(dt(2026, time.December, 25, 12, 0)), "got %v", got)

	got = parseOne(t, "noël 2025", ref)
	assert.True(t, got.Equal(dt(2025, time.December, 25, 12, 0)), "got %v", got)

	got = parseOne(t, "jour de l'an", ref)
	assert.True(t, got.Equal(dt(2026, time.January, 1, 12, 0)), "got %v", got)
}

func TestEraYears(t *testing.T) {
	t.Parallel()

	def := New()
	results := def.Config.Parse("en 44 av. J.-C.", ref, grammar.Options{})
	require.NotEmpty(t, results)
	year, ok := results[0].Start.Get(grammar.FieldYear)
	require.True(t, ok)
	assert.Equal(t, -44, year)

	results = def.Config.Parse("en 800 ap. J.-C.", ref, grammar.Options{})
	require.NotEmpty(t, results)
	year, _ = results[0].Start.Get(grammar.FieldYear)
	assert.Equal(t, 800, year)
}

func TestAnchors(t *testing.T) {
	t.Parallel()

	def := New()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"la semaine prochaine", dt(2026, time.February, 23, 0, 0)},
		{"cette semaine", dt(2026, time.February, 16, 0, 0)},
		{"le mois prochain", dt(2026, time.March, 1, 0, 0)},
		{"l'année prochaine", dt(2027, time.January, 1, 0, 0)},
		{"dernier jour de mars", dt(2026, time.March, 31, 0, 0)},
		{"mi-juin", dt(2026, time.June, 15, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := def.FindAnchor(tt.in, ref)
			require.True(t, ok, "no anchor for %q", tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	_, ok := def.FindAnchor("mardi prochain", ref)
	assert.False(t, ok, "plain weekday phrases are not anchors")
}

func TestIsoFormsStillParse(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "réunion le 2026-03-05", ref)
	assert.True(t, got.Equal(dt(2026, time.March, 5, 12, 0)), "got %v", got)

	got = parseOne(t, "2024-W02-1", ref)
	assert.True(t, got.Equal(dt(2024, time.January, 8, 12, 0)), "got %v", got)
}
