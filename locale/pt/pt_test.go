package pt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
)

// ref is Friday, 2026-02-20 10:30 UTC.
var ref = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

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
		{"próxima segunda", dt(2026, time.February, 23, 12, 0)},
		{"próxima segunda-feira", dt(2026, time.February, 23, 12, 0)},
		{"terça passada", dt(2026, time.February, 17, 12, 0)},
		{"terça-feira anterior", dt(2026, time.February, 17, 12, 0)},
		{"esta quarta", dt(2026, time.February, 18, 12, 0)},
		{"sábado", dt(2026, time.February, 21, 12, 0)},
		{"domingo", dt(2026, time.February, 22, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseOne(t, tt.in, ref)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestOrdinalDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"primeiro de janeiro", dt(2026, time.January, 1, 12, 0)},
		{"primeira de janeiro", dt(2026, time.January, 1, 12, 0)},
		{"3 de março de 2024", dt(2024, time.March, 3, 12, 0)},
		{"vigésimo primeiro de junho", dt(2026, time.June, 21, 12, 0)},
		{"15 de agosto", dt(2026, time.August, 15, 12, 0)},
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
		{"hoje", dt(2026, time.February, 20, 12, 0)},
		{"amanhã", dt(2026, time.February, 21, 12, 0)},
		{"depois de amanhã", dt(2026, time.February, 22, 12, 0)},
		{"ontem", dt(2026, time.February, 19, 12, 0)},
		{"anteontem", dt(2026, time.February, 18, 12, 0)},
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

	got := parseOne(t, "há 2 horas", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 20, 8, 30)), "got %v", got)

	got = parseOne(t, "daqui a 3 dias", ref)
	assert.True(t, got.Equal(dt(2026, time.February, 23, 12, 0)), "got %v", got)

	got = parseOne(t, "em 2 semanas", ref)
	assert.True(t, got.Equal(dt(2026, time.March, 6, 12, 0)), "got %v", got)
}

func TestDayOfWeekN(t *testing.T) {
	t.Parallel()

	newYear := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	got := parseOne(t, "terça da semana 4", newYear)
	want := dt(2024, time.January, 23, 12, 0)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)

	got = parseOne(t, "sexta da semana 4 de 2024", ref)
	want = dt(2024, time.January, 26, 12, 0)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestHolidays(t *testing.T) {
	t.Parallel()

	got := parseOne(t, "natal", ref)
	assert.True(t, got.Equal(dt(2026, time.December, 25, 12, 0)), "got %v", got)

	got = parseOne(t, "natal de 2025", ref)
	assert.True(t, got.Equal(dt(2025, time.December, 25, 12, 0)), "got %v", got)

	got = parseOne(t, "ano novo", ref)
	assert.True(t, got.Equal(dt(2026, time.January, 1, 12, 0)), "got %v", got)
}

func TestEraYears(t *testing.T) {
	t.Parallel()

	def := New()
	results := def.Config.Parse("em 44 a.C.", ref, grammar.Options{})
	require.NotEmpty(t, results)
	year, ok := results[0].Start.Get(grammar.FieldYear)
	require.True(t, ok)
	assert.Equal(t, -44, year)
}

func TestAnchors(t *testing.T) {
	t.Parallel()

	def := New()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"semana que vem", dt(2026, time.February, 23, 0, 0)},
		{"a semana passada", dt(2026, time.February, 9, 0, 0)},
		{"mês que vem", dt(2026, time.March, 1, 0, 0)},
		{"o ano passado", dt(2025, time.January, 1, 0, 0)},
		{"último dia de março", dt(2026, time.March, 31, 0, 0)},
		{"meados de junho", dt(2026, time.June, 15, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := def.FindAnchor(tt.in, ref)
			require.True(t, ok, "no anchor for %q", tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFeminineOrdinals(t *testing.T) {
	t.Parallel()

	d := ordinals()
	assert.Equal(t, 11, d.Find("décima primeira", -1))
	assert.Equal(t, 11, d.Find("décimo primeiro", -1))
	assert.Equal(t, 30, d.Find("trigésima", -1))
}
