package grammar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ref is the fixed reference time used across all tests:
// Friday, 2026-02-20 10:30 UTC.
var ref = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

func dt(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestParseISODate(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	tests := []struct {
		name     string
		in       string
		wantText string
		want     time.Time
	}{
		{"date only defaults to noon", "due 2026-03-05 sharp", "2026-03-05", dt(2026, time.March, 5, 12, 0, 0)},
		{"date and time", "2026-03-05T14:30", "2026-03-05T14:30", dt(2026, time.March, 5, 14, 30, 0)},
		{"date time seconds", "2026-03-05 14:30:15", "2026-03-05 14:30:15", dt(2026, time.March, 5, 14, 30, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := c.Parse(tt.in, ref, Options{})
			require.Len(t, results, 1)
			assert.Equal(t, tt.wantText, results[0].Text)
			assert.True(t, results[0].Time(ref).Equal(tt.want),
				"got %v, want %v", results[0].Time(ref), tt.want)
		})
	}
}

func TestParseISODateOffset(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	results := c.Parse("2026-03-05T14:30+01:00", ref, Options{})
	require.Len(t, results, 1)
	got := results[0].Time(ref)
	want := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.FixedZone("UTC+01:00", 3600))
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
	_, off := got.Zone()
	assert.Equal(t, 3600, off)
}

func TestParseRejectsImpossibleDates(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	for _, in := range []string{"2026-02-30", "2026-13-01", "2026-00-10", "2026-04-31"} {
		assert.Empty(t, c.Parse(in, ref, Options{}), "input %q", in)
	}
}

func TestParseNumericDateEndianness(t *testing.T) {
	t.Parallel()

	en := Casual("en")
	fr := Casual("fr")

	// 05/03: March 5th in English, 5 mars in French.
	rEn := en.Parse("05/03/2026", ref, Options{})
	require.Len(t, rEn, 1)
	assert.Equal(t, time.May, rEn[0].Time(ref).Month())
	assert.Equal(t, 3, rEn[0].Time(ref).Day())

	rFr := fr.Parse("05/03/2026", ref, Options{})
	require.Len(t, rFr, 1)
	assert.Equal(t, time.March, rFr[0].Time(ref).Month())
	assert.Equal(t, 5, rFr[0].Time(ref).Day())
}

func TestParseNumericTwoDigitYear(t *testing.T) {
	t.Parallel()

	c := Casual("fr")
	r := c.Parse("05.03.49", ref, Options{})
	require.Len(t, r, 1)
	assert.Equal(t, 2049, r[0].Time(ref).Year())

	r = c.Parse("05.03.50", ref, Options{})
	require.Len(t, r, 1)
	assert.Equal(t, 1950, r[0].Time(ref).Year())
}

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	r := c.Parse("meet at 14:30", ref, Options{})
	require.Len(t, r, 1)
	assert.Equal(t, "14:30", r[0].Text)
	assert.True(t, r[0].Time(ref).Equal(dt(2026, time.February, 20, 14, 30, 0)))

	assert.Empty(t, c.Parse("score was 26:70", ref, Options{}), "invalid minutes")
}

func TestMergeDateTime(t *testing.T) {
	t.Parallel()

	c := Casual("fr")
	r := c.Parse("le 05.03.2026 à 14:30", ref, Options{})
	require.Len(t, r, 1, "date and adjacent time merge into one result")
	assert.Equal(t, "05.03.2026 à 14:30", r[0].Text)
	assert.True(t, r[0].Time(ref).Equal(dt(2026, time.March, 5, 14, 30, 0)))
}

func TestMergeDateTimeGapTooWide(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	r := c.Parse("2026-03-05 and then 14:30", ref, Options{})
	require.Len(t, r, 2, "distant matches stay separate")
}

func TestRefineOverlapsFirstWins(t *testing.T) {
	t.Parallel()

	results := []Result{
		{Index: 4, Text: "short"},
		{Index: 4, Text: "longer one"},
		{Index: 8, Text: "inside"},
		{Index: 20, Text: "clear"},
	}
	out := RefineOverlaps(nil, results)
	require.Len(t, out, 2)
	assert.Equal(t, "longer one", out[0].Text, "longest at equal start wins")
	assert.Equal(t, "clear", out[1].Text, "non-overlapping survivor kept")
}

func TestParseOrdering(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	r := c.Parse("from 2026-03-05 until 2026-04-10", ref, Options{})
	require.Len(t, r, 2)
	assert.Less(t, r[0].Index, r[1].Index)
}

func TestForwardDateBias(t *testing.T) {
	t.Parallel()

	// January 10th already passed relative to the February reference.
	var past Components
	past.Set(FieldMonth, 1)
	past.Set(FieldDay, 10)
	past.Imply(FieldYear, ref.Year())

	// A time-only result earlier in the reference day stays put.
	var clock Components
	clock.Set(FieldHour, 9)
	clock.Set(FieldMinute, 0)
	clock.Imply(FieldYear, ref.Year())
	clock.Imply(FieldMonth, int(ref.Month()))
	clock.Imply(FieldDay, ref.Day())

	ctx := &Context{Ref: ref, Opts: Options{ForwardDate: true}}
	out := RefineForwardDate(ctx, []Result{{Start: past}, {Start: clock}})
	require.Len(t, out, 2)
	assert.Equal(t, ref.Year()+1, out[0].Time(ref).Year(), "passed calendar date moves forward")
	assert.Equal(t, ref.Year(), out[1].Time(ref).Year(), "clock time stays in the reference day")

	// Without the option nothing moves.
	ctx = &Context{Ref: ref, Opts: Options{}}
	out = RefineForwardDate(ctx, []Result{{Start: past}})
	assert.Equal(t, ref.Year(), out[0].Time(ref).Year())
}

func TestParseRuneOffsets(t *testing.T) {
	t.Parallel()

	c := Casual("fr")
	// Multi-byte text before the match: Index must be a byte offset.
	text := "réunion décalée 2026-03-05"
	r := c.Parse(text, ref, Options{})
	require.Len(t, r, 1)
	assert.Equal(t, "2026-03-05", r[0].Text)
	assert.Equal(t, len(text)-len("2026-03-05"), r[0].Index)
}

func TestParseDateZeroOnMiss(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	assert.True(t, c.ParseDate("nothing datelike here", ref, Options{}).IsZero())
	assert.True(t, c.ParseDate("", ref, Options{}).IsZero())
}

func TestAddRulePriority(t *testing.T) {
	t.Parallel()

	c := Casual("en")
	n := len(c.Rules())
	c.AddRule(Rule{Name: "custom"})
	require.Len(t, c.Rules(), n+1)
	assert.Equal(t, "custom", c.Rules()[n].Name)
}

func TestComponentsCertainVsImplied(t *testing.T) {
	t.Parallel()

	var c Components
	c.Imply(FieldYear, 2026)
	assert.False(t, c.IsCertain(FieldYear))
	c.Set(FieldYear, 2027)
	assert.True(t, c.IsCertain(FieldYear))
	// Imply never downgrades a certain value.
	c.Imply(FieldYear, 1999)
	v, ok := c.Get(FieldYear)
	require.True(t, ok)
	assert.Equal(t, 2027, v)
}
