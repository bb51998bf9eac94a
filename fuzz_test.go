package nldate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzParseAllWithLocales(f *testing.F) {
	seeds := []string{
		"tomorrow at 14:30",
		"übermorgen or 2026-03-05",
		"mardi de la semaine 4",
		"nächsten mittwoch",
		"próxima segunda-feira",
		"christmas 2025",
		"44 av. J.-C.",
		"2024-W02-1",
		"+0000-12-31",
		"",
		"no dates here",
		"\xff\xfe",
		"\x00demain\x00",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	r := NewRegistry()
	tags := []string{"en", "de", "fr", "pt"}
	f.Fuzz(func(t *testing.T, s string) {
		results := r.ParseAllWithLocales(s, ref, Options{}, tags...)

		prevIndex := 0
		for _, res := range results {
			if res.Index < 0 || res.Index+res.Length() > len(s) {
				t.Fatalf("invalid span: Index=%d Length=%d len=%d", res.Index, res.Length(), len(s))
			}
			assert.Equal(t, s[res.Index:res.Index+res.Length()], res.Text)
			assert.Contains(t, tags, res.Locale)

			// Aggregated results are ordered by start offset.
			assert.GreaterOrEqual(t, res.Index, prevIndex)
			prevIndex = res.Index

			_ = res.Time(ref)
		}

		// Single-locale entry points must not panic on the same input.
		_ = r.ParserFor("en").ParseDate(s, ref, Options{})
		_, _ = r.ParserFor("fr").Moment(s, ref, Options{})
	})
}
