package match

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FolderOptions selects the comparison sensitivity of a Folder.
// The zero value is "base" sensitivity: case- and accent-insensitive.
type FolderOptions struct {
	CaseSensitive bool // distinguish case (accents still folded)
	Numeric       bool // compare digit runs by numeric value
	IgnorePunct   bool // strip punctuation before comparing
}

// Folder compares strings with locale collation rules instead of naive
// byte equality. Folding behavior is driven entirely by the collator
// configuration, not hardcoded per language.
//
// collate.Collator keeps internal iterator state, so comparisons are
// serialized through a mutex. Folder is safe for concurrent use.
type Folder struct {
	mu   sync.Mutex
	c    *collate.Collator
	opts FolderOptions
}

// NewFolder builds a Folder for the given locale.
func NewFolder(tag language.Tag, opts FolderOptions) *Folder {
	copts := []collate.Option{collate.IgnoreDiacritics, collate.IgnoreWidth}
	if !opts.CaseSensitive {
		copts = append(copts, collate.IgnoreCase)
	}
	if opts.Numeric {
		copts = append(copts, collate.Numeric)
	}
	return &Folder{c: collate.New(tag, copts...), opts: opts}
}

// Equal reports whether a and b compare equal under the folder's
// collation rules.
func (f *Folder) Equal(a, b string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.equal(a, b)
}

// HasPrefix reports whether s starts with prefix under the folder's
// collation rules. The comparison truncates s to the rune length of
// prefix; collation expansions longer than one rune are not chased.
func (f *Folder) HasPrefix(s, prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasPrefix(s, prefix)
}

func (f *Folder) equal(a, b string) bool {
	return f.c.CompareString(f.pre(a), f.pre(b)) == 0
}

func (f *Folder) hasPrefix(s, prefix string) bool {
	s, prefix = f.pre(s), f.pre(prefix)
	n := utf8.RuneCountInString(prefix)
	head := truncRunes(s, n)
	return f.c.CompareString(head, prefix) == 0
}

// FindIn looks key up in d by collation equality against every stored
// key. Returns def when nothing compares equal or when the match is
// Ambiguous.
func (f *Folder) FindIn(d *Dict, key string, def int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if f.equal(pair.Key, key) {
			if pair.Value == Ambiguous {
				return def
			}
			return pair.Value
		}
	}
	return def
}

// FindPartialIn resolves a truncated key in d by collation prefix rules,
// with the same disambiguation contract as Dict.FindPartial: an exact
// (collation-equal) key wins; otherwise a multi-hit prefix resolves only
// when all hits after the first carry the first hit's value.
func (f *Folder) FindPartialIn(d *Dict, prefix string, def int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var hits []int
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if f.equal(pair.Key, prefix) {
			if pair.Value == Ambiguous {
				return def
			}
			return pair.Value
		}
		if f.hasPrefix(pair.Key, prefix) {
			hits = append(hits, pair.Value)
		}
	}
	if len(hits) == 0 {
		return def
	}
	first := hits[0]
	for _, v := range hits[1:] {
		if v != first {
			return def
		}
	}
	if first == Ambiguous {
		return def
	}
	return first
}

// pre applies pre-comparison normalization for options the collator
// itself cannot express: punctuation stripping, and diacritic stripping
// under case sensitivity (collate.IgnoreDiacritics only takes effect
// together with collate.IgnoreCase).
func (f *Folder) pre(s string) string {
	if f.opts.CaseSensitive {
		s = StripDiacritics(s)
	}
	if !f.opts.IgnorePunct {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// truncRunes returns the first n runes of s.
func truncRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
