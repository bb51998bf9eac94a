package match

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dict maps surface words (and their folded variants) to integer values:
// day-of-month, weekday index 0–6, month index 0–11, or a relative-day
// constant. Entries keep insertion order so that generated alternation
// patterns are deterministic.
//
// A Dict is built once at startup and never mutated afterwards.
type Dict struct {
	entries  *orderedmap.OrderedMap[string, int]
	surfaces []string // distinct original surface forms, insertion order
	tag      language.Tag
}

// NewDict returns an empty dictionary folding with the rules of tag.
func NewDict(tag language.Tag) *Dict {
	return &Dict{
		entries: orderedmap.New[string, int](),
		tag:     tag,
	}
}

// FromArrays builds a dictionary from one or more ordered name arrays
// (e.g. long month names plus short month names). Each non-empty entry is
// inserted under its exact form, its locale-lowercased form, and its
// diacritic-stripped lowercased form, all mapped to the entry's index in
// its array. Duplicate keys with conflicting values become Ambiguous.
func FromArrays(tag language.Tag, arrays ...[]string) *Dict {
	d := NewDict(tag)
	for _, arr := range arrays {
		for i, name := range arr {
			if name == "" {
				continue
			}
			d.Put(name, i)
		}
	}
	return d
}

// Put inserts a surface form under its exact and folded variants.
// Re-inserting a key with a different value turns the stored value into
// Ambiguous; the key is never silently overwritten.
func (d *Dict) Put(surface string, value int) {
	d.surfaces = append(d.surfaces, surface)
	d.put(surface, value)
	low := lowerForm(d.tag, surface)
	if low != surface {
		d.put(low, value)
	}
	folded := FoldSpace(d.tag, surface)
	if folded != surface && folded != low {
		d.put(folded, value)
	}
}

func (d *Dict) put(key string, value int) {
	if old, ok := d.entries.Get(key); ok {
		if old != value {
			d.entries.Set(key, Ambiguous)
		}
		return
	}
	d.entries.Set(key, value)
}

// Get returns the value stored under the exact key.
func (d *Dict) Get(key string) (int, bool) {
	if d == nil {
		return 0, false
	}
	v, ok := d.entries.Get(key)
	return v, ok
}

// Len returns the number of stored keys (all variants included).
func (d *Dict) Len() int { return d.entries.Len() }

// Surfaces returns the original surface forms in insertion order.
// The returned slice is shared; callers must not modify it.
func (d *Dict) Surfaces() []string { return d.surfaces }

// Keys returns all stored keys (surface and folded variants) in
// insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.entries.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Find looks key up exactly, then retries with the folded form.
// Returns def when the key is absent. An Ambiguous entry is returned
// as-is; callers treat it as "no single match".
func (d *Dict) Find(key string, def int) int {
	if v, ok := d.Get(key); ok {
		return v
	}
	if v, ok := d.Get(FoldSpace(d.tag, key)); ok {
		return v
	}
	return def
}

// FindPartial resolves a possibly truncated key:
//
//  1. An exact key wins over any prefix interpretation; an Ambiguous
//     exact key yields def.
//  2. Otherwise all keys starting with the prefix are collected. If,
//     after dropping the first hit, every remaining hit carries the same
//     value as the first, that value is returned.
//  3. Otherwise (zero hits, or hits with conflicting values) def is
//     returned. The raw lookup is retried once with the folded prefix.
func (d *Dict) FindPartial(prefix string, def int) int {
	if v, ok := d.resolvePartial(prefix); ok {
		return v
	}
	folded := FoldSpace(d.tag, prefix)
	if folded != prefix {
		if v, ok := d.resolvePartial(folded); ok {
			return v
		}
	}
	return def
}

func (d *Dict) resolvePartial(prefix string) (int, bool) {
	if prefix == "" {
		return 0, false
	}
	if v, ok := d.Get(prefix); ok {
		// An ambiguous exact key never resolves; only plain Find exposes
		// the sentinel.
		if v == Ambiguous {
			return 0, false
		}
		return v, true
	}
	var hits []int
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if strings.HasPrefix(pair.Key, prefix) {
			hits = append(hits, pair.Value)
		}
	}
	if len(hits) == 0 {
		return 0, false
	}
	first := hits[0]
	for _, v := range hits[1:] {
		if v != first {
			return 0, false
		}
	}
	if first == Ambiguous {
		return 0, false
	}
	return first, true
}

// lowerForm lowercases with the locale rules of tag, keeping diacritics.
func lowerForm(tag language.Tag, s string) string {
	return cases.Lower(tag).String(s)
}
