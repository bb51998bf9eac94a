// Package nldate resolves natural-language date and time expressions in
// several languages ("next wednesday", "1er janvier", "vor 2 minuten",
// "2024-W02-1") against a reference date.
//
// A Parser binds one language bundle to a requested locale; a Registry
// holds the built-in bundles and dispatches by locale tag, including
// parsing one text with several locales at once and ranking the merged
// results.
//
// All types are safe for concurrent use once constructed.
package nldate

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/olivr70/nldates-obsidian-sub000/grammar"
	"github.com/olivr70/nldates-obsidian-sub000/locale"
	"github.com/olivr70/nldates-obsidian-sub000/locale/de"
	"github.com/olivr70/nldates-obsidian-sub000/locale/en"
	"github.com/olivr70/nldates-obsidian-sub000/locale/fr"
	"github.com/olivr70/nldates-obsidian-sub000/locale/generic"
	"github.com/olivr70/nldates-obsidian-sub000/locale/pt"
)

// Options re-exports the engine options.
type Options = grammar.Options

// Parser binds a language bundle to a concrete locale tag.
type Parser struct {
	def *locale.Definition
	tag string // canonical
}

// New binds def to the requested locale. The request must be compatible
// with the locale the bundle was authored for: "pt-BR" can bind the
// "pt" bundle, "fr" cannot.
func New(def *locale.Definition, tag string) (*Parser, error) {
	requested, err := locale.Normalize(tag)
	if err != nil {
		return nil, err
	}
	if !locale.Compatible(def.Tag, requested) {
		return nil, errors.Errorf("nldate: locale %q is not served by the %q bundle", tag, def.Tag)
	}
	return &Parser{def: def, tag: requested}, nil
}

// Locale returns the canonical tag the parser was bound to.
func (p *Parser) Locale() string { return p.tag }

// ParseAll returns every date/time expression found in text, ordered by
// start offset, longer match first at equal starts.
func (p *Parser) ParseAll(text string, ref time.Time, opts Options) []grammar.Result {
	return p.def.Config.Parse(text, ref, opts)
}

// ParseDate resolves text to a single date. Anchor phrases ("next
// month", "dernier jour de mars") are resolved in two passes: the
// anchor date is derived first and the text is re-parsed against it, so
// "the 12th of next month" lands in the right month. An anchor phrase
// already covered by a full rule match ("mardi de la semaine
// prochaine") is left to that rule; anchoring it too would apply the
// shift twice. Unparseable text yields the zero time.
func (p *Parser) ParseDate(text string, ref time.Time, opts Options) time.Time {
	results := p.def.Config.Parse(text, ref, opts)
	if anchor, from, to, ok := p.def.FindAnchorSpan(text, ref); ok && !spanCovered(results, from, to) {
		if anchored := p.def.Config.Parse(text, anchor, opts); len(anchored) > 0 {
			return anchored[0].Time(anchor)
		}
		return anchor
	}
	if len(results) == 0 {
		return time.Time{}
	}
	return results[0].Time(ref)
}

// spanCovered reports whether some result's span contains [from, to).
func spanCovered(results []grammar.Result, from, to int) bool {
	for _, r := range results {
		if r.Index <= from && r.Index+r.Length() >= to {
			return true
		}
	}
	return false
}

// Moment is ParseDate with an explicit found flag.
func (p *Parser) Moment(text string, ref time.Time, opts Options) (time.Time, bool) {
	t := p.ParseDate(text, ref, opts)
	return t, !t.IsZero()
}

// FormatDate renders t with a Go reference layout, month and weekday
// names translated into the parser's locale.
func (p *Parser) FormatDate(t time.Time, layout string) string {
	return locale.Format(t, p.tag, layout)
}

// LocaleResult is a parse result tagged with the locale that produced
// it.
type LocaleResult struct {
	grammar.Result
	Locale string
}

// Registry holds the built-in language bundles keyed by canonical tag.
type Registry struct {
	parsers map[string]*Parser
	order   []string
}

// builtin lists the bundled definitions and the tags they serve.
var builtin = []struct {
	def  func() *locale.Definition
	tags []string
}{
	{en.New, []string{"en", "en-US", "en-GB", "en-CA"}},
	{de.New, []string{"de", "de-AT", "de-CH"}},
	{fr.New, []string{"fr", "fr-CA", "fr-CH"}},
	{pt.New, []string{"pt", "pt-BR"}},
	{generic.New, []string{"und"}},
}

// NewRegistry builds a registry with every built-in bundle. Bundles are
// constructed eagerly; the registry is immutable afterwards.
func NewRegistry() *Registry {
	r := &Registry{parsers: map[string]*Parser{}}
	for _, b := range builtin {
		def := b.def()
		for _, tag := range b.tags {
			p, err := New(def, tag)
			if err != nil {
				// Built-in tags are static; a mismatch is a programming
				// error.
				panic(err)
			}
			key := p.Locale()
			if _, dup := r.parsers[key]; dup {
				continue
			}
			r.parsers[key] = p
			r.order = append(r.order, key)
		}
	}
	return r
}

// Locales returns the canonical tags of all registered parsers, in
// registration order.
func (r *Registry) Locales() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ParserFor returns the parser for tag. Unknown or invalid tags fall
// back to English.
func (r *Registry) ParserFor(tag string) *Parser {
	if normalized, err := locale.Normalize(tag); err == nil {
		if p, ok := r.parsers[normalized]; ok {
			return p
		}
		// A regional variant with no dedicated entry falls back to its
		// base language.
		if p, ok := r.parsers[locale.Language(normalized)]; ok {
			return p
		}
	}
	return r.parsers["en"]
}

// Parsers resolves a list of tags, silently skipping tags no bundle
// serves.
func (r *Registry) Parsers(tags []string) []*Parser {
	out := make([]*Parser, 0, len(tags))
	for _, tag := range tags {
		normalized, err := locale.Normalize(tag)
		if err != nil {
			continue
		}
		if p, ok := r.parsers[normalized]; ok {
			out = append(out, p)
			continue
		}
		if p, ok := r.parsers[locale.Language(normalized)]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ParseAllWithLocales parses text with every listed locale and merges
// the results, ordered by start offset ascending, longer match first at
// equal starts, earlier locale first at equal spans.
func (r *Registry) ParseAllWithLocales(text string, ref time.Time, opts Options, tags ...string) []LocaleResult {
	var all []LocaleResult
	for _, p := range r.Parsers(tags) {
		for _, res := range p.ParseAll(text, ref, opts) {
			all = append(all, LocaleResult{Result: res, Locale: p.Locale()})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Index != all[j].Index {
			return all[i].Index < all[j].Index
		}
		return all[i].Length() > all[j].Length()
	})
	return all
}

// FilterOverlapping keeps the results whose span intersects the byte
// range [from, to]. A to before from is treated as from, selecting the
// results covering a single position.
func FilterOverlapping(results []LocaleResult, from, to int) []LocaleResult {
	if to < from {
		to = from
	}
	var out []LocaleResult
	for _, res := range results {
		if res.Index <= to && res.Index+res.Length() >= from {
			out = append(out, res)
		}
	}
	return out
}
