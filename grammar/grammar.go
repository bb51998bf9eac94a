// Package grammar is the rule-driven engine underneath every locale
// parser: an ordered list of (pattern, extractor) rules is run over the
// input, each producing sparse date/time components with a text span,
// and a refiner chain resolves overlaps, merges adjacent date and time
// matches, and applies forward-date bias.
//
// The engine itself is language-neutral. Casual builds the base rule
// list shared by all locales (ISO and numeric dates, clock times);
// locale packages append their own rules on top via Config.AddRule, so
// appended order is priority order: at identical spans the earlier rule
// wins.
//
// Parsing never returns errors: unrecognized text yields no results and
// ParseDate yields the zero time. All methods are safe for concurrent
// use once a Config is built.
package grammar

import (
	"time"

	"github.com/dlclark/regexp2"
)

// maxInputBytes is the maximum input size for Parse.
// Longer inputs yield no results.
const maxInputBytes = 1 << 20 // 1 MiB

// maxResults caps the number of results returned for one input.
const maxResults = 256

// Options adjusts parse behavior.
type Options struct {
	// ForwardDate biases ambiguous results toward the future: a result
	// whose year was implied and which resolves before the reference
	// date is moved one year forward.
	ForwardDate bool
}

// Context is passed to every extractor.
type Context struct {
	Text string
	Ref  time.Time
	Opts Options
}

// Rule is one named (pattern, extractor) pair. Extract returns ok=false
// to veto a textual match that fails semantic validation (e.g. an
// impossible calendar date); a vetoed match produces no result.
type Rule struct {
	Name    string
	Pattern *regexp2.Regexp
	Extract func(ctx *Context, m *regexp2.Match) (Components, bool)
}

// Result is one recognized date/time expression.
type Result struct {
	Index int        // byte offset of the match in the input
	Text  string     // matched substring
	Start Components // extracted components
	End   *Components
}

// Length returns the byte length of the matched text.
func (r Result) Length() int { return len(r.Text) }

// Time materializes the result's start components against ref.
func (r Result) Time(ref time.Time) time.Time { return r.Start.Time(ref) }

// Refiner post-processes the full result list.
type Refiner func(ctx *Context, results []Result) []Result

// Config is a parser-list plus refiner-list bundle. Build one with
// Casual, extend it with AddRule, then share it freely: a Config is
// immutable once parsing starts.
type Config struct {
	rules    []Rule
	refiners []Refiner
}

// AddRule appends a rule to the parser list.
func (c *Config) AddRule(r Rule) {
	c.rules = append(c.rules, r)
}

// AddRefiner appends a refiner to the refinement chain.
func (c *Config) AddRefiner(r Refiner) {
	c.refiners = append(c.refiners, r)
}

// Rules returns the rule list in priority order.
func (c *Config) Rules() []Rule { return c.rules }

// Parse runs every rule over text and returns the refined results,
// ordered by start offset ascending, longer match first at equal
// starts, with overlaps already resolved first-wins.
func (c *Config) Parse(text string, ref time.Time, opts Options) []Result {
	if text == "" || len(text) > maxInputBytes {
		return nil
	}
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	ctx := &Context{Text: text, Ref: ref, Opts: opts}

	// regexp2 reports rune offsets; precompute the rune→byte table once.
	byteOff := runeOffsets(text)

	var all []Result
	for _, rule := range c.rules {
		m, err := rule.Pattern.FindStringMatch(text)
		for err == nil && m != nil {
			comps, ok := rule.Extract(ctx, m)
			if ok && !comps.Empty() {
				start := byteOff[m.Index]
				end := byteOff[m.Index+m.Length]
				all = append(all, Result{
					Index: start,
					Text:  text[start:end],
					Start: comps,
				})
				if len(all) >= maxResults {
					break
				}
			}
			m, err = rule.Pattern.FindNextMatch(m)
		}
	}
	if len(all) == 0 {
		return nil
	}

	for _, refine := range c.refiners {
		all = refine(ctx, all)
	}
	return all
}

// ParseDate parses text and materializes the first result. Unparseable
// text yields the zero time; callers must check with IsZero.
func (c *Config) ParseDate(text string, ref time.Time, opts Options) time.Time {
	results := c.Parse(text, ref, opts)
	if len(results) == 0 {
		return time.Time{}
	}
	return results[0].Time(ref)
}

// runeOffsets returns a table mapping rune index to byte offset,
// with one extra entry for the end of the string.
func runeOffsets(s string) []int {
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	offs = append(offs, len(s))
	return offs
}

// GroupString returns the text of capture group i, or "" when the group
// did not participate in the match.
func GroupString(m *regexp2.Match, i int) string {
	g := m.GroupByNumber(i)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.Captures[len(g.Captures)-1].String()
}
