package match

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Dialect abstracts regex-engine-specific syntax so the same compiled
// alternation can target different engines. Only the pieces the compiler
// needs are modeled.
type Dialect struct {
	WordStart string // assertion preceding a word match
	WordEnd   string // assertion following a word match
}

// Regexp2 targets dlclark/regexp2: lookaround-based Unicode word
// boundaries, which unlike \b treat accented letters as word characters.
var Regexp2 = Dialect{
	WordStart: `(?<![\p{L}\p{N}])`,
	WordEnd:   `(?![\p{L}\p{N}])`,
}

// Stdlib targets Go's regexp package, which has no lookaround; plain \b
// boundaries are the closest available approximation.
var Stdlib = Dialect{WordStart: `\b`, WordEnd: `\b`}

// PatternOptions controls alternation generation.
type PatternOptions struct {
	Dialect          *Dialect // nil means Regexp2
	WordBoundary     bool     // wrap the alternation in word-boundary assertions
	Capture          bool     // make the alternation a capturing group
	CaptureRemainder bool     // capture the alternation and any trailing letters
}

func (o PatternOptions) dialect() *Dialect {
	if o.Dialect == nil {
		return &Regexp2
	}
	return o.Dialect
}

// AnyPattern builds one alternation matching any full item. Longer items
// sort before shorter ones so that a greedy engine cannot truncate a
// match at a shorter alternative that is a prefix of a longer one.
func AnyPattern(items []string, opts PatternOptions) string {
	alts := dedupeSortLongest(items)
	for i, a := range alts {
		alts[i] = regexp.QuoteMeta(a)
	}
	return wrap(strings.Join(alts, "|"), opts)
}

// PartialPattern builds an alternation matching any full item or any
// unambiguous truncated prefix of at least minRunes runes. A prefix is
// unambiguous when exactly one item starts with it; full items are
// always included even when one item is an exact prefix of another.
func PartialPattern(items []string, minRunes int, opts PatternOptions) string {
	if minRunes < 1 {
		minRunes = 1
	}
	set := map[string]bool{}
	uniq := dedupeSortLongest(items)
	for _, item := range uniq {
		set[item] = true
		runes := []rune(item)
		for n := len(runes) - 1; n >= minRunes; n-- {
			prefix := string(runes[:n])
			owners := 0
			for _, other := range uniq {
				if strings.HasPrefix(other, prefix) {
					owners++
				}
			}
			if owners == 1 {
				set[prefix] = true
			}
		}
	}
	alts := make([]string, 0, len(set))
	for a := range set {
		alts = append(alts, a)
	}
	alts = dedupeSortLongest(alts)
	for i, a := range alts {
		alts[i] = regexp.QuoteMeta(a)
	}
	return wrap(strings.Join(alts, "|"), opts)
}

// TriePattern builds a compact alternation by grouping items that share
// common prefixes into nested alternations. Folding is applied per rune
// with the locale rules of tag, and original diacritic variants of the
// same folded letter are absorbed into a single character class at each
// node ("e"/"é" become [eé]).
func TriePattern(tag language.Tag, items []string, opts PatternOptions) string {
	root := newTrieNode()
	for _, item := range items {
		if item == "" {
			continue
		}
		node := root
		for _, r := range item {
			key, ok := foldRune(tag, r)
			if !ok {
				key = r
			}
			child := node.children[key]
			if child == nil {
				child = newTrieNode()
				node.children[key] = child
				node.order = append(node.order, key)
			}
			child.variants[r] = true
			node = child
		}
		node.end = true
	}
	return wrap(root.flatten(), opts)
}

type trieNode struct {
	children map[rune]*trieNode
	order    []rune // folded child runes in insertion order
	variants map[rune]bool
	end      bool
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: map[rune]*trieNode{},
		variants: map[rune]bool{},
	}
}

// flatten renders the subtree below n as an alternation string.
func (n *trieNode) flatten() string {
	alts := make([]string, 0, len(n.order))
	for _, key := range n.order {
		child := n.children[key]
		part := child.class()
		sub := child.flatten()
		switch {
		case sub == "":
			// leaf
		case child.end:
			// A shorter item ends here but longer ones continue:
			// the continuation must stay reachable yet optional.
			part += "(?:" + sub + ")?"
		default:
			part += sub
		}
		alts = append(alts, part)
	}
	if len(alts) == 0 {
		return ""
	}
	if len(alts) == 1 {
		return alts[0]
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

// class renders the node's original rune variants as a literal or a
// character class.
func (n *trieNode) class() string {
	runes := make([]rune, 0, len(n.variants))
	for r := range n.variants {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	if len(runes) == 1 {
		return regexp.QuoteMeta(string(runes[0]))
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range runes {
		if r == ']' || r == '\\' || r == '^' || r == '-' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

// foldRune folds a single rune with the locale rules of tag. Returns
// false when folding expands to more than one rune (e.g. ß → ss); such
// runes key the trie unfolded.
func foldRune(tag language.Tag, r rune) (rune, bool) {
	folded := Fold(tag, string(r))
	if utf8.RuneCountInString(folded) != 1 {
		return r, false
	}
	out, _ := utf8.DecodeRuneInString(folded)
	return out, true
}

// dedupeSortLongest removes duplicates and sorts longest-first, ties
// broken lexicographically for deterministic output.
func dedupeSortLongest(items []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})
	return out
}

// wrap applies capture and word-boundary options around an alternation.
func wrap(alternation string, opts PatternOptions) string {
	d := opts.dialect()
	var b strings.Builder
	if opts.WordBoundary {
		b.WriteString(d.WordStart)
	}
	switch {
	case opts.CaptureRemainder:
		b.WriteString("(")
		b.WriteString(alternation)
		b.WriteString(`)(\p{L}*)`)
	case opts.Capture:
		b.WriteString("(")
		b.WriteString(alternation)
		b.WriteString(")")
	default:
		b.WriteString("(?:")
		b.WriteString(alternation)
		b.WriteString(")")
	}
	if opts.WordBoundary {
		b.WriteString(d.WordEnd)
	}
	return b.String()
}
