package grammar

import (
	"cmp"
	"slices"
)

// maxMergeGap is the widest byte gap across which a date match and a
// time match are still merged into one datetime result.
const maxMergeGap = 4

// StandardRefiners returns the default refinement chain: overlap
// resolution, date+time merging, forward-date bias.
func StandardRefiners() []Refiner {
	return []Refiner{RefineOverlaps, RefineMergeDateTime, RefineForwardDate}
}

// RefineOverlaps sorts results by start offset ascending, longer match
// first at equal starts, and drops any result overlapping an earlier
// kept one (first-wins).
func RefineOverlaps(_ *Context, results []Result) []Result {
	if len(results) <= 1 {
		return results
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.Index, b.Index); c != 0 {
			return c
		}
		return cmp.Compare(b.Length(), a.Length())
	})
	out := results[:0]
	maxEnd := -1
	for _, r := range results {
		if r.Index >= maxEnd {
			out = append(out, r)
			maxEnd = r.Index + r.Length()
		}
	}
	return out
}

// RefineMergeDateTime combines an adjacent date-only and time-only pair
// ("5 mars 2026 14:30") into a single datetime result when separated by
// at most maxMergeGap bytes.
func RefineMergeDateTime(ctx *Context, results []Result) []Result {
	if len(results) < 2 {
		return results
	}
	out := make([]Result, 0, len(results))
	i := 0
	for i < len(results) {
		if i+1 < len(results) {
			a, b := results[i], results[i+1]
			gap := b.Index - (a.Index + a.Length())
			if gap >= 0 && gap <= maxMergeGap {
				if merged, ok := tryMergeDateTime(ctx, a, b); ok {
					out = append(out, merged)
					i += 2
					continue
				}
			}
		}
		out = append(out, results[i])
		i++
	}
	return out
}

func tryMergeDateTime(ctx *Context, a, b Result) (Result, bool) {
	var dateR, timeR Result
	switch {
	case isDateOnly(a.Start) && isTimeOnly(b.Start):
		dateR, timeR = a, b
	case isTimeOnly(a.Start) && isDateOnly(b.Start):
		timeR, dateR = a, b
	default:
		return Result{}, false
	}

	merged := dateR.Start
	for _, f := range []Field{FieldHour, FieldMinute, FieldSecond, FieldMillisecond, FieldOffset} {
		if v, ok := timeR.Start.Get(f); ok {
			if timeR.Start.IsCertain(f) {
				merged.Set(f, v)
			} else {
				merged.Imply(f, v)
			}
		}
	}

	start := min(a.Index, b.Index)
	end := max(a.Index+a.Length(), b.Index+b.Length())
	return Result{
		Index: start,
		Text:  ctx.Text[start:end],
		Start: merged,
	}, true
}

func isDateOnly(c Components) bool {
	return (c.IsCertain(FieldDay) || c.IsCertain(FieldMonth) || c.IsCertain(FieldYear)) &&
		!c.IsCertain(FieldHour)
}

func isTimeOnly(c Components) bool {
	return c.IsCertain(FieldHour) &&
		!c.IsCertain(FieldDay) && !c.IsCertain(FieldMonth) && !c.IsCertain(FieldYear)
}

// RefineForwardDate moves results with an implied year that resolve
// before the reference date one year forward. Active only under
// Options.ForwardDate.
func RefineForwardDate(ctx *Context, results []Result) []Result {
	if !ctx.Opts.ForwardDate {
		return results
	}
	for i := range results {
		c := &results[i].Start
		// Only calendar results are biased: a time-only match earlier in
		// the reference day must not jump a year.
		if c.IsCertain(FieldYear) || (!c.IsCertain(FieldMonth) && !c.IsCertain(FieldDay)) {
			continue
		}
		if t := c.Time(ctx.Ref); t.Before(ctx.Ref) {
			year, _ := c.Get(FieldYear)
			if year == 0 {
				year = ctx.Ref.Year()
			}
			c.Imply(FieldYear, year+1)
		}
	}
	return results
}
