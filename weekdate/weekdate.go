// Package weekdate implements ISO 8601 week-date arithmetic and
// relative-weekday resolution.
//
// Three groups of primitives are provided:
//
//   - ISOWeek / DateFromWeek: week-number computation and its inverse,
//     including 52/53-week years and dates whose ISO year differs from
//     their calendar year.
//   - Resolve: "next Tuesday" style weekday resolution with explicit
//     next-week bias semantics (see Relation).
//   - MostLikelyYear / ParseTzd: two-digit year disambiguation and
//     timezone designator parsing.
//
// All functions are pure and safe for concurrent use by multiple
// goroutines.
package weekdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const daysPerWeek = 7

// ISOWeek returns the ISO 8601 week-year and week number of t: week 1 is
// the week containing the year's first Thursday, weeks run Monday–Sunday.
// A late-December date can belong to week 1 of the following ISO year and
// an early-January date to week 52/53 of the previous one.
func ISOWeek(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// DateFromWeek returns the date (midnight UTC) of the given weekday in
// the given ISO week. jsWeekday uses the Sunday=0 convention; week is
// 1-based. The calendar year of the result may legitimately differ from
// year: week 1 can start in the previous Gregorian year and week 52/53
// can end in the next one.
func DateFromWeek(year, week, jsWeekday int) time.Time {
	// January 4th always falls in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	backToMonday := mondayOffset(jan4.Weekday())
	weekMonday := jan4.AddDate(0, 0, -backToMonday+daysPerWeek*(week-1))
	// Sunday=0 to Monday=0.
	target := (jsWeekday + 6) % daysPerWeek
	return weekMonday.AddDate(0, 0, target)
}

// mondayOffset returns the number of days from the preceding Monday to wd.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % daysPerWeek
}

// Relation qualifies how a weekday reference is resolved against the
// reference date.
type Relation int

const (
	// OfPreviousWeek is the target weekday within the previous calendar
	// week, whatever its distance from the reference date.
	OfPreviousWeek Relation = iota

	// OfCurrentWeek is the target weekday within the current calendar
	// week; it may lie before or after the reference date.
	OfCurrentWeek

	// OfNextWeek is the target weekday within the next calendar week.
	// It can land fewer than 7 days ahead, or — for week conventions
	// where the target precedes the reference weekday — even behind a
	// naive "next occurrence" expectation. That is the intended meaning:
	// "that weekday, considered within next week".
	OfNextWeek

	// NextOccurring is the next date strictly after the reference whose
	// weekday matches. On the target weekday itself it yields next
	// week's occurrence, never today.
	NextOccurring

	// PreviousOccurring is the symmetric past resolution. On the target
	// weekday itself it yields last week's occurrence.
	PreviousOccurring
)

// relationNames maps Relation values to their string names.
var relationNames = [...]string{
	OfPreviousWeek:    "OfPreviousWeek",
	OfCurrentWeek:     "OfCurrentWeek",
	OfNextWeek:        "OfNextWeek",
	NextOccurring:     "NextOccurring",
	PreviousOccurring: "PreviousOccurring",
}

// String returns the name of the relation.
func (r Relation) String() string {
	if int(r) >= 0 && int(r) < len(relationNames) {
		return relationNames[r]
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Resolve returns the date (midnight, in from's location) of the target
// weekday under the given relation. target uses the Sunday=0 convention
// and accepts 0–7, with 7 treated as Sunday. weekStart is the locale's
// first day of week, used by the Of*Week relations.
//
// Returns ok=false for a target outside 0–7 or an unknown relation;
// absence of a result means no relative-day interpretation applies.
func Resolve(target int, rel Relation, from time.Time, weekStart time.Weekday) (time.Time, bool) {
	if target < 0 || target > 7 {
		return time.Time{}, false
	}
	target %= daysPerWeek

	switch rel {
	case NextOccurring:
		days := 1 + (daysPerWeek+target-(int(from.Weekday())+1)%daysPerWeek)%daysPerWeek
		return midnight(from.AddDate(0, 0, days)), true

	case PreviousOccurring:
		pivot := (int(from.Weekday()) + daysPerWeek - 1) % daysPerWeek
		days := 1 + (daysPerWeek+pivot-target)%daysPerWeek
		return midnight(from.AddDate(0, 0, -days)), true

	case OfPreviousWeek, OfCurrentWeek, OfNextWeek:
		weekOffset := map[Relation]int{OfPreviousWeek: -1, OfCurrentWeek: 0, OfNextWeek: 1}[rel]
		start := startOfWeek(from, weekStart)
		inWeek := (target - int(weekStart) + daysPerWeek) % daysPerWeek
		return midnight(start.AddDate(0, 0, weekOffset*daysPerWeek+inWeek)), true

	default:
		return time.Time{}, false
	}
}

// startOfWeek returns midnight of the first day of the week containing t.
func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + daysPerWeek) % daysPerWeek
	return midnight(t.AddDate(0, 0, -back))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MostLikelyYear disambiguates small numeric years: two-digit values pivot
// at 50 (00–49 → 2000s, 50–99 → 1900s). Three or more digits and negative
// values pass through unchanged.
func MostLikelyYear(raw int) int {
	if raw < 0 || raw >= 100 {
		return raw
	}
	if raw < 50 {
		return raw + 2000
	}
	return raw + 1900
}

// ParseTzd parses a timezone designator: "Z" (UTC) or ±HH[:MM], returning
// the signed offset in minutes. Minutes always take the sign of the hour
// component.
func ParseTzd(s string) (minutes int, ok bool) {
	if s == "Z" || s == "z" {
		return 0, true
	}
	if len(s) < 3 {
		return 0, false
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	rest := s[1:]
	var hourStr, minStr string
	switch {
	case strings.Contains(rest, ":"):
		parts := strings.SplitN(rest, ":", 2)
		hourStr, minStr = parts[0], parts[1]
	case len(rest) == 4:
		hourStr, minStr = rest[:2], rest[2:]
	default:
		hourStr, minStr = rest, "0"
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(minStr)
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	return sign * (hour*60 + mins), true
}
