package grammar

import (
	"fmt"
	"strings"
	"time"
)

// Field identifies one date/time component.
type Field int

const (
	FieldYear  Field = iota
	FieldMonth       // 1-based
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMillisecond
	FieldOffset // timezone offset in signed minutes
	fieldCount
)

// fieldNames maps Field values to their string names.
var fieldNames = [...]string{
	FieldYear:        "year",
	FieldMonth:       "month",
	FieldDay:         "day",
	FieldHour:        "hour",
	FieldMinute:      "minute",
	FieldSecond:      "second",
	FieldMillisecond: "millisecond",
	FieldOffset:      "offset",
}

// String returns the name of the field.
func (f Field) String() string {
	if int(f) >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Components is a sparse record of date/time fields. Any subset may be
// present. A field is either certain (explicitly extracted from the
// input) or implied (inferred from the reference date or a convention);
// the distinction survives into Result so callers can tell "Tuesday"
// with a certain weekday from a bare month reference.
//
// The zero value is an empty record.
type Components struct {
	vals    [fieldCount]int
	known   [fieldCount]bool
	implied [fieldCount]bool
}

// Set records a certain value, replacing any implied one.
func (c *Components) Set(f Field, v int) {
	c.vals[f] = v
	c.known[f] = true
	c.implied[f] = false
}

// Imply records an inferred value unless a certain one is present.
func (c *Components) Imply(f Field, v int) {
	if c.known[f] {
		return
	}
	c.vals[f] = v
	c.implied[f] = true
}

// Get returns the value of f, certain or implied.
func (c Components) Get(f Field) (int, bool) {
	if !c.known[f] && !c.implied[f] {
		return 0, false
	}
	return c.vals[f], true
}

// IsCertain reports whether f was explicitly extracted from the input.
func (c Components) IsCertain(f Field) bool { return c.known[f] }

// Empty reports whether no field is present at all.
func (c Components) Empty() bool {
	for f := Field(0); f < fieldCount; f++ {
		if c.known[f] || c.implied[f] {
			return false
		}
	}
	return true
}

// Time materializes the components against ref. Missing date fields
// default to the reference date; a missing hour defaults to noon so that
// a date-only result cannot drift across a day boundary in nearby
// timezones; minutes and below default to zero. A certain offset places
// the result in the corresponding fixed zone, otherwise ref's location
// is used.
func (c Components) Time(ref time.Time) time.Time {
	get := func(f Field, def int) int {
		if v, ok := c.Get(f); ok {
			return v
		}
		return def
	}
	year := get(FieldYear, ref.Year())
	month := get(FieldMonth, int(ref.Month()))
	day := get(FieldDay, ref.Day())
	hour := get(FieldHour, 12)
	minute := get(FieldMinute, 0)
	sec := get(FieldSecond, 0)
	ms := get(FieldMillisecond, 0)

	loc := ref.Location()
	if off, ok := c.Get(FieldOffset); ok && c.IsCertain(FieldOffset) {
		loc = time.FixedZone(offsetName(off), off*60)
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, ms*int(time.Millisecond), loc)
}

// String returns a debug representation like {year:2024 month:1 day:8?}
// where ? marks implied fields.
func (c Components) String() string {
	var parts []string
	for f := Field(0); f < fieldCount; f++ {
		if v, ok := c.Get(f); ok {
			mark := ""
			if !c.known[f] {
				mark = "?"
			}
			parts = append(parts, fmt.Sprintf("%s:%d%s", f, v, mark))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// offsetName formats a signed minute offset as ±HH:MM for FixedZone.
func offsetName(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
