// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// System describes the arithmetic of a single calendar system. Implementations
// are stateless and safe for concurrent use. All months are zero based.
type System interface {
	Kind() Kind
	MonthLength(year, month int) int
	YearLength(year int) int
	IsLeapYear(year int) bool
	// DayOfYear returns the one based ordinal of the date within its year.
	DayOfYear(year, month, day int) int
	// DateFromDayOfYear is the inverse of DayOfYear.
	DateFromDayOfYear(year, dayOfYear int) YMD
	// ToGregorian converts a native date to the proleptic Gregorian calendar.
	ToGregorian(native YMD) (YMD, error)
	// FromGregorian converts a proleptic Gregorian date to a native date.
	FromGregorian(gregorian YMD) (YMD, error)
	FirstDayOfWeek() Weekday
	Bounds() *Bounds
}

// Kind identifies a calendar system.
type Kind int

const (
	Civil Kind = iota
	Persian
	Hijri
	Japanese
)

var kindNames = []string{"civil", "persian", "hijri", "japanese"}

func (k Kind) String() string {
	if k < Civil || k > Japanese {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses the name of a calendar system, case is ignored and
// "gregorian" is accepted for Civil.
func ParseKind(val string) (Kind, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if lc == "gregorian" {
		return Civil, nil
	}
	for i, n := range kindNames {
		if n == lc {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", val, ErrInvalidKind)
}

// Parse parses val using ParseKind.
func (k *Kind) Parse(val string) error {
	n, err := ParseKind(val)
	if err != nil {
		return err
	}
	*k = n
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	return k.Parse(node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

var systems = []System{civilSystem{}, persianSystem{}, hijriSystem{}, japaneseSystem{}}

// System returns the System for k, it panics for an undefined Kind.
func (k Kind) System() System {
	return systems[k]
}

// LookupSystem returns the System for k.
func LookupSystem(k Kind) (System, error) {
	if k < Civil || k > Japanese {
		return nil, fmt.Errorf("%v: %w", k, ErrInvalidKind)
	}
	return systems[k], nil
}

// Bounds holds the minimum, maximum and least maximum values for each
// field. A zero entry in the set array means that the Gregorian default
// is to be used.
type Bounds struct {
	set          [FieldCount]bool
	minimum      [FieldCount]int
	maximum      [FieldCount]int
	leastMaximum [FieldCount]int
}

// FieldBound holds the bounds for a single field.
type FieldBound struct {
	Field                      Field
	Minimum, Maximum, LeastMax int
}

// NewBounds returns a Bounds with the specified overrides.
func NewBounds(overrides ...FieldBound) *Bounds {
	b := &Bounds{}
	for _, o := range overrides {
		b.set[o.Field] = true
		b.minimum[o.Field] = o.Minimum
		b.maximum[o.Field] = o.Maximum
		b.leastMaximum[o.Field] = o.LeastMax
	}
	return b
}

// MinYear and MaxYear are the range of years supported for every
// calendar system.
const (
	MinYear = -999999
	MaxYear = 999999
)

var gregorianBounds = NewBounds(
	FieldBound{Era, 0, 1, 1},
	FieldBound{Year, MinYear, MaxYear, MaxYear},
	FieldBound{Month, 0, 11, 11},
	FieldBound{WeekOfYear, 1, 54, 53},
	FieldBound{WeekOfMonth, 0, 6, 4},
	FieldBound{DayOfMonth, 1, 31, 28},
	FieldBound{DayOfYear, 1, 366, 365},
	FieldBound{DayOfWeek, 1, 7, 7},
	FieldBound{DayOfWeekInMonth, 1, 5, 4},
	FieldBound{AMPM, 0, 1, 1},
	FieldBound{Hour, 0, 11, 11},
	FieldBound{HourOfDay, 0, 23, 23},
	FieldBound{Minute, 0, 59, 59},
	FieldBound{Second, 0, 59, 59},
	FieldBound{Millisecond, 0, 999, 999},
	FieldBound{ZoneOffset, -13 * 3600 * 1000, 14 * 3600 * 1000, 14 * 3600 * 1000},
	FieldBound{DSTOffset, 0, 2 * 3600 * 1000, 20 * 60 * 1000},
)

// Minimum returns the minimum for f, falling back to the Gregorian default.
func (b *Bounds) Minimum(f Field) int {
	if b.set[f] {
		return b.minimum[f]
	}
	return gregorianBounds.minimum[f]
}

// Maximum returns the maximum for f, falling back to the Gregorian default.
func (b *Bounds) Maximum(f Field) int {
	if b.set[f] {
		return b.maximum[f]
	}
	return gregorianBounds.maximum[f]
}

// LeastMaximum returns the least maximum for f, falling back to the
// Gregorian default.
func (b *Bounds) LeastMaximum(f Field) int {
	if b.set[f] {
		return b.leastMaximum[f]
	}
	return gregorianBounds.leastMaximum[f]
}

// validMonth returns true for a zero based month, ie. 0-11.
func validMonth(month int) bool {
	return month >= 0 && month < 12
}

// cumulative returns the per month cumulative day counts for a table of
// month lengths, the result has 13 entries.
func cumulative(lengths []int) []int {
	r := make([]int, 13)
	for i, l := range lengths {
		r[i+1] = r[i] + l
	}
	return r
}

// dateFromCumulative finds the month and day for a one based day of year
// using a cumulative month length table. Values outside of the year are
// pinned to its first or last day.
func dateFromCumulative(year, doy int, agg []int) YMD {
	if doy < 1 {
		return YMD{Year: year, Month: 0, Day: 1}
	}
	if doy > agg[12] {
		return YMD{Year: year, Month: 11, Day: agg[12] - agg[11]}
	}
	month := 0
	for month < 11 && doy > agg[month+1] {
		month++
	}
	return YMD{Year: year, Month: month, Day: doy - agg[month]}
}
