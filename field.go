// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strings"
	"time"
)

// Field identifies a calendar field. The order of the fields is fixed.
type Field int

const (
	Era Field = iota
	Year
	Month
	WeekOfYear
	WeekOfMonth
	DayOfMonth
	DayOfYear
	DayOfWeek
	DayOfWeekInMonth
	AMPM
	Hour
	HourOfDay
	Minute
	Second
	Millisecond
	ZoneOffset
	DSTOffset
	FieldCount int = iota
)

var fieldNames = [FieldCount]string{
	"ERA",
	"YEAR",
	"MONTH",
	"WEEK_OF_YEAR",
	"WEEK_OF_MONTH",
	"DAY_OF_MONTH",
	"DAY_OF_YEAR",
	"DAY_OF_WEEK",
	"DAY_OF_WEEK_IN_MONTH",
	"AM_PM",
	"HOUR",
	"HOUR_OF_DAY",
	"MINUTE",
	"SECOND",
	"MILLISECOND",
	"ZONE_OFFSET",
	"DST_OFFSET",
}

// Valid returns true if f is one of the defined fields.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < FieldCount
}

// settable returns true for the fields that may be set or rolled,
// ZoneOffset and DSTOffset are read-only.
func (f Field) settable() bool {
	return f >= Era && f <= Millisecond
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// FieldName returns the name of the field with the specified index.
func FieldName(index int) (string, error) {
	if index < 0 || index >= FieldCount {
		return "", fmt.Errorf("field index %d: %w", index, ErrInvalidField)
	}
	return fieldNames[index], nil
}

// ParseField parses a field name such as DAY_OF_MONTH or day_of_month.
func ParseField(val string) (Field, error) {
	uc := strings.ToUpper(strings.TrimSpace(val))
	for i, n := range fieldNames {
		if n == uc {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", val, ErrInvalidField)
}

// Style determines which set of display names is used for a field.
type Style int

const (
	AllStyles Style = iota
	Short
	Long
)

func (s Style) valid() bool {
	return s >= AllStyles && s <= Long
}

func (s Style) String() string {
	switch s {
	case AllStyles:
		return "all"
	case Short:
		return "short"
	case Long:
		return "long"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Weekday is a day of the week as used for the DAY_OF_WEEK field, Sunday
// is 1 and Saturday is 7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid returns true for Sunday through Saturday.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// WeekdayFromTime converts a time.Weekday to a Weekday.
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday(w) + 1
}

// Time returns the time.Weekday for w.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(w - 1)
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return w.Time().String()
}

// Era values as returned for the ERA field.
const (
	BC = 0
	AD = 1
)

// AM/PM values as returned for the AM_PM field.
const (
	AM = 0
	PM = 1
)
