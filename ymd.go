// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YMD represents a year, month and day triple. The month is zero based,
// ie. 0-11. A YMD is used both for the native date of a calendar system and
// for the proleptic Gregorian date that is used to move between systems.
// Gregorian years are astronomical, so year 0 is 1 BC.
type YMD struct {
	Year  int
	Month int
	Day   int
}

// NewYMD returns a YMD for the specified year, zero based month and day.
func NewYMD(year, month, day int) YMD {
	return YMD{Year: year, Month: month, Day: day}
}

// String returns the date in YYYY-MM-DD format with a one based month.
func (d YMD) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month+1, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as
// or after o. Only meaningful for dates in the same calendar system.
func (d YMD) Compare(o YMD) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	}
	return cmpInt(d.Day, o.Day)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Valid returns true if the month and day are within range for the
// specified calendar system.
func (d YMD) Valid(sys System) bool {
	if d.Month < 0 || d.Month > 11 {
		return false
	}
	return d.Day >= 1 && d.Day <= sys.MonthLength(d.Year, d.Month)
}

const expectedYMDFormats = "YYYY-MM-DD or YYYY/MM/DD"

// ParseYMD parses a date in YYYY-MM-DD or YYYY/MM/DD format, the month is
// one based in the input. A leading '-' denotes a negative (astronomical)
// year. No range checking is performed beyond requiring a month in the
// range 1-12 and a positive day, use Valid to check against a calendar system.
func ParseYMD(val string) (YMD, error) {
	neg := strings.HasPrefix(val, "-")
	if neg {
		val = val[1:]
	}
	sep := "-"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return YMD{}, fmt.Errorf("invalid date %q, expected %s", val, expectedYMDFormats)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return YMD{}, fmt.Errorf("invalid year: %s", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return YMD{}, fmt.Errorf("invalid month: %s", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 {
		return YMD{}, fmt.Errorf("invalid day: %s", parts[2])
	}
	if neg {
		year = -year
	}
	return YMD{Year: year, Month: month - 1, Day: day}, nil
}

// Parse parses val using ParseYMD.
func (d *YMD) Parse(val string) error {
	n, err := ParseYMD(val)
	if err != nil {
		return err
	}
	*d = n
	return nil
}

// normalizeMonth maps a month in the range -11..11 to 0..11 adjusting the
// year for negative values.
func normalizeMonth(d YMD) (YMD, error) {
	if d.Month > 11 || d.Month < -11 {
		return d, fmt.Errorf("month %d: %w", d.Month, ErrInvalidMonth)
	}
	if d.Month < 0 {
		d.Year--
		d.Month += 12
	}
	return d, nil
}

// YMDList is a list of YMD values.
type YMDList []YMD

func (l YMDList) String() string {
	var out strings.Builder
	for i, d := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (l YMDList) Contains(d YMD) bool {
	for _, cd := range l {
		if cd == d {
			return true
		}
	}
	return false
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *YMD) UnmarshalYAML(node *yaml.Node) error {
	return d.Parse(node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (d YMD) MarshalYAML() (any, error) {
	return d.String(), nil
}
