// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "fmt"

func checkField(f Field) error {
	if !f.Valid() {
		return fmt.Errorf("%v: %w", f, ErrInvalidField)
	}
	return nil
}

// Minimum returns the smallest value that field can take in any year.
func (d *Date) Minimum(field Field) (int, error) {
	if err := checkField(field); err != nil {
		return 0, err
	}
	return d.sys.Bounds().Minimum(field), nil
}

// Maximum returns the largest value that field can take in any year.
func (d *Date) Maximum(field Field) (int, error) {
	if err := checkField(field); err != nil {
		return 0, err
	}
	return d.sys.Bounds().Maximum(field), nil
}

// GreatestMinimum returns the largest minimum for field, which is the
// same as its Minimum for all of the supported calendars.
func (d *Date) GreatestMinimum(field Field) (int, error) {
	return d.Minimum(field)
}

// LeastMaximum returns the smallest maximum that field can take,
// eg. 28 for the DayOfMonth of the Civil calendar.
func (d *Date) LeastMaximum(field Field) (int, error) {
	if err := checkField(field); err != nil {
		return 0, err
	}
	return d.sys.Bounds().LeastMaximum(field), nil
}

// ActualMinimum returns the minimum for field given the current date,
// which is the same as its Minimum for all of the supported calendars.
func (d *Date) ActualMinimum(field Field) (int, error) {
	return d.Minimum(field)
}

// ActualMaximum returns the maximum for field given the current date,
// eg. the length of the current month for DayOfMonth.
func (d *Date) ActualMaximum(field Field) (int, error) {
	if err := checkField(field); err != nil {
		return 0, err
	}
	return d.actualMaximum(field), nil
}

func (d *Date) actualMaximum(field Field) int {
	switch field {
	case WeekOfYear:
		return d.yearWeeks()
	case WeekOfMonth:
		return weekNumber(d.MonthLength(), d.monthBase(d.year, d.month))
	case DayOfMonth:
		return d.MonthLength()
	case DayOfYear:
		return d.YearLength()
	case DayOfWeekInMonth:
		return (d.MonthLength()-1)/7 + 1
	}
	return d.sys.Bounds().Maximum(field)
}

func (d *Date) checkRange(field Field, value int) error {
	b := d.sys.Bounds()
	if lo, hi := b.Minimum(field), b.Maximum(field); value < lo || value > hi {
		return &RangeError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}
