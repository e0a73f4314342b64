// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "fmt"

// Get returns the value of field.
func (d *Date) Get(field Field) (int, error) {
	if err := checkField(field); err != nil {
		return 0, err
	}
	switch field {
	case Year:
		return d.year, nil
	case Month:
		return d.month, nil
	case DayOfMonth:
		return d.day, nil
	case DayOfYear:
		return d.sys.DayOfYear(d.year, d.month, d.day), nil
	case WeekOfYear:
		return d.weekOfYear(), nil
	case WeekOfMonth:
		return d.weekOfMonth(), nil
	case DayOfWeekInMonth:
		return d.dayOfWeekInMonth(), nil
	}
	return d.getWallClock(field), nil
}

// MustGet is like Get but panics on error.
func (d *Date) MustGet(field Field) int {
	v, err := d.Get(field)
	if err != nil {
		panic(err)
	}
	return v
}

func settableField(field Field) error {
	if !field.settable() {
		return fmt.Errorf("%v: %w", field, ErrInvalidField)
	}
	return nil
}

// Set sets field to value. Year and Era values are range checked and
// a RangeError is returned for values outside of the field's bounds, in
// which case d is unchanged. Months outside of 0-11 carry into the year,
// which is range checked after the carry.
// DayOfMonth and DayOfYear values outside of the current month or year
// are clamped to the nearest valid day and the excess is then added
// as days, so that setting day 35 of a 31 day month results in the 4th
// of the following month. The time of day fields are normalized as per
// time.Date. ZoneOffset and DSTOffset cannot be set.
func (d *Date) Set(field Field, value int) error {
	if err := settableField(field); err != nil {
		return err
	}
	switch field {
	case Year:
		if err := d.checkRange(Year, value); err != nil {
			return err
		}
		d.setNativeClamped(value, d.month, d.day)
	case Month:
		year := d.year + floorDiv(value, 12)
		if err := d.checkRange(Year, year); err != nil {
			return err
		}
		d.setNativeClamped(year, floorMod(value, 12), d.day)
	case DayOfMonth:
		ml := d.MonthLength()
		switch {
		case value < 1:
			d.setNative(d.year, d.month, 1)
			d.addDays(value - 1)
		case value > ml:
			d.setNative(d.year, d.month, ml)
			d.addDays(value - ml)
		default:
			d.setNative(d.year, d.month, value)
		}
	case DayOfYear:
		yl := d.YearLength()
		limit := min(max(value, 1), yl)
		n := d.sys.DateFromDayOfYear(d.year, limit)
		d.setNative(n.Year, n.Month, n.Day)
		d.addDays(value - limit)
	case WeekOfYear:
		d.setWeek(value, YMD{Year: d.year, Month: 0, Day: 1})
	case WeekOfMonth:
		d.setWeek(value, YMD{Year: d.year, Month: d.month, Day: 1})
	case DayOfWeekInMonth:
		d.setDayOfWeekInMonth(value)
	default:
		return d.setWallClock(field, value)
	}
	return nil
}

// Add adds amount to field, carrying into larger fields as needed. Adding
// weeks or days moves the date by that number of days keeping the time
// of day, adding to the time of day fields moves the absolute time.
// Adding to DayOfWeekInMonth is the same as setting it to its current
// value plus amount, so results below 1 count back from the end of the
// month as per Set.
func (d *Date) Add(field Field, amount int) error {
	if err := settableField(field); err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}
	switch field {
	case Year:
		return d.Set(Year, d.year+amount)
	case Month:
		return d.Set(Month, d.month+amount)
	case DayOfMonth:
		return d.Set(DayOfMonth, d.day+amount)
	case DayOfYear:
		return d.Set(DayOfYear, d.sys.DayOfYear(d.year, d.month, d.day)+amount)
	case WeekOfYear, WeekOfMonth:
		d.addDays(7 * amount)
		return nil
	case DayOfWeekInMonth:
		return d.Set(DayOfWeekInMonth, d.dayOfWeekInMonth()+amount)
	}
	return d.addWallClock(field, amount)
}

// Roll adds amount to field without changing any larger field, values
// wrap around within the current period. Rolling the year clamps the day
// to the length of the resulting month.
func (d *Date) Roll(field Field, amount int) error {
	if err := settableField(field); err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}
	switch field {
	case Year:
		if err := d.checkRange(Year, d.year+amount); err != nil {
			return err
		}
		d.setNativeClamped(d.year+amount, d.month, d.day)
	case Month:
		d.setNativeClamped(d.year, floorMod(d.month+amount, 12), d.day)
	case DayOfMonth:
		d.setNative(d.year, d.month, floorMod(d.day-1+amount, d.MonthLength())+1)
	case DayOfYear:
		doy := d.sys.DayOfYear(d.year, d.month, d.day)
		n := d.sys.DateFromDayOfYear(d.year, floorMod(doy-1+amount, d.YearLength())+1)
		d.setNative(n.Year, n.Month, n.Day)
	case WeekOfYear:
		doy := d.sys.DayOfYear(d.year, d.month, d.day)
		week := d.weekOfYear()
		table := weekTable(doy, week, d.yearWeeks(), d.YearLength())
		n := d.sys.DateFromDayOfYear(d.year, table[floorMod(week-1+amount, len(table))])
		d.setNative(n.Year, n.Month, n.Day)
	case WeekOfMonth:
		week := d.weekOfMonth()
		table := weekTable(d.day, week, d.actualMaximum(WeekOfMonth), d.MonthLength())
		d.setNative(d.year, d.month, table[floorMod(week-1+amount, len(table))])
	case DayOfWeekInMonth:
		table, idx := dayOfWeekInMonthTable(d.day, d.MonthLength())
		d.setNative(d.year, d.month, table[floorMod(idx+amount, len(table))])
	default:
		return d.rollWallClock(field, amount)
	}
	return nil
}

// RollUp rolls field by one if up is true or minus one otherwise.
func (d *Date) RollUp(field Field, up bool) error {
	if up {
		return d.Roll(field, 1)
	}
	return d.Roll(field, -1)
}
