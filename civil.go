// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// civilSystem implements the proleptic Gregorian calendar, conversion
// to and from the Gregorian calendar is the identity.
type civilSystem struct{}

var civilBounds = NewBounds(
	FieldBound{DayOfMonth, 1, 31, 28},
	FieldBound{DayOfYear, 1, 366, 365},
	FieldBound{WeekOfYear, 1, 54, 53},
	FieldBound{WeekOfMonth, 0, 6, 4},
	FieldBound{DayOfWeekInMonth, 1, 5, 4},
)

func (civilSystem) Kind() Kind { return Civil }

func (civilSystem) MonthLength(year, month int) int {
	if !validMonth(month) {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month]
	}
	return daysInMonth[month]
}

func (civilSystem) YearLength(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func (civilSystem) IsLeapYear(year int) bool {
	return IsLeap(year)
}

func (civilSystem) DayOfYear(year, month, day int) int {
	if !validMonth(month) {
		return 0
	}
	if IsLeap(year) {
		return dayOfYearLeap[month] + day
	}
	return dayOfYear[month] + day
}

func (civilSystem) DateFromDayOfYear(year, doy int) YMD {
	if IsLeap(year) {
		return dateFromCumulative(year, doy, dayOfYearLeap)
	}
	return dateFromCumulative(year, doy, dayOfYear)
}

func (civilSystem) ToGregorian(native YMD) (YMD, error) {
	return normalizeMonth(native)
}

func (civilSystem) FromGregorian(gregorian YMD) (YMD, error) {
	return normalizeMonth(gregorian)
}

func (civilSystem) FirstDayOfWeek() Weekday { return Sunday }

func (civilSystem) Bounds() *Bounds { return civilBounds }
