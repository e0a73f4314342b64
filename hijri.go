// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// hijriSystem implements the tabular Islamic calendar using the 30 year
// cycle with 11 leap years. Months alternate between 30 and 29 days with
// the last month having 30 days in a leap year.
type hijriSystem struct{}

// Julian day number of 1 Muharram 1.
const hijriEpochJDN = 1948440

var (
	hijriMonthLengths     = []int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29}
	hijriMonthLengthsLeap = []int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 30}
	hijriDayOfYear        = cumulative(hijriMonthLengths)
	hijriDayOfYearLeap    = cumulative(hijriMonthLengthsLeap)
)

var hijriBounds = NewBounds(
	FieldBound{DayOfMonth, 1, 30, 29},
	FieldBound{DayOfYear, 1, 355, 354},
	FieldBound{WeekOfYear, 1, 52, 51},
	FieldBound{WeekOfMonth, 0, 6, 5},
	FieldBound{DayOfWeekInMonth, 1, 5, 5},
)

// IsHijriLeap returns true if year is a leap year in the tabular Islamic
// calendar.
func IsHijriLeap(year int) bool {
	if year < 0 {
		year = -year
	}
	return (14+11*year)%30 < 11
}

func (hijriSystem) Kind() Kind { return Hijri }

func (hijriSystem) MonthLength(year, month int) int {
	if !validMonth(month) {
		return 0
	}
	if IsHijriLeap(year) {
		return hijriMonthLengthsLeap[month]
	}
	return hijriMonthLengths[month]
}

func (hijriSystem) YearLength(year int) int {
	if IsHijriLeap(year) {
		return 355
	}
	return 354
}

func (hijriSystem) IsLeapYear(year int) bool {
	return IsHijriLeap(year)
}

func (hijriSystem) DayOfYear(year, month, day int) int {
	if !validMonth(month) {
		return 0
	}
	return hijriDayOfYear[month] + day
}

func (hijriSystem) DateFromDayOfYear(year, doy int) YMD {
	if IsHijriLeap(year) {
		return dateFromCumulative(year, doy, hijriDayOfYearLeap)
	}
	return dateFromCumulative(year, doy, hijriDayOfYear)
}

// hijriYearStart returns the Julian day number of 1 Muharram of year.
// Years before 1 are counted so that the leap rule applies to the absolute
// value of the year.
func hijriYearStart(year int) int {
	if year >= 1 {
		return hijriEpochJDN + (year-1)*354 + floorDiv(3+11*year, 30)
	}
	return hijriEpochJDN - 354*(1-year) - (14+11*(-year))/30
}

func hijriToJDN(d YMD) int {
	return hijriYearStart(d.Year) + hijriDayOfYear[d.Month] + d.Day - 1
}

func jdnToHijri(jdn int) YMD {
	year := floorDiv((jdn-hijriEpochJDN)*30, 10631) + 1
	for hijriYearStart(year) > jdn {
		year--
	}
	for hijriYearStart(year+1) <= jdn {
		year++
	}
	return hijriSystem{}.DateFromDayOfYear(year, jdn-hijriYearStart(year)+1)
}

func (hijriSystem) ToGregorian(native YMD) (YMD, error) {
	native, err := normalizeMonth(native)
	if err != nil {
		return native, err
	}
	return jdnToGregorian(hijriToJDN(native)), nil
}

func (hijriSystem) FromGregorian(gregorian YMD) (YMD, error) {
	gregorian, err := normalizeMonth(gregorian)
	if err != nil {
		return gregorian, err
	}
	return jdnToHijri(gregorianToJDN(gregorian)), nil
}

func (hijriSystem) FirstDayOfWeek() Weekday { return Saturday }

func (hijriSystem) Bounds() *Bounds { return hijriBounds }
