// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// persianSystem implements the arithmetic Solar Hijri calendar using the
// 2820 year grand cycle. The first six months have 31 days, the next five
// have 30 and the last has 29, or 30 in a leap year.
type persianSystem struct{}

const (
	// Julian day number of 1 Farvardin 1.
	persianEpochJDN = 1948321
	// Days in a 2820 year grand cycle.
	daysPer2820Years = 1029983
)

var (
	persianMonthLengths     = []int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
	persianMonthLengthsLeap = []int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30}
	persianDayOfYear        = cumulative(persianMonthLengths)
	persianDayOfYearLeap    = cumulative(persianMonthLengthsLeap)
)

var persianBounds = NewBounds(
	FieldBound{DayOfMonth, 1, 31, 29},
	FieldBound{DayOfYear, 1, 366, 365},
	FieldBound{WeekOfYear, 1, 54, 53},
	FieldBound{WeekOfMonth, 0, 6, 5},
	FieldBound{DayOfWeekInMonth, 1, 5, 5},
)

// IsPersianLeap returns true if year is a leap year in the Persian calendar.
func IsPersianLeap(year int) bool {
	return floorMod((floorMod(year-474, 2820)+474+38)*682, 2816) < 682
}

func (persianSystem) Kind() Kind { return Persian }

func (persianSystem) MonthLength(year, month int) int {
	if !validMonth(month) {
		return 0
	}
	if IsPersianLeap(year) {
		return persianMonthLengthsLeap[month]
	}
	return persianMonthLengths[month]
}

func (persianSystem) YearLength(year int) int {
	if IsPersianLeap(year) {
		return 366
	}
	return 365
}

func (persianSystem) IsLeapYear(year int) bool {
	return IsPersianLeap(year)
}

func (persianSystem) DayOfYear(year, month, day int) int {
	if !validMonth(month) {
		return 0
	}
	return persianDayOfYear[month] + day
}

func (persianSystem) DateFromDayOfYear(year, doy int) YMD {
	if IsPersianLeap(year) {
		return dateFromCumulative(year, doy, persianDayOfYearLeap)
	}
	return dateFromCumulative(year, doy, persianDayOfYear)
}

// persianYearStart returns the Julian day number of 1 Farvardin of year.
func persianYearStart(year int) int {
	base := year - 474
	cycleYear := 474 + floorMod(base, 2820)
	return floorDiv(cycleYear*682-110, 2816) +
		(cycleYear-1)*365 +
		floorDiv(base, 2820)*daysPer2820Years +
		persianEpochJDN
}

func persianToJDN(d YMD) int {
	return persianYearStart(d.Year) + persianDayOfYear[d.Month] + d.Day - 1
}

func jdnToPersian(jdn int) YMD {
	year := floorDiv((jdn-persianEpochJDN)*2820, daysPer2820Years) + 1
	for persianYearStart(year) > jdn {
		year--
	}
	for persianYearStart(year+1) <= jdn {
		year++
	}
	return persianSystem{}.DateFromDayOfYear(year, jdn-persianYearStart(year)+1)
}

func (persianSystem) ToGregorian(native YMD) (YMD, error) {
	native, err := normalizeMonth(native)
	if err != nil {
		return native, err
	}
	return jdnToGregorian(persianToJDN(native)), nil
}

func (persianSystem) FromGregorian(gregorian YMD) (YMD, error) {
	gregorian, err := normalizeMonth(gregorian)
	if err != nil {
		return gregorian, err
	}
	return jdnToPersian(gregorianToJDN(gregorian)), nil
}

func (persianSystem) FirstDayOfWeek() Weekday { return Saturday }

func (persianSystem) Bounds() *Bounds { return persianBounds }
