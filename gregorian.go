// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 13)
	dayOfYearLeap = make([]int, 13)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 12; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given (proleptic Gregorian) year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// floorDiv and floorMod implement division that rounds towards negative
// infinity, all of the day count arithmetic relies on them for years
// before the various epochs.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Days in a given period of years.
const (
	daysPer400Years = 146097
	daysPer4Years   = 1461

	// Julian day number of 1970-01-01.
	unixEpochJDN = 2440588
	// Offset from 0000-03-01 to 1970-01-01.
	civilEpochShift = 719468
)

// daysFromCivil returns the number of days since 1970-01-01 for the
// proleptic Gregorian date with a zero based month.
func daysFromCivil(year, month, day int) int {
	m := month + 1
	if m <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - civilEpochShift
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int) YMD {
	z := days + civilEpochShift
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/(daysPer4Years-1) + doe/36524 - doe/(daysPer400Years-1)) / 365
	year := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 2
	if mp >= 10 {
		month = mp - 10
	}
	if month <= 1 {
		year++
	}
	return YMD{Year: year, Month: month, Day: day}
}

// gregorianToJDN returns the Julian day number of the proleptic
// Gregorian date.
func gregorianToJDN(g YMD) int {
	return daysFromCivil(g.Year, g.Month, g.Day) + unixEpochJDN
}

// jdnToGregorian returns the proleptic Gregorian date for the Julian
// day number.
func jdnToGregorian(jdn int) YMD {
	return civilFromDays(jdn - unixEpochJDN)
}

// weekdayFromJDN returns the day of the week for a Julian day number.
func weekdayFromJDN(jdn int) Weekday {
	// JDN 0 was a Monday.
	return Weekday(floorMod(jdn+1, 7) + 1)
}

// JulianDayNumber returns the Julian day number of a proleptic Gregorian
// date, the month may be outside of 0-11 and the day outside of the month.
func JulianDayNumber(gregorian YMD) int {
	return gregorianToJDN(gregorian)
}

// GregorianFromJulianDay returns the proleptic Gregorian date for a Julian
// day number.
func GregorianFromJulianDay(jdn int) YMD {
	return jdnToGregorian(jdn)
}
