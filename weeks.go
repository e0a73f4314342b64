// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// adjustDayOfWeek returns the offset of w from the first day of the week,
// in the range 0-6.
func (d *Date) adjustDayOfWeek(w Weekday) int {
	return (int(w) - int(d.firstDayOfWeek) + 7) % 7
}

// weekNumber returns the one based week number of the one based day within
// a period (month or year) whose first day has the adjusted day of
// week base.
func weekNumber(day, base int) int {
	n := (base + day) / 7
	if (base+day)%7 > 0 {
		n++
	}
	return n
}

// weekdayOf returns the day of the week of a native date.
func (d *Date) weekdayOf(year, month, day int) Weekday {
	g, _ := d.sys.ToGregorian(YMD{Year: year, Month: month, Day: day})
	return weekdayFromJDN(gregorianToJDN(g))
}

// yearBase returns the adjusted day of week of the first day of the year.
func (d *Date) yearBase(year int) int {
	return d.adjustDayOfWeek(d.weekdayOf(year, 0, 1))
}

// monthBase returns the adjusted day of week of the first day of the month.
func (d *Date) monthBase(year, month int) int {
	return d.adjustDayOfWeek(d.weekdayOf(year, month, 1))
}


// yearWeeks returns the number of weeks that overlap the current year.
func (d *Date) yearWeeks() int {
	return weekNumber(d.sys.YearLength(d.year), d.yearBase(d.year))
}

// weekOfYear returns the week of the year counting from the week that
// contains the first day of the year. The last week of a year may also
// contain the first days of the following year.
func (d *Date) weekOfYear() int {
	return weekNumber(d.sys.DayOfYear(d.year, d.month, d.day), d.yearBase(d.year))
}

// weekOfMonth returns the week of the month counting from the week that
// contains the first day of the month.
func (d *Date) weekOfMonth() int {
	return weekNumber(d.day, d.monthBase(d.year, d.month))
}

// dayOfWeekInMonth returns the ordinal of the current day of the week
// within the month, eg. 2 for the second Tuesday.
func (d *Date) dayOfWeekInMonth() int {
	return (d.day-1)/7 + 1
}

// setWeek moves the date to the specified week of the year or month
// keeping the day of the week. The week is counted from the week that
// contains the anchor, the first day of the period.
func (d *Date) setWeek(value int, anchor YMD) {
	s := d.scratch()
	s.setNative(anchor.Year, anchor.Month, anchor.Day)
	move := (value-1)*7 + d.adjustDayOfWeek(d.Weekday()) - d.adjustDayOfWeek(s.Weekday())
	s.addDays(move)
	d.setNative(s.year, s.month, s.day)
}

// setDayOfWeekInMonth implements Set(DayOfWeekInMonth, value). Positive
// values count from the start of the month, zero is the same day of the
// week in the week before the month starts and negative values count
// back from the end of the month.
func (d *Date) setDayOfWeekInMonth(value int) {
	dow := d.adjustDayOfWeek(d.Weekday())
	s := d.scratch()
	var move int
	switch {
	case value > 0:
		move = (value - d.dayOfWeekInMonth()) * 7
		s.addDays(move)
	case value == 0:
		s.setNative(d.year, d.month, 1)
		move = dow - d.adjustDayOfWeek(s.Weekday())
		if move >= 0 {
			move -= 7
		}
		s.addDays(move)
	default:
		s.setNative(d.year, d.month, d.MonthLength())
		diff := dow - d.adjustDayOfWeek(s.Weekday())
		switch {
		case diff > 0:
			move = diff - 7
		case diff < 0:
			move = diff
		}
		move += 7 * (value + 1)
		s.addDays(move)
	}
	d.setNative(s.year, s.month, s.day)
}

// weekTable returns the days reachable by rolling through the weeks of
// a period of maxDay days, current is the day in week number week and the
// table has weeks entries. Days that would fall outside of the period are
// pinned to its first or last day.
func weekTable(current, week, weeks, maxDay int) []int {
	if week > weeks {
		weeks = week
	}
	table := make([]int, weeks)
	table[week-1] = current
	for i := week; i < weeks; i++ {
		table[i] = min(table[i-1]+7, maxDay)
	}
	for i := week - 2; i >= 0; i-- {
		table[i] = max(table[i+1]-7, 1)
	}
	return table
}

// dayOfWeekInMonthTable returns the days of the month that fall on the
// same day of the week as day and the index of day within them.
func dayOfWeekInMonthTable(day, maxDay int) ([]int, int) {
	first := (day-1)%7 + 1
	var table []int
	for i := first; i <= maxDay; i += 7 {
		table = append(table, i)
	}
	return table, (day - first) / 7
}
