// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "time"

// The era, day of the week, time of day and zone fields are derived from
// the absolute time in the Date's location rather than from the native
// calendar date.

func (d *Date) getWallClock(field Field) int {
	t := d.Time()
	switch field {
	case Era:
		if t.Year() <= 0 {
			return BC
		}
		return AD
	case DayOfWeek:
		return int(WeekdayFromTime(t.Weekday()))
	case AMPM:
		if t.Hour() >= 12 {
			return PM
		}
		return AM
	case Hour:
		return t.Hour() % 12
	case HourOfDay:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Millisecond:
		return t.Nanosecond() / int(time.Millisecond)
	case ZoneOffset:
		return standardOffset(t) * 1000
	case DSTOffset:
		_, offset := t.Zone()
		return (offset - standardOffset(t)) * 1000
	}
	return 0
}

// standardOffset returns the offset, in seconds, from UTC of the standard
// time in effect at t. When t is in daylight saving time the standard
// offset is found by looking six months either side of t.
func standardOffset(t time.Time) int {
	_, offset := t.Zone()
	if !t.IsDST() {
		return offset
	}
	for _, months := range []int{-6, 6} {
		p := t.AddDate(0, months, 0)
		if !p.IsDST() {
			_, std := p.Zone()
			return std
		}
	}
	return offset
}

// setClock sets the wall clock time of day of the calendar day of t,
// out of range values are normalized as per time.Date.
func (d *Date) setClock(t time.Time, hour, minute, second, millis int) {
	nt := time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, millis*int(time.Millisecond), d.loc)
	d.millis = nt.UnixMilli()
	d.invalidate()
}

func (d *Date) setWallClock(field Field, value int) error {
	t := d.Time()
	h, m, s, ms := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond)
	switch field {
	case Era:
		if err := d.checkRange(Era, value); err != nil {
			return err
		}
		if value == d.getWallClock(Era) {
			return nil
		}
		// Keep the year of era and move to the other era.
		year := 1 - t.Year()
		nt := time.Date(year, t.Month(), t.Day(), h, m, s, t.Nanosecond(), d.loc)
		d.millis = nt.UnixMilli()
		d.invalidate()
		return nil
	case DayOfWeek:
		q := floorDiv(value-1, 7)
		r := Weekday(value - 7*q)
		d.addDays(d.adjustDayOfWeek(r) + 7*q - d.adjustDayOfWeek(d.Weekday()))
		return nil
	case AMPM:
		h = h%12 + 12*value
	case Hour:
		h = 12*(h/12) + value
	case HourOfDay:
		h = value
	case Minute:
		m = value
	case Second:
		s = value
	case Millisecond:
		ms = value
	}
	d.setClock(t, h, m, s, ms)
	return nil
}

// fieldUnits is the duration of one unit of the time of day fields.
var fieldUnits = map[Field]time.Duration{
	AMPM:        12 * time.Hour,
	Hour:        time.Hour,
	HourOfDay:   time.Hour,
	Minute:      time.Minute,
	Second:      time.Second,
	Millisecond: time.Millisecond,
}

func (d *Date) addWallClock(field Field, amount int) error {
	switch field {
	case Era:
		return d.setWallClock(Era, d.getWallClock(Era)+amount)
	case DayOfWeek:
		d.addDays(amount)
		return nil
	}
	d.millis += int64(amount) * fieldUnits[field].Milliseconds()
	d.invalidate()
	return nil
}

func (d *Date) rollWallClock(field Field, amount int) error {
	t := d.Time()
	h, m, s, ms := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond)
	switch field {
	case Era:
		return d.setWallClock(Era, floorMod(d.getWallClock(Era)+amount, 2))
	case DayOfWeek:
		if amount%7 == 0 {
			return nil
		}
		cur := d.adjustDayOfWeek(d.Weekday())
		d.addDays(floorMod(cur+amount, 7) - cur)
		return nil
	case AMPM:
		h = floorMod(h+12*amount, 24)
	case Hour:
		h = 12*(h/12) + floorMod(h%12+amount, 12)
	case HourOfDay:
		h = floorMod(h+amount, 24)
	case Minute:
		m = floorMod(m+amount, 60)
	case Second:
		s = floorMod(s+amount, 60)
	case Millisecond:
		ms = floorMod(ms+amount, 1000)
	}
	d.setClock(t, h, m, s, ms)
	return nil
}
