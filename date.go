// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides dates that can be read and manipulated in
// the Civil (proleptic Gregorian), Persian (Solar Hijri), Hijri (tabular
// Islamic) and Japanese calendars.
//
// A Date pairs an absolute point in time, milliseconds since the Unix
// epoch in a given location, with the year, month and day of that time
// in its calendar system. Fields may be read, set, added to and rolled
// in the manner of a traditional field based calendar API and the
// absolute time is kept in sync with the native date after every
// mutation. Months are zero based throughout.
package calendars

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Date is a point in time as viewed in a specific calendar system. It is
// mutable and not safe for concurrent use, callers that share a Date
// across goroutines must provide their own locking.
type Date struct {
	millis         int64
	loc            *time.Location
	sys            System
	firstDayOfWeek Weekday
	locale         language.Tag
	names          Names

	// native date, always derived from millis and loc.
	year, month, day int
}

type options struct {
	locale         language.Tag
	firstDayOfWeek Weekday
	names          Names
}

// Option represents an option for use when creating a Date.
type Option func(o *options)

// WithLocale sets the locale used for display names when no locale
// is supplied explicitly.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithFirstDayOfWeek overrides the calendar system's default first day
// of the week.
func WithFirstDayOfWeek(w Weekday) Option {
	return func(o *options) {
		o.firstDayOfWeek = w
	}
}

// WithNames sets the source of display names, see the names package.
func WithNames(n Names) Option {
	return func(o *options) {
		o.names = n
	}
}

// New returns a new Date in the calendar system specified by kind for the
// specified time in milliseconds since the Unix epoch. A nil location is
// treated as UTC. New panics if kind is not one of the defined calendar
// systems.
func New(kind Kind, millis int64, loc *time.Location, opts ...Option) *Date {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if loc == nil {
		loc = time.UTC
	}
	sys := kind.System()
	d := &Date{
		millis:         millis,
		loc:            loc,
		sys:            sys,
		firstDayOfWeek: sys.FirstDayOfWeek(),
		locale:         o.locale,
		names:          o.names,
	}
	if o.firstDayOfWeek.Valid() {
		d.firstDayOfWeek = o.firstDayOfWeek
	}
	d.invalidate()
	return d
}

// FromTime returns a new Date for t in t's location.
func FromTime(kind Kind, t time.Time, opts ...Option) *Date {
	return New(kind, t.UnixMilli(), t.Location(), opts...)
}

// Now returns a new Date for the current time in the local time zone.
func Now(kind Kind, opts ...Option) *Date {
	return FromTime(kind, time.Now(), opts...)
}

// scratch returns a new Date in the same calendar system, location and
// time of day as d for use in intermediate computations.
func (d *Date) scratch() *Date {
	s := *d
	return &s
}

// invalidate recomputes the native date from the absolute time.
func (d *Date) invalidate() {
	t := d.Time()
	// The month is always in range so the conversion cannot fail.
	n, _ := d.sys.FromGregorian(YMD{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()})
	d.year, d.month, d.day = n.Year, n.Month, n.Day
}

// store recomputes the absolute time from the native date keeping the
// current wall clock time of day.
func (d *Date) store() {
	g, err := d.sys.ToGregorian(YMD{Year: d.year, Month: d.month, Day: d.day})
	if err != nil {
		// The engine only ever stores normalized native dates.
		panic(fmt.Sprintf("calendars: failed to store %v: %v", YMD{d.year, d.month, d.day}, err))
	}
	t := d.Time()
	nt := time.Date(g.Year, time.Month(g.Month+1), g.Day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), d.loc)
	d.millis = nt.UnixMilli()
	d.invalidate()
}

// setNative sets the native date, the month and day must be in range.
func (d *Date) setNative(year, month, day int) {
	d.year, d.month, d.day = year, month, day
	d.store()
}

// setNativeClamped sets the native date clamping the day to the length of
// the month.
func (d *Date) setNativeClamped(year, month, day int) {
	if ml := d.sys.MonthLength(year, month); day > ml {
		day = ml
	}
	d.setNative(year, month, day)
}

// addDays moves the date by the specified number of days keeping the
// wall clock time of day.
func (d *Date) addDays(days int) {
	if days == 0 {
		return
	}
	t := d.Time()
	nt := time.Date(t.Year(), t.Month(), t.Day()+days, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), d.loc)
	d.millis = nt.UnixMilli()
	d.invalidate()
}

// Kind returns the calendar system of d.
func (d *Date) Kind() Kind {
	return d.sys.Kind()
}

// System returns the calendar system implementation used by d.
func (d *Date) System() System {
	return d.sys
}

// Year returns the native year, years before the calendar's epoch are
// zero or negative.
func (d *Date) Year() int {
	return d.year
}

// Month returns the native, zero based, month.
func (d *Date) Month() int {
	return d.month
}

// DayOfMonth returns the native day of the month.
func (d *Date) DayOfMonth() int {
	return d.day
}

// YMD returns the native year, month and day.
func (d *Date) YMD() YMD {
	return YMD{Year: d.year, Month: d.month, Day: d.day}
}

// Gregorian returns the proleptic Gregorian date of d.
func (d *Date) Gregorian() YMD {
	t := d.Time()
	return YMD{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// Millis returns the time as milliseconds since the Unix epoch.
func (d *Date) Millis() int64 {
	return d.millis
}

// Time returns the time.Time for d in d's location.
func (d *Date) Time() time.Time {
	return time.UnixMilli(d.millis).In(d.loc)
}

// Location returns the location of d.
func (d *Date) Location() *time.Location {
	return d.loc
}

// Locale returns the locale configured for d.
func (d *Date) Locale() language.Tag {
	return d.locale
}

// FirstDayOfWeek returns the first day of the week used for week numbering.
func (d *Date) FirstDayOfWeek() Weekday {
	return d.firstDayOfWeek
}

// MonthLength returns the number of days in the current month.
func (d *Date) MonthLength() int {
	return d.sys.MonthLength(d.year, d.month)
}

// YearLength returns the number of days in the current year.
func (d *Date) YearLength() int {
	return d.sys.YearLength(d.year)
}

// IsLeapYear returns true if the current year is a leap year.
func (d *Date) IsLeapYear() bool {
	return d.sys.IsLeapYear(d.year)
}

// Weekday returns the day of the week.
func (d *Date) Weekday() Weekday {
	return WeekdayFromTime(d.Time().Weekday())
}

// SetMillis sets the absolute time of d.
func (d *Date) SetMillis(millis int64) {
	d.millis = millis
	d.invalidate()
}

// SetTime sets the absolute time of d to t, the location of d is
// not changed.
func (d *Date) SetTime(t time.Time) {
	d.SetMillis(t.UnixMilli())
}

// SetLocation changes the location of d keeping the absolute time, the
// native date is recomputed for the new location. A nil location is
// treated as UTC.
func (d *Date) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	d.loc = loc
	d.invalidate()
}

// SetFirstDayOfWeek sets the first day of the week.
func (d *Date) SetFirstDayOfWeek(w Weekday) error {
	if !w.Valid() {
		return fmt.Errorf("%v: %w", w, ErrInvalidWeekday)
	}
	d.firstDayOfWeek = w
	return nil
}

// SetDate sets the native year, month and day. The year is range checked,
// months outside of 0-11 carry into the year and days outside of the month
// are first clamped and then the excess is added as days.
func (d *Date) SetDate(year, month, day int) error {
	year += floorDiv(month, 12)
	month = floorMod(month, 12)
	if err := d.checkRange(Year, year); err != nil {
		return err
	}
	ml := d.sys.MonthLength(year, month)
	switch {
	case day < 1:
		d.setNative(year, month, 1)
		d.addDays(day - 1)
	case day > ml:
		d.setNative(year, month, ml)
		d.addDays(day - ml)
	default:
		d.setNative(year, month, day)
	}
	return nil
}

// SetDateTime sets the native date as per SetDate and the wall clock time
// of day, the time is normalized in the same manner as time.Date.
func (d *Date) SetDateTime(year, month, day, hour, minute, second int) error {
	if err := d.SetDate(year, month, day); err != nil {
		return err
	}
	t := d.Time()
	d.setClock(t, hour, minute, second, 0)
	return nil
}

// Clone returns a copy of d.
func (d *Date) Clone() *Date {
	c := *d
	c.invalidate()
	return &c
}

// To returns a new Date for the same time and location as d in the
// specified calendar system. The locale and names are retained but the
// first day of the week reverts to the new calendar's default.
func (d *Date) To(kind Kind) *Date {
	return New(kind, d.millis, d.loc, WithLocale(d.locale), WithNames(d.names))
}

// ToCivil returns the equivalent Civil date.
func (d *Date) ToCivil() *Date {
	return d.To(Civil)
}

// ToPersian returns the equivalent Persian date.
func (d *Date) ToPersian() *Date {
	return d.To(Persian)
}

// ToHijri returns the equivalent Hijri date.
func (d *Date) ToHijri() *Date {
	return d.To(Hijri)
}

// ToJapanese returns the equivalent Japanese date.
func (d *Date) ToJapanese() *Date {
	return d.To(Japanese)
}

// Compare returns -1, 0 or +1 depending on whether d's absolute time is
// before, the same as or after o's, the calendar systems may differ.
func (d *Date) Compare(o *Date) int {
	switch {
	case d.millis < o.millis:
		return -1
	case d.millis > o.millis:
		return 1
	}
	return 0
}

// Before returns true if d is before o.
func (d *Date) Before(o *Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is after o.
func (d *Date) After(o *Date) bool {
	return d.Compare(o) > 0
}

// Equal returns true if d and o represent the same time in the same
// location, the calendar systems may differ.
func (d *Date) Equal(o *Date) bool {
	return d.millis == o.millis && d.loc.String() == o.loc.String()
}

// String returns the date in the form
// "<kind> YYYY-MM-DD HH:MM:SS.mmm <zone>".
func (d *Date) String() string {
	t := d.Time()
	return fmt.Sprintf("%v %v %s %s", d.sys.Kind(), d.YMD(), t.Format("15:04:05.000"), t.Format("MST"))
}

// ShortDate returns the native date in YYYY/MM/DD format with a one
// based month.
func (d *Date) ShortDate() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d/%02d/%02d", -d.year, d.month+1, d.day)
	}
	return fmt.Sprintf("%04d/%02d/%02d", d.year, d.month+1, d.day)
}

// LongDate returns the native date with the long weekday and month names
// for the Date's locale, eg. "Wednesday, 1 Farvardin 1403". Numeric values
// are used when no names are available.
func (d *Date) LongDate() string {
	wd, ok, _ := d.DisplayName(DayOfWeek, Long, d.locale)
	if !ok {
		wd = d.Weekday().String()
	}
	mn, ok, _ := d.DisplayName(Month, Long, d.locale)
	if !ok {
		mn = fmt.Sprintf("%02d", d.month+1)
	}
	return fmt.Sprintf("%s, %d %s %d", wd, d.day, mn, d.year)
}

// MonthDay returns the day of the month followed by the long month name,
// eg. "1 Farvardin".
func (d *Date) MonthDay() string {
	mn, ok, _ := d.DisplayName(Month, Long, d.locale)
	if !ok {
		mn = fmt.Sprintf("%02d", d.month+1)
	}
	return fmt.Sprintf("%d %s", d.day, mn)
}
