// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/calendars"
)

func TestGet(t *testing.T) {
	d := newDate(t, calendars.Civil, 2024, 2, 20)
	for _, tc := range []struct {
		field calendars.Field
		want  int
	}{
		{calendars.Era, calendars.AD},
		{calendars.Year, 2024},
		{calendars.Month, 2},
		{calendars.DayOfMonth, 20},
		{calendars.DayOfYear, 80},
		{calendars.WeekOfYear, 12},
		{calendars.WeekOfMonth, 4},
		{calendars.DayOfWeek, int(calendars.Wednesday)},
		{calendars.DayOfWeekInMonth, 3},
		{calendars.AMPM, calendars.PM},
		{calendars.Hour, 0},
		{calendars.HourOfDay, 12},
		{calendars.Minute, 0},
		{calendars.ZoneOffset, 0},
		{calendars.DSTOffset, 0},
	} {
		expectField(t, d, tc.field, tc.want)
	}

	p := newDate(t, calendars.Persian, 1403, 0, 1)
	for _, tc := range []struct {
		field calendars.Field
		want  int
	}{
		{calendars.Era, calendars.AD},
		{calendars.Year, 1403},
		{calendars.Month, 0},
		{calendars.DayOfMonth, 1},
		{calendars.DayOfYear, 1},
		{calendars.WeekOfYear, 1},
		{calendars.WeekOfMonth, 1},
		{calendars.DayOfWeek, int(calendars.Wednesday)},
		{calendars.DayOfWeekInMonth, 1},
	} {
		expectField(t, p, tc.field, tc.want)
	}

	h := newDate(t, calendars.Hijri, 1445, 8, 29)
	expectField(t, h, calendars.DayOfYear, 265)
	expectField(t, h, calendars.DayOfWeekInMonth, 5)

	if _, err := d.Get(calendars.Field(-1)); !errors.Is(err, calendars.ErrInvalidField) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := d.Get(calendars.Field(calendars.FieldCount)); !errors.Is(err, calendars.ErrInvalidField) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestSetYearMonth(t *testing.T) {
	for _, tc := range []struct {
		kind  calendars.Kind
		start calendars.YMD
		field calendars.Field
		value int
		want  calendars.YMD
	}{
		{calendars.Civil, ymd(2024, 1, 29), calendars.Year, 2025, ymd(2025, 1, 28)},
		{calendars.Civil, ymd(2024, 1, 29), calendars.Year, 2028, ymd(2028, 1, 29)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, 1, ymd(2024, 1, 29)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, 13, ymd(2025, 1, 28)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, -1, ymd(2023, 11, 31)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, -13, ymd(2022, 11, 31)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, -12, ymd(2023, 0, 31)},
		{calendars.Persian, ymd(1403, 5, 31), calendars.Month, 6, ymd(1403, 6, 30)},
		{calendars.Persian, ymd(1399, 11, 30), calendars.Year, 1400, ymd(1400, 11, 29)},
		{calendars.Hijri, ymd(1445, 11, 30), calendars.Year, 1446, ymd(1446, 11, 29)},
		{calendars.Hijri, ymd(1445, 0, 30), calendars.Month, 25, ymd(1447, 1, 29)},
	} {
		d := newDate(t, tc.kind, tc.start.Year, tc.start.Month, tc.start.Day)
		if err := d.Set(tc.field, tc.value); err != nil {
			t.Errorf("%v: %v", tc.start, err)
			continue
		}
		expectYMD(t, d, tc.want)
		expectField(t, d, calendars.HourOfDay, 12)
	}
}

func TestSetDayOfMonth(t *testing.T) {
	for _, tc := range []struct {
		kind  calendars.Kind
		start calendars.YMD
		field calendars.Field
		value int
		want  calendars.YMD
	}{
		{calendars.Civil, ymd(2024, 0, 10), calendars.DayOfMonth, 35, ymd(2024, 1, 4)},
		{calendars.Civil, ymd(2024, 0, 10), calendars.DayOfMonth, 31, ymd(2024, 0, 31)},
		{calendars.Civil, ymd(2024, 0, 10), calendars.DayOfMonth, 0, ymd(2023, 11, 31)},
		{calendars.Civil, ymd(2024, 0, 10), calendars.DayOfMonth, -1, ymd(2023, 11, 30)},
		{calendars.Civil, ymd(2024, 1, 10), calendars.DayOfMonth, 30, ymd(2024, 2, 1)},
		{calendars.Persian, ymd(1403, 0, 10), calendars.DayOfMonth, 35, ymd(1403, 1, 4)},
		{calendars.Persian, ymd(1403, 11, 10), calendars.DayOfMonth, 30, ymd(1404, 0, 1)},
		{calendars.Hijri, ymd(1445, 1, 10), calendars.DayOfMonth, 35, ymd(1445, 2, 6)},
		{calendars.Civil, ymd(2023, 5, 10), calendars.DayOfYear, 365, ymd(2023, 11, 31)},
		{calendars.Civil, ymd(2023, 5, 10), calendars.DayOfYear, 366, ymd(2024, 0, 1)},
		{calendars.Civil, ymd(2023, 5, 10), calendars.DayOfYear, 0, ymd(2022, 11, 31)},
		{calendars.Civil, ymd(2024, 5, 10), calendars.DayOfYear, 60, ymd(2024, 1, 29)},
		{calendars.Persian, ymd(1403, 5, 10), calendars.DayOfYear, 187, ymd(1403, 6, 1)},
		{calendars.Hijri, ymd(1445, 5, 10), calendars.DayOfYear, 356, ymd(1446, 0, 1)},
	} {
		d := newDate(t, tc.kind, tc.start.Year, tc.start.Month, tc.start.Day)
		if err := d.Set(tc.field, tc.value); err != nil {
			t.Errorf("%v: %v", tc.start, err)
			continue
		}
		expectYMD(t, d, tc.want)
		expectField(t, d, calendars.HourOfDay, 12)
	}
}

func TestSetWeeks(t *testing.T) {
	for _, tc := range []struct {
		kind  calendars.Kind
		start calendars.YMD
		field calendars.Field
		value int
		want  calendars.YMD
		get   int
	}{
		// 2024-03-20 is a Wednesday, 1st January 2024 was a Monday.
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, 1, ymd(2024, 0, 3), 1},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, 12, ymd(2024, 2, 20), 12},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, 53, ymd(2025, 0, 1), 1},
		// A Sunday in week 1 of 2024 falls in 2023 and so is in the last
		// week of 2023.
		{calendars.Civil, ymd(2024, 5, 16), calendars.WeekOfYear, 1, ymd(2023, 11, 31), 53},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, 1, ymd(2024, 1, 28), 5},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, 5, ymd(2024, 2, 27), 5},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, 1, ymd(2024, 2, 6), 1},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, 4, ymd(2024, 2, 27), 4},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, 0, ymd(2024, 1, 28), 4},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, -1, ymd(2024, 2, 27), 4},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, -2, ymd(2024, 2, 20), 3},
		{calendars.Civil, ymd(2024, 2, 31), calendars.DayOfWeekInMonth, -1, ymd(2024, 2, 31), 5},
		{calendars.Civil, ymd(2024, 2, 1), calendars.DayOfWeekInMonth, 0, ymd(2024, 1, 23), 4},
		// 1403-01-01 is a Wednesday, the week starts on a Saturday.
		{calendars.Persian, ymd(1403, 0, 1), calendars.WeekOfYear, 2, ymd(1403, 0, 8), 2},
		{calendars.Persian, ymd(1403, 0, 10), calendars.WeekOfYear, 1, ymd(1403, 0, 3), 1},
		{calendars.Persian, ymd(1403, 0, 3), calendars.WeekOfMonth, 3, ymd(1403, 0, 17), 3},
	} {
		d := newDate(t, tc.kind, tc.start.Year, tc.start.Month, tc.start.Day)
		dow := d.Weekday()
		if err := d.Set(tc.field, tc.value); err != nil {
			t.Errorf("%v: %v", tc.start, err)
			continue
		}
		expectYMD(t, d, tc.want)
		expectField(t, d, tc.field, tc.get)
		if got, want := d.Weekday(), dow; got != want {
			t.Errorf("%v: got %v, want %v", tc.start, got, want)
		}
	}
}

func TestSetDayOfWeek(t *testing.T) {
	for _, tc := range []struct {
		kind  calendars.Kind
		start calendars.YMD
		value int
		want  calendars.YMD
	}{
		{calendars.Civil, ymd(2024, 2, 20), int(calendars.Monday), ymd(2024, 2, 18)},
		{calendars.Civil, ymd(2024, 2, 20), int(calendars.Sunday), ymd(2024, 2, 17)},
		{calendars.Civil, ymd(2024, 2, 20), int(calendars.Saturday), ymd(2024, 2, 23)},
		{calendars.Civil, ymd(2024, 2, 20), 8, ymd(2024, 2, 24)},
		{calendars.Civil, ymd(2024, 2, 20), 0, ymd(2024, 2, 16)},
		{calendars.Persian, ymd(1403, 0, 1), int(calendars.Saturday), ymd(1402, 11, 26)},
		{calendars.Persian, ymd(1403, 0, 1), int(calendars.Friday), ymd(1403, 0, 3)},
	} {
		d := newDate(t, tc.kind, tc.start.Year, tc.start.Month, tc.start.Day)
		if err := d.Set(calendars.DayOfWeek, tc.value); err != nil {
			t.Errorf("%v: %v", tc.start, err)
			continue
		}
		expectYMD(t, d, tc.want)
	}
}

func TestSetErrors(t *testing.T) {
	d := newDate(t, calendars.Civil, 2024, 2, 20)
	before := d.Millis()
	for _, tc := range []struct {
		field calendars.Field
		value int
	}{
		{calendars.Year, calendars.MaxYear + 1},
		{calendars.Year, calendars.MinYear - 1},
		{calendars.Era, 2},
		{calendars.Era, -1},
	} {
		err := d.Set(tc.field, tc.value)
		var re *calendars.RangeError
		if !errors.As(err, &re) || !errors.Is(err, calendars.ErrOutOfRange) {
			t.Errorf("%v: unexpected or missing error: %v", tc.field, err)
			continue
		}
		if got, want := re.Field, tc.field; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := re.Value, tc.value; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := d.Millis(), before; got != want {
		t.Errorf("date changed after an error: got %v, want %v", got, want)
	}
	for _, field := range []calendars.Field{calendars.ZoneOffset, calendars.DSTOffset, calendars.Field(-1), calendars.Field(100)} {
		if err := d.Set(field, 1); !errors.Is(err, calendars.ErrInvalidField) {
			t.Errorf("%v: unexpected or missing error: %v", field, err)
		}
		if err := d.Add(field, 1); !errors.Is(err, calendars.ErrInvalidField) {
			t.Errorf("%v: unexpected or missing error: %v", field, err)
		}
		if err := d.Roll(field, 1); !errors.Is(err, calendars.ErrInvalidField) {
			t.Errorf("%v: unexpected or missing error: %v", field, err)
		}
	}
	if got, want := d.Millis(), before; got != want {
		t.Errorf("date changed after an error: got %v, want %v", got, want)
	}
	if err := d.Set(calendars.Year, calendars.MaxYear); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectYMD(t, d, ymd(calendars.MaxYear, 2, 20))
	err := d.Add(calendars.Year, 1)
	if !errors.Is(err, calendars.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestAdd(t *testing.T) {
	for _, tc := range []struct {
		kind   calendars.Kind
		start  calendars.YMD
		field  calendars.Field
		amount int
		want   calendars.YMD
	}{
		{calendars.Civil, ymd(2024, 1, 29), calendars.Year, 1, ymd(2025, 1, 28)},
		{calendars.Civil, ymd(2024, 1, 29), calendars.Year, -4, ymd(2020, 1, 29)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, 1, ymd(2024, 1, 29)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, -2, ymd(2023, 10, 30)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, 25, ymd(2026, 1, 28)},
		{calendars.Civil, ymd(2024, 1, 29), calendars.DayOfMonth, 1, ymd(2024, 2, 1)},
		{calendars.Civil, ymd(2024, 0, 1), calendars.DayOfMonth, -1, ymd(2023, 11, 31)},
		{calendars.Civil, ymd(2024, 0, 1), calendars.DayOfYear, 366, ymd(2025, 0, 1)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, 2, ymd(2024, 3, 3)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, -3, ymd(2024, 1, 28)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, 2, ymd(2024, 3, 3)},
		// Friday 17th May 2024 is the third Friday, -1 is the last Friday
		// of the month and 0 the Friday before the month starts.
		{calendars.Civil, ymd(2024, 4, 17), calendars.DayOfWeekInMonth, -4, ymd(2024, 4, 31)},
		{calendars.Civil, ymd(2024, 4, 17), calendars.DayOfWeekInMonth, -3, ymd(2024, 3, 26)},
		{calendars.Civil, ymd(2024, 4, 17), calendars.DayOfWeekInMonth, -1, ymd(2024, 4, 10)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeek, 12, ymd(2024, 3, 1)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.HourOfDay, 36, ymd(2024, 2, 22)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.AMPM, 1, ymd(2024, 2, 21)},
		{calendars.Persian, ymd(1403, 11, 29), calendars.DayOfMonth, 1, ymd(1404, 0, 1)},
		{calendars.Persian, ymd(1403, 5, 31), calendars.Month, 1, ymd(1403, 6, 30)},
		{calendars.Hijri, ymd(1445, 8, 1), calendars.Month, 4, ymd(1446, 0, 1)},
		{calendars.Hijri, ymd(1445, 11, 30), calendars.DayOfMonth, 1, ymd(1446, 0, 1)},
	} {
		d := newDate(t, tc.kind, tc.start.Year, tc.start.Month, tc.start.Day)
		if err := d.Add(tc.field, tc.amount); err != nil {
			t.Errorf("%v: %v", tc.start, err)
			continue
		}
		expectYMD(t, d, tc.want)
	}
}

func TestAddMonotonic(t *testing.T) {
	for _, kind := range allKinds {
		d := calendars.New(kind, time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC).UnixMilli(), time.UTC)
		start := d.Millis()
		day := int64(24 * time.Hour / time.Millisecond)
		for i := int64(1); i <= 1500; i++ {
			if err := d.Add(calendars.DayOfMonth, 1); err != nil {
				t.Fatal(err)
			}
			if got, want := d.Millis(), start+i*day; got != want {
				t.Fatalf("%v: %v: got %v, want %v", kind, i, got, want)
			}
		}
		for i := int64(1); i <= 100; i++ {
			if err := d.Add(calendars.DayOfYear, -7); err != nil {
				t.Fatal(err)
			}
			if got, want := d.Millis(), start+(1500-7*i)*day; got != want {
				t.Fatalf("%v: %v: got %v, want %v", kind, i, got, want)
			}
		}
	}
}

func TestRoll(t *testing.T) {
	for _, tc := range []struct {
		kind   calendars.Kind
		start  calendars.YMD
		field  calendars.Field
		amount int
		want   calendars.YMD
	}{
		{calendars.Civil, ymd(2024, 1, 29), calendars.Year, 1, ymd(2025, 1, 28)},
		{calendars.Civil, ymd(2024, 1, 29), calendars.Year, -1, ymd(2023, 1, 28)},
		{calendars.Civil, ymd(2023, 1, 28), calendars.Year, 1, ymd(2024, 1, 28)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.Month, 11, ymd(2024, 1, 20)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.Month, -3, ymd(2024, 11, 20)},
		{calendars.Civil, ymd(2024, 0, 31), calendars.Month, 1, ymd(2024, 1, 29)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfMonth, 15, ymd(2024, 2, 4)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfMonth, -20, ymd(2024, 2, 31)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfYear, -80, ymd(2024, 11, 31)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfYear, 287, ymd(2024, 0, 1)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeek, 1, ymd(2024, 2, 21)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeek, -4, ymd(2024, 2, 23)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeek, 14, ymd(2024, 2, 20)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, 2, ymd(2024, 2, 6)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.DayOfWeekInMonth, -1, ymd(2024, 2, 13)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, 1, ymd(2024, 2, 27)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, 2, ymd(2024, 2, 31)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, 3, ymd(2024, 2, 1)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfMonth, -3, ymd(2024, 2, 1)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, 1, ymd(2024, 2, 27)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, -12, ymd(2024, 11, 31)},
		{calendars.Civil, ymd(2024, 2, 20), calendars.WeekOfYear, -11, ymd(2024, 0, 3)},
		{calendars.Persian, ymd(1399, 11, 30), calendars.Year, 1, ymd(1400, 11, 29)},
		{calendars.Persian, ymd(1403, 5, 31), calendars.Month, 1, ymd(1403, 6, 30)},
		{calendars.Persian, ymd(1403, 11, 29), calendars.DayOfMonth, 1, ymd(1403, 11, 1)},
		{calendars.Hijri, ymd(1445, 11, 30), calendars.Year, 1, ymd(1446, 11, 29)},
		{calendars.Hijri, ymd(1445, 1, 29), calendars.DayOfMonth, 1, ymd(1445, 1, 1)},
		{calendars.Hijri, ymd(1446, 11, 29), calendars.DayOfYear, 1, ymd(1446, 0, 1)},
	} {
		d := newDate(t, tc.kind, tc.start.Year, tc.start.Month, tc.start.Day)
		if err := d.Roll(tc.field, tc.amount); err != nil {
			t.Errorf("%v: %v", tc.start, err)
			continue
		}
		expectYMD(t, d, tc.want)
		expectField(t, d, calendars.HourOfDay, 12)
	}
}

func TestRollBounded(t *testing.T) {
	for _, kind := range allKinds {
		for _, start := range []calendars.YMD{ymd(1403, 0, 1), ymd(1445, 11, 29), ymd(2024, 1, 29), ymd(-44, 2, 15)} {
			for amount := -40; amount <= 40; amount++ {
				d := newDate(t, kind, start.Year, start.Month, start.Day)
				if err := d.Roll(calendars.Month, amount); err != nil {
					t.Fatal(err)
				}
				if got, want := d.Year(), start.Year; got != want {
					t.Errorf("%v: %v: roll month %v: got %v, want %v", kind, start, amount, got, want)
				}
				d = newDate(t, kind, start.Year, start.Month, start.Day)
				if err := d.Roll(calendars.DayOfMonth, amount); err != nil {
					t.Fatal(err)
				}
				if got, want := d.YMD(), ymd(start.Year, start.Month, d.DayOfMonth()); got != want {
					t.Errorf("%v: %v: roll day %v: got %v, want %v", kind, start, amount, got, want)
				}
				d = newDate(t, kind, start.Year, start.Month, start.Day)
				if err := d.Roll(calendars.DayOfYear, amount*10); err != nil {
					t.Fatal(err)
				}
				if got, want := d.Year(), start.Year; got != want {
					t.Errorf("%v: %v: roll day of year %v: got %v, want %v", kind, start, amount, got, want)
				}
				for _, field := range []calendars.Field{calendars.WeekOfMonth, calendars.DayOfWeekInMonth} {
					d = newDate(t, kind, start.Year, start.Month, start.Day)
					if err := d.Roll(field, amount); err != nil {
						t.Fatal(err)
					}
					if got, want := d.Month(), start.Month; got != want {
						t.Errorf("%v: %v: roll %v %v: got %v, want %v", kind, start, field, amount, got, want)
					}
				}
				d = newDate(t, kind, start.Year, start.Month, start.Day)
				if err := d.Roll(calendars.WeekOfYear, amount); err != nil {
					t.Fatal(err)
				}
				if got, want := d.Year(), start.Year; got != want {
					t.Errorf("%v: %v: roll week of year %v: got %v, want %v", kind, start, amount, got, want)
				}
			}
		}
	}
}

func TestWeekOfYearIdempotent(t *testing.T) {
	for _, kind := range allKinds {
		d := newDate(t, kind, 1403, 0, 1)
		for range 800 {
			before := d.YMD()
			week := d.MustGet(calendars.WeekOfYear)
			weeks := actualMaximum(t, d, calendars.WeekOfYear)
			if week < 1 || week > weeks || weeks > maximum(t, d, calendars.WeekOfYear) {
				t.Errorf("%v: %v: week %v not in 1..%v", kind, before, week, weeks)
			}

			if err := d.Roll(calendars.WeekOfYear, 0); err != nil {
				t.Fatal(err)
			}
			expectYMD(t, d, before)
			if err := d.Set(calendars.WeekOfYear, week); err != nil {
				t.Fatal(err)
			}
			expectYMD(t, d, before)

			for amount := -3; amount <= 3; amount++ {
				r := d.Clone()
				if err := r.Roll(calendars.WeekOfYear, amount); err != nil {
					t.Fatal(err)
				}
				want := ((week-1+amount)%weeks+weeks)%weeks + 1
				if got := r.MustGet(calendars.WeekOfYear); got != want || r.Year() != before.Year {
					t.Errorf("%v: %v: roll %v: got %v (%v), want %v", kind, before, amount, got, r.YMD(), want)
				}
			}

			// Week 1 may start in the previous year, in which case the
			// date is in the last week of that year.
			first := d.Clone()
			if err := first.Set(calendars.WeekOfYear, 1); err != nil {
				t.Fatal(err)
			}
			want := 1
			if first.Year() != before.Year {
				want = actualMaximum(t, first, calendars.WeekOfYear)
			}
			if got := first.MustGet(calendars.WeekOfYear); got != want {
				t.Errorf("%v: %v: got %v, want %v", kind, before, got, want)
			}
			if err := d.SetDate(before.Year, before.Month, before.Day+1); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestSetDate(t *testing.T) {
	d := newDate(t, calendars.Persian, 1403, 0, 1)
	for _, tc := range []struct {
		year, month, day int
		want             calendars.YMD
	}{
		{1403, 11, 30, ymd(1404, 0, 1)},
		{1403, 12, 1, ymd(1404, 0, 1)},
		{1403, -1, 1, ymd(1402, 11, 1)},
		{1403, 0, 0, ymd(1402, 11, 29)},
		{1403, 0, 62, ymd(1403, 1, 31)},
	} {
		if err := d.SetDate(tc.year, tc.month, tc.day); err != nil {
			t.Errorf("%v: %v", tc, err)
			continue
		}
		expectYMD(t, d, tc.want)
		expectField(t, d, calendars.HourOfDay, 12)
	}
	if err := d.SetDate(calendars.MaxYear+1, 0, 1); !errors.Is(err, calendars.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	// The year is checked after the month has been carried into it.
	last := newDate(t, calendars.Persian, calendars.MaxYear, 11, 1)
	if err := last.SetDate(calendars.MaxYear, 12, 1); !errors.Is(err, calendars.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := last.Set(calendars.Month, 12); !errors.Is(err, calendars.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	expectYMD(t, last, ymd(calendars.MaxYear, 11, 1))
	first := newDate(t, calendars.Civil, calendars.MinYear, 0, 1)
	if err := first.SetDate(calendars.MinYear, -1, 1); !errors.Is(err, calendars.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	expectYMD(t, first, ymd(calendars.MinYear, 0, 1))
}
