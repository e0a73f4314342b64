// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"
	"time"

	"cloudeng.io/calendars"
)

// newDate returns a Date at noon UTC on the specified native date.
func newDate(t *testing.T, kind calendars.Kind, year, month, day int, opts ...calendars.Option) *calendars.Date {
	t.Helper()
	d := calendars.New(kind, 0, time.UTC, opts...)
	if err := d.SetDateTime(year, month, day, 12, 0, 0); err != nil {
		t.Fatalf("%v: %v-%v-%v: %v", kind, year, month, day, err)
	}
	return d
}

func ymd(year, month, day int) calendars.YMD {
	return calendars.NewYMD(year, month, day)
}

func expectYMD(t *testing.T, d *calendars.Date, want calendars.YMD) {
	t.Helper()
	if got := d.YMD(); got != want {
		t.Errorf("%v: got %v, want %v", d.Kind(), got, want)
	}
}

func expectField(t *testing.T, d *calendars.Date, field calendars.Field, want int) {
	t.Helper()
	got, err := d.Get(field)
	if err != nil {
		t.Errorf("%v: %v: %v", d, field, err)
		return
	}
	if got != want {
		t.Errorf("%v: %v: got %v, want %v", d, field, got, want)
	}
}

func actualMaximum(t *testing.T, d *calendars.Date, field calendars.Field) int {
	t.Helper()
	v, err := d.ActualMaximum(field)
	if err != nil {
		t.Fatalf("%v: %v: %v", d, field, err)
	}
	return v
}

func maximum(t *testing.T, d *calendars.Date, field calendars.Field) int {
	t.Helper()
	v, err := d.Maximum(field)
	if err != nil {
		t.Fatalf("%v: %v: %v", d, field, err)
	}
	return v
}
