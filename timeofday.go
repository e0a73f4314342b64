// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TimeOfDay represents a wall clock time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return len(s) > 0
}

func parseClockValue(name, val string, limit int) (int, error) {
	if !isDigits(val) {
		return 0, fmt.Errorf("invalid %s: %q", name, val)
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 || n > limit {
		return 0, fmt.Errorf("invalid %s: %q", name, val)
	}
	return n, nil
}

// Parse val in formats '08[:12[:10]][am|pm]'.
func (t *TimeOfDay) Parse(val string) error {
	tl := strings.TrimSpace(strings.ToLower(val))
	if len(tl) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	ampm := -1
	switch {
	case strings.HasSuffix(tl, "am"):
		ampm, tl = AM, strings.TrimSpace(tl[:len(tl)-2])
	case strings.HasSuffix(tl, "pm"):
		ampm, tl = PM, strings.TrimSpace(tl[:len(tl)-2])
	}
	parts := strings.Split(tl, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08[:12][:10][am|pm]'", val)
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	hour, err := parseClockValue("hour", parts[0], 23)
	if err != nil {
		return err
	}
	if ampm >= 0 {
		if hour < 1 || hour > 12 {
			return fmt.Errorf("invalid hour: %q with am/pm", parts[0])
		}
		hour = hour%12 + 12*ampm
	}
	minute, err := parseClockValue("minute", parts[1], 59)
	if err != nil {
		return err
	}
	second, err := parseClockValue("second", parts[2], 59)
	if err != nil {
		return err
	}
	*t = NewTimeOfDay(hour, minute, second)
	return nil
}

// TimeOfDay returns the wall clock time of day of d.
func (d *Date) TimeOfDay() TimeOfDay {
	t := d.Time()
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// SetTimeOfDay sets the wall clock time of day of d keeping the calendar
// day, any milliseconds are cleared.
func (d *Date) SetTimeOfDay(tod TimeOfDay) {
	d.setClock(d.Time(), tod.Hour(), tod.Minute(), tod.Second(), 0)
}
