// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package events provides support for annual events, such as holidays,
// that fall on a fixed day of a month in one of the calendars supported
// by cloudeng.io/calendars, eg. Nowruz on 1 Farvardin or Ramadan on
// 1 Ramadan. Events may be read from YAML and expanded into the ordered
// list of Gregorian dates on which they occur.
package events

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/calendars"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Event represents an annual event on a fixed day of a month in
// a specific calendar. The month and day are one based as they would
// be written.
type Event struct {
	Name        string         `yaml:"name"`
	Calendar    calendars.Kind `yaml:"calendar"`
	Month       int            `yaml:"month"`
	Day         int            `yaml:"day"`
	Description string         `yaml:"description,omitempty"`
}

func (e Event) String() string {
	return fmt.Sprintf("%v: %v %02d/%02d", e.Name, e.Calendar, e.Month, e.Day)
}

// Validate returns an error if the event's month or day can never occur
// in its calendar.
func (e Event) Validate() error {
	sys, err := calendars.LookupSystem(e.Calendar)
	if err != nil {
		return fmt.Errorf("event %q: %w", e.Name, err)
	}
	if len(strings.TrimSpace(e.Name)) == 0 {
		return fmt.Errorf("event on %v %02d/%02d: missing name", e.Calendar, e.Month, e.Day)
	}
	if e.Month < 1 || e.Month > 12 {
		return fmt.Errorf("event %q: month %d: %w", e.Name, e.Month, calendars.ErrInvalidMonth)
	}
	maxDay := longestMonth(sys, e.Month-1)
	if e.Day < 1 || e.Day > maxDay {
		return fmt.Errorf("event %q: %w", e.Name, &calendars.RangeError{
			Field: calendars.DayOfMonth, Value: e.Day, Min: 1, Max: maxDay})
	}
	return nil
}

// longestMonth returns the length of month in a leap year, all of the
// supported calendars have a leap year within the first 30 years.
func longestMonth(sys calendars.System, month int) int {
	n := 0
	for y := 1; y <= 30; y++ {
		n = max(n, sys.MonthLength(y, month))
	}
	return n
}

// Events represents a list of events.
type Events []Event

// Validate validates all of the events and checks that their names are
// unique, all errors are returned.
func (evs Events) Validate() error {
	errs := &errors.M{}
	seen := map[string]bool{}
	for _, e := range evs {
		errs.Append(e.Validate())
		if seen[e.Name] {
			errs.Append(fmt.Errorf("event %q: duplicate name", e.Name))
		}
		seen[e.Name] = true
	}
	return errs.Err()
}

// Sort sorts the events by calendar, month, day and then name.
func (evs Events) Sort() {
	slices.SortFunc(evs, func(a, b Event) int {
		switch {
		case a.Calendar != b.Calendar:
			return int(a.Calendar) - int(b.Calendar)
		case a.Month != b.Month:
			return a.Month - b.Month
		case a.Day != b.Day:
			return a.Day - b.Day
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// Config represents a YAML configuration of events, eg:
//
//	events:
//	  - name: Nowruz
//	    calendar: persian
//	    month: 1
//	    day: 1
//	  - name: Eid al-Fitr
//	    calendar: hijri
//	    month: 10
//	    day: 1
type Config struct {
	Events Events `yaml:"events"`
}

// ParseConfig parses and validates a YAML events configuration.
func ParseConfig(data []byte) (Events, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Events.Validate(); err != nil {
		return nil, err
	}
	return cfg.Events, nil
}
