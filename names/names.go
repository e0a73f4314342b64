// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package names provides localized display names for the eras, months,
// days of the week and AM/PM markers of the calendars supported by
// cloudeng.io/calendars. Each calendar is available in English and in
// its native language, Persian (fa), Arabic (ar) or Japanese (ja), and
// any other locale falls back to English.
package names

import (
	"fmt"

	"cloudeng.io/calendars"
	"golang.org/x/text/language"
)

// Table implements calendars.Names.
type Table struct {
	tables   map[calendars.Kind]localized
	matchers map[calendars.Kind]language.Matcher
}

// New returns a new Table.
func New() *Table {
	t := &Table{
		tables:   defaultTables(),
		matchers: map[calendars.Kind]language.Matcher{},
	}
	for k, l := range t.tables {
		t.matchers[k] = language.NewMatcher(l.tags)
	}
	return t
}

var defaultTable = New()

// Default returns a shared Table, a Table is immutable once created and
// hence safe for concurrent use.
func Default() *Table {
	return defaultTable
}

// lookup returns the names for the best match for locale.
func (t *Table) lookup(kind calendars.Kind, locale language.Tag) *nameSet {
	l, ok := t.tables[kind]
	if !ok {
		return nil
	}
	_, idx, conf := t.matchers[kind].Match(locale)
	if conf == language.No {
		return l.sets[0]
	}
	return l.sets[idx]
}

// Language returns the language that will be used for names in the
// specified calendar and locale.
func (t *Table) Language(kind calendars.Kind, locale language.Tag) language.Tag {
	l, ok := t.tables[kind]
	if !ok {
		return language.English
	}
	_, idx, conf := t.matchers[kind].Match(locale)
	if conf == language.No {
		return l.tags[0]
	}
	return l.tags[idx]
}

// FieldStrings implements calendars.Names.
func (t *Table) FieldStrings(kind calendars.Kind, field calendars.Field, style calendars.Style, locale language.Tag) []string {
	ns := t.lookup(kind, locale)
	if ns == nil {
		return nil
	}
	switch field {
	case calendars.Era:
		return ns.eras
	case calendars.AMPM:
		return ns.amPm
	case calendars.Month:
		if style == calendars.Long {
			return ns.months
		}
		return ns.shortMonths
	case calendars.DayOfWeek:
		if style == calendars.Long {
			return ns.weekdays
		}
		return ns.shortWeekdays
	}
	return nil
}

// WeekdayName returns the name of the specified day of the week.
func (t *Table) WeekdayName(kind calendars.Kind, day calendars.Weekday, style calendars.Style, locale language.Tag) (string, error) {
	if !day.Valid() {
		return "", fmt.Errorf("%v: %w", day, calendars.ErrInvalidWeekday)
	}
	strs := t.FieldStrings(kind, calendars.DayOfWeek, style, locale)
	if strs == nil {
		return "", fmt.Errorf("%v: %w", kind, calendars.ErrInvalidKind)
	}
	return strs[day], nil
}

// MonthName returns the name of the specified, zero based, month.
func (t *Table) MonthName(kind calendars.Kind, month int, style calendars.Style, locale language.Tag) (string, error) {
	if month < 0 || month > 11 {
		return "", fmt.Errorf("month %d: %w", month, calendars.ErrInvalidMonth)
	}
	strs := t.FieldStrings(kind, calendars.Month, style, locale)
	if strs == nil {
		return "", fmt.Errorf("%v: %w", kind, calendars.ErrInvalidKind)
	}
	return strs[month], nil
}
