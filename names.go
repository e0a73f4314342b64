// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"

	"golang.org/x/text/language"
)

// Names is the source of the display names for the Era, Month, DayOfWeek
// and AMPM fields. FieldStrings returns the names indexed by field value,
// so the names for DayOfWeek have an unused entry at index 0. The Long
// style selects long month and weekday names, any other style selects
// the short ones. A nil return indicates that no names are available.
type Names interface {
	FieldStrings(kind Kind, field Field, style Style, locale language.Tag) []string
}

func hasDisplayNames(field Field) bool {
	switch field {
	case Era, Month, DayOfWeek, AMPM:
		return true
	}
	return false
}

func checkDisplayParams(field Field, style Style) error {
	if err := checkField(field); err != nil {
		return err
	}
	if !style.valid() {
		return fmt.Errorf("%v: %w", style, ErrInvalidStyle)
	}
	return nil
}

// DisplayName returns the display name for the current value of field in
// the requested style and locale. It returns false if field has no display
// names or if no names are available, the Date must have been created
// with WithNames for names to be available.
func (d *Date) DisplayName(field Field, style Style, locale language.Tag) (string, bool, error) {
	if err := checkDisplayParams(field, style); err != nil {
		return "", false, err
	}
	if !hasDisplayNames(field) || d.names == nil {
		return "", false, nil
	}
	strs := d.names.FieldStrings(d.sys.Kind(), field, style, locale)
	v := d.MustGet(field)
	if v < 0 || v >= len(strs) || len(strs[v]) == 0 {
		return "", false, nil
	}
	return strs[v], true, nil
}

// DisplayNames returns a map of all of the display names for field to
// their field values. AllStyles merges the short and long names, except
// for Era and AMPM which only have short names.
func (d *Date) DisplayNames(field Field, style Style, locale language.Tag) (map[string]int, bool, error) {
	if err := checkDisplayParams(field, style); err != nil {
		return nil, false, err
	}
	if !hasDisplayNames(field) || d.names == nil {
		return nil, false, nil
	}
	if style != AllStyles {
		m := d.displayNames(field, style, locale)
		return m, m != nil, nil
	}
	short := d.displayNames(field, Short, locale)
	if field == Era || field == AMPM {
		return short, short != nil, nil
	}
	long := d.displayNames(field, Long, locale)
	if short == nil {
		return long, long != nil, nil
	}
	for k, v := range long {
		short[k] = v
	}
	return short, true, nil
}

func (d *Date) displayNames(field Field, style Style, locale language.Tag) map[string]int {
	strs := d.names.FieldStrings(d.sys.Kind(), field, style, locale)
	if strs == nil {
		return nil
	}
	m := make(map[string]int, len(strs))
	for i, s := range strs {
		if len(s) == 0 {
			continue
		}
		m[s] = i
	}
	return m
}
