// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is returned for a field that is not defined or that
	// cannot be used with the requested operation.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidStyle is returned for an undefined display name style.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrOutOfRange is wrapped by RangeError.
	ErrOutOfRange = errors.New("out of feasible range")
	// ErrInvalidMonth is returned when a month outside of -11..11 is
	// passed to a calendar conversion.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidWeekday is returned for an unrecognised day of the week.
	ErrInvalidWeekday = errors.New("invalid weekday")
	// ErrInvalidKind is returned for an unrecognised calendar system.
	ErrInvalidKind = errors.New("invalid calendar kind")
)

// RangeError is returned when a value for a field lies outside of
// the feasible range for that field.
type RangeError struct {
	Field    Field
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v=%v is %v [Min: %v, Max: %v]", e.Field, e.Value, ErrOutOfRange, e.Min, e.Max)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
