// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPeriod is returned for a malformed ISO 8601 period.
var ErrInvalidPeriod = errors.New("invalid ISO 8601 period")

// Period represents an ISO 8601 period, eg. P1Y2M10DT2H30M, whose
// year, month and day components are interpreted in the calendar system
// of the Date that it is added to, so that P1M added to 1 Farvardin is
// 1 Ordibehesht. Only integer values are supported.
type Period struct {
	Years, Months, Weeks, Days int
	Hours, Minutes, Seconds    int
}

func consumeN(period string) (int, byte, int, error) {
	for i := range period {
		c := period[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.Atoi(period[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", period[:i], period, ErrInvalidPeriod)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or designator: %s: %w", period, ErrInvalidPeriod)
}

// ParsePeriod parses a period in the ISO 8601 format [-]PnYnMnWnDTnHnMnS.
// A leading '-' negates all of the components.
func ParsePeriod(period string) (Period, error) {
	nl := len(period)
	hasP, hasNP := (nl > 0 && period[0] == 'P'), (nl > 1 && period[0] == '-' && period[1] == 'P')
	if !hasP && !hasNP {
		return Period{}, fmt.Errorf("period must start with P or -P: %s: %w", period, ErrInvalidPeriod)
	}
	val := period[1:]
	if hasNP {
		val = val[1:]
	}
	var p Period
	inTime := false
	for len(val) > 0 {
		if val[0] == 'T' {
			if inTime {
				return Period{}, fmt.Errorf("repeated time designator: %s: %w", period, ErrInvalidPeriod)
			}
			inTime = true
			val = val[1:]
			continue
		}
		n, designator, idx, err := consumeN(val)
		if err != nil {
			return Period{}, err
		}
		val = val[idx:]
		var field *int
		if !inTime {
			switch designator {
			case 'Y':
				field = &p.Years
			case 'M':
				field = &p.Months
			case 'W':
				field = &p.Weeks
			case 'D':
				field = &p.Days
			}
		} else {
			switch designator {
			case 'H':
				field = &p.Hours
			case 'M':
				field = &p.Minutes
			case 'S':
				field = &p.Seconds
			}
		}
		if field == nil {
			return Period{}, fmt.Errorf("invalid designator: %c: %s: %w", designator, period, ErrInvalidPeriod)
		}
		*field += n
	}
	if hasNP {
		p = p.Negate()
	}
	return p, nil
}

// Negate returns the period with all of its components negated.
func (p Period) Negate() Period {
	return Period{
		Years: -p.Years, Months: -p.Months, Weeks: -p.Weeks, Days: -p.Days,
		Hours: -p.Hours, Minutes: -p.Minutes, Seconds: -p.Seconds,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// String returns the ISO 8601 representation of the period, a period
// whose non-zero components are all negative is written with a leading '-'.
func (p Period) String() string {
	neg := p.Years <= 0 && p.Months <= 0 && p.Weeks <= 0 && p.Days <= 0 &&
		p.Hours <= 0 && p.Minutes <= 0 && p.Seconds <= 0 && p != Period{}
	if neg {
		p = p.Negate()
	}
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	write := func(n int, designator byte) {
		if n == 0 {
			return
		}
		if n < 0 {
			out.WriteByte('-')
		}
		out.WriteString(strconv.Itoa(abs(n)))
		out.WriteByte(designator)
	}
	write(p.Years, 'Y')
	write(p.Months, 'M')
	write(p.Weeks, 'W')
	write(p.Days, 'D')
	if p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 {
		out.WriteByte('T')
		write(p.Hours, 'H')
		write(p.Minutes, 'M')
		write(p.Seconds, 'S')
	}
	return out.String()
}

// AddPeriod adds the period to d. The years and months are added first,
// with the day clamped to the resulting month, then the weeks and days
// and finally the time components.
func (d *Date) AddPeriod(p Period) error {
	if y := d.year + p.Years + floorDiv(d.month+p.Months, 12); p.Years != 0 || p.Months != 0 {
		if err := d.checkRange(Year, y); err != nil {
			return err
		}
		d.setNativeClamped(y, floorMod(d.month+p.Months, 12), d.day)
	}
	d.addDays(p.Weeks*7 + p.Days)
	secs := int64(p.Hours)*3600 + int64(p.Minutes)*60 + int64(p.Seconds)
	if secs != 0 {
		d.millis += secs * 1000
		d.invalidate()
	}
	return nil
}
