// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package events

import (
	"context"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendars"
	"cloudeng.io/logging/ctxlog"
)

// Occurrence represents a single occurrence of an event.
type Occurrence struct {
	Event Event
	// Date is the proleptic Gregorian date of the occurrence.
	Date calendars.YMD
	// Native is the date in the event's calendar.
	Native calendars.YMD
	// Clamped is true if the event's day does not exist in that year's
	// month and the last day of the month was used instead.
	Clamped bool
}

type heapEntry struct {
	event   Event
	native  calendars.YMD
	clamped bool
}

type occurrenceManager struct {
	h *heap.T[int, heapEntry]
}

func newOccurrenceManager(ctx context.Context, evs Events, from, to calendars.YMD) *occurrenceManager {
	first, last := calendars.JulianDayNumber(from), calendars.JulianDayNumber(to)
	years := to.Year - from.Year + 2
	h := heap.NewMin(heap.WithSliceCap[int, heapEntry](len(evs) * max(years, 1)))
	om := &occurrenceManager{h: h}
	logger := ctxlog.Logger(ctx)
	for _, e := range evs {
		if err := e.Validate(); err != nil {
			logger.Warn("ignoring invalid event", "event", e.Name, "error", err)
			continue
		}
		sys := e.Calendar.System()
		start, _ := sys.FromGregorian(from)
		end, _ := sys.FromGregorian(to)
		for year := start.Year; year <= end.Year; year++ {
			he := heapEntry{event: e}
			day := min(e.Day, sys.MonthLength(year, e.Month-1))
			if day != e.Day {
				he.clamped = true
				logger.Debug("clamped event day", "event", e.Name, "year", year, "month", e.Month, "day", day)
			}
			he.native = calendars.NewYMD(year, e.Month-1, day)
			g, err := sys.ToGregorian(he.native)
			if err != nil {
				logger.Warn("ignoring event", "event", e.Name, "error", err)
				break
			}
			if jdn := calendars.JulianDayNumber(g); jdn >= first && jdn <= last {
				om.h.Push(jdn, he)
			}
		}
	}
	return om
}

func (om *occurrenceManager) hasOccurrences() bool {
	return om.h.Len() > 0
}

func (om *occurrenceManager) next() (int, heapEntry) {
	return om.h.Pop()
}

// Occurrences returns an iterator over all occurrences of the events
// between the Gregorian dates from and to inclusive. The occurrences are
// ordered by date and then by event name. Events whose day does not exist
// in a given year, such as 30 Esfand in a Persian common year, occur on the
// last day of the month. Events that fail Validate are logged and
// ignored. The iterator stops early if ctx is canceled.
func Occurrences(ctx context.Context, evs Events, from, to calendars.YMD) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		om := newOccurrenceManager(ctx, evs, from, to)
		var sameDay []Occurrence
		flush := func() bool {
			slices.SortFunc(sameDay, func(a, b Occurrence) int {
				return strings.Compare(a.Event.Name, b.Event.Name)
			})
			for _, o := range sameDay {
				if !yield(o) {
					return false
				}
			}
			sameDay = sameDay[:0]
			return true
		}
		day := 0
		for om.hasOccurrences() {
			if ctx.Err() != nil {
				return
			}
			jdn, he := om.next()
			if len(sameDay) > 0 && jdn != day {
				if !flush() {
					return
				}
			}
			day = jdn
			sameDay = append(sameDay, Occurrence{
				Event:   he.event,
				Date:    calendars.GregorianFromJulianDay(jdn),
				Native:  he.native,
				Clamped: he.clamped,
			})
		}
		flush()
	}
}

// Next returns the first occurrence of each event on or after the
// Gregorian date from, ordered by date and then name.
func Next(ctx context.Context, evs Events, from calendars.YMD) []Occurrence {
	// Every event occurs within a little over a year in any calendar.
	to := calendars.GregorianFromJulianDay(calendars.JulianDayNumber(from) + 400)
	seen := map[string]bool{}
	var r []Occurrence
	for o := range Occurrences(ctx, evs, from, to) {
		if seen[o.Event.Name] {
			continue
		}
		seen[o.Event.Name] = true
		r = append(r, o)
	}
	return r
}
