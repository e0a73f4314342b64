// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/events"
	"cloudeng.io/calendars/names"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

type eventsFlags struct {
	CommonFlags
	From string `subcmd:"from,,'first gregorian date to list events for, defaults to today'"`
	To   string `subcmd:"to,,'last gregorian date to list events for, defaults to one year from the first date'"`
}

type eventLister struct {
	out io.Writer
}

func (fv *eventsFlags) window(loc *time.Location) (from, to calendars.YMD, err error) {
	if len(fv.From) == 0 {
		from = calendars.New(calendars.Civil, time.Now().UnixMilli(), loc).YMD()
	} else if from, err = calendars.ParseYMD(fv.From); err != nil {
		return
	}
	if len(fv.To) == 0 {
		to = from
		to.Year++
		to = calendars.GregorianFromJulianDay(calendars.JulianDayNumber(to) - 1)
		return
	}
	to, err = calendars.ParseYMD(fv.To)
	return
}

func (e *eventLister) events(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*eventsFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	loc, err := fv.location()
	if err != nil {
		return err
	}
	locale, err := fv.locale()
	if err != nil {
		return err
	}
	from, to, err := fv.window(loc)
	if err != nil {
		return err
	}
	var cfg events.Config
	if err := cmdyaml.ParseConfigFile(ctx, args[0], &cfg); err != nil {
		return err
	}
	if err := cfg.Events.Validate(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("listing events", "file", args[0], "events", len(cfg.Events), "from", from, "to", to)
	out := e.out
	if out == nil {
		out = os.Stdout
	}
	tbl := names.Default()
	for o := range events.Occurrences(ctx, cfg.Events, from, to) {
		mn, err := tbl.MonthName(o.Event.Calendar, o.Native.Month, calendars.Long, locale)
		if err != nil {
			return err
		}
		note := ""
		if o.Clamped {
			note = " (moved to the last day of the month)"
		}
		fmt.Fprintf(out, "%v: %v, %d %v %d%v\n", o.Date, o.Event.Name, o.Native.Day, mn, o.Native.Year, note)
	}
	return ctx.Err()
}
