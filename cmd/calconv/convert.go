// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/names"
	"cloudeng.io/logging/ctxlog"
)

type convertFlags struct {
	CommonFlags
	From string `subcmd:"from,civil,'calendar of the date to be converted'"`
	To   string `subcmd:"to,persian,'calendar to convert to'"`
	Time string `subcmd:"time,12:00,'time of day, eg. 08:30 or 8pm'"`
	Add  string `subcmd:"add,,'ISO 8601 period to add in the source calendar before converting, eg. P1M or -P10D'"`
}

type converter struct {
	out io.Writer
}

func (c *converter) convert(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*convertFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	from, err := parseKind("from", fv.From)
	if err != nil {
		return err
	}
	to, err := parseKind("to", fv.To)
	if err != nil {
		return err
	}
	loc, err := fv.location()
	if err != nil {
		return err
	}
	locale, err := fv.locale()
	if err != nil {
		return err
	}
	native, err := calendars.ParseYMD(args[0])
	if err != nil {
		return err
	}
	if !native.Valid(from.System()) {
		return fmt.Errorf("%v is not a valid %v date", native, from)
	}
	var tod calendars.TimeOfDay
	if err := tod.Parse(fv.Time); err != nil {
		return err
	}
	tbl := names.Default()
	src := calendars.New(from, 0, loc, calendars.WithNames(tbl), calendars.WithLocale(locale))
	if err := src.SetDateTime(native.Year, native.Month, native.Day, tod.Hour(), tod.Minute(), tod.Second()); err != nil {
		return err
	}
	if len(fv.Add) > 0 {
		period, err := calendars.ParsePeriod(fv.Add)
		if err != nil {
			return err
		}
		if err := src.AddPeriod(period); err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("added period", "period", period.String(), "result", src.String())
	}
	dst := src.To(to)
	ctxlog.Logger(ctx).Info("converted", "from", src.String(), "to", dst.String())
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "%v %v: %v\n", to, dst.YMD(), dst.LongDate())
	if to == calendars.Japanese {
		if era, ok := tbl.JapaneseEraName(dst.Gregorian(), locale); ok {
			fmt.Fprintf(out, "era: %v\n", era)
		}
	}
	return nil
}
