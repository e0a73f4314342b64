// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/names"
)

type monthFlags struct {
	CommonFlags
	Calendar string `subcmd:"calendar,civil,'calendar to display'"`
	FirstDay int    `subcmd:"first-day,0,'first day of the week, 1 for Sunday through 7 for Saturday, 0 for the calendar default'"`
}

type monthly struct {
	out io.Writer
}

func (m *monthly) month(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	_, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	kind, err := parseKind("calendar", fv.Calendar)
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
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %v", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("invalid month: %v", args[1])
	}
	opts := []calendars.Option{calendars.WithNames(names.Default()), calendars.WithLocale(locale)}
	if fv.FirstDay != 0 {
		if !calendars.Weekday(fv.FirstDay).Valid() {
			return fmt.Errorf("--first-day=%v: %w", fv.FirstDay, calendars.ErrInvalidWeekday)
		}
		opts = append(opts, calendars.WithFirstDayOfWeek(calendars.Weekday(fv.FirstDay)))
	}
	d := calendars.New(kind, 0, loc, opts...)
	if err := d.SetDateTime(year, month-1, 1, 12, 0, 0); err != nil {
		return err
	}
	out := m.out
	if out == nil {
		out = os.Stdout
	}
	return printMonth(out, d)
}

// printMonth prints the month containing d as a grid with one row per
// week of the month.
func printMonth(out io.Writer, d *calendars.Date) error {
	title, _, err := d.DisplayName(calendars.Month, calendars.Long, d.Locale())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%v %v (%v)\n", title, d.Year(), d.Kind())
	tbl := names.Default()
	header := make([]string, 7)
	for i := range 7 {
		wd := calendars.Weekday((int(d.FirstDayOfWeek())-1+i)%7 + 1)
		n, err := tbl.WeekdayName(d.Kind(), wd, calendars.Short, d.Locale())
		if err != nil {
			return err
		}
		header[i] = fmt.Sprintf("%4s", n)
	}
	fmt.Fprintln(out, strings.Join(header, ""))
	weeks, _ := d.ActualMaximum(calendars.WeekOfMonth)
	grid := make([][]string, weeks)
	for i := range grid {
		grid[i] = make([]string, 7)
		for j := range grid[i] {
			grid[i][j] = "    "
		}
	}
	first := d.FirstDayOfWeek()
	for day := 1; day <= d.MonthLength(); day++ {
		if err := d.Set(calendars.DayOfMonth, day); err != nil {
			return err
		}
		week := d.MustGet(calendars.WeekOfMonth)
		col := (int(d.Weekday()) - int(first) + 7) % 7
		grid[week-1][col] = fmt.Sprintf("%4d", day)
	}
	for _, row := range grid {
		fmt.Fprintln(out, strings.TrimRight(strings.Join(row, ""), " "))
	}
	return nil
}
