// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calconv converts dates between the Civil, Persian, Hijri and
// Japanese calendars, prints monthly calendars and lists the
// occurrences of annual events.
package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"
)

const spec = `name: calconv
summary: convert and display dates in the civil, persian, hijri and japanese calendars
commands:
  - name: convert
    summary: convert a date from one calendar to another
    arguments:
      - <date>
  - name: month
    summary: display a month in the specified calendar
    arguments:
      - <year>
      - <month>
  - name: events
    summary: list the occurrences of the annual events in a YAML file
    arguments:
      - <events.yaml>
`

// CommonFlags represents the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Location string `subcmd:"location,Local,'time zone location, eg. Asia/Tehran'"`
	Locale   string `subcmd:"locale,en,'locale used for month and weekday names'"`
}

func (cf CommonFlags) location() (*time.Location, error) {
	return time.LoadLocation(cf.Location)
}

func (cf CommonFlags) locale() (language.Tag, error) {
	return language.Parse(cf.Locale)
}

// withLogger returns a context with the logger configured by the flags.
func (cf CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func parseKind(flag, val string) (calendars.Kind, error) {
	k, err := calendars.ParseKind(val)
	if err != nil {
		return k, fmt.Errorf("--%s: %w", flag, err)
	}
	return k, nil
}

func main() {
	cmdSet := subcmd.MustFromYAML(spec)
	conv := &converter{}
	cmdSet.Set("convert").MustRunnerAndFlags(conv.convert,
		subcmd.MustRegisteredFlagSet(&convertFlags{}))
	mon := &monthly{}
	cmdSet.Set("month").MustRunnerAndFlags(mon.month,
		subcmd.MustRegisteredFlagSet(&monthFlags{}))
	ev := &eventLister{}
	cmdSet.Set("events").MustRunnerAndFlags(ev.events,
		subcmd.MustRegisteredFlagSet(&eventsFlags{}))
	subcmd.Dispatch(context.Background(), cmdSet)
}
