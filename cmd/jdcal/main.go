// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jdcal converts between Julian day numbers and calendar dates.
//
// Usage:
//
//	jdcal [flags] [DATE|JDN ...]
//
// Arguments that are integers are day numbers and are printed as dates. All
// other arguments are parsed as dates, written as YYYY-MM-DD or YYYY-DDD,
// and are printed with their day number. Use "--" before negative values.
// Without arguments, the current date is printed.
//
// By default, dates are in the calendar reformed on 1582-10-15. The
// reformation can be changed with -reform, or the JDCAL_REFORM environment
// variable, to a region listed by -list or to a day number. The log level
// is read from JDCAL_LOG_LEVEL.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gonih.org/calendar"
	"gonih.org/calendar/reformations"
)

func main() {
	c := &cli{
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		now:    time.Now,
	}
	os.Exit(c.run(os.Args[1:]))
}

// cli holds the environment of a run.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	now    func() time.Time

	log     *slog.Logger
	cal     calendar.Calendar
	ordinal bool
	quiet   bool
	json    *json.Encoder
}

// run executes the command and returns its exit status.
func (c *cli) run(args []string) int {
	fs := flag.NewFlagSet("jdcal", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: jdcal [flags] [DATE|JDN ...]")
		fs.PrintDefaults()
	}
	var (
		julian    = fs.Bool("julian", false, "use the proleptic Julian calendar")
		gregorian = fs.Bool("gregorian", false, "use the proleptic Gregorian calendar")
		reform    = fs.String("reform", c.env("JDCAL_REFORM", "italy"), "`region` or day number of the reformation")
		ordinal   = fs.Bool("ordinal", false, "print dates as YYYY-DDD")
		quiet     = fs.Bool("quiet", false, "print only the converted values")
		asJSON    = fs.Bool("json", false, "print a JSON object per argument")
		list      = fs.Bool("list", false, "list known reformations and exit")
		verbose   = fs.Bool("v", false, "log debug messages")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := parseLevel(c.env("JDCAL_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintln(c.stderr, "jdcal:", err)
		return 2
	}
	if *verbose {
		level = slog.LevelDebug
	}
	c.log = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		return c.list()
	}

	switch {
	case *julian && *gregorian:
		c.log.Error("-julian and -gregorian are mutually exclusive")
		return 2
	case *julian:
		c.cal = calendar.Julian()
	case *gregorian:
		c.cal = calendar.Gregorian()
	default:
		c.cal, err = reformingCalendar(*reform)
		if err != nil {
			c.log.Error("invalid reformation", "reform", *reform, "err", err)
			return 2
		}
	}
	c.log.Debug("using calendar", "calendar", c.cal)

	c.ordinal, c.quiet = *ordinal, *quiet
	if *asJSON {
		c.json = json.NewEncoder(c.stdout)
	}

	if fs.NArg() == 0 {
		d, err := c.cal.FromTime(c.now())
		if err != nil {
			c.log.Error("current date", "err", err)
			return 1
		}
		if err := c.print(d.String(), d, false); err != nil {
			c.log.Error("writing output", "err", err)
			return 1
		}
		return 0
	}

	status := 0
	for _, arg := range fs.Args() {
		if err := c.convert(arg); err != nil {
			c.log.Error("invalid argument", "arg", arg, "err", err)
			status = 1
		}
	}
	return status
}

func (c *cli) env(key, def string) string {
	if v := c.getenv(key); v != "" {
		return v
	}
	return def
}

// convert prints the conversion of a single argument.
func (c *cli) convert(arg string) error {
	n, err := strconv.ParseInt(arg, 10, 32)
	switch {
	case err == nil:
		d := c.cal.AtDayNumber(int32(n))
		c.log.Debug("converted day number", "jdn", n, "date", d)
		return c.print(arg, d, true)
	case errors.Is(err, strconv.ErrRange):
		return calendar.ErrArithmetic
	}
	d, err := c.cal.ParseDate(arg)
	if err != nil {
		return err
	}
	c.log.Debug("converted date", "date", d, "jdn", d.DayNumber())
	return c.print(arg, d, false)
}

// output is the JSON representation of a conversion.
type output struct {
	Input       string `json:"input"`
	DayNumber   int32  `json:"day_number"`
	Date        string `json:"date"`
	OrdinalDate string `json:"ordinal_date"`
	Weekday     string `json:"weekday"`
	ISOWeek     string `json:"iso_week"`
	Calendar    string `json:"calendar"`
}

// print writes d. If toDate is set, the input was a day number and the date
// is the result, otherwise the day number is.
func (c *cli) print(input string, d calendar.Date, toDate bool) error {
	var err error
	switch {
	case c.json != nil:
		year, week := d.ISOWeek()
		err = c.json.Encode(output{
			Input:       input,
			DayNumber:   d.DayNumber(),
			Date:        d.String(),
			OrdinalDate: d.OrdinalString(),
			Weekday:     d.Weekday().String(),
			ISOWeek:     fmt.Sprintf("%04d-W%02d", year, week),
			Calendar:    d.Calendar().String(),
		})
	case toDate && c.quiet:
		_, err = fmt.Fprintln(c.stdout, c.format(d))
	case toDate:
		_, err = fmt.Fprintf(c.stdout, "%d = %s\n", d.DayNumber(), c.format(d))
	case c.quiet:
		_, err = fmt.Fprintln(c.stdout, d.DayNumber())
	default:
		_, err = fmt.Fprintf(c.stdout, "%s = %d\n", c.format(d), d.DayNumber())
	}
	return err
}

func (c *cli) format(d calendar.Date) string {
	if c.ordinal {
		return d.OrdinalString()
	}
	return d.String()
}

// list prints the known reformations.
func (c *cli) list() int {
	w := tabwriter.NewWriter(c.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tREFORMATION\tLAST JULIAN\tFIRST GREGORIAN\tALIASES")
	for _, r := range reformations.All() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.Name, r.DayNumber, r.LastJulian, r.FirstGregorian, strings.Join(r.Aliases, ","))
	}
	if err := w.Flush(); err != nil {
		c.log.Error("writing output", "err", err)
		return 1
	}
	return 0
}

// reformingCalendar returns the calendar for the value of -reform.
func reformingCalendar(s string) (calendar.Calendar, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return calendar.Reforming(int32(n))
	}
	return reformations.Calendar(s)
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
