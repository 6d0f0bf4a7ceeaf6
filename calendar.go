// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar converts between Julian day numbers and dates of the
// Julian calendar, the Gregorian calendar, or a reforming calendar which
// switches from the former to the latter on a given day.
//
// A day number counts days from 4713 BCE November 24 (Gregorian), which is
// January 1st, -4712 in the proleptic Julian calendar. Years are numbered
// astronomically, so there is a year 0. Day numbers are int32 values; every
// computation that would leave that range fails with ErrArithmetic.
//
// When a reforming calendar switches systems, the dates between the last
// Julian and the first Gregorian date do not exist. Depending on the
// reformation, this gap can lie within one month, span months, span the
// turn of a year or swallow entire years. Days of the year are numbered
// without holes, so the year of a reformation has fewer than 365 days.
//
// Calendar and Date values are immutable and safe for concurrent use.
package calendar

import (
	"cmp"
	"strconv"
	"time"
)

type calendarKind uint8

// Sorted by Calendar.Compare, do not re-order!
const (
	julianKind calendarKind = iota
	reformingKind
	gregorianKind
)

// A Calendar is a set of rules to convert between day numbers and dates.
// It is either the proleptic Julian calendar, the proleptic Gregorian
// calendar, or a reforming calendar, which uses the Julian calendar before
// its reformation and the Gregorian calendar from it on.
//
// The zero value is the proleptic Julian calendar. Calendars must be
// compared using Equal or Compare.
type Calendar struct {
	_ [0]func() // prevent direct comparisons

	kind        calendarKind
	reformation int32

	// gap is derived from reformation. It is ignored by Equal and Compare.
	gap ReformGap
}

// Julian returns the proleptic Julian calendar.
func Julian() Calendar {
	return Calendar{kind: julianKind}
}

// Gregorian returns the proleptic Gregorian calendar.
func Gregorian() Calendar {
	return Calendar{kind: gregorianKind}
}

// Reforming returns a calendar which switches from the Julian to the
// Gregorian calendar on the given day number.
//
// It returns ErrInvalidReformation if the reformation does not advance the
// calendar, that is if the first Gregorian day of the year is not after the
// last Julian one. The valid reformations are the day numbers from
// MinReformation to MaxReformation.
func Reforming(reformation int32) (Calendar, error) {
	gap, err := computeGap(reformation)
	if err != nil {
		return Calendar{}, err
	}
	return Calendar{kind: reformingKind, reformation: reformation, gap: gap}, nil
}

// GregorianReform returns the reforming calendar that switches on
// 1582-10-15, as decreed by Pope Gregory XIII.
func GregorianReform() Calendar {
	c, err := Reforming(GregorianReformation)
	if err != nil {
		panic(err)
	}
	return c
}

// IsJulian reports whether c is the proleptic Julian calendar.
func (c Calendar) IsJulian() bool {
	return c.kind == julianKind
}

// IsGregorian reports whether c is the proleptic Gregorian calendar.
func (c Calendar) IsGregorian() bool {
	return c.kind == gregorianKind
}

// IsReforming reports whether c is a reforming calendar.
func (c Calendar) IsReforming() bool {
	return c.kind == reformingKind
}

// IsProleptic reports whether c never switches systems.
func (c Calendar) IsProleptic() bool {
	return c.kind != reformingKind
}

// Reformation returns the first Gregorian day number of a reforming calendar.
func (c Calendar) Reformation() (int32, bool) {
	return c.reformation, c.kind == reformingKind
}

// Gap returns the dates skipped by a reforming calendar.
func (c Calendar) Gap() (ReformGap, bool) {
	return c.gap, c.kind == reformingKind
}

// Equal reports whether c and o are the same calendar.
func (c Calendar) Equal(o Calendar) bool {
	return c.Compare(o) == 0
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, the same
// as or after o. The Julian calendar sorts first, followed by reforming
// calendars ordered by reformation, followed by the Gregorian calendar.
func (c Calendar) Compare(o Calendar) int {
	if c.kind != o.kind {
		return cmp.Compare(c.kind, o.kind)
	}
	if c.kind == reformingKind {
		return cmp.Compare(c.reformation, o.reformation)
	}
	return 0
}

// String implements fmt.Stringer.
func (c Calendar) String() string {
	switch c.kind {
	case gregorianKind:
		return "Gregorian"
	case reformingKind:
		return "Reforming(" + strconv.Itoa(int(c.reformation)) + ")"
	}
	return "Julian"
}

// GoString implements fmt.GoStringer and formats c like the Go code
// constructing it.
func (c Calendar) GoString() string {
	switch {
	case c.kind == gregorianKind:
		return "calendar.Gregorian()"
	case c.kind == julianKind:
		return "calendar.Julian()"
	case c.reformation == GregorianReformation:
		return "calendar.GregorianReform()"
	}
	return "calendar.Reforming(" + strconv.Itoa(int(c.reformation)) + ")"
}

// prolepticSystem returns the system of a proleptic calendar.
func (c Calendar) prolepticSystem() system {
	if c.kind == gregorianKind {
		return gregorianSystem
	}
	return julianSystem
}

// systemAt returns the system used for the day number n.
func (c Calendar) systemAt(n int32) system {
	if c.kind != reformingKind {
		return c.prolepticSystem()
	}
	if n < c.reformation {
		return julianSystem
	}
	return gregorianSystem
}

// newDate assembles a Date. s is the system of n and ordinal is its day of
// the year in s, which is adjusted for reformation years.
func (c Calendar) newDate(n int32, s system, year int, month Month, day, ordinal int) Date {
	if c.kind == reformingKind && s == gregorianSystem && year == c.gap.PostReform.Year {
		ordinal -= c.gap.postOffset()
	}
	return Date{cal: c, n: n, year: year, month: month, day: day, ordinal: ordinal}
}

// yearOrdinal returns the year and day of the year of n. Unlike
// AtDayNumber, n may lie outside of the representable day numbers.
func (c Calendar) yearOrdinal(n int64) (year, ordinal int) {
	s := c.prolepticSystem()
	if c.kind == reformingKind {
		s = gregorianSystem
		if n < int64(c.reformation) {
			s = julianSystem
		}
	}
	year, ordinal = s.split(n)
	if c.kind == reformingKind && s == gregorianSystem && year == c.gap.PostReform.Year {
		ordinal -= c.gap.postOffset()
	}
	return year, ordinal
}

// AtDayNumber returns the date of the day number n.
func (c Calendar) AtDayNumber(n int32) Date {
	s := c.systemAt(n)
	f := s.fields(int64(n))
	return c.newDate(n, s, f.Year, f.Month, f.Day, f.Ordinal)
}

// AtYMD returns the date with the given year, month and day of the month.
//
// It returns a *DayOutOfRangeError if day is outside the natural bounds of
// the month, a *SkippedDateError if the date was skipped by a reformation
// and ErrArithmetic if the date has no representable day number.
func (c Calendar) AtYMD(year int, month Month, day int) (Date, error) {
	if !month.valid() {
		return Date{}, &MonthRangeError{Value: int(month)}
	}
	if year < -yearLimit || year > yearLimit {
		return Date{}, ErrArithmetic
	}
	shape, ok := c.MonthShape(year, month)
	if !ok {
		// The month was skipped entirely.
		shape = normalShape(gregorianSystem, year, month)
		if _, err := shape.DayOrdinalErr(day); err != nil {
			return Date{}, err
		}
		return Date{}, &SkippedDateError{Year: year, Month: month, Day: day}
	}
	if _, err := shape.DayOrdinalErr(day); err != nil {
		return Date{}, err
	}
	s := c.systemOf(year, month, day)
	ordinal := ordinalOf(s.isLeap(year), month, day)
	n, err := s.dayNumber(year, ordinal)
	if err != nil {
		return Date{}, err
	}
	return c.newDate(n, s, year, month, day, ordinal), nil
}

// systemOf returns the system of an existing date.
func (c Calendar) systemOf(year int, month Month, day int) system {
	if c.kind != reformingKind {
		return c.prolepticSystem()
	}
	pre := c.gap.PreReform
	if v := compareMonths(year, month, pre.Year, pre.Month); v < 0 || v == 0 && day <= pre.Day {
		return julianSystem
	}
	return gregorianSystem
}

// AtOrdinal returns the date with the given year and day of the year.
// Days of the year are counted without gaps, even in a reformation year.
//
// It returns an *OrdinalOutOfRangeError if ordinal is outside of the year,
// and ErrArithmetic if the date has no representable day number.
func (c Calendar) AtOrdinal(year, ordinal int) (Date, error) {
	if year < -yearLimit || year > yearLimit {
		return Date{}, ErrArithmetic
	}
	length := c.YearLength(year)
	if ordinal < 1 || ordinal > length {
		return Date{}, &OrdinalOutOfRangeError{Year: year, Ordinal: ordinal, Max: length}
	}
	s, o := c.prolepticSystem(), ordinal
	if c.kind == reformingKind {
		pre := c.gap.PreReform
		if year < pre.Year || year == pre.Year && ordinal <= pre.Ordinal {
			s = julianSystem
		} else {
			s = gregorianSystem
			if year == c.gap.PostReform.Year {
				o += c.gap.postOffset()
			}
		}
	}
	n, err := s.dayNumber(year, o)
	if err != nil {
		return Date{}, err
	}
	month, day := monthDay(s.isLeap(year), o)
	return c.newDate(n, s, year, month, day, o), nil
}

// AtUnix returns the date of the Unix time sec, together with the seconds
// elapsed since the start of that day (UTC).
func (c Calendar) AtUnix(sec int64) (Date, int, error) {
	n, s, err := unixToDayNumber(sec)
	if err != nil {
		return Date{}, 0, err
	}
	return c.AtDayNumber(n), s, nil
}

// YearKind returns the kind of the given year. The years of a reformation
// are ReformCommon or ReformLeap, unless the gap falls between them and
// leaves them whole, in which case they are Common or Leap in their system.
func (c Calendar) YearKind(year int) YearKind {
	switch c.kind {
	case julianKind:
		return julianSystem.yearKind(year)
	case gregorianKind:
		return gregorianSystem.yearKind(year)
	}
	pre, post := c.gap.PreReform, c.gap.PostReform
	switch {
	case year < pre.Year:
		return julianSystem.yearKind(year)
	case year > post.Year:
		return gregorianSystem.yearKind(year)
	case year != pre.Year && year != post.Year:
		return Skipped
	case year != post.Year && pre.Ordinal == yearLength(julianSystem.isLeap(year)):
		// The gap starts with the next year.
		return julianSystem.yearKind(year)
	case year != pre.Year && post.Ordinal == 1:
		// The gap ends with the previous year.
		return gregorianSystem.yearKind(year)
	}
	const leapDay = 31 + 29
	if year == pre.Year && julianSystem.isLeap(year) && pre.Ordinal >= leapDay ||
		year == post.Year && gregorianSystem.isLeap(year) && post.Ordinal <= leapDay {
		return ReformLeap
	}
	return ReformCommon
}

// YearLength returns the number of days in the given year.
func (c Calendar) YearLength(year int) int {
	switch c.kind {
	case julianKind:
		return yearLength(julianSystem.isLeap(year))
	case gregorianKind:
		return yearLength(gregorianSystem.isLeap(year))
	}
	pre, post := c.gap.PreReform, c.gap.PostReform
	switch {
	case year < pre.Year:
		return yearLength(julianSystem.isLeap(year))
	case year > post.Year:
		return yearLength(gregorianSystem.isLeap(year))
	}
	var n int
	if year == pre.Year {
		n += pre.Ordinal
	}
	if year == post.Year {
		n += yearLength(gregorianSystem.isLeap(year)) - post.Ordinal + 1
	}
	return n
}

// MonthShape returns the valid days of the given month. It returns false if
// month is invalid or was skipped entirely by a reformation.
//
// The months of a reformation are Tailless (the month of the last Julian
// date), Headless (the month of the first Gregorian date) or, if both are
// the same, Gapped. A reformation that cuts a month at its natural boundary
// leaves it Normal, with the natural length of the system governing it: the
// Julian calendar for the month of the last Julian date and the Gregorian
// calendar for the month of the first Gregorian date. A Gapped month that
// loses no days is Normal in the Gregorian calendar.
func (c Calendar) MonthShape(year int, month Month) (MonthShape, bool) {
	if !month.valid() {
		return MonthShape{}, false
	}
	if c.kind != reformingKind {
		return normalShape(c.prolepticSystem(), year, month), true
	}
	pre, post := c.gap.PreReform, c.gap.PostReform
	first := compareMonths(year, month, pre.Year, pre.Month)
	last := compareMonths(year, month, post.Year, post.Month)
	switch {
	case first < 0:
		return normalShape(julianSystem, year, month), true
	case last > 0:
		return normalShape(gregorianSystem, year, month), true
	case first == 0 && last == 0:
		s := normalShape(gregorianSystem, year, month)
		if post.Day > pre.Day+1 {
			s.Kind = Gapped
			s.GapStart = pre.Day + 1
			s.GapEnd = post.Day - 1
		}
		return s, true
	case first == 0:
		s := normalShape(julianSystem, year, month)
		if pre.Day < s.NaturalMaxDay {
			s.Kind = Tailless
			s.MaxDay = pre.Day
		}
		return s, true
	case last == 0:
		s := normalShape(gregorianSystem, year, month)
		if post.Day > 1 {
			s.Kind = Headless
			s.MinDay = post.Day
		}
		return s, true
	}
	return MonthShape{}, false
}

// compareMonths compares year y1, month m1 to year y2, month m2.
func compareMonths(y1 int, m1 Month, y2 int, m2 Month) int {
	if y1 != y2 {
		return cmp.Compare(y1, y2)
	}
	return cmp.Compare(m1, m2)
}

// LastJulianDate returns the day before the reformation of a reforming
// calendar.
func (c Calendar) LastJulianDate() (Date, bool) {
	if c.kind != reformingKind {
		return Date{}, false
	}
	return c.AtDayNumber(c.reformation - 1), true
}

// FirstGregorianDate returns the day of the reformation of a reforming
// calendar.
func (c Calendar) FirstGregorianDate() (Date, bool) {
	if c.kind != reformingKind {
		return Date{}, false
	}
	return c.AtDayNumber(c.reformation), true
}

// FromTime returns the date of t in its location. t is interpreted in the
// proleptic Gregorian calendar, like package time does.
func (c Calendar) FromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	if year < -yearLimit || year > yearLimit {
		return Date{}, &TimeRangeError{Time: t}
	}
	leap := gregorianSystem.isLeap(year)
	n, err := gregorianSystem.dayNumber(year, ordinalOf(leap, Month(month), day))
	if err != nil {
		return Date{}, &TimeRangeError{Time: t}
	}
	return c.AtDayNumber(n), nil
}

// Today returns the current date in the given location.
func (c Calendar) Today(loc *time.Location) Date {
	d, err := c.FromTime(time.Now().In(loc))
	if err != nil {
		panic(err)
	}
	return d
}
