// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"encoding/binary"
	"errors"
	"strconv"
	"time"
)

// A Date is a day in a specific Calendar. Dates are created by the methods
// of Calendar and are never modified.
//
// The zero Date is not a valid date. Dates must be compared using Equal or
// Compare.
type Date struct {
	cal     Calendar
	n       int32
	year    int
	month   Month
	day     int
	ordinal int
}

// Calendar returns the calendar of d.
func (d Date) Calendar() Calendar {
	return d.cal
}

// DayNumber returns the Julian day number of d.
func (d Date) DayNumber() int32 {
	return d.n
}

// Year returns the year in which d occurs.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of the year of d.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	return d.day
}

// Ordinal returns the day of the year of d, counting from 1. In a
// reformation year, skipped days are not counted.
func (d Date) Ordinal() int {
	return d.ordinal
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	_, w := divmod(int64(d.n)+1, 7) // day number 0 was a Monday
	return Weekday(w)
}

// YearKind returns the kind of the year of d.
func (d Date) YearKind() YearKind {
	return d.cal.YearKind(d.year)
}

// MonthShape returns the valid days of the month of d. It returns false
// for the zero Date, which is not a valid date.
func (d Date) MonthShape() (MonthShape, bool) {
	return d.cal.MonthShape(d.year, d.month)
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs, in
// the calendar of d. Week ranges from 1 to 53. Jan 01 to Jan 03 of year n
// might belong to week 52 or 53 of year n-1, and Dec 29 to Dec 31 might
// belong to week 1 of year n+1. Weeks of a reformation year are counted
// by day of the year, so they have seven days even across the gap.
func (d Date) ISOWeek() (year, week int) {
	// Weeks are identified by their Thursday.
	offset := int64(Thursday - d.Weekday())
	if offset == 4 {
		offset = -3
	}
	year, ordinal := d.cal.yearOrdinal(int64(d.n) + offset)
	return year, (ordinal-1)/7 + 1
}

// IsReformationBoundary reports whether d is the last Julian or the first
// Gregorian date of a reforming calendar.
func (d Date) IsReformationBoundary() bool {
	r, ok := d.cal.Reformation()
	return ok && (d.n == r || int64(d.n) == int64(r)-1)
}

// GoString implements fmt.GoStringer and formats d like the Go code
// constructing it.
func (d Date) GoString() string {
	return d.cal.GoString() + ".AtDayNumber(" + strconv.Itoa(int(d.n)) + ") /* " + d.String() + " */"
}

// Next returns the day after d. It returns false if d is the last
// representable day.
func (d Date) Next() (Date, bool) {
	if d.n == MaxDayNumber {
		return Date{}, false
	}
	return d.cal.AtDayNumber(d.n + 1), true
}

// Prev returns the day before d. It returns false if d is the first
// representable day.
func (d Date) Prev() (Date, bool) {
	if d.n == MinDayNumber {
		return Date{}, false
	}
	return d.cal.AtDayNumber(d.n - 1), true
}

// AddDays returns the date days days after d, in the same calendar.
func (d Date) AddDays(days int) (Date, error) {
	delta := int64(days)
	if delta < MinDayNumber-MaxDayNumber || delta > MaxDayNumber-MinDayNumber {
		return Date{}, ErrArithmetic
	}
	n, err := toDayNumber(int64(d.n) + delta)
	if err != nil {
		return Date{}, err
	}
	return d.cal.AtDayNumber(n), nil
}

// AddDate returns the date corresponding to adding the given number of
// years, months and days to d. For example, AddDate(-1, 2, 3) applied to
// January 1, 2011 returns March 4, 2010.
//
// The years and months are added first. A day beyond the end of the
// resulting month overflows into the next one, so adding one month to
// October 31 yields December 1. A date skipped by a reformation resolves to
// the first Gregorian date. Finally, days are added as by AddDays.
func (d Date) AddDate(years, months, days int) (Date, error) {
	if years < -2*yearLimit || years > 2*yearLimit || months < -24*yearLimit || months > 24*yearLimit {
		return Date{}, ErrArithmetic
	}
	q, m := divmod(int64(d.month)-1+int64(months), 12)
	year := int64(d.year) + int64(years) + q
	if year < -yearLimit || year > yearLimit {
		return Date{}, ErrArithmetic
	}
	base, err := d.cal.resolve(int(year), Month(m+1), d.day)
	if err != nil {
		return Date{}, err
	}
	return base.AddDays(days)
}

// resolve returns the date of year, month and day, where day may lie
// outside of the month or inside a reformation gap.
func (c Calendar) resolve(year int, month Month, day int) (Date, error) {
	shape, ok := c.MonthShape(year, month)
	if !ok {
		shape = normalShape(gregorianSystem, year, month)
	}
	switch last := shape.NaturalMaxDay; {
	case day < 1:
		return c.resolveOffset(year, month, 1, day-1)
	case day > last:
		return c.resolveOffset(year, month, last, day-last)
	}
	d, err := c.AtYMD(year, month, day)
	if errors.Is(err, ErrSkippedDate) {
		d, _ = c.FirstGregorianDate()
		return d, nil
	}
	return d, err
}

func (c Calendar) resolveOffset(year int, month Month, day, offset int) (Date, error) {
	d, err := c.resolve(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return d.AddDays(offset)
}

// Sub returns the number of days from o to d.
func (d Date) Sub(o Date) int64 {
	return int64(d.n) - int64(o.n)
}

// In returns the same day in the calendar c.
func (d Date) In(c Calendar) Date {
	return c.AtDayNumber(d.n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as
// or after o. Dates of the same day in different calendars are ordered by
// Calendar.Compare.
func (d Date) Compare(o Date) int {
	if d.n != o.n {
		return cmp.Compare(d.n, o.n)
	}
	return d.cal.Compare(o.cal)
}

// Equal reports whether d and o are the same day in the same calendar.
func (d Date) Equal(o Date) bool {
	return d.Compare(o) == 0
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Time returns the given moment in time on d, in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	g := gregorianSystem.fields(int64(d.n))
	return time.Date(g.Year, g.Month.TimeMonth(), g.Day, hour, min, sec, nsec, loc)
}

// UnixTime returns the Unix time of the start of d, in UTC.
func (d Date) UnixTime() int64 {
	return dayNumberToUnix(d.n)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date
// is represented as a byte identifying the calendar, followed by the
// reformation of a reforming calendar and the day number, both as
// [binary.Varint].
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 1+2*binary.MaxVarintLen32)
	b = append(b, byte(d.cal.kind))
	if d.cal.kind == reformingKind {
		b = binary.AppendVarint(b, int64(d.cal.reformation))
	}
	return binary.AppendVarint(b, int64(d.n)), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return errors.New("calendar: encoded date truncated")
	}
	var (
		c    Calendar
		err  error
		rest = b[1:]
	)
	switch kind := calendarKind(b[0]); kind {
	case julianKind:
		c = Julian()
	case gregorianKind:
		c = Gregorian()
	case reformingKind:
		r, i := binary.Varint(rest)
		switch {
		case i == 0:
			return errors.New("calendar: encoded date truncated")
		case i < 0 || int64(int32(r)) != r:
			return errors.New("calendar: encoded reformation overflows day number")
		}
		if c, err = Reforming(int32(r)); err != nil {
			return err
		}
		rest = rest[i:]
	default:
		return errors.New("calendar: encoded date has invalid calendar " + strconv.Itoa(int(kind)))
	}
	v, i := binary.Varint(rest)
	switch {
	case i == 0:
		return errors.New("calendar: encoded date truncated")
	case i < 0 || int64(int32(v)) != v:
		return errors.New("calendar: encoded date overflows day number")
	case i != len(rest):
		return errors.New("calendar: extra data after date")
	}
	*d = c.AtDayNumber(int32(v))
	return nil
}
