// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "math"

// The range of representable day numbers.
const (
	MinDayNumber = math.MinInt32
	MaxDayNumber = math.MaxInt32
)

// Computations on years are done in closed form, in the same manner as the
// standard library time package. See this comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353
// All intermediate values are int64, so they can not overflow for any year
// that is within yearLimit. Results are range checked before they are
// converted to day numbers.

const (
	// Day numbers of 0001-01-01 in the proleptic Julian and Gregorian
	// calendars.
	julianYearOne    = 1721424
	gregorianYearOne = 1721426

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461

	// No year with a larger magnitude contains a representable day number,
	// in either system.
	yearLimit = 6_000_000
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// system is the leap year rule of a proleptic calendar.
type system uint8

const (
	julianSystem system = iota
	gregorianSystem
)

func (s system) String() string {
	if s == gregorianSystem {
		return "Gregorian"
	}
	return "Julian"
}

func (s system) isLeap(year int) bool {
	if s == gregorianSystem {
		return year%4 == 0 && (year%100 != 0 || year%400 == 0)
	}
	return year%4 == 0
}

func (s system) yearKind(year int) YearKind {
	if s.isLeap(year) {
		return Leap
	}
	return Common
}

// yearStart returns the day number of January 1st of year.
func (s system) yearStart(year int) int64 {
	y := int64(year) - 1
	d := 365*y + floorDiv(y, 4)
	if s == gregorianSystem {
		return d - floorDiv(y, 100) + floorDiv(y, 400) + gregorianYearOne
	}
	return d + julianYearOne
}

// split computes the year and the 1-based day of the year in which the day
// number n occurs.
func (s system) split(n int64) (year, ordinal int) {
	if s == julianSystem {
		q, d := divmod(n-julianYearOne, daysPer4Years)

		// The last year of a cycle is a leap year, so on its last day
		// d/365 will be 4 instead of 3. Cut it back down to 3.
		y := d / 365
		y -= y >> 2
		d -= 365 * y
		return int(1 + 4*q + y), int(d) + 1
	}

	// Account for 400 year cycles.
	q, d := divmod(n-gregorianYearOne, daysPer400Years)
	y := 400 * q

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	c := d / daysPer100Years
	c -= c >> 2
	y += 100 * c
	d -= daysPer100Years * c

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	c = d / daysPer4Years
	y += 4 * c
	d -= daysPer4Years * c

	// Cut off years within a 4-year cycle.
	c = d / 365
	c -= c >> 2
	y += c
	d -= 365 * c

	return int(1 + y), int(d) + 1
}

// fields computes the full date of the day number n.
func (s system) fields(n int64) GapDate {
	year, ordinal := s.split(n)
	month, day := monthDay(s.isLeap(year), ordinal)
	return GapDate{Year: year, Ordinal: ordinal, Month: month, Day: day}
}

// dayNumber returns the day number of the given day of the year. ordinal
// is not validated.
func (s system) dayNumber(year, ordinal int) (int32, error) {
	if year < -yearLimit || year > yearLimit {
		return 0, ErrArithmetic
	}
	return toDayNumber(s.yearStart(year) + int64(ordinal) - 1)
}

// toDayNumber checks that n is a representable day number.
func toDayNumber(n int64) (int32, error) {
	if n < MinDayNumber || n > MaxDayNumber {
		return 0, ErrArithmetic
	}
	return int32(n), nil
}

func yearLength(leap bool) int {
	if leap {
		return 366
	}
	return 365
}

// daysIn counts the days of month m.
func daysIn(leap bool, m Month) int {
	if m == February && leap {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// monthDay converts a 1-based day of the year to a month and day.
func monthDay(leap bool, ordinal int) (Month, int) {
	day := ordinal - 1
	if leap {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return February, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	m := day / 31
	end := daysBefore[m+1]
	var begin int
	if day >= end {
		m++
		begin = end
	} else {
		begin = daysBefore[m]
	}
	return Month(m + 1), day - begin + 1
}

// ordinalOf is the inverse of monthDay.
func ordinalOf(leap bool, m Month, day int) int {
	o := daysBefore[m-1] + day
	if leap && m > February {
		o++
	}
	return o
}

// divmod returns q, r such that
//
//	q * base + r == n
//	0 <= r < base
func divmod(n, base int64) (q, r int64) {
	q, r = n/base, n%base
	if r < 0 {
		q--
		r += base
	}
	return q, r
}

func floorDiv(n, base int64) int64 {
	q, _ := divmod(n, base)
	return q
}
