// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrArithmetic is returned when a day number, year or ordinal
	// computation leaves the representable range.
	ErrArithmetic = errors.New("calendar: arithmetic overflow")

	// ErrInvalidReformation is returned by Reforming if the reformation
	// would not move the calendar forward.
	ErrInvalidReformation = errors.New("calendar: reformation does not advance the calendar")

	// ErrSkippedDate matches every *SkippedDateError using errors.Is.
	ErrSkippedDate = errors.New("calendar: date skipped by reformation")
)

// DayOutOfRangeError is returned when a day of the month lies outside the
// natural bounds of its month.
type DayOutOfRangeError struct {
	Year  int
	Month Month
	Day   int
	Min   int
	Max   int
}

func (e *DayOutOfRangeError) Error() string {
	return fmt.Sprintf("calendar: day %d of %v %d outside of range %d..%d", e.Day, e.Month, e.Year, e.Min, e.Max)
}

// OrdinalOutOfRangeError is returned when a day of the year lies outside the
// length of its year. Max is 0 for years skipped entirely by a reformation.
type OrdinalOutOfRangeError struct {
	Year    int
	Ordinal int
	Max     int
}

func (e *OrdinalOutOfRangeError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("calendar: day %d of year %d: year is skipped by reformation", e.Ordinal, e.Year)
	}
	return fmt.Sprintf("calendar: day %d of year %d outside of range 1..%d", e.Ordinal, e.Year, e.Max)
}

// SkippedDateError is returned for a date that is within the natural bounds
// of its month, but was skipped by a reformation.
type SkippedDateError struct {
	Year  int
	Month Month
	Day   int
}

func (e *SkippedDateError) Error() string {
	return fmt.Sprintf("calendar: %v %d, %d was skipped by reformation", e.Month, e.Day, e.Year)
}

// Is reports whether target is ErrSkippedDate.
func (e *SkippedDateError) Is(target error) bool {
	return target == ErrSkippedDate
}

// ParseMonthError is returned for a month name that is not recognized.
type ParseMonthError struct {
	Value string
}

func (e *ParseMonthError) Error() string {
	return "calendar: invalid month name " + strconv.Quote(e.Value)
}

// MonthRangeError is returned when converting a number outside of 1..12 to
// a Month.
type MonthRangeError struct {
	Value int
}

func (e *MonthRangeError) Error() string {
	return fmt.Sprintf("calendar: month number %d outside of range 1..12", e.Value)
}

// ParseWeekdayError is returned for a weekday name that is not recognized.
type ParseWeekdayError struct {
	Value string
}

func (e *ParseWeekdayError) Error() string {
	return "calendar: invalid weekday name " + strconv.Quote(e.Value)
}

// WeekdayRangeError is returned when converting a number outside of 0..6 to
// a Weekday.
type WeekdayRangeError struct {
	Value int
}

func (e *WeekdayRangeError) Error() string {
	return fmt.Sprintf("calendar: weekday number %d outside of range 0..6", e.Value)
}

// TimeRangeError is returned when a time.Time has no representable day
// number.
type TimeRangeError struct {
	Time time.Time
}

func (e *TimeRangeError) Error() string {
	return fmt.Sprintf("calendar: %v outside of the representable day numbers", e.Time)
}

// Unwrap returns ErrArithmetic.
func (e *TimeRangeError) Unwrap() error {
	return ErrArithmetic
}
