// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"iter"
	"strconv"
	"time"

	"golang.org/x/text/cases"
)

// A Month specifies a month of the year (January = 1, ...).
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

// MonthOf returns the Month with the number n.
func MonthOf(n int) (Month, error) {
	if n < int(January) || n > int(December) {
		return 0, &MonthRangeError{Value: n}
	}
	return Month(n), nil
}

// MonthFromTime converts a time.Month.
func MonthFromTime(m time.Month) Month {
	return Month(m)
}

// ParseMonth parses the English name of a month, or its three-letter
// abbreviation, ignoring case.
func ParseMonth(s string) (Month, error) {
	if m, ok := monthsByName[fold(s)]; ok {
		return m, nil
	}
	return 0, &ParseMonthError{Value: s}
}

// Months iterates over the months of the year, in order.
func Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := January; m <= December; m++ {
			if !yield(m) {
				return
			}
		}
	}
}

func (m Month) valid() bool {
	return January <= m && m <= December
}

// String returns the English name of the month ("January", "February", ...).
func (m Month) String() string {
	if m.valid() {
		return longMonthNames[m-1]
	}
	return "%!Month(" + strconv.Itoa(int(m)) + ")"
}

// Short returns the three-letter abbreviation of the month ("Jan", ...).
func (m Month) Short() string {
	if m.valid() {
		return shortMonthNames[m-1]
	}
	return m.String()
}

// Number returns the 1-based number of the month.
func (m Month) Number() int {
	return int(m)
}

// Succ returns the month after m. It returns false for December.
func (m Month) Succ() (Month, bool) {
	if !m.valid() || m == December {
		return 0, false
	}
	return m + 1, true
}

// Pred returns the month before m. It returns false for January.
func (m Month) Pred() (Month, bool) {
	if !m.valid() || m == January {
		return 0, false
	}
	return m - 1, true
}

// TimeMonth converts m to a time.Month.
func (m Month) TimeMonth() time.Month {
	return time.Month(m)
}

// A Weekday specifies a day of the week (Sunday = 0, ...).
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

// WeekdayOf returns the Weekday with the number n.
func WeekdayOf(n int) (Weekday, error) {
	if n < int(Sunday) || n > int(Saturday) {
		return 0, &WeekdayRangeError{Value: n}
	}
	return Weekday(n), nil
}

// WeekdayFromTime converts a time.Weekday.
func WeekdayFromTime(d time.Weekday) Weekday {
	return Weekday(d)
}

// ParseWeekday parses the English name of a weekday, or its three-letter
// abbreviation, ignoring case.
func ParseWeekday(s string) (Weekday, error) {
	if d, ok := weekdaysByName[fold(s)]; ok {
		return d, nil
	}
	return 0, &ParseWeekdayError{Value: s}
}

func (d Weekday) valid() bool {
	return Sunday <= d && d <= Saturday
}

// String returns the English name of the day ("Sunday", "Monday", ...).
func (d Weekday) String() string {
	if d.valid() {
		return longDayNames[d]
	}
	return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
}

// Short returns the three-letter abbreviation of the day ("Sun", ...).
func (d Weekday) Short() string {
	if d.valid() {
		return shortDayNames[d]
	}
	return d.String()
}

// TimeWeekday converts d to a time.Weekday.
func (d Weekday) TimeWeekday() time.Weekday {
	return time.Weekday(d)
}

// fold returns the case-folded form of s, for caseless matching of names.
// A Caser must not be shared between goroutines, so a new one is created
// for every call.
func fold(s string) string {
	return cases.Fold().String(s)
}

var monthsByName = func() map[string]Month {
	m := make(map[string]Month, 2*len(longMonthNames))
	for i := range longMonthNames {
		m[fold(longMonthNames[i])] = Month(i + 1)
		m[fold(shortMonthNames[i])] = Month(i + 1)
	}
	return m
}()

var weekdaysByName = func() map[string]Weekday {
	m := make(map[string]Weekday, 2*len(longDayNames))
	for i := range longDayNames {
		m[fold(longDayNames[i])] = Weekday(i)
		m[fold(shortDayNames[i])] = Weekday(i)
	}
	return m
}()
