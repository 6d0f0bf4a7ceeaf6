// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
)

// YearKind classifies a year of a Calendar.
type YearKind uint8

const (
	// Common years have 365 days.
	Common YearKind = iota
	// Leap years have 366 days.
	Leap
	// ReformCommon years are shortened by a reformation gap and have no
	// February 29.
	ReformCommon
	// ReformLeap years are shortened by a reformation gap and have a
	// February 29.
	ReformLeap
	// Skipped years are swallowed entirely by a reformation gap.
	Skipped
)

func (k YearKind) String() string {
	switch k {
	case Common:
		return "Common"
	case Leap:
		return "Leap"
	case ReformCommon:
		return "ReformCommon"
	case ReformLeap:
		return "ReformLeap"
	case Skipped:
		return "Skipped"
	}
	return fmt.Sprintf("YearKind(%d)", int(k))
}

// IsLeap reports whether years of kind k contain a February 29.
func (k YearKind) IsLeap() bool {
	return k == Leap || k == ReformLeap
}

// IsReform reports whether years of kind k are affected by a reformation.
func (k YearKind) IsReform() bool {
	return k == ReformCommon || k == ReformLeap || k == Skipped
}

// ShapeKind classifies the valid days of a month.
type ShapeKind uint8

const (
	// Normal months have all days from 1 to MaxDay.
	Normal ShapeKind = iota
	// Gapped months are missing the days from GapStart to GapEnd.
	Gapped
	// Tailless months end early, at MaxDay rather than NaturalMaxDay.
	Tailless
	// Headless months start late, at MinDay.
	Headless
)

func (k ShapeKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Gapped:
		return "Gapped"
	case Tailless:
		return "Tailless"
	case Headless:
		return "Headless"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// A MonthShape describes which days of a month exist in a Calendar.
type MonthShape struct {
	Kind  ShapeKind
	Year  int
	Month Month

	// MinDay and MaxDay are the first and last valid day of the month.
	MinDay int
	MaxDay int

	// GapStart and GapEnd are the first and last skipped day of a Gapped
	// month. They are zero for other kinds.
	GapStart int
	GapEnd   int

	// NaturalMaxDay is the length of the month, ignoring any reformation.
	NaturalMaxDay int
}

func normalShape(s system, year int, m Month) MonthShape {
	n := daysIn(s.isLeap(year), m)
	return MonthShape{
		Kind:          Normal,
		Year:          year,
		Month:         m,
		MinDay:        1,
		MaxDay:        n,
		NaturalMaxDay: n,
	}
}

func (s MonthShape) gapLen() int {
	if s.Kind != Gapped {
		return 0
	}
	return s.GapEnd - s.GapStart + 1
}

// Len returns the number of valid days.
func (s MonthShape) Len() int {
	return s.MaxDay - s.MinDay + 1 - s.gapLen()
}

// Contains reports whether day is a valid day of the month.
func (s MonthShape) Contains(day int) bool {
	if day < s.MinDay || day > s.MaxDay {
		return false
	}
	return s.Kind != Gapped || day < s.GapStart || day > s.GapEnd
}

// FirstDay returns the first valid day of the month.
func (s MonthShape) FirstDay() int {
	return s.MinDay
}

// LastDay returns the last valid day of the month.
func (s MonthShape) LastDay() int {
	return s.MaxDay
}

// DayOrdinal returns the 1-based position of day among the valid days of
// the month. It returns false if day is not valid.
func (s MonthShape) DayOrdinal(day int) (int, bool) {
	if !s.Contains(day) {
		return 0, false
	}
	n := day - s.MinDay + 1
	if s.Kind == Gapped && day > s.GapEnd {
		n -= s.gapLen()
	}
	return n, true
}

// DayOrdinalErr is like DayOrdinal, but returns a *DayOutOfRangeError if day
// is outside of the natural bounds of the month, or a *SkippedDateError if
// it was skipped by a reformation.
func (s MonthShape) DayOrdinalErr(day int) (int, error) {
	if day < 1 || day > s.NaturalMaxDay {
		return 0, &DayOutOfRangeError{Year: s.Year, Month: s.Month, Day: day, Min: 1, Max: s.NaturalMaxDay}
	}
	n, ok := s.DayOrdinal(day)
	if !ok {
		return 0, &SkippedDateError{Year: s.Year, Month: s.Month, Day: day}
	}
	return n, nil
}

// NthDay returns the n-th valid day of the month, counting from 1. It is the
// inverse of DayOrdinal.
func (s MonthShape) NthDay(n int) (int, bool) {
	if n < 1 || n > s.Len() {
		return 0, false
	}
	day := s.MinDay + n - 1
	if s.Kind == Gapped && day >= s.GapStart {
		day += s.gapLen()
	}
	return day, true
}

// Days iterates over the valid days of the month, in order.
func (s MonthShape) Days() iter.Seq[int] {
	return func(yield func(int) bool) {
		for day := s.MinDay; day <= s.MaxDay; day++ {
			if s.Kind == Gapped && day == s.GapStart {
				day = s.GapEnd
				continue
			}
			if !yield(day) {
				return
			}
		}
	}
}

// Backward iterates over the valid days of the month, in reverse order.
func (s MonthShape) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for day := s.MaxDay; day >= s.MinDay; day-- {
			if s.Kind == Gapped && day == s.GapEnd {
				day = s.GapStart
				continue
			}
			if !yield(day) {
				return
			}
		}
	}
}
