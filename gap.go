// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"
)

const (
	// GregorianReformation is the day number of 1582-10-15, the first day
	// of the Gregorian calendar as introduced by the papal bull Inter
	// gravissimas.
	GregorianReformation = 2299161

	// MinReformation is the smallest day number accepted by Reforming. It
	// is 0201-01-01 in both systems. On any earlier day the Gregorian
	// day of the year is not ahead of the Julian one.
	MinReformation = 1794474

	// MaxReformation is the largest day number accepted by Reforming.
	MaxReformation = math.MaxInt32
)

// GapKind classifies how the dates skipped by a reformation are laid out.
type GapKind uint8

const (
	// IntraMonth gaps lie within a single month.
	IntraMonth GapKind = iota
	// CrossMonth gaps span a month boundary, but not a year boundary.
	CrossMonth
	// CrossYear gaps end in the year after they start.
	CrossYear
	// MultiYear gaps skip at least one year entirely.
	MultiYear
)

func (k GapKind) String() string {
	switch k {
	case IntraMonth:
		return "IntraMonth"
	case CrossMonth:
		return "CrossMonth"
	case CrossYear:
		return "CrossYear"
	case MultiYear:
		return "MultiYear"
	}
	return fmt.Sprintf("GapKind(%d)", int(k))
}

// GapDate is a date at the edge of a reformation gap, in the proleptic
// calendar that is in effect on its side of the gap.
type GapDate struct {
	Year    int
	Ordinal int
	Month   Month
	Day     int
}

func (d GapDate) before(o GapDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	return d.Ordinal < o.Ordinal
}

// ReformGap describes the dates skipped by a reformation.
type ReformGap struct {
	// PreReform is the last date of the Julian calendar.
	PreReform GapDate
	// PostReform is the first date of the Gregorian calendar.
	PostReform GapDate
	Kind       GapKind

	// For IntraMonth and CrossMonth gaps, days of the reformation year
	// after OrdinalGapStart are numbered OrdinalGap less than their
	// Gregorian day of the year. Both are zero otherwise.
	OrdinalGapStart int
	OrdinalGap      int
}

// computeGap computes the gap introduced by switching to the Gregorian
// calendar on the given day number.
func computeGap(reformation int32) (ReformGap, error) {
	if reformation == MinDayNumber {
		return ReformGap{}, ErrInvalidReformation
	}
	pre := julianSystem.fields(int64(reformation) - 1)
	post := gregorianSystem.fields(int64(reformation))
	if !pre.before(post) {
		return ReformGap{}, ErrInvalidReformation
	}
	g := ReformGap{PreReform: pre, PostReform: post}
	switch {
	case pre.Year == post.Year && pre.Month == post.Month:
		g.Kind = IntraMonth
	case pre.Year == post.Year:
		g.Kind = CrossMonth
	case pre.Year+1 == post.Year:
		g.Kind = CrossYear
	default:
		g.Kind = MultiYear
	}
	if pre.Year == post.Year {
		g.OrdinalGapStart = pre.Ordinal
		g.OrdinalGap = post.Ordinal - pre.Ordinal - 1
	}
	return g, nil
}

// postOffset is the difference between the Gregorian day of the year and
// the day of the year in the reforming calendar for dates in the year of
// PostReform.
func (g ReformGap) postOffset() int {
	if g.PreReform.Year == g.PostReform.Year {
		return g.OrdinalGap
	}
	return g.PostReform.Ordinal - 1
}
