// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "iter"

// MonthDates iterates over the dates of the given month, in order. It
// yields nothing if the month does not exist in c, or if its dates are not
// representable.
func (c Calendar) MonthDates(year int, month Month) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		shape, ok := c.MonthShape(year, month)
		if !ok {
			return
		}
		first, err := c.AtYMD(year, month, shape.FirstDay())
		if err != nil {
			return
		}
		// The valid days of a month have consecutive day numbers.
		for i := 0; i < shape.Len(); i++ {
			n := int64(first.n) + int64(i)
			if n > MaxDayNumber || !yield(c.AtDayNumber(int32(n))) {
				return
			}
		}
	}
}

// Later iterates over the dates after d, in order, up to the last
// representable day.
func (d Date) Later() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for cur, ok := d.Next(); ok; cur, ok = cur.Next() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Earlier iterates over the dates before d, in reverse order, down to the
// first representable day.
func (d Date) Earlier() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for cur, ok := d.Prev(); ok; cur, ok = cur.Prev() {
			if !yield(cur) {
				return
			}
		}
	}
}
