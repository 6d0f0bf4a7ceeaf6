// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tcs := []struct {
		in   string
		want Month
		ok   bool
	}{
		{"January", January, true},
		{"january", January, true},
		{"SEPTEMBER", September, true},
		{"sep", September, true},
		{"ſep", September, true},
		{"Dec", December, true},
		{"Sept", 0, false},
		{" Jan", 0, false},
		{"", 0, false},
	}
	for _, tc := range tcs {
		got, err := ParseMonth(tc.in)
		if !tc.ok {
			var perr *ParseMonthError
			if !errors.As(err, &perr) || perr.Value != tc.in {
				t.Errorf("ParseMonth(%q) = %v, %v, want *ParseMonthError", tc.in, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseMonth(%q) = %v, %v, want %v, <nil>", tc.in, got, err, tc.want)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	for d := Sunday; d <= Saturday; d++ {
		for _, s := range []string{d.String(), d.Short()} {
			if got, err := ParseWeekday(s); err != nil || got != d {
				t.Errorf("ParseWeekday(%q) = %v, %v, want %v", s, got, err, d)
			}
		}
	}
	if got, err := ParseWeekday("FRIDAY"); err != nil || got != Friday {
		t.Errorf("ParseWeekday(%q) = %v, %v, want %v", "FRIDAY", got, err, Friday)
	}
	var perr *ParseWeekdayError
	if _, err := ParseWeekday("Fri."); !errors.As(err, &perr) {
		t.Errorf("ParseWeekday(%q) = _, %v, want *ParseWeekdayError", "Fri.", err)
	}
}

func TestMonthOf(t *testing.T) {
	for n := -1; n <= 14; n++ {
		m, err := MonthOf(n)
		if n < 1 || n > 12 {
			var rerr *MonthRangeError
			if !errors.As(err, &rerr) || rerr.Value != n {
				t.Errorf("MonthOf(%d) = %v, %v, want *MonthRangeError", n, m, err)
			}
			continue
		}
		if err != nil || m.Number() != n || m.TimeMonth() != time.Month(n) || MonthFromTime(time.Month(n)) != m {
			t.Errorf("MonthOf(%d) = %v, %v", n, m, err)
		}
		if m.String() != time.Month(n).String() || m.Short() != time.Month(n).String()[:3] {
			t.Errorf("MonthOf(%d) = %v (%v), names disagree with package time", n, m, m.Short())
		}
	}
	if _, err := WeekdayOf(7); err == nil {
		t.Errorf("WeekdayOf(7) = _, <nil>, want error")
	}
	if d, err := WeekdayOf(3); err != nil || d != Wednesday || WeekdayFromTime(time.Wednesday) != d {
		t.Errorf("WeekdayOf(3) = %v, %v, want %v", d, err, Wednesday)
	}
}

func TestMonthSuccPred(t *testing.T) {
	if got := slices.Collect(Months()); len(got) != 12 || got[0] != January || got[11] != December {
		t.Errorf("Months() = %v", got)
	}
	for m := range Months() {
		next, ok := m.Succ()
		if ok != (m != December) || ok && next != m+1 {
			t.Errorf("%v.Succ() = %v, %v", m, next, ok)
		}
		prev, ok := m.Pred()
		if ok != (m != January) || ok && prev != m-1 {
			t.Errorf("%v.Pred() = %v, %v", m, prev, ok)
		}
	}
	if _, ok := Month(13).Succ(); ok {
		t.Errorf("Month(13).Succ() = _, true")
	}
	if got := Month(13).String(); got != "%!Month(13)" {
		t.Errorf("Month(13).String() = %q", got)
	}
	if got := Weekday(-1).Short(); got != "%!Weekday(-1)" {
		t.Errorf("Weekday(-1).Short() = %q", got)
	}
}
