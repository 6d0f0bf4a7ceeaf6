// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	tcs := []struct {
		d       Date
		ymd     string
		ordinal string
	}{
		{GregorianReform().AtDayNumber(0), "-4712-01-01", "-4712-001"},
		{GregorianReform().AtDayNumber(2299161), "1582-10-15", "1582-278"},
		{GregorianReform().AtDayNumber(2460055), "2023-04-20", "2023-110"},
		{Julian().AtDayNumber(MinDayNumber), "-5884202-03-16", "-5884202-075"},
		{Gregorian().AtDayNumber(MaxDayNumber), "5874898-06-03", "5874898-154"},
		{mustDate(Julian().AtYMD(0, December, 31)), "0000-12-31", "0000-366"},
		{mustDate(Julian().AtYMD(5, March, 7)), "0005-03-07", "0005-066"},
		{mustDate(Julian().AtYMD(-5, March, 7)), "-0005-03-07", "-0005-066"},
		{mustDate(Julian().AtYMD(-999, January, 9)), "-0999-01-09", "-0999-009"},
		{mustDate(Julian().AtYMD(10000, October, 10)), "10000-10-10", "10000-284"},
	}
	for _, tc := range tcs {
		if got := tc.d.String(); got != tc.ymd {
			t.Errorf("String() = %q, want %q", got, tc.ymd)
		}
		if got := tc.d.OrdinalString(); got != tc.ordinal {
			t.Errorf("%v.OrdinalString() = %q, want %q", tc.d, got, tc.ordinal)
		}
		if got, _ := tc.d.MarshalText(); string(got) != tc.ymd {
			t.Errorf("MarshalText() = %q, want %q", got, tc.ymd)
		}
		if got := string(tc.d.AppendFormat([]byte("date: "), OrdinalDate)); got != "date: "+tc.ordinal {
			t.Errorf("AppendFormat(%q, OrdinalDate) = %q", "date: ", got)
		}
	}
}

func mustDate(d Date, err error) Date {
	if err != nil {
		panic(err)
	}
	return d
}

func TestAppendFormatAllocs(t *testing.T) {
	d := GregorianReform().AtDayNumber(2460055)
	buf := make([]byte, 0, 32)
	if n := testing.AllocsPerRun(100, func() { buf = d.AppendFormat(buf[:0], YMD) }); n != 0 {
		t.Errorf("AppendFormat allocates %v times", n)
	}
}

func TestParseDate(t *testing.T) {
	tcs := []struct {
		in string
		n  int32
	}{
		{"1582-10-15", 2299161},
		{"+1582-10-15", 2299161},
		{"1582-10-04", 2299160},
		{"1582-278", 2299161},
		{"1582-277", 2299160},
		{"-4712-01-01", 0},
		{"-4712-001", 0},
		{"2023-04-20", 2460055},
		{"002023-04-20", 2460055},
		{"5874898-06-03", MaxDayNumber},
		{"-5884202-075", MinDayNumber},
	}
	for _, tc := range tcs {
		d, err := GregorianReform().ParseDate(tc.in)
		if err != nil || d.DayNumber() != tc.n {
			t.Errorf("ParseDate(%q) = %v (%d), %v, want %d", tc.in, d, d.DayNumber(), err, tc.n)
		}
	}
}

func TestParseDateErrors(t *testing.T) {
	tcs := []struct {
		in     string
		kind   ParseErrorKind
		offset int
		// target is matched by errors.Is, if not nil.
		target error
	}{
		{"", EndOfInput, 0, nil},
		{"x", UnexpectedChar, 0, nil},
		{"+", EndOfInput, 1, nil},
		{"+-1582-10-15", UnexpectedChar, 1, nil},
		{"158-10-15", InvalidNumber, 0, nil},
		{"99999999999999999999-01-01", InvalidNumber, 0, strconv.ErrRange},
		{"1582", UnterminatedYear, 4, nil},
		{"1582/10/15", UnterminatedYear, 4, nil},
		{"1582-", EndOfInput, 5, nil},
		{"1582-x", UnexpectedChar, 5, nil},
		{"1582-1-15", InvalidNumber, 5, nil},
		{"1582-1015", InvalidNumber, 5, nil},
		{"1582-10", EndOfInput, 7, nil},
		{"1582-10/15", UnexpectedChar, 7, nil},
		{"1582-10-", EndOfInput, 8, nil},
		{"1582-10-1", InvalidNumber, 8, nil},
		{"1582-10-150", InvalidNumber, 8, nil},
		{"1582-10-15x", TrailingInput, 10, nil},
		{"1582-10-15 ", TrailingInput, 10, nil},
		{"1582-278-", TrailingInput, 8, nil},
		{"1582-10-10", InvalidDate, 0, ErrSkippedDate},
		{"6000001-01-01", InvalidDate, 0, ErrArithmetic},
		{"5874898-06-04", InvalidDate, 0, ErrArithmetic},
	}
	for _, tc := range tcs {
		_, err := GregorianReform().ParseDate(tc.in)
		var perr *ParseDateError
		if !errors.As(err, &perr) {
			t.Errorf("ParseDate(%q) = _, %v, want *ParseDateError", tc.in, err)
			continue
		}
		if perr.Kind != tc.kind || perr.Offset != tc.offset || perr.Value != tc.in {
			t.Errorf("ParseDate(%q) = %#v, want kind %d at offset %d", tc.in, perr, tc.kind, tc.offset)
		}
		if tc.target != nil && !errors.Is(err, tc.target) {
			t.Errorf("ParseDate(%q) = _, %v, want %v", tc.in, err, tc.target)
		}
	}

	// Invalid dates wrap the error of the constructor.
	_, err := GregorianReform().ParseDate("1582-13-01")
	var merr *MonthRangeError
	if !errors.As(err, &merr) || merr.Value != 13 {
		t.Errorf("ParseDate(%q) = _, %v, want *MonthRangeError", "1582-13-01", err)
	}
	_, err = GregorianReform().ParseDate("1582-356")
	var oerr *OrdinalOutOfRangeError
	if !errors.As(err, &oerr) || oerr.Max != 355 {
		t.Errorf("ParseDate(%q) = _, %v, want *OrdinalOutOfRangeError", "1582-356", err)
	}
	_, err = GregorianReform().ParseDate("1582-10-32")
	var derr *DayOutOfRangeError
	if !errors.As(err, &derr) || derr.Max != 31 {
		t.Errorf("ParseDate(%q) = _, %v, want *DayOutOfRangeError", "1582-10-32", err)
	}
}

func TestParseDateErrorMessages(t *testing.T) {
	tcs := []struct {
		in   string
		want string
	}{
		{"x", `parsing date "x": unexpected character 'x' at offset 0`},
		{"1582-10", `parsing date "1582-10": unexpected end of input`},
		{"158-10-15", `parsing date "158-10-15": invalid number at offset 0`},
		{"1582", `parsing date "1582": year not terminated by '-'`},
		{"1582-10-15x", `parsing date "1582-10-15x": extra text: "x"`},
		{"1582-10-10", `parsing date "1582-10-10": calendar: October 10, 1582 was skipped by reformation`},
	}
	for _, tc := range tcs {
		_, err := GregorianReform().ParseDate(tc.in)
		if err == nil || err.Error() != tc.want {
			t.Errorf("ParseDate(%q) = _, %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParseDateCalendars(t *testing.T) {
	// The same text denotes different days in different calendars.
	for _, tc := range []struct {
		cal Calendar
		n   int32
	}{
		{Julian(), 2299171},
		{Gregorian(), 2299161},
		{GregorianReform(), 2299161},
		{mustReforming(t, britishReformation), 2299171},
	} {
		d, err := tc.cal.ParseDate("1582-10-15")
		if err != nil || d.DayNumber() != tc.n || !d.Calendar().Equal(tc.cal) {
			t.Errorf("%v.ParseDate(%q) = %d, %v, want %d", tc.cal, "1582-10-15", d.DayNumber(), err, tc.n)
		}
	}
}

func FuzzFormatParse(f *testing.F) {
	f.Add(int32(0), false)
	f.Add(int32(2299160), true)
	f.Add(int32(MinDayNumber), false)
	f.Add(int32(MaxDayNumber), true)
	f.Fuzz(func(t *testing.T, n int32, ordinal bool) {
		for _, c := range []Calendar{Julian(), Gregorian(), GregorianReform(), mustReforming(t, multiReformation)} {
			d := c.AtDayNumber(n)
			s := d.String()
			if ordinal {
				s = d.OrdinalString()
			}
			got, err := c.ParseDate(s)
			if err != nil || !got.Equal(d) {
				t.Fatalf("%v.ParseDate(%q) = %v, %v, want %v", c, s, got, err, d)
			}
		}
	})
}

func FuzzParseDate(f *testing.F) {
	for _, s := range []string{"1582-10-15", "-4712-001", "+0000-02-29", "1582-10-10", "x", ""} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		c := GregorianReform()
		d, err := c.ParseDate(s)
		if err != nil {
			var perr *ParseDateError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseDate(%q) = _, %v, want *ParseDateError", s, err)
			}
			if perr.Offset < 0 || perr.Offset > len(s) {
				t.Fatalf("ParseDate(%q) reports offset %d", s, perr.Offset)
			}
			_ = perr.Error()
			return
		}
		// The canonical form parses to the same date.
		for _, canon := range []string{d.String(), d.OrdinalString()} {
			got, err := c.ParseDate(canon)
			if err != nil || !got.Equal(d) {
				t.Fatalf("ParseDate(%q) = %v, %v, but ParseDate(%q) = %v", canon, got, err, s, d)
			}
		}
	})
}

func TestUnmarshalText(t *testing.T) {
	for _, c := range testCalendars(t) {
		for _, n := range []int32{MinDayNumber, 0, 2299160, 2299161, 2361221, MaxDayNumber} {
			want := c.AtDayNumber(n)
			b, _ := want.MarshalText()
			got := c.AtDayNumber(0)
			if err := got.UnmarshalText(b); err != nil || !got.Equal(want) {
				t.Errorf("%v: UnmarshalText(%q) = %v, %v, want %v", c, b, got, err, want)
			}
		}
	}

	var d Date
	if err := d.UnmarshalText([]byte("1582-10-10")); err != nil || !d.Calendar().IsJulian() || d.DayNumber() != 2299166 {
		t.Errorf("Date{}.UnmarshalText(%q) = %#v, %v, want Julian day 2299166", "1582-10-10", d, err)
	}

	d = GregorianReform().AtDayNumber(2299161)
	if err := d.UnmarshalText([]byte("1582-10-10")); !errors.Is(err, ErrSkippedDate) {
		t.Errorf("UnmarshalText(%q) = %v, want %v", "1582-10-10", err, ErrSkippedDate)
	}
	var perr *ParseDateError
	if err := d.UnmarshalText([]byte("1582/10/10")); !errors.As(err, &perr) {
		t.Errorf("UnmarshalText(%q) = %v, want *ParseDateError", "1582/10/10", err)
	}
	if d.DayNumber() != 2299161 {
		t.Errorf("failed UnmarshalText modified date to %v", d)
	}
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := GregorianReform().AtDayNumber(int32(rnd.Uint32())).MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		d := GregorianReform().AtDayNumber(0)
		if err := d.UnmarshalText(b); err != nil {
			return
		}
		enc, _ := d.MarshalText()
		got := GregorianReform().AtDayNumber(0)
		if err := got.UnmarshalText(enc); err != nil || !got.Equal(d) {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", enc, got, err, d)
		}
	})
}
