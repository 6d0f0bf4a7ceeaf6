// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// A Layout selects the textual representation of a Date.
//
// Years are written with at least four digits and a leading '-' if they
// are negative. Months and days of the month have two digits, days of the
// year three.
type Layout uint8

const (
	YMD         Layout = iota // 2006-01-02
	OrdinalDate               // 2006-002
)

// Format returns a textual representation of d in the given layout.
func (d Date) Format(l Layout) string {
	var buf [24]byte
	return string(d.AppendFormat(buf[:0], l))
}

// AppendFormat is like Format but appends the textual representation to b
// and returns the extended buffer.
func (d Date) AppendFormat(b []byte, l Layout) []byte {
	b = appendYear(b, d.year)
	b = append(b, '-')
	if l == OrdinalDate {
		return appendZeroPadded(b, d.ordinal, 3)
	}
	b = appendZeroPadded(b, int(d.month), 2)
	b = append(b, '-')
	return appendZeroPadded(b, d.day, 2)
}

// String returns d formatted as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(YMD)
}

// OrdinalString returns d formatted as YYYY-DDD.
func (d Date) OrdinalString() string {
	return d.Format(OrdinalDate)
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat(nil, YMD), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// is parsed by ParseDate in the calendar of d, which is the Julian calendar
// for the zero Date. On error, d is left unchanged.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := d.cal.ParseDate(string(b))
	if err == nil {
		*d = v
	}
	return err
}

func appendYear(b []byte, year int) []byte {
	y := int64(year)
	if y < 0 {
		b = append(b, '-')
		y = -y
	}
	if y < 1000 {
		b = append(b, '0')
	}
	if y < 100 {
		b = append(b, '0')
	}
	if y < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, y, 10)
}

func appendZeroPadded(b []byte, v, width int) []byte {
	for p := 10; width > 1; width-- {
		if v < p {
			b = append(b, '0')
		}
		p *= 10
	}
	return strconv.AppendInt(b, int64(v), 10)
}

// ParseDate parses a date of c, written as YYYY-MM-DD or YYYY-DDD. The year
// has at least four digits and may be preceded by a '+' or '-' sign.
//
// Errors are of type *ParseDateError. If the text is well-formed, but does
// not denote a date of c, the error wraps the error of AtYMD or AtOrdinal.
func (c Calendar) ParseDate(s string) (Date, error) {
	p := newParser(s)
	f, err := p.parse()
	if err != nil {
		return Date{}, err
	}
	var d Date
	if f.ordinal {
		d, err = c.AtOrdinal(f.year, f.day)
	} else {
		d, err = c.AtYMD(f.year, f.month, f.day)
	}
	if err != nil {
		return Date{}, p.err(InvalidDate, 0, err)
	}
	return d, nil
}

// ParseErrorKind classifies a *ParseDateError.
type ParseErrorKind uint8

const (
	// InvalidDate is a well-formed date that does not exist.
	InvalidDate ParseErrorKind = iota
	// UnexpectedChar is an unexpected character.
	UnexpectedChar
	// EndOfInput is a premature end of the input.
	EndOfInput
	// InvalidNumber is a component with the wrong number of digits, or one
	// that overflows.
	InvalidNumber
	// UnterminatedYear is a year that is not followed by '-'.
	UnterminatedYear
	// TrailingInput is extra text after a complete date.
	TrailingInput
)

// ParseDateError describes a problem parsing a date string.
type ParseDateError struct {
	Value  string
	Offset int
	Kind   ParseErrorKind
	Err    error
}

// Error returns the string representation of a ParseDateError.
func (e *ParseDateError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("parsing date %q: unexpected character %q at offset %d", e.Value, e.Value[e.Offset], e.Offset)
	case EndOfInput:
		return fmt.Sprintf("parsing date %q: unexpected end of input", e.Value)
	case InvalidNumber:
		if e.Err != nil {
			return fmt.Sprintf("parsing date %q: invalid number at offset %d: %v", e.Value, e.Offset, e.Err)
		}
		return fmt.Sprintf("parsing date %q: invalid number at offset %d", e.Value, e.Offset)
	case UnterminatedYear:
		return fmt.Sprintf("parsing date %q: year not terminated by '-'", e.Value)
	case TrailingInput:
		return fmt.Sprintf("parsing date %q: extra text: %q", e.Value, e.Value[e.Offset:])
	}
	return fmt.Sprintf("parsing date %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying error, if any.
func (e *ParseDateError) Unwrap() error {
	return e.Err
}

// parsedDate holds the components of a parsed date. If ordinal is set, day
// is the day of the year and month is unset.
type parsedDate struct {
	year    int
	month   Month
	day     int
	ordinal bool
}

type parser struct {
	value string
	pos   int
}

func newParser(value string) *parser {
	return &parser{value: value}
}

// parse parses the complete input.
func (p *parser) parse() (parsedDate, error) {
	var f parsedDate
	year, err := p.year()
	if err != nil {
		return f, err
	}
	f.year = year

	start := p.pos
	switch run := p.digits(); len(run) {
	case 0:
		return f, p.unexpected()
	case 2:
		f.month = Month(atoi(run))
	case 3:
		f.ordinal = true
		f.day = atoi(run)
		return f, p.end()
	default:
		return f, p.err(InvalidNumber, start, nil)
	}

	if err := p.accept('-'); err != nil {
		return f, err
	}
	start = p.pos
	switch run := p.digits(); len(run) {
	case 0:
		return f, p.unexpected()
	case 2:
		f.day = atoi(run)
	default:
		return f, p.err(InvalidNumber, start, nil)
	}
	return f, p.end()
}

// year parses an optionally signed year and the '-' terminating it.
func (p *parser) year() (int, error) {
	start := p.pos
	neg := false
	if c, ok := p.peek(); ok && (c == '+' || c == '-') {
		neg = c == '-'
		p.pos++
	}
	run := p.digits()
	if run == "" {
		return 0, p.unexpected()
	}
	if len(run) < 4 {
		return 0, p.err(InvalidNumber, start, nil)
	}
	y, err := strconv.Atoi(run)
	if err != nil {
		return 0, p.err(InvalidNumber, start, err)
	}
	if c, ok := p.peek(); !ok || c != '-' {
		return 0, p.err(UnterminatedYear, p.pos, nil)
	}
	p.pos++
	if neg {
		y = -y
	}
	return y, nil
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.value) {
		return 0, false
	}
	return p.value[p.pos], true
}

// digits accepts a run of ASCII digits.
func (p *parser) digits() string {
	start := p.pos
	for p.pos < len(p.value) && '0' <= p.value[p.pos] && p.value[p.pos] <= '9' {
		p.pos++
	}
	return p.value[start:p.pos]
}

// accept a single byte.
func (p *parser) accept(b byte) error {
	if c, ok := p.peek(); !ok || c != b {
		return p.unexpected()
	}
	p.pos++
	return nil
}

// end checks that the input is consumed.
func (p *parser) end() error {
	if p.pos < len(p.value) {
		return p.err(TrailingInput, p.pos, nil)
	}
	return nil
}

// unexpected reports the byte at the current position, or the end of input.
func (p *parser) unexpected() error {
	if p.pos >= len(p.value) {
		return p.err(EndOfInput, p.pos, nil)
	}
	return p.err(UnexpectedChar, p.pos, nil)
}

func (p *parser) err(kind ParseErrorKind, offset int, err error) error {
	// Cloning the value keeps the input from escaping in the happy path,
	// at the cost of an extra allocation on error.
	return &ParseDateError{
		Value:  strings.Clone(p.value),
		Offset: offset,
		Kind:   kind,
		Err:    err,
	}
}

// atoi converts a short run of ASCII digits.
func atoi(s string) int {
	var n int
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
