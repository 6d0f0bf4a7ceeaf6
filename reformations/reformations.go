// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reformations provides the dates on which various regions switched
// from the Julian to the Gregorian calendar.
//
// Many regions changed calendars more than once, or in several steps. The
// table lists a single, commonly cited reformation for each.
package reformations

import (
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"gonih.org/calendar"
	"gonih.org/calendar/internal/cache"
)

//go:embed reformations.yaml
var tableYAML []byte

// ErrUnknown is returned for a region that is not in the table.
var ErrUnknown = errors.New("reformations: unknown region")

// A Reformation is the adoption of the Gregorian calendar in a region.
type Reformation struct {
	// Name is the canonical, lower-case name of the region.
	Name string `yaml:"name"`
	// Aliases are other names of the region, or of regions that switched on
	// the same day.
	Aliases []string `yaml:"aliases,omitempty"`
	// DayNumber is the day number of the first Gregorian day.
	DayNumber int32 `yaml:"reformation"`
	// LastJulian and FirstGregorian are the dates on either side of the
	// gap, formatted as YYYY-MM-DD.
	LastJulian     string `yaml:"last_julian"`
	FirstGregorian string `yaml:"first_gregorian"`
}

// Calendar returns the reforming calendar of r.
func (r Reformation) Calendar() (calendar.Calendar, error) {
	return calendar.Reforming(r.DayNumber)
}

var load = sync.OnceValues(func() ([]Reformation, error) {
	var t []Reformation
	if err := yaml.Unmarshal(tableYAML, &t); err != nil {
		return nil, fmt.Errorf("reformations: decoding table: %w", err)
	}
	return t, nil
})

// table returns the decoded table. The table is embedded, so failing to
// decode it is a bug.
func table() []Reformation {
	t, err := load()
	if err != nil {
		panic(err)
	}
	return t
}

// All returns all known reformations, ordered by day number.
func All() []Reformation {
	t := slices.Clone(table())
	slices.SortStableFunc(t, func(a, b Reformation) int {
		return cmp.Compare(a.DayNumber, b.DayNumber)
	})
	return t
}

// Lookup returns the reformation of the named region. Names are matched
// ignoring case and surrounding space, and include the aliases.
func Lookup(name string) (Reformation, bool) {
	key := normalize(name)
	for _, r := range table() {
		if normalize(r.Name) == key {
			return r, true
		}
		for _, a := range r.Aliases {
			if normalize(a) == key {
				return r, true
			}
		}
	}
	return Reformation{}, false
}

// calendars memoizes Calendar.
var calendars cache.Cache[string, calendar.Calendar]

// Calendar returns the reforming calendar of the named region. It returns an
// error wrapping ErrUnknown if the region is not known.
func Calendar(name string) (calendar.Calendar, error) {
	return calendars.Get(normalize(name), func(key string) (calendar.Calendar, error) {
		r, ok := Lookup(key)
		if !ok {
			return calendar.Calendar{}, fmt.Errorf("%w %q", ErrUnknown, name)
		}
		return r.Calendar()
	})
}

func normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
