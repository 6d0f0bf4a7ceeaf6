// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

const (
	// UnixEpoch is the day number of 1970-01-01 (Gregorian).
	UnixEpoch = 2440588

	secondsPerDay = 86400
)

// unixToDayNumber splits a Unix time into its day number and the seconds
// since the start of that day. Times before the epoch are floored, so -1
// is the last second of the day before the epoch.
func unixToDayNumber(sec int64) (int32, int, error) {
	days, s := divmod(sec, secondsPerDay)
	// days is at most ~1e14 in magnitude, adding the epoch can not overflow.
	n, err := toDayNumber(days + UnixEpoch)
	if err != nil {
		return 0, 0, err
	}
	return n, int(s), nil
}

// dayNumberToUnix returns the Unix time of the start of day n.
func dayNumberToUnix(n int32) int64 {
	return (int64(n) - UnixEpoch) * secondsPerDay
}
