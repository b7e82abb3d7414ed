/*
Copyright © 2025 Anton Brekhov <anton@abrekhov.ru>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package progress

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// ErrInvalidDuration is returned by ParseDuration for malformed input.
var ErrInvalidDuration = errors.New("invalid duration")

// FormatDuration formats seconds as DD:HH:MM:SS, HH:MM:SS or MM:SS,
// omitting leading units that are zero. Fractions of a second are truncated.
// Negative input is not supported.
func FormatDuration(seconds float64) string {
	d := truncSeconds(seconds)
	days := d / secondsPerDay
	hours := (d / secondsPerHour) % 24
	minutes := (d / secondsPerMinute) % 60
	secs := d % secondsPerMinute

	switch {
	case days > 0:
		return fmt.Sprintf("%02d:%02d:%02d:%02d", days, hours, minutes, secs)
	case hours > 0:
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	default:
		return fmt.Sprintf("%02d:%02d", minutes, secs)
	}
}

// ParseDuration parses the MM:SS, HH:MM:SS or DD:HH:MM:SS forms produced by
// FormatDuration and returns the number of seconds.
func ParseDuration(s string) (int64, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 4 {
		return 0, fmt.Errorf("%w: %q: expected 2 to 4 fields", ErrInvalidDuration, s)
	}

	// Limits for seconds, minutes, hours; days are unbounded.
	limits := []int64{60, 60, 24}
	multipliers := []int64{1, secondsPerMinute, secondsPerHour, secondsPerDay}

	var total int64
	for i := range fields {
		field := fields[len(fields)-1-i]
		if len(field) < 2 {
			return 0, fmt.Errorf("%w: %q: field %q must have two digits", ErrInvalidDuration, s, field)
		}
		if !isDigits(field) {
			return 0, fmt.Errorf("%w: %q: bad field %q", ErrInvalidDuration, s, field)
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: bad field %q", ErrInvalidDuration, s, field)
		}
		if i < len(limits) && v >= limits[i] {
			return 0, fmt.Errorf("%w: %q: field %q out of range", ErrInvalidDuration, s, field)
		}
		if v > (math.MaxInt64-total)/multipliers[i] {
			return 0, fmt.Errorf("%w: %q: too large", ErrInvalidDuration, s)
		}
		total += v * multipliers[i]
	}
	return total, nil
}

// truncSeconds truncates toward zero, saturating at the int64 range.
func truncSeconds(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
