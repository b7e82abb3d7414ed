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
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		seconds  float64
	}{
		{"zero", "00:00", 0},
		{"seconds only", "00:10", 10},
		{"minutes and seconds", "01:15", 75},
		{"just under an hour", "59:59", 3599},
		{"hours", "01:06:40", 4000},
		{"just under a day", "23:59:59", 86399},
		{"one day", "01:00:00:00", 86400},
		{"day with zero hours", "01:00:12:03", 87123},
		{"days", "02:03:58:43", 187123},
		{"more than 99 days", "100:00:00:00", 100 * 86400},
		{"fraction truncated", "00:59", 59.999},
		{"saturates past int64", "106751991167300:15:30:07", 1e30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatDuration_FieldRanges(t *testing.T) {
	for d := int64(0); d < 3*86400; d += 37 {
		s := FormatDuration(float64(d))
		fields := strings.Split(s, ":")
		require.GreaterOrEqual(t, len(fields), 2, s)

		n := len(fields)
		secs, err := strconv.Atoi(fields[n-1])
		require.NoError(t, err)
		mins, err := strconv.Atoi(fields[n-2])
		require.NoError(t, err)
		assert.Less(t, secs, 60, s)
		assert.Less(t, mins, 60, s)
		assert.Len(t, fields[n-1], 2, s)
		assert.Len(t, fields[n-2], 2, s)

		if n >= 3 {
			hours, err := strconv.Atoi(fields[n-3])
			require.NoError(t, err)
			assert.Less(t, hours, 24, s)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"00:10", 10},
		{"01:15", 75},
		{"01:06:40", 4000},
		{"01:00:12:03", 87123},
		{"02:03:58:43", 187123},
		{"100:00:00:00", 100 * 86400},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"10",
		"1:15",
		"00:60",
		"60:00",
		"24:00:00",
		"aa:bb",
		"-1:00",
		"+1:00",
		"01:02:03:04:05",
		"01:-0",
		"-0:00",
		"1 :00",
		"200000000000000:00:00:00",
		"106751991167300:15:30:08",
		"99999999999999999999:00:00:00",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDuration(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestParseDuration_LargestDays(t *testing.T) {
	// 106751991167300 days, 15:30:07 is exactly math.MaxInt64 seconds.
	got, err := ParseDuration("106751991167300:15:30:07")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestFormatDuration_RoundTrip(t *testing.T) {
	for d := int64(0); d < 3*86400; d += 53 {
		s := FormatDuration(float64(d))
		parsed, err := ParseDuration(s)
		require.NoError(t, err, s)
		assert.Equal(t, d, parsed)
		assert.Equal(t, s, FormatDuration(float64(parsed)))
	}
}

func BenchmarkFormatDuration(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FormatDuration(187123)
	}
}
