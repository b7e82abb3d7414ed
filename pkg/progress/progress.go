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

// Package progress tracks how far an iterative operation has gone and
// projects the total time it will take.
//
// A Tracker is cheap enough to be queried inside hot loops: every call reads
// the clock once and does a handful of arithmetic operations.
package progress

import (
	"fmt"
	"strconv"
	"time"
)

// Tracker tracks the progress of an operation over a fixed number of items.
// Its state is read-only after construction.
type Tracker struct {
	startTime        time.Time
	now              func() time.Time
	totalItems       int64
	durationAsString bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithDurationAsString selects whether reports carry formatted durations
// (the default) or raw integer seconds only.
func WithDurationAsString(asString bool) Option {
	return func(t *Tracker) {
		t.durationAsString = asString
	}
}

// WithClock replaces time.Now as the tracker's time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker creates a Tracker for totalItems items, starting the clock now.
func NewTracker(totalItems int64, opts ...Option) *Tracker {
	t := &Tracker{
		totalItems:       totalItems,
		durationAsString: true,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.startTime = t.now()
	return t
}

// TotalItems returns the number of items the tracker expects.
func (t *Tracker) TotalItems() int64 {
	return t.totalItems
}

// StartTime returns the moment the tracker was created.
func (t *Tracker) StartTime() time.Time {
	return t.startTime
}

// DurationAsString reports whether the tracker formats durations.
func (t *Tracker) DurationAsString() bool {
	return t.durationAsString
}

// Timing is a single time value of a Report.
type Timing struct {
	Text    string // Formatted [DD:][HH:]MM:SS, empty in raw mode
	Seconds int64  // Whole seconds, always set
}

// String returns the formatted text, or the decimal seconds in raw mode.
func (t Timing) String() string {
	if t.Text != "" {
		return t.Text
	}
	return strconv.FormatInt(t.Seconds, 10)
}

// Report is a snapshot of progress at a given item count.
type Report struct {
	Elapsed        Timing // Time since the tracker was created
	ProjectedTotal Timing // Estimated total duration, 0 while nothing is done, capped at math.MaxInt64
	Percent        int64  // Truncated completion percentage, not clamped to 100
	ItemsDone      int64
	TotalItems     int64
}

// Progress returns elapsed time, projected total time and completion
// percentage after itemsDone items have been processed.
func (t *Tracker) Progress(itemsDone int64) Report {
	elapsed := t.now().Sub(t.startTime).Seconds()

	var fraction float64
	if t.totalItems != 0 {
		fraction = float64(itemsDone) / float64(t.totalItems)
	}

	var projected int64
	if fraction != 0 {
		projected = truncSeconds(elapsed / fraction)
	}

	report := Report{
		Elapsed:        Timing{Seconds: int64(elapsed)},
		ProjectedTotal: Timing{Seconds: projected},
		Percent:        int64(fraction * 100),
		ItemsDone:      itemsDone,
		TotalItems:     t.totalItems,
	}
	if t.durationAsString {
		report.Elapsed.Text = FormatDuration(elapsed)
		report.ProjectedTotal.Text = FormatDuration(float64(projected))
	}
	return report
}

// ProgressString renders a one-line progress message for terminal output.
//
// While work remains the line ends in a carriage return so the next call
// overwrites it in place. Once itemsDone reaches the total it ends in a
// newline, padded with spaces to blank out the previous progress line.
func (t *Tracker) ProgressString(itemsDone int64) string {
	r := t.Progress(itemsDone)
	if itemsDone == t.totalItems {
		return fmt.Sprintf("Done in %s, processed %d items.        \n", r.Elapsed, r.TotalItems)
	}
	return fmt.Sprintf("Progress: %s/%s, %d%%, %d/%d items.\r",
		r.Elapsed, r.ProjectedTotal, r.Percent, r.ItemsDone, r.TotalItems)
}
