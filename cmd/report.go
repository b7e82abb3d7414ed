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

package cmd

import (
	"io"

	"github.com/abrekhov/progresstrack/pkg/progress"
	log "github.com/sirupsen/logrus"
)

// lineReporter writes tracker lines to a terminal stream. It redraws every
// `every` items and always on the last one, so the final "Done" line is never
// skipped.
type lineReporter struct {
	out     io.Writer
	tracker *progress.Tracker
	every   int64
}

func newLineReporter(out io.Writer, total int64, s *settings) *lineReporter {
	return &lineReporter{
		out:     out,
		tracker: progress.NewTracker(total, progress.WithDurationAsString(s.durationAsString())),
		every:   s.every(),
	}
}

// Update reports that done items have been processed.
func (r *lineReporter) Update(done int64) {
	if done != r.tracker.TotalItems() && done%r.every != 0 {
		return
	}
	if _, err := io.WriteString(r.out, r.tracker.ProgressString(done)); err != nil {
		log.Debugf("write progress: %v", err)
	}
}

// Interrupt ends an unfinished progress line so later output starts clean.
func (r *lineReporter) Interrupt() {
	_, _ = io.WriteString(r.out, "\n")
}

// Elapsed returns the elapsed time as the tracker formats it.
func (r *lineReporter) Elapsed(done int64) string {
	return r.tracker.Progress(done).Elapsed.String()
}
