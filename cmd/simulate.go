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
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSimulateCmd(s *settings) *cobra.Command {
	var (
		items int64
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Process synthetic items and show progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if items < 0 {
				return errors.New("items must not be negative")
			}
			if delay < 0 {
				return errors.New("delay must not be negative")
			}
			log.WithFields(log.Fields{"items": items, "delay": delay}).Debug("Simulation started")

			ctx := cmd.Context()
			reporter := newLineReporter(cmd.ErrOrStderr(), items, s)
			reporter.Update(0)

			timer := time.NewTimer(delay)
			defer timer.Stop()
			for done := int64(1); done <= items; done++ {
				select {
				case <-ctx.Done():
					reporter.Interrupt()
					return ctx.Err()
				case <-timer.C:
				}
				reporter.Update(done)
				timer.Reset(delay)
			}

			log.WithField("elapsed", reporter.Elapsed(items)).Debug("Simulation finished")
			return nil
		},
	}

	cmd.Flags().Int64VarP(&items, "items", "n", 100, "Number of items to process")
	cmd.Flags().DurationVarP(&delay, "delay", "d", 50*time.Millisecond, "Time spent on each item")
	return cmd
}
