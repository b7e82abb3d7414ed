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
	"fmt"
	"math"
	"strconv"

	"github.com/abrekhov/progresstrack/pkg/progress"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "format SECONDS...",
		Short:   "Format seconds as [DD:][HH:]MM:SS",
		Example: "  pt format 75 87123",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				seconds, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
					return fmt.Errorf("parse %q: seconds must be a non-negative number", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), progress.FormatDuration(seconds))
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse DURATION...",
		Short:   "Convert [DD:][HH:]MM:SS back to seconds",
		Example: "  pt parse 01:15 01:00:12:03",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				seconds, err := progress.ParseDuration(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), seconds)
			}
			return nil
		},
	}
}
