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
	"fmt"
	"os"

	"github.com/abrekhov/progresstrack/pkg/checksum"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newChecksumCmd(s *settings) *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "checksum [PATH...]",
		Short: "Compute or verify SHA-256 checksums with progress",
		Long: `Without --check, prints a sha256sum-style line for every regular file
under the given paths. With --check, verifies every entry of a manifest.
Progress is reported on stderr over the number of files.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if manifest == "" && len(args) == 0 {
				return errors.New("requires at least one path or --check")
			}
			if manifest != "" && len(args) > 0 {
				return errors.New("paths cannot be combined with --check")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifest != "" {
				return verifyManifest(cmd, s, manifest)
			}
			return computeChecksums(cmd, s, args)
		},
	}

	cmd.Flags().StringVarP(&manifest, "check", "c", "", "Verify checksums listed in this manifest")
	return cmd
}

func computeChecksums(cmd *cobra.Command, s *settings, paths []string) error {
	files, err := checksum.CollectFiles(paths)
	if err != nil {
		return err
	}
	log.Debugf("Checksumming %d files", len(files))

	ctx := cmd.Context()
	reporter := newLineReporter(cmd.ErrOrStderr(), int64(len(files)), s)
	reporter.Update(0)

	failed := 0
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			reporter.Interrupt()
			return err
		}

		sum, err := checksum.CalculateFileChecksum(ctx, path)
		if ctxErr := ctx.Err(); ctxErr != nil {
			reporter.Interrupt()
			return ctxErr
		}
		if err != nil {
			log.WithField("path", path).Errorf("Checksum failed: %v", err)
			failed++
		} else if err := checksum.WriteManifestLine(cmd.OutOrStdout(), checksum.Entry{Path: path, Sum: sum}); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		reporter.Update(int64(i + 1))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(files))
	}
	return nil
}

func verifyManifest(cmd *cobra.Command, s *settings, manifest string) error {
	f, err := os.Open(manifest) // #nosec G304 -- manifest path is supplied by the user
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := checksum.ParseManifest(f)
	if err != nil {
		return err
	}
	log.Debugf("Verifying %d manifest entries", len(entries))

	ctx := cmd.Context()
	reporter := newLineReporter(cmd.ErrOrStderr(), int64(len(entries)), s)
	reporter.Update(0)

	mismatched, unreadable := 0, 0
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			reporter.Interrupt()
			return err
		}

		ok, err := checksum.VerifyFileChecksum(ctx, e.Path, e.Sum)
		if ctxErr := ctx.Err(); ctxErr != nil {
			reporter.Interrupt()
			return ctxErr
		}
		switch {
		case err != nil:
			log.WithField("path", e.Path).Errorf("Checksum failed: %v", err)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED open or read\n", e.Path)
			unreadable++
		case ok:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", e.Path)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", e.Path)
			mismatched++
		}
		reporter.Update(int64(i + 1))
	}

	if mismatched > 0 || unreadable > 0 {
		return fmt.Errorf("%d of %d checksums did not match, %d files could not be read",
			mismatched, len(entries), unreadable)
	}
	return nil
}
