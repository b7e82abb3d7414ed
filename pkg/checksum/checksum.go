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

// Package checksum computes and verifies SHA-256 checksums of files, one
// file at a time, so callers can report progress over a list of files.
package checksum

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ctxReader stops reading once ctx is done, so hashing a large file
// can be interrupted between reads.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// CalculateFileChecksum computes the SHA-256 checksum of a file.
// It returns ctx.Err() if ctx is cancelled before the whole file is read.
func CalculateFileChecksum(ctx context.Context, path string) ([]byte, error) {
	file, err := os.Open(path) // #nosec G304 -- path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, ctxReader{ctx: ctx, r: file}); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return h.Sum(nil), nil
}

// VerifyFileChecksum reports whether the file at path hashes to expected.
func VerifyFileChecksum(ctx context.Context, path string, expected []byte) (bool, error) {
	actual, err := CalculateFileChecksum(ctx, path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(actual, expected), nil
}

// ChecksumToHex converts a checksum byte slice to a hexadecimal string.
func ChecksumToHex(sum []byte) string {
	return hex.EncodeToString(sum)
}

// HexToChecksum converts a hexadecimal string to a checksum byte slice.
// Returns an error if the hex string is invalid or not the correct length.
func HexToChecksum(hexStr string) ([]byte, error) {
	sum, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	if len(sum) != sha256.Size {
		return nil, fmt.Errorf("invalid checksum length: expected %d bytes, got %d", sha256.Size, len(sum))
	}
	return sum, nil
}

// CollectFiles expands paths into the list of regular files they name.
// Directories are walked recursively in lexical order; symlinks and other
// non-regular entries found while walking are skipped.
func CollectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("source path error: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}
	return files, nil
}
