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

package checksum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedManifest is returned when a manifest line cannot be parsed.
var ErrMalformedManifest = errors.New("malformed manifest")

// Entry is one line of a sha256sum-style manifest.
type Entry struct {
	Path string
	Sum  []byte
}

// ParseManifest reads "HEX  PATH" lines as written by sha256sum.
// The binary marker ("HEX *PATH") is accepted. Blank lines and lines
// starting with '#' are ignored.
func ParseManifest(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		hexSum, rest, ok := strings.Cut(line, " ")
		if !ok || len(rest) < 2 || (rest[0] != ' ' && rest[0] != '*') {
			return nil, fmt.Errorf("%w: line %d: expected \"HEX  PATH\"", ErrMalformedManifest, lineNo)
		}
		sum, err := HexToChecksum(hexSum)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedManifest, lineNo, err)
		}
		entries = append(entries, Entry{Path: rest[1:], Sum: sum})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return entries, nil
}

// WriteManifestLine writes e in the format ParseManifest reads.
func WriteManifestLine(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "%s  %s\n", ChecksumToHex(e.Sum), e.Path)
	return err
}
