// Package export drives the end-to-end pipeline: read channel references,
// resolve and fetch each channel, enumerate its uploads, batch-fetch video
// details, and serialize everything into CSV files.
package export

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadChannelRefs reads channel references from a text file, one per line.
// Blank lines and lines starting with # are skipped; surrounding whitespace
// is trimmed.
func ReadChannelRefs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var refs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return refs, nil
}
