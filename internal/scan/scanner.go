// Package scan lists candidate files in a target directory.
package scan

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Scanner enumerates files directly inside a directory (non-recursive)
// whose name ends with a fixed suffix.
type Scanner struct {
	log    *zap.Logger
	suffix string
}

func NewScanner(log *zap.Logger, suffix string) *Scanner {
	return &Scanner{log: log, suffix: suffix}
}

// List returns the matching filenames in os.ReadDir order (sorted by name).
// Subdirectories are skipped even when their name carries the suffix. The
// suffix check is case-sensitive.
func (s *Scanner) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), s.suffix) {
			names = append(names, entry.Name())
		}
	}

	s.log.Info("scanned directory",
		zap.String("dir", dir),
		zap.String("suffix", s.suffix),
		zap.Int("found", len(names)))
	return names, nil
}
