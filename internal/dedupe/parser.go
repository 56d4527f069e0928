// Package dedupe implements the parse, group, and select stages of the
// duplicate-removal pipeline: filenames are split into a name part and a
// version suffix, grouped by name part, and every group is reduced to its
// highest-versioned entry.
package dedupe

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// stemPattern matches the filename stem after the suffix is stripped: a
// greedy name part, a final underscore, then a dotted digit sequence. The
// version is anchored at the end, so name parts may themselves contain
// underscores and dots ("Vendor_Module.Sub_24.0.1.3" -> "Vendor_Module.Sub").
var stemPattern = regexp.MustCompile(`^(.+)_(\d+(?:\.\d+)*)$`)

// FileEntry is one successfully parsed filename. Entries are immutable once
// created.
type FileEntry struct {
	Filename string
	Name     string
	Version  string
}

// Parser extracts FileEntries from raw filenames.
type Parser struct {
	log    *zap.Logger
	suffix string
}

// NewParser returns a Parser for filenames ending in suffix (".app" in the
// default configuration). The suffix check is case-sensitive.
func NewParser(log *zap.Logger, suffix string) *Parser {
	return &Parser{log: log, suffix: suffix}
}

// Match parses a single filename. It returns false for filenames that do
// not carry the suffix or lack a trailing _<version> sequence; such files
// are excluded from all further processing rather than forming groups of
// their own.
func (p *Parser) Match(filename string) (FileEntry, bool) {
	stem, found := strings.CutSuffix(filename, p.suffix)
	if !found {
		return FileEntry{}, false
	}
	m := stemPattern.FindStringSubmatch(stem)
	if m == nil {
		return FileEntry{}, false
	}
	return FileEntry{Filename: filename, Name: m[1], Version: m[2]}, true
}

// Parse converts a directory listing into FileEntries, preserving input
// order. Mismatches are logged as warnings and dropped.
func (p *Parser) Parse(filenames []string) []FileEntry {
	entries := make([]FileEntry, 0, len(filenames))
	for _, filename := range filenames {
		entry, ok := p.Match(filename)
		if !ok {
			p.log.Warn("could not parse filename", zap.String("file", filename))
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
