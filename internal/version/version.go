// Package version parses dotted numeric version strings into comparable keys.
//
// Keys order lexicographically component by component, so "25.0.11.0" ranks
// above "24.9.9.0" and a strict prefix ranks below any extension of it.
package version

import (
	"strconv"
	"strings"
)

// Key is the integer-sequence form of a version string.
type Key []int

// Lowest is the rank assigned to any version string that fails to parse.
var Lowest = Key{0}

// Parse converts a dotted version string into a Key. The second result is
// false when any segment is not a non-negative integer; in that case the
// whole string degrades to Lowest rather than a partial parse. Callers that
// care about the degradation should log it.
func Parse(s string) (Key, bool) {
	segments := strings.Split(s, ".")
	key := make(Key, 0, len(segments))
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return Lowest, false
		}
		key = append(key, n)
	}
	return key, true
}

// Compare returns -1, 0, or 1 ordering k against other. Comparison is
// lexicographic; when one key is a strict prefix of the other, the shorter
// key is lesser.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		switch {
		case k[i] < other[i]:
			return -1
		case k[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// Less reports whether k orders before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// String renders the key back in dotted form.
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, n := range k {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
