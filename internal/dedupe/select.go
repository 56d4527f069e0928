package dedupe

import (
	"sort"

	"go.uber.org/zap"

	"appsweep/internal/version"
)

// Ranked is a FileEntry together with its parsed version key.
type Ranked struct {
	FileEntry
	Key version.Key
}

// Decision records the selection outcome for one group with duplicates: the
// single entry kept and the entries marked for deletion, in descending
// version order.
type Decision struct {
	Name   string
	Keep   Ranked
	Delete []Ranked
}

// Selector reduces groups to their highest-versioned entry.
type Selector struct {
	log *zap.Logger
}

func NewSelector(log *zap.Logger) *Selector {
	return &Selector{log: log}
}

// Select returns one Decision per group that has two or more entries.
// Groups with a single entry are never deletion candidates, whatever their
// version. Sorting is stable, so entries with equal version keys keep their
// enumeration order and the first-enumerated one wins the keep.
//
// A version string with any non-numeric segment ranks the whole entry at
// the lowest key. That is carried over as-is for compatibility; it is
// all-or-nothing, not per-segment.
func (s *Selector) Select(groups []Group) []Decision {
	var decisions []Decision
	for _, group := range groups {
		if len(group.Entries) <= 1 {
			continue
		}

		s.log.Info("processing duplicates", zap.String("name", group.Name), zap.Int("versions", len(group.Entries)))

		ranked := make([]Ranked, len(group.Entries))
		for i, entry := range group.Entries {
			key, ok := version.Parse(entry.Version)
			if !ok {
				s.log.Warn("could not parse version, ranking lowest",
					zap.String("file", entry.Filename),
					zap.String("version", entry.Version))
			}
			ranked[i] = Ranked{FileEntry: entry, Key: key}
		}

		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Key.Compare(ranked[j].Key) > 0
		})

		keep := ranked[0]
		s.log.Info("keeping", zap.String("file", keep.Filename), zap.String("version", keep.Version))
		for _, r := range ranked[1:] {
			s.log.Info("marking for deletion", zap.String("file", r.Filename), zap.String("version", r.Version))
		}

		decisions = append(decisions, Decision{Name: group.Name, Keep: keep, Delete: ranked[1:]})
	}
	return decisions
}

// Filenames flattens decisions into the ordered deletion list: group order
// first, then descending version within each group.
func Filenames(decisions []Decision) []string {
	var names []string
	for _, d := range decisions {
		for _, r := range d.Delete {
			names = append(names, r.Filename)
		}
	}
	return names
}
