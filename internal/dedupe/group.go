package dedupe

// Group holds all entries sharing one name part, in input order.
type Group struct {
	Name    string
	Entries []FileEntry
}

// GroupByName partitions entries by name part. Group order is
// first-encounter order and entry order within a group is input order, so
// downstream selection sees entries exactly as the scanner enumerated them.
// Keys compare by exact string equality; no case or whitespace
// normalization is applied.
func GroupByName(entries []FileEntry) []Group {
	index := make(map[string]int, len(entries))
	var groups []Group
	for _, entry := range entries {
		i, ok := index[entry.Name]
		if !ok {
			i = len(groups)
			index[entry.Name] = i
			groups = append(groups, Group{Name: entry.Name})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	return groups
}
