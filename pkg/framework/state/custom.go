// Package state provides plugin state persistence: custom-data triples,
// the save/restore snapshot, and the per-plugin settings store.
package state

// CustomData is one plugin-specific non-parameter state entry, typically a
// serialized blob keyed by a URI type and a name.
type CustomData struct {
	Type  string `json:"type"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Valid reports whether the entry carries a usable type and key.
func (c CustomData) Valid() bool {
	return c.Type != "" && c.Key != ""
}

// CustomDataList is an ordered collection of custom data entries.
type CustomDataList struct {
	items []CustomData
}

// Set stores an entry, replacing any existing one with the same type and
// key while keeping its position.
func (l *CustomDataList) Set(cd CustomData) {
	for i := range l.items {
		if l.items[i].Type == cd.Type && l.items[i].Key == cd.Key {
			l.items[i] = cd
			return
		}
	}
	l.items = append(l.items, cd)
}

// Get returns the entry for type and key.
func (l *CustomDataList) Get(ctype, key string) (CustomData, bool) {
	for i := range l.items {
		if l.items[i].Type == ctype && l.items[i].Key == key {
			return l.items[i], true
		}
	}
	return CustomData{}, false
}

// All returns the entries in insertion order.
func (l *CustomDataList) All() []CustomData {
	out := make([]CustomData, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of entries.
func (l *CustomDataList) Len() int {
	return len(l.items)
}

// Clear drops all entries.
func (l *CustomDataList) Clear() {
	l.items = nil
}
