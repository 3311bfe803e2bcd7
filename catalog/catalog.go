package catalog

// Catalog is an ordered, read-only list of entries. It is built once at
// startup and never changes afterwards; every accessor hands out copies.
type Catalog struct {
	entries []Entry
}

// New builds a catalog preserving the order of the given entries.
func New(entries ...Entry) *Catalog {
	cloned := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		cloned = append(cloned, entry.clone())
	}
	return &Catalog{entries: cloned}
}

// Entries returns a copy of the catalog in insertion order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry.clone())
	}
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
