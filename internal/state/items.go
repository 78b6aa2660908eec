package state

// ItemList is an ordered sequence of todo items. Duplicates are allowed and
// are told apart only by position. The zero ItemList is an empty list that
// notifies no store.
type ItemList struct {
	items []string
	hub   *hub
}

// Append adds v as the new last element.
func (l *ItemList) Append(v string) {
	l.items = append(l.items, v)
	l.hub.invalidate()
}

// Remove deletes every element equal to v and returns how many were
// removed. A value that is not present leaves the list unchanged.
func (l *ItemList) Remove(v string) int {
	kept := l.items[:0]
	for _, it := range l.items {
		if it != v {
			kept = append(kept, it)
		}
	}
	n := len(l.items) - len(kept)
	// clear the tail so removed strings can be collected
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = ""
	}
	l.items = kept
	l.hub.invalidate()
	return n
}

// RemoveAt deletes the element at position i. It reports false when i is
// out of range.
func (l *ItemList) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.hub.invalidate()
	return true
}

// At returns the element at position i.
func (l *ItemList) At(i int) (string, bool) {
	if i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

// Len returns the number of items.
func (l *ItemList) Len() int { return len(l.items) }

// Snapshot returns a copy of the items in insertion order.
func (l *ItemList) Snapshot() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}
