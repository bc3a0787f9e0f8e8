package table

// Selection is the set of checked record ids, kept in insertion order.
// The zero value is an empty selection. Methods return new values and never
// modify the receiver.
type Selection struct {
	ids []string
}

// NewSelection builds a selection from ids, dropping duplicates
func NewSelection(ids ...string) Selection {
	s := Selection{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		s.ids = append(s.ids, id)
	}
	return s
}

// Toggle adds id when absent and removes it when present
func (s Selection) Toggle(id string) Selection {
	if s.Has(id) {
		out := make([]string, 0, len(s.ids)-1)
		for _, existing := range s.ids {
			if existing != id {
				out = append(out, existing)
			}
		}
		return Selection{ids: out}
	}
	out := make([]string, len(s.ids), len(s.ids)+1)
	copy(out, s.ids)
	return Selection{ids: append(out, id)}
}

// SelectAll replaces the selection with ids when checked, and clears it otherwise.
// Selecting all is never a union with the previous content.
func (s Selection) SelectAll(checked bool, ids []string) Selection {
	if !checked {
		return Selection{}
	}
	return NewSelection(ids...)
}

// Clear returns an empty selection
func (s Selection) Clear() Selection {
	return Selection{}
}

// Retain drops every id not present in ids
func (s Selection) Retain(ids []string) Selection {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	var out []string
	for _, id := range s.ids {
		if keep[id] {
			out = append(out, id)
		}
	}
	return Selection{ids: out}
}

// Has reports whether id is selected
func (s Selection) Has(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// HasAll reports whether every id is selected (false for an empty list)
func (s Selection) HasAll(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// IDs returns the selected ids in insertion order
func (s Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids
func (s Selection) Len() int {
	return len(s.ids)
}
