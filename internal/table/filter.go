package table

import (
	"strings"
)

// AllValues is the categorical filter sentinel meaning "no constraint"
const AllValues = "all"

// Filters holds the free-text name filter and the categorical filters of a screen
type Filters struct {
	Name       string
	Categories map[string]string
}

// NewFilters returns filters with every named category set to AllValues
func NewFilters(categories ...string) Filters {
	f := Filters{Categories: make(map[string]string, len(categories))}
	for _, c := range categories {
		f.Categories[c] = AllValues
	}
	return f
}

// Clone returns a copy that shares no map with the receiver
func (f Filters) Clone() Filters {
	out := Filters{Name: f.Name, Categories: make(map[string]string, len(f.Categories))}
	for k, v := range f.Categories {
		out.Categories[k] = v
	}
	return out
}

// With returns a copy with one filter changed. The name "name" targets the text filter.
func (f Filters) With(name, value string) Filters {
	out := f.Clone()
	if name == TextFilter {
		out.Name = value
		return out
	}
	out.Categories[name] = value
	return out
}

// Cleared returns a copy with every filter inactive
func (f Filters) Cleared() Filters {
	out := f.Clone()
	out.Name = ""
	for k := range out.Categories {
		out.Categories[k] = AllValues
	}
	return out
}

// Active reports whether any filter constrains the list
func (f Filters) Active() bool {
	if f.Name != "" {
		return true
	}
	for _, v := range f.Categories {
		if categoryActive(v) {
			return true
		}
	}
	return false
}

// TextFilter is the filter name addressing the free-text filter
const TextFilter = "name"

func categoryActive(value string) bool {
	return value != "" && value != AllValues
}

// Category is a named exact-match accessor
type Category[R any] struct {
	Name string
	Get  func(R) string
}

// Matcher describes how a record is matched against filters
type Matcher[R any] struct {
	// Text extracts the fields the name filter is substring-matched against
	Text       func(R) []string
	Categories []Category[R]
}

// Match reports whether a record satisfies every active filter
func (m Matcher[R]) Match(r R, f Filters) bool {
	if f.Name != "" {
		if !m.matchText(r, strings.ToLower(f.Name)) {
			return false
		}
	}

	for name, want := range f.Categories {
		if !categoryActive(want) {
			continue
		}
		get := m.category(name)
		if get == nil {
			// unknown filter names match nothing
			return false
		}
		if get(r) != want {
			return false
		}
	}
	return true
}

func (m Matcher[R]) matchText(r R, query string) bool {
	if m.Text == nil {
		return false
	}
	for _, field := range m.Text(r) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m Matcher[R]) category(name string) func(R) string {
	for _, c := range m.Categories {
		if c.Name == name {
			return c.Get
		}
	}
	return nil
}

// ApplyFilter returns a fresh slice holding the records that satisfy all active filters.
// The input slice is never modified.
func ApplyFilter[R any](records []R, f Filters, m Matcher[R]) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if m.Match(r, f) {
			out = append(out, r)
		}
	}
	return out
}
