package input

import (
	"backoffice/internal/features"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Page      features.Page
	Cursor    int
	Items     int // menu entries on the dashboard
	Filters   []features.Filter
	Columns   int
	CanEdit   bool
	AskDelete bool
}

func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalItems returns the rows on the page, or the menu size on the dashboard
func (c *ModelContext) TotalItems() int {
	if c.Items > 0 {
		return c.Items
	}
	return len(c.Page.Rows)
}

// CurrentID returns the id of the row under the cursor
func (c *ModelContext) CurrentID() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Page.Rows) {
		return ""
	}
	return c.Page.Rows[c.Cursor].ID
}

func (c *ModelContext) HasSelection() bool {
	return len(c.Page.Selected) > 0
}

func (c *ModelContext) SelectedCount() int {
	return len(c.Page.Selected)
}

func (c *ModelContext) AllVisibleSelected() bool {
	return c.Page.AllVisibleSelected
}

func (c *ModelContext) HasActiveFilters() bool {
	return c.Page.CanReset
}

func (c *ModelContext) FilterCount() int {
	return len(c.Filters)
}

func (c *ModelContext) ColumnCount() int {
	return c.Columns
}

func (c *ModelContext) Editable() bool {
	return c.CanEdit
}

func (c *ModelContext) ConfirmDelete() bool {
	return c.AskDelete
}

func (c *ModelContext) SearchQuery() string {
	return c.Page.Search
}
