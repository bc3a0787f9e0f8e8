package features

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/mock"
	"backoffice/internal/table"
)

var (
	// ErrUnknownFeature is returned when a slug does not name a feature
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrValidation wraps every form submission failure
	ErrValidation = errors.New("validation failed")
	// ErrNotEditable is returned when a feature has no form
	ErrNotEditable = errors.New("feature has no form")
	// ErrNotFound is returned for an id that is not in the dataset
	ErrNotFound = errors.New("record not found")
)

// Column is a rendered table column
type Column struct {
	Title string
	Width int
	Field string // sort field, empty when the column is not sortable
}

// Sortable reports whether clicking the column sorts the table
func (c Column) Sortable() bool {
	return c.Field != ""
}

// Filter describes one categorical filter and its current value
type Filter struct {
	Name    string
	Label   string
	Options []string // "all" first, then the distinct values in the data
	Value   string
}

// Row is one rendered record
type Row struct {
	ID    string
	Cells []string
}

// Page is the render-ready view of a section
type Page struct {
	Rows               []Row
	EmptyRows          int
	Filtered           int
	Total              int
	Page               int
	PageCount          int
	RowsPerPage        int
	From, To           int
	Order              table.Order
	OrderBy            string
	Selected           []string
	AllVisibleSelected bool
	CanReset           bool
	Search             string
}

// IsSelected reports whether id is checked
func (p Page) IsSelected(id string) bool {
	return slices.Contains(p.Selected, id)
}

// VisibleIDs returns the ids of the rows on the page
func (p Page) VisibleIDs() []string {
	ids := make([]string, len(p.Rows))
	for i, r := range p.Rows {
		ids[i] = r.ID
	}
	return ids
}

// Detail is one labelled value of a record
type Detail struct {
	Label string
	Value string
}

// FormField is one input of a create or edit form
type FormField struct {
	Key      string
	Label    string
	Required bool
	Hint     string
	Value    string
}

// Source supplies records to sections
type Source struct {
	Provider    *mock.Provider
	Count       int
	FoodLatency time.Duration
}

// Batch is a fetched dataset waiting to be applied to its section
type Batch struct {
	slug    string
	records any
	count   int
}

// Len returns the number of fetched records
func (b Batch) Len() int {
	return b.count
}

// Section is one feature screen: a table view-model plus its presentation
type Section interface {
	Title() string
	Slug() string
	SearchHint() string
	Columns() []Column
	View() Page
	Dispatch(action table.Action) error
	Filters() []Filter
	Delete(id string) bool
	DeleteSelected() []string
	Detail(id string) ([]Detail, bool)
	Editable() bool
	Form(id string) ([]FormField, error)
	Submit(id string, values map[string]string) (string, bool, error)
	// Fetch may run off the UI goroutine; Apply must not
	Fetch(ctx context.Context, src Source) (Batch, error)
	Apply(batch Batch) error
}

// ColumnDef maps a column to a record value
type ColumnDef[R any] struct {
	Title string
	Width int
	Field string
	Cell  func(R) string
}

// FieldDef maps a form input to a record value
type FieldDef[R any] struct {
	Key      string
	Label    string
	Required bool
	Hint     string
	Get      func(R) string
	Set      func(*R, string) error
}

// FormDef describes how records are created and edited
type FormDef[R any] struct {
	Fields []FieldDef[R]
	// New returns a blank record carrying id
	New func(id string) R
}

// Definition configures one feature
type Definition[R any] struct {
	Title        string
	Slug         string
	SearchHint   string
	Schema       table.Schema[R]
	Columns      []ColumnDef[R]
	DefaultSort  string
	DefaultOrder table.Order
	Detail       func(R) []Detail
	Form         *FormDef[R]
	Fetch        func(ctx context.Context, src Source) ([]R, error)
}

// Factory creates fresh sections for one feature
type Factory interface {
	Title() string
	Slug() string
	New(rowsPerPage int) Section
}

type factory[R any] struct {
	def Definition[R]
}

// Define turns a definition into a section factory
func Define[R any](def Definition[R]) Factory {
	return factory[R]{def: def}
}

func (f factory[R]) Title() string { return f.def.Title }
func (f factory[R]) Slug() string  { return f.def.Slug }

func (f factory[R]) New(rowsPerPage int) Section {
	names := make([]string, len(f.def.Schema.Matcher.Categories))
	for i, c := range f.def.Schema.Matcher.Categories {
		names[i] = c.Name
	}
	state := table.NewState(f.def.DefaultSort, f.def.DefaultOrder, rowsPerPage, names...)
	return &section[R]{
		def:   f.def,
		table: table.New(f.def.Schema, nil, state),
	}
}

// section binds a definition to a live table
type section[R any] struct {
	def   Definition[R]
	table *table.Table[R]
}

func (s *section[R]) Title() string      { return s.def.Title }
func (s *section[R]) Slug() string       { return s.def.Slug }
func (s *section[R]) SearchHint() string { return s.def.SearchHint }
func (s *section[R]) Editable() bool     { return s.def.Form != nil }

func (s *section[R]) Columns() []Column {
	cols := make([]Column, len(s.def.Columns))
	for i, c := range s.def.Columns {
		cols[i] = Column{Title: c.Title, Width: c.Width, Field: c.Field}
	}
	return cols
}

func (s *section[R]) View() Page {
	v := s.table.View()
	rows := make([]Row, len(v.Rows))
	for i, r := range v.Rows {
		cells := make([]string, len(s.def.Columns))
		for j, c := range s.def.Columns {
			cells[j] = c.Cell(r)
		}
		rows[i] = Row{ID: s.def.Schema.ID(r), Cells: cells}
	}
	return Page{
		Rows:               rows,
		EmptyRows:          v.EmptyRows,
		Filtered:           v.Filtered,
		Total:              v.Total,
		Page:               v.Page,
		PageCount:          v.PageCount,
		RowsPerPage:        v.RowsPerPage,
		From:               v.From(),
		To:                 v.To(),
		Order:              v.Order,
		OrderBy:            v.OrderBy,
		Selected:           v.Selected.IDs(),
		AllVisibleSelected: v.AllVisibleSelected,
		CanReset:           v.CanReset,
		Search:             s.table.State().Filters.Name,
	}
}

func (s *section[R]) Dispatch(action table.Action) error {
	return s.table.Dispatch(action)
}

func (s *section[R]) Filters() []Filter {
	records := s.table.Records()
	current := s.table.State().Filters.Categories

	out := make([]Filter, 0, len(s.def.Schema.Matcher.Categories))
	for _, c := range s.def.Schema.Matcher.Categories {
		seen := map[string]bool{}
		var values []string
		for _, r := range records {
			v := c.Get(r)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		slices.Sort(values)

		out = append(out, Filter{
			Name:    c.Name,
			Label:   label(c.Name),
			Options: append([]string{table.AllValues}, values...),
			Value:   current[c.Name],
		})
	}
	return out
}

func (s *section[R]) Delete(id string) bool {
	return s.table.DeleteRow(id)
}

func (s *section[R]) DeleteSelected() []string {
	return s.table.DeleteSelected()
}

func (s *section[R]) Detail(id string) ([]Detail, bool) {
	r, ok := s.table.Find(id)
	if !ok {
		return nil, false
	}
	if s.def.Detail != nil {
		return s.def.Detail(r), true
	}
	// Fall back to the table columns
	details := make([]Detail, len(s.def.Columns))
	for i, c := range s.def.Columns {
		details[i] = Detail{Label: c.Title, Value: c.Cell(r)}
	}
	return details, true
}

// Form returns the inputs for editing id, or for a new record when id is empty
func (s *section[R]) Form(id string) ([]FormField, error) {
	if s.def.Form == nil {
		return nil, fmt.Errorf("%s: %w", s.def.Slug, ErrNotEditable)
	}

	var record R
	if id != "" {
		found, ok := s.table.Find(id)
		if !ok {
			return nil, fmt.Errorf("%s %s: %w", s.def.Slug, id, ErrNotFound)
		}
		record = found
	}

	fields := make([]FormField, len(s.def.Form.Fields))
	for i, f := range s.def.Form.Fields {
		fields[i] = FormField{Key: f.Key, Label: f.Label, Required: f.Required, Hint: f.Hint}
		if id != "" {
			fields[i].Value = f.Get(record)
		}
	}
	return fields, nil
}

// Submit validates values and saves them into the dataset. It returns the
// record id and whether a new record was created.
func (s *section[R]) Submit(id string, values map[string]string) (string, bool, error) {
	form := s.def.Form
	if form == nil {
		return "", false, fmt.Errorf("%s: %w", s.def.Slug, ErrNotEditable)
	}

	var record R
	created := id == ""
	if created {
		record = form.New(uuid.NewString())
	} else {
		found, ok := s.table.Find(id)
		if !ok {
			return "", false, fmt.Errorf("%s %s: %w", s.def.Slug, id, ErrNotFound)
		}
		record = found
	}

	var problems []string
	for _, f := range form.Fields {
		value := strings.TrimSpace(values[f.Key])
		if value == "" {
			if f.Required {
				problems = append(problems, f.Label+" is required")
			}
			continue
		}
		if err := f.Set(&record, value); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", f.Label, err))
		}
	}
	if len(problems) > 0 {
		return "", false, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}

	s.table.Upsert(record)
	return s.def.Schema.ID(record), created, nil
}

func (s *section[R]) Fetch(ctx context.Context, src Source) (Batch, error) {
	records, err := s.def.Fetch(ctx, src)
	if err != nil {
		return Batch{}, fmt.Errorf("failed to load %s: %w", s.def.Slug, err)
	}
	return Batch{slug: s.def.Slug, records: records, count: len(records)}, nil
}

func (s *section[R]) Apply(batch Batch) error {
	records, ok := batch.records.([]R)
	if !ok || batch.slug != s.def.Slug {
		return fmt.Errorf("batch for %q cannot be applied to %q", batch.slug, s.def.Slug)
	}
	s.table.SetRecords(records)
	return nil
}

// label turns a filter name such as "leave_type" into "Leave type"
func label(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
