package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"backoffice/internal/features"
	"backoffice/internal/logutil"
	"backoffice/internal/table"
	"backoffice/internal/ui/views"
)

type listOptions struct {
	search  string
	filters []string
	sort    string
	order   string
	page    int
	rows    int
	json    bool
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <feature>",
		Short: "Print one page of a feature table",
		Long: `List loads a feature's generated dataset and prints one page of its table,
applying the same search, filters, sort and pagination as the dashboard.

Filters are name=value pairs and are ANDed together; "all" removes a filter.

Example:
  backoffice list orders --filter status=completed --sort total --order desc
  backoffice list employees --search ada --rows 10 --page 2 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "free-text search")
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "categorical filter name=value (repeatable)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&opts.order, "order", "", "sort order: asc or desc")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().IntVarP(&opts.rows, "rows", "r", 0, "rows per page (5, 10 or 25)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, opts *listOptions, slug string) error {
	cfg, _, err := loadSettings(cmd, root, nil)
	if err != nil {
		return err
	}

	section, err := features.Default().Open(slug, cfg.RowsPerPage)
	if err != nil {
		return err
	}
	batch, err := section.Fetch(cmd.Context(), newSource(cfg))
	if err != nil {
		return err
	}
	if err := section.Apply(batch); err != nil {
		return err
	}
	logutil.L().Debug("listing", zap.String("feature", slug), zap.Int("count", batch.Len()))

	actions, err := opts.actions(section)
	if err != nil {
		return err
	}
	for _, a := range actions {
		if err := section.Dispatch(a); err != nil {
			return err
		}
	}
	if err := opts.applyOrder(section); err != nil {
		return err
	}

	page := section.View()
	if opts.page < 1 || opts.page > page.PageCount {
		return fmt.Errorf("page %d out of range (1-%d)", opts.page, page.PageCount)
	}
	if opts.page > 1 {
		if err := section.Dispatch(table.ChangePageAction{Page: opts.page - 1}); err != nil {
			return err
		}
		page = section.View()
	}

	if opts.json {
		return writeJSON(cmd.OutOrStdout(), section, page)
	}
	writeTable(cmd.OutOrStdout(), section, page)
	return nil
}

// actions turns the search, filter and sort flags into table actions
func (o *listOptions) actions(section features.Section) ([]table.Action, error) {
	var out []table.Action
	if o.search != "" {
		out = append(out, table.FilterAction{Name: table.TextFilter, Value: o.search})
	}
	for _, f := range o.filters {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid filter %q (expected name=value)", f)
		}
		out = append(out, table.FilterAction{Name: name, Value: value})
	}
	if o.sort != "" {
		fields := sortFields(section)
		if !slices.Contains(fields, o.sort) {
			return nil, fmt.Errorf("cannot sort %s by %q (sortable: %s)", section.Slug(), o.sort, strings.Join(fields, ", "))
		}
		// sorting by the current field would flip its direction
		if section.View().OrderBy != o.sort {
			out = append(out, table.SortAction{Field: o.sort})
		}
	}
	return out, nil
}

// applyOrder flips the current sort until it runs in the requested direction
func (o *listOptions) applyOrder(section features.Section) error {
	switch table.Order(o.order) {
	case "":
		return nil
	case table.Asc, table.Desc:
	default:
		return fmt.Errorf("invalid order %q (expected asc or desc)", o.order)
	}
	page := section.View()
	if page.OrderBy == "" || page.Order == table.Order(o.order) {
		return nil
	}
	return section.Dispatch(table.SortAction{Field: page.OrderBy})
}

func sortFields(section features.Section) []string {
	var out []string
	for _, c := range section.Columns() {
		if c.Sortable() {
			out = append(out, c.Field)
		}
	}
	return out
}

func writeTable(w io.Writer, section features.Section, page features.Page) {
	cols := section.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
		if c.Sortable() && c.Field == page.OrderBy {
			headers[i] += " " + page.Order.Arrow()
		}
	}

	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, r := range page.Rows {
		t.Row(r.Cells...)
	}

	fmt.Fprintln(w, t.Render())
	if len(page.Rows) == 0 {
		fmt.Fprintln(w, "No data")
	}
	fmt.Fprintf(w, "%s • page %d/%d\n", views.RangeLabel(page), page.Page+1, page.PageCount)
}

type listOutput struct {
	Feature     string    `json:"feature"`
	Page        int       `json:"page"`
	PageCount   int       `json:"page_count"`
	RowsPerPage int       `json:"rows_per_page"`
	Total       int       `json:"total"`
	Filtered    int       `json:"filtered"`
	OrderBy     string    `json:"order_by"`
	Order       string    `json:"order"`
	Rows        []listRow `json:"rows"`
}

type listRow struct {
	ID    string            `json:"id"`
	Cells map[string]string `json:"cells"`
}

func writeJSON(w io.Writer, section features.Section, page features.Page) error {
	cols := section.Columns()
	out := listOutput{
		Feature:     section.Slug(),
		Page:        page.Page + 1,
		PageCount:   page.PageCount,
		RowsPerPage: page.RowsPerPage,
		Total:       page.Total,
		Filtered:    page.Filtered,
		OrderBy:     page.OrderBy,
		Order:       string(page.Order),
		Rows:        make([]listRow, 0, len(page.Rows)),
	}
	for _, r := range page.Rows {
		cells := make(map[string]string, len(cols))
		for i, c := range cols {
			cells[c.Title] = r.Cells[i]
		}
		out.Rows = append(out.Rows, listRow{ID: r.ID, Cells: cells})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
