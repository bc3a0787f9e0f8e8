package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Crumb is one breadcrumb link; the current page has no Href
type Crumb struct {
	Title string
	Href  string
}

// BreadcrumbsRenderer draws the page heading
type BreadcrumbsRenderer struct {
	styles *Styles
}

// NewBreadcrumbsRenderer creates a new breadcrumbs renderer
func NewBreadcrumbsRenderer(styles *Styles) *BreadcrumbsRenderer {
	return &BreadcrumbsRenderer{styles: styles}
}

// Render draws the title above the crumb trail
func (r *BreadcrumbsRenderer) Render(title string, crumbs []Crumb) string {
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		if c.Href == "" {
			parts[i] = r.styles.CrumbCurrent.Render(c.Title)
		} else {
			parts[i] = r.styles.Crumb.Render(c.Title)
		}
	}
	sep := r.styles.Crumb.Render(" › ")
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(title),
		strings.Join(parts, sep),
	)
}
