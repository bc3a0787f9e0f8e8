package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ZoneMenuItem is the zone id of the i-th feature entry
func ZoneMenuItem(i int) string { return fmt.Sprintf("menu_%d", i) }

// MenuItem is one entry of the feature menu
type MenuItem struct {
	Title string
	Slug  string
}

// MenuRenderer draws the dashboard feature menu
type MenuRenderer struct {
	styles *Styles
}

// NewMenuRenderer creates a new menu renderer
func NewMenuRenderer(styles *Styles) *MenuRenderer {
	return &MenuRenderer{styles: styles}
}

// Render lays the features out in two columns
func (r *MenuRenderer) Render(items []MenuItem, cursor int) string {
	half := (len(items) + 1) / 2
	var left, right []string
	for i, item := range items {
		style := r.styles.MenuItem
		if i == cursor {
			style = r.styles.MenuItemActive
		}
		box := zone.Mark(ZoneMenuItem(i), style.Render(fmt.Sprintf("%02d. %s", i+1, item.Title)))
		if i < half {
			left = append(left, box)
		} else {
			right = append(right, box)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
}
