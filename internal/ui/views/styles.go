package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Crumb        lipgloss.Style
	CrumbCurrent lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style

	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style

	SearchBox      lipgloss.Style
	SearchActive   lipgloss.Style
	FilterChip     lipgloss.Style
	FilterActive   lipgloss.Style
	FilterFocused  lipgloss.Style
	Button         lipgloss.Style
	SelectionBar   lipgloss.Style
	DangerButton   lipgloss.Style
	NoData         lipgloss.Style
	Footer         lipgloss.Style
	FooterSelected lipgloss.Style

	Popup      lipgloss.Style
	PopupTitle lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Key        lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	Loading      lipgloss.Style

	Table table.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Crumb:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CrumbCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),

		MenuItem: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1).
			Width(32),
		MenuItemActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1).
			Width(32),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(30),
		SearchActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1).
			Width(30),
		FilterChip:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		FilterActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Padding(0, 1),
		FilterFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Padding(0, 1),
		SelectionBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("236")).
			Bold(true).
			Padding(0, 1),
		DangerButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Padding(0, 1),
		NoData:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2),
		Footer:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FooterSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Key:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")).Padding(0, 1),
		ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("203")).Padding(0, 1),
		Loading:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Table: ts,
	}
}
