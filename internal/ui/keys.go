package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap describes the bindings shown by the help line. Input handling
// itself lives in the input modes; these bindings only document it.
type keyMap struct {
	Up, Down      key.Binding
	Page          key.Binding
	Sort          key.Binding
	Select        key.Binding
	SelectAll     key.Binding
	Search        key.Binding
	Filter        key.Binding
	Clear         key.Binding
	RowsPerPage   key.Binding
	Open          key.Binding
	View          key.Binding
	Edit          key.Binding
	New           key.Binding
	Delete        key.Binding
	DeleteChecked key.Binding
	Reload        key.Binding
	Back          key.Binding
	Help          key.Binding
	Pager         key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:          key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "page")),
		Sort:          key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort column")),
		Select:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Clear:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		RowsPerPage:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rows per page")),
		Open:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "actions")),
		View:          key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		New:           key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		DeleteChecked: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
		Reload:        key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Pager:         key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Page, k.Sort, k.Select, k.Search, k.Filter, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.RowsPerPage, k.Sort},
		{k.Select, k.SelectAll, k.Search, k.Filter, k.Clear},
		{k.Open, k.View, k.Edit, k.New, k.Delete, k.DeleteChecked},
		{k.Reload, k.Back, k.Help, k.Pager, k.Quit},
	}
}

// menuKeyMap is the dashboard subset
type menuKeyMap struct {
	keys keyMap
}

func (m menuKeyMap) ShortHelp() []key.Binding {
	open := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	return []key.Binding{m.keys.Up, m.keys.Down, open, m.keys.Help, m.keys.Quit}
}

func (m menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
