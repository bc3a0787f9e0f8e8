package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"backoffice/internal/eventbus"
	"backoffice/internal/features"
	"backoffice/internal/logutil"
	"backoffice/internal/table"
	"backoffice/internal/ui/commands"
	"backoffice/internal/ui/input"
	"backoffice/internal/ui/input/modes"
	inputtypes "backoffice/internal/ui/input/types"
	"backoffice/internal/ui/navigation"
	"backoffice/internal/ui/state"
	"backoffice/internal/ui/views"
)

// Options configures a Model
type Options struct {
	Registry      *features.Registry
	Source        features.Source
	RowsPerPage   int
	ConfirmDelete bool
	Mouse         bool
	ToastDuration time.Duration
	Feature       string // opened on start when set
}

// Model represents the UI state
type Model struct {
	bus   eventbus.EventBus
	opts  Options
	state *state.AppState

	width  int
	height int
	help   help.Model
	keys   keyMap

	spinner      spinner.Model
	renderer     *views.Renderer
	helpRender   *HelpRenderer
	router       *navigation.Service
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps
	form         *recordForm

	// cancels the in-flight fetch of the open feature
	cancel context.CancelFunc
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, opts Options) *Model {
	if opts.Registry == nil {
		opts.Registry = features.Default()
	}
	if !table.ValidRowsPerPage(opts.RowsPerPage) {
		opts.RowsPerPage = table.DefaultRowsPerPage
	}

	appState := state.NewAppState()
	keys := newKeyMap()

	m := &Model{
		bus:          bus,
		opts:         opts,
		state:        appState,
		help:         help.New(),
		keys:         keys,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		helpRender:   NewHelpRenderer(keys),
		router:       navigation.NewService(bus),
		cmdExecutor:  commands.NewExecutor(appState, bus),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}
	return m
}

// SetProgram gives the model access to the terminal for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init opens the start feature, if any
func (m *Model) Init() tea.Cmd {
	if m.opts.Feature == "" {
		return nil
	}
	return m.openFeature(m.opts.Feature)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if !m.opts.Mouse {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.LoadedMsg:
		return m, m.cmdExecutor.ExecuteApply(msg)

	case commands.SavedMsg:
		m.form = nil
		m.router.Back()
		return m, m.syncRoute()

	case commands.SaveFailedMsg:
		if m.form != nil {
			m.form.err = msg.Err.Error()
		}
		return m, nil

	case EventMsg:
		if text, level, ok := ToastFor(msg.Event); ok {
			return m, m.notify(text, level)
		}
		return m, nil

	case toastExpiredMsg:
		m.state.ExpireToast(msg.id)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			logutil.L().Warn("pager failed", zap.Error(msg.err))
			return m, m.notify(fmt.Sprintf("Pager failed: %v", msg.err), state.ToastError)
		}
		return m, nil
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.ShowHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.state.ShowHelp = false
			return nil
		case "H":
			m.state.ShowHelp = false
			return m.pager.pagerCmd(m.helpRender.RenderHelpContent())
		case "ctrl+c":
			return m.quit()
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	ctx := &input.ModelContext{
		Page:      m.state.Page,
		Cursor:    m.state.Cursor,
		Filters:   m.state.Filters,
		AskDelete: m.opts.ConfirmDelete,
	}
	if m.state.Section == nil {
		ctx.Cursor = m.state.MenuIndex
		ctx.Items = len(m.opts.Registry.All())
		return ctx
	}
	ctx.Columns = len(m.state.Section.Columns())
	ctx.CanEdit = m.state.Section.Editable()
	return ctx
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	logutil.L().Debug("action", zap.String("type", action.Type()))
	s := m.state

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.OpenFeatureAction:
		idx := a.Index
		if idx < 0 {
			idx = s.MenuIndex
		}
		all := m.opts.Registry.All()
		if idx >= 0 && idx < len(all) {
			s.MenuIndex = idx
			return m.openFeature(all[idx].Slug())
		}

	case inputtypes.PageAction:
		return m.changePage(a.Direction)

	case inputtypes.CycleRowsPerPageAction:
		s.Cursor = 0
		return m.dispatch(table.ChangeRowsPerPageAction{RowsPerPage: table.NextRowsPerPage(s.Page.RowsPerPage)})

	case inputtypes.SortColumnAction:
		return m.sortColumn(a.Index)

	case inputtypes.ToggleSelectAction:
		if id := s.CurrentID(); id != "" {
			return m.dispatch(table.SelectRowAction{ID: id})
		}

	case inputtypes.ToggleSelectAllAction:
		return m.dispatch(table.SelectAllRowsAction{
			Checked: !s.Page.AllVisibleSelected,
			IDs:     s.Page.VisibleIDs(),
		})

	case inputtypes.ClearSelectionAction:
		return m.dispatch(table.SelectAllRowsAction{Checked: false})

	case inputtypes.UpdateTextAction:
		if s.Page.Search != a.Text {
			s.Cursor = 0
			return m.dispatch(table.FilterAction{Name: table.TextFilter, Value: a.Text})
		}

	case inputtypes.CancelTextAction:
		if s.Page.Search != "" {
			s.Cursor = 0
			return m.dispatch(table.FilterAction{Name: table.TextFilter, Value: ""})
		}

	case inputtypes.SubmitTextAction:
		// the filter is already live

	case inputtypes.FocusFilterAction:
		s.FocusedFilter = a.Index

	case inputtypes.CycleFilterAction:
		return m.cycleFilter(a.Index, a.Delta)

	case inputtypes.ClearFiltersAction:
		s.Cursor = 0
		return m.dispatch(table.ClearFiltersAction{})

	case inputtypes.OpenDetailAction:
		m.openDetail(s.CurrentID())

	case inputtypes.OpenPagerAction:
		if len(s.Detail) > 0 && s.Section != nil {
			return m.pager.pagerCmd(RenderDetailContent(s.Section.Title(), s.Detail))
		}

	case inputtypes.EditAction:
		id := s.DetailID
		if id == "" {
			id = s.CurrentID()
		}
		return m.openForm(id)

	case inputtypes.NewAction:
		return m.openForm("")

	case inputtypes.DeleteAction:
		return m.cmdExecutor.ExecuteDeleteRow(a.ID)

	case inputtypes.DeleteSelectedAction:
		return m.cmdExecutor.ExecuteDeleteSelected()

	case inputtypes.RefreshAction:
		if s.Section != nil && !s.Loading {
			return tea.Batch(m.cmdExecutor.ExecuteLoad(m.newFetchContext(), m.opts.Source), m.spinner.Tick)
		}

	case inputtypes.FormFocusAction:
		if m.form != nil {
			return m.form.move(a.Delta)
		}

	case inputtypes.FormInputAction:
		if m.form != nil {
			return m.form.update(a.Msg)
		}

	case inputtypes.SubmitFormAction:
		if m.form != nil {
			m.form.err = ""
			return m.cmdExecutor.ExecuteSave(m.form.id, m.form.values())
		}

	case inputtypes.BackAction:
		return m.back()

	case inputtypes.ToggleHelpAction:
		s.ShowHelp = !s.ShowHelp

	case inputtypes.OpenHelpPagerAction:
		return m.pager.pagerCmd(m.helpRender.RenderHelpContent())

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) dispatch(action table.Action) tea.Cmd {
	return m.cmdExecutor.ExecuteDispatch(action)
}

func (m *Model) navigate(direction string) {
	s := m.state
	cursor, count := &s.Cursor, len(s.Page.Rows)
	if s.Section == nil {
		cursor, count = &s.MenuIndex, len(m.opts.Registry.All())
	}
	if count == 0 {
		return
	}
	switch direction {
	case "up":
		if *cursor > 0 {
			*cursor--
		}
	case "down":
		if *cursor < count-1 {
			*cursor++
		}
	case "home":
		*cursor = 0
	case "end":
		*cursor = count - 1
	}
}

func (m *Model) changePage(direction string) tea.Cmd {
	page := m.state.Page
	target := page.Page
	switch direction {
	case "next":
		target++
	case "prev":
		target--
	case "first":
		target = 0
	case "last":
		target = page.PageCount - 1
	}
	if target < 0 || target >= page.PageCount || target == page.Page {
		return nil
	}
	m.state.Cursor = 0
	return m.dispatch(table.ChangePageAction{Page: target})
}

func (m *Model) sortColumn(index int) tea.Cmd {
	if m.state.Section == nil {
		return nil
	}
	cols := m.state.Section.Columns()
	if index < 0 || index >= len(cols) || !cols[index].Sortable() {
		return nil
	}
	return m.dispatch(table.SortAction{Field: cols[index].Field})
}

func (m *Model) cycleFilter(index, delta int) tea.Cmd {
	filters := m.state.Filters
	if index < 0 || index >= len(filters) || len(filters[index].Options) == 0 {
		return nil
	}
	f := filters[index]
	current := 0
	for i, opt := range f.Options {
		if opt == f.Value {
			current = i
			break
		}
	}
	n := len(f.Options)
	next := f.Options[((current+delta)%n+n)%n]
	m.state.Cursor = 0
	return m.dispatch(table.FilterAction{Name: f.Name, Value: next})
}

func (m *Model) newFetchContext() context.Context {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	return ctx
}

// openFeature shows a fresh table for slug and starts loading its data
func (m *Model) openFeature(slug string) tea.Cmd {
	section, err := m.opts.Registry.Open(slug, m.opts.RowsPerPage)
	if err != nil {
		logutil.L().Warn("open feature", zap.String("feature", slug), zap.Error(err))
		return m.notify(err.Error(), state.ToastError)
	}

	m.state.Open(section)
	m.router.Reset()
	m.router.Push(navigation.Route{Feature: section.Slug()})
	m.changeMode(inputtypes.ModeNormal, "")

	return tea.Batch(
		m.cmdExecutor.ExecuteLoad(m.newFetchContext(), m.opts.Source),
		m.spinner.Tick,
	)
}

func (m *Model) openDetail(id string) {
	s := m.state
	if s.Section == nil || id == "" {
		return
	}
	details, ok := s.Section.Detail(id)
	if !ok {
		return
	}
	s.DetailID = id
	s.Detail = details
	m.router.Push(navigation.Route{Feature: s.Section.Slug(), ID: id})
	m.changeMode(inputtypes.ModeDetail, id)
}

func (m *Model) openForm(id string) tea.Cmd {
	s := m.state
	if s.Section == nil || !s.Section.Editable() {
		return nil
	}
	fields, err := s.Section.Form(id)
	if err != nil {
		return m.notify(err.Error(), state.ToastError)
	}

	route := navigation.Route{Feature: s.Section.Slug(), New: true}
	if id != "" {
		route = navigation.Route{Feature: s.Section.Slug(), ID: id, Edit: true}
	}
	title, _ := crumbsFor(route, s.Section.Title())
	m.form = newRecordForm(title, id, fields)
	m.router.Push(route)
	m.changeMode(inputtypes.ModeForm, id)
	return textinput.Blink
}

// back leaves the current screen
func (m *Model) back() tea.Cmd {
	if m.router.Current().IsList() {
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.state.Close()
	}
	m.form = nil
	if _, ok := m.router.Back(); !ok {
		return nil
	}
	return m.syncRoute()
}

// syncRoute puts the input mode and screen state in line with the current route
func (m *Model) syncRoute() tea.Cmd {
	r := m.router.Current()
	s := m.state
	switch {
	case r.IsDashboard():
		m.changeMode(inputtypes.ModeMenu, "")
	case r.ID != "" && !r.Edit:
		details, ok := s.Section.Detail(r.ID)
		if !ok {
			m.router.Back()
			return m.syncRoute()
		}
		s.DetailID, s.Detail = r.ID, details
		m.changeMode(inputtypes.ModeDetail, r.ID)
	default:
		s.DetailID, s.Detail = "", nil
		m.changeMode(inputtypes.ModeNormal, "")
	}
	return nil
}

func (m *Model) changeMode(mode inputtypes.Mode, data string) {
	if m.inputHandler.CurrentMode() == mode {
		return
	}
	for _, a := range m.inputHandler.ChangeMode(mode, data, m.inputContext()) {
		m.processAction(a)
	}
}

func (m *Model) quit() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	return tea.Quit
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.state
	route := m.router.Current()
	vs := views.ViewState{
		Width:     m.width,
		Height:    m.height,
		Dashboard: s.Section == nil,
		Toast:     s.Toast,
	}

	feature := ""
	if s.Section != nil {
		feature = s.Section.Title()
	}
	vs.Title, vs.Crumbs = crumbsFor(route, feature)

	mode := m.inputHandler.CurrentMode()
	if vs.Dashboard {
		for _, f := range m.opts.Registry.All() {
			vs.Menu = append(vs.Menu, views.MenuItem{Title: f.Title(), Slug: f.Slug()})
		}
		vs.MenuCursor = s.MenuIndex
		vs.HelpLine = m.help.View(menuKeyMap{keys: m.keys})
	} else {
		vs.Table = views.TableProps{
			Columns:       s.Section.Columns(),
			Page:          s.Page,
			Filters:       s.Filters,
			FocusedFilter: s.FocusedFilter,
			Cursor:        s.Cursor,
			SearchHint:    s.Section.SearchHint(),
		}
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.Table.SearchActive = true
			vs.Table.SearchInput = ti.View()
		}
		if s.Loading {
			vs.Table.Loading = fmt.Sprintf("%s Loading %s...", m.spinner.View(), s.Section.Title())
		}
		vs.Editable = s.Section.Editable()
		vs.HelpLine = m.helpLine(mode)
	}

	if m.form != nil {
		vs.Form = m.form.view()
	}

	switch mode {
	case inputtypes.ModeRowActions:
		vs.Overlay = views.OverlayRowActions
		if h, ok := m.inputHandler.Mode(mode).(*modes.RowActionsMode); ok {
			vs.ActionIndex = h.Index()
		}
	case inputtypes.ModeConfirm:
		vs.Overlay = views.OverlayConfirm
		vs.ConfirmText = m.confirmText()
	case inputtypes.ModeDetail:
		vs.Overlay = views.OverlayDetail
		vs.DetailTitle = feature
		vs.Detail = s.Detail
	}
	if s.ShowHelp {
		vs.Overlay = views.OverlayHelp
		vs.FullHelp = m.help.FullHelpView(m.keys.FullHelp())
	}

	return m.renderer.Render(vs)
}

func (m *Model) helpLine(mode inputtypes.Mode) string {
	switch mode {
	case inputtypes.ModeSearch:
		return "type to filter • enter done • esc clear"
	case inputtypes.ModeFilterSelect:
		return "tab next filter • ←/→ change value • c clear • esc done"
	case inputtypes.ModeForm:
		return ""
	}
	return m.help.View(m.keys)
}

func (m *Model) confirmText() string {
	h, ok := m.inputHandler.Mode(inputtypes.ModeConfirm).(*modes.ConfirmMode)
	if ok && h.Target() != "" {
		return "Delete this record?"
	}
	n := len(m.state.Page.Selected)
	if n == 1 {
		return "Delete 1 selected record?"
	}
	return fmt.Sprintf("Delete %d selected records?", n)
}
