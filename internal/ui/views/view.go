package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"backoffice/internal/features"
	"backoffice/internal/ui/state"
)

// Overlay is the popup drawn above the current screen
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayRowActions
	OverlayConfirm
	OverlayDetail
	OverlayHelp
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title  string
	Crumbs []Crumb

	Dashboard  bool
	Menu       []MenuItem
	MenuCursor int

	Table TableProps
	Form  *FormView

	Overlay     Overlay
	ActionIndex int
	Editable    bool
	ConfirmText string
	DetailTitle string
	Detail      []features.Detail
	FullHelp    string

	Toast    *state.Toast
	HelpLine string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tableRender *TableRenderer
	menuRender  *MenuRenderer
	crumbRender *BreadcrumbsRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		tableRender: NewTableRenderer(styles),
		menuRender:  NewMenuRenderer(styles),
		crumbRender: NewBreadcrumbsRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	parts := []string{r.crumbRender.Render(vs.Title, vs.Crumbs), ""}

	switch {
	case vs.Dashboard:
		parts = append(parts,
			r.styles.Dim.Render(fmt.Sprintf("%d modules", len(vs.Menu))),
			r.menuRender.Render(vs.Menu, vs.MenuCursor),
		)
	case vs.Form != nil:
		parts = append(parts, r.renderForm(vs.Form))
	default:
		parts = append(parts, r.tableRender.Render(vs.Table))
	}

	if toast := r.renderToast(vs.Toast); toast != "" {
		parts = append(parts, "", toast)
	}
	parts = append(parts, "", r.styles.Help.Render(vs.HelpLine))

	content := r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	content = clip(content, vs.Height)

	var popup string
	switch vs.Overlay {
	case OverlayRowActions:
		popup = r.renderRowActions(vs.ActionIndex, vs.Editable)
	case OverlayConfirm:
		popup = r.renderConfirm(vs.ConfirmText)
	case OverlayDetail:
		popup = r.renderDetail(vs.DetailTitle, vs.Detail)
	case OverlayHelp:
		popup = vs.FullHelp + "\n\n" + r.styles.Help.Render("? close • H open in pager")
	}
	if popup != "" {
		content = r.popupRender.RenderPopupOverlay(content, popup, vs.Height, vs.Width, r.styles.Popup)
	}
	return zone.Scan(content)
}

// clip drops lines beyond height so the alt screen does not scroll
func clip(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}
