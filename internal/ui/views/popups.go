package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"backoffice/internal/features"
	"backoffice/internal/ui/input/modes"
	"backoffice/internal/ui/state"
)

// FormFieldView is one rendered form input
type FormFieldView struct {
	Label    string
	Input    string
	Hint     string
	Required bool
	Focused  bool
}

// FormView is the create or edit screen
type FormView struct {
	Title  string
	Fields []FormFieldView
	Error  string
}

func (r *Renderer) renderDetail(title string, details []features.Detail) string {
	width := 0
	for _, d := range details {
		width = max(width, lipgloss.Width(d.Label))
	}
	var b strings.Builder
	b.WriteString(r.styles.PopupTitle.Render(title))
	b.WriteString("\n")
	for _, d := range details {
		label := r.styles.Label.Width(width + 2).Render(d.Label)
		b.WriteString(label + r.styles.Value.Render(d.Value) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("o open in pager • e edit • esc close"))
	return b.String()
}

func (r *Renderer) renderRowActions(index int, editable bool) string {
	var b strings.Builder
	b.WriteString(r.styles.PopupTitle.Render("Actions"))
	b.WriteString("\n")
	for i, a := range modes.RowActions {
		line := fmt.Sprintf("%s  %s", r.styles.Key.Render(a.Key), a.Label)
		switch {
		case a.Key == "e" && !editable:
			line = r.styles.Dim.Render(fmt.Sprintf("%s  %s", a.Key, a.Label))
		case i == index:
			line = r.styles.FilterFocused.Render(fmt.Sprintf("%s  %s", a.Key, a.Label))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderConfirm(text string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.PopupTitle.Render("Delete"),
		text,
		"",
		r.styles.Help.Render("y confirm • n cancel"),
	)
}

func (r *Renderer) renderForm(form *FormView) string {
	width := 0
	for _, f := range form.Fields {
		width = max(width, lipgloss.Width(f.Label)+2)
	}
	lines := []string{r.styles.PopupTitle.Render(form.Title)}
	for _, f := range form.Fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		labelStyle := r.styles.Label
		if f.Focused {
			labelStyle = r.styles.FooterSelected
		}
		line := labelStyle.Width(width+2).Render(label) + f.Input
		if f.Hint != "" {
			line += "  " + r.styles.Dim.Render(f.Hint)
		}
		lines = append(lines, line)
	}
	if form.Error != "" {
		lines = append(lines, "", r.styles.ToastError.Render(form.Error))
	}
	lines = append(lines, "", r.styles.Help.Render("tab next • shift+tab previous • enter save • esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) renderToast(t *state.Toast) string {
	if t == nil {
		return ""
	}
	switch t.Level {
	case state.ToastSuccess:
		return r.styles.ToastSuccess.Render("✓ " + t.Message)
	case state.ToastError:
		return r.styles.ToastError.Render("✗ " + t.Message)
	default:
		return r.styles.ToastInfo.Render(t.Message)
	}
}
