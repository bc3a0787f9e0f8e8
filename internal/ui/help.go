package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"backoffice/internal/features"
)

var errNoProgram = errors.New("program not set")

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent lists every key binding grouped by topic
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []string{"Navigation", "Selection & filters", "Rows", "Other"}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Back office help"))
	help.WriteString("\n")
	for i, group := range r.keys.FullHelp() {
		help.WriteString(sectionStyle.Render(sections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}
	help.WriteString(sectionStyle.Render("Filters popup"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("tab"), descStyle.Render("next filter")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("←/→"), descStyle.Render("change value")))
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("esc"), descStyle.Render("done")))
	return help.String()
}

// RenderDetailContent formats a record for the pager
func RenderDetailContent(title string, details []features.Detail) string {
	width := 0
	for _, d := range details {
		width = max(width, len(d.Label))
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	for _, d := range details {
		b.WriteString(fmt.Sprintf("%-*s  %s\n", width, d.Label, d.Value))
	}
	return b.String()
}

// PagerOps runs the ov pager on top of the program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (h *PagerOps) SetProgram(p *tea.Program) {
	h.program = p
}

// Show pages content using ov
func (h *PagerOps) Show(content string) error {
	if h.program == nil {
		return errNoProgram
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}
	defer func() {
		// give ov time to leave the alt screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd runs the pager off the UI goroutine
func (h *PagerOps) pagerCmd(content string) tea.Cmd {
	return func() tea.Msg {
		return pagerMsg{err: h.Show(content)}
	}
}
