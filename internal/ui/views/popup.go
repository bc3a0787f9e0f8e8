package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	dim    lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// RenderPopupOverlay centres popupContent over a greyed-out mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	popup := popupStyle.Render(popupContent)
	popupLines := strings.Split(popup, "\n")
	popupW := lipgloss.Width(popup)

	base := strings.Split(mainContent, "\n")
	if len(base) < height {
		base = append(base, make([]string, height-len(base))...)
	}
	if width < popupW {
		width = popupW
	}

	x := max(0, (width-popupW)/2)
	y := max(0, (len(base)-len(popupLines))/2)

	out := make([]string, len(base))
	for i, line := range base {
		plain := ansi.Strip(line)
		if pad := width - ansi.StringWidth(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		if i < y || i >= y+len(popupLines) {
			out[i] = pr.dim.Render(plain)
			continue
		}
		row := popupLines[i-y]
		if w := lipgloss.Width(row); w < popupW {
			row += strings.Repeat(" ", popupW-w)
		}
		left := ansi.Truncate(plain, x, "")
		right := ansi.TruncateLeft(plain, x+popupW, "")
		out[i] = pr.dim.Render(left) + row + pr.dim.Render(right)
	}
	return strings.Join(out, "\n")
}
