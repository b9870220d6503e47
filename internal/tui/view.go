package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zhk0567/groove"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 6 {
		contentHeight = 6
	}

	header := titleStyle.Render(" groove ─ developed flute geometry ")

	// Parameter form
	rows := make([]string, 0, numFields)
	for i := range m.inputs {
		marker := "  "
		if i == m.focus {
			marker = titleStyle.Render("> ")
		}
		rows = append(rows, marker+labelStyle.Render(fieldLabels[i])+m.inputs[i].View())
	}
	form := panelStyle.Height(contentHeight - 2).Render(strings.Join(rows, "\n"))
	formWidth := lipgloss.Width(form)

	// Preview panel fills the rest
	previewWidth := m.width - formWidth - 3
	if previewWidth < 16 {
		previewWidth = 16
	}
	innerW := previewWidth - 2
	innerH := contentHeight - 2
	preview := panelStyle.Render(lipgloss.Place(innerW, innerH, lipgloss.Left, lipgloss.Top, m.renderPreview(innerW, innerH)))

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, " ", preview)

	line := m.status
	style := statusStyle
	if m.errText != "" {
		line = m.errText
		style = errStyle
	}
	help := dimStyle.Render("  tab next field · enter apply · ctrl+f flutes · esc quit")
	footer := style.Render(" "+line) + "\n" + help

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

// renderPreview strokes the current geometry into a braille canvas
// sized w by h cells.
func (m Model) renderPreview(w, h int) string {
	if m.g == nil {
		return dimStyle.Render("no geometry")
	}
	c := newCanvas(w, h)
	wMic, hMic := c.microSize()

	if m.flutes > 1 {
		tr, err := groove.Fit(float64(wMic-1), float64(hMic-1), groove.DefaultMargin, m.g.Band())
		if err != nil {
			return dimStyle.Render("degenerate extent")
		}
		c.polyline(m.g.Band(), tr)
		for _, f := range m.g.Flutes(m.flutes) {
			for _, run := range f.Center {
				c.polyline(run, tr)
			}
		}
	} else {
		tr, err := groove.FitGroove(m.g, float64(wMic-1), float64(hMic-1))
		if err != nil {
			return dimStyle.Render("degenerate extent")
		}
		c.polyline(m.g.Outline, tr)
		c.polyline(m.g.Left, tr)
		c.polyline(m.g.Right, tr)
		c.polyline(m.g.Center, tr)
	}
	return strings.Join(c.rows(), "\n")
}
