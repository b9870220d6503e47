package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhk0567/groove"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % numFields)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + numFields - 1) % numFields)
			return m, nil
		case "ctrl+f":
			m.flutes = m.flutes%4 + 1
			m.status = fmt.Sprintf("flutes: %d", m.flutes)
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[i].Focus()
}

// submit reparses the whole form. Any bad field leaves the previous
// geometry in place and reports which field failed.
func (m *Model) submit() {
	var vals [numFields]float64
	for i := range m.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[i].Value()), 64)
		if err != nil {
			m.errText = fmt.Sprintf("%s: not a number", fieldLabels[i])
			return
		}
		vals[i] = v
	}
	p := groove.Params{
		HelixAngle:    vals[fieldAngle],
		Diameter:      vals[fieldDiameter],
		Length:        vals[fieldLength],
		BladeWidth:    vals[fieldWidth],
		BladeHeight:   vals[fieldHeight],
		SamplesPerRev: int(vals[fieldSamples]),
	}
	g, err := groove.New(p)
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.g = g
	m.errText = ""
	m.status = g.Summary()
}
