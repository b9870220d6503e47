// Package tui is an interactive parameter explorer for developed flute
// geometry. Edited parameters only take effect on submit; while the
// form holds an invalid value the previous geometry stays on screen.
package tui

import (
	"strconv"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhk0567/groove"
)

const numFields = 6

// Field order in the form.
const (
	fieldAngle = iota
	fieldDiameter
	fieldLength
	fieldWidth
	fieldHeight
	fieldSamples
)

var fieldLabels = [numFields]string{
	"Helix angle °",
	"Diameter mm",
	"Length mm",
	"Blade width mm",
	"Blade height mm",
	"Samples/rev",
}

type Model struct {
	width  int
	height int

	inputs [numFields]textinput.Model
	focus  int

	// last accepted geometry
	g      *groove.Groove
	flutes int

	status  string
	errText string
}

func New(p groove.Params) Model {
	m := Model{flutes: 1}
	seeds := [numFields]string{
		formatParam(p.HelixAngle),
		formatParam(p.Diameter),
		formatParam(p.Length),
		formatParam(p.BladeWidth),
		formatParam(p.BladeHeight),
		strconv.Itoa(p.SamplesPerRev),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 10
		ti.SetValue(seeds[i])
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	if g, err := groove.New(p); err == nil {
		m.g = g
		m.status = g.Summary()
	} else {
		m.errText = err.Error()
	}
	return m
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (m Model) Init() tea.Cmd { return textinput.Blink }
