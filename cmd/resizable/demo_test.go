package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	resizable "github.com/grindlemire/go-resizable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoGroup(t *testing.T, ids ...string) *resizable.Group {
	t.Helper()
	g, err := resizable.NewGroup(resizable.WithID("demo"))
	require.NoError(t, err)
	for _, id := range ids {
		p, err := resizable.NewPanel(id, resizable.WithMinSize(10))
		require.NoError(t, err)
		require.NoError(t, g.AddPanel(p))
	}
	return g
}

func press(m tea.Model, msg tea.KeyMsg) (demoModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(demoModel), cmd
}

func TestDemoModel_ArrowsStepBoundary(t *testing.T) {
	g := newDemoGroup(t, "left", "right")
	m := newDemoModel(g)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDeltaSlice(t, []float64{60, 40}, g.Sizes(), 1e-9)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.InDeltaSlice(t, []float64{40, 60}, g.Sizes(), 1e-9)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.InDeltaSlice(t, []float64{10, 90}, g.Sizes(), 1e-9)
	assert.NoError(t, m.err)
}

func TestDemoModel_TabCyclesBoundaries(t *testing.T) {
	g := newDemoGroup(t, "a", "b", "c")
	m := newDemoModel(g)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.boundary)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.boundary)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.boundary)
}

func TestDemoModel_Quit(t *testing.T) {
	m := newDemoModel(newDemoGroup(t, "a", "b"))

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDemoModel_View(t *testing.T) {
	m := newDemoModel(newDemoGroup(t, "a", "b"))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	view := next.(demoModel).View()
	assert.Contains(t, view, "boundary 1/1")
	assert.Contains(t, view, "50.00 50.00")
}

func TestDemoModel_SinglePanelShowsError(t *testing.T) {
	m := newDemoModel(newDemoGroup(t, "only"))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, resizable.ErrInvalidBoundary)
	assert.Contains(t, m.View(), "boundary")
}
