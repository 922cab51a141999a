package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	resizable "github.com/grindlemire/go-resizable"
	"github.com/grindlemire/go-resizable/internal/render"
	"github.com/spf13/cobra"
)

var (
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo <layout-file>",
		Short: "Resize the layout interactively",
		Long: `Open the layout full screen. Tab and Shift+Tab pick a boundary, the arrow
keys (or h/j/k/l) move it by the keyboard step, Home and End push it all the
way, and q quits. With --state-file the sizes are saved after every move and
restored on the next run.`,
		Example: `  resizable demo editor.yaml --state-file ~/.config/resizable/state.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGroup(args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(newDemoModel(g),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running demo: %w", err)
			}
			return nil
		},
	}
}

type demoModel struct {
	group    *resizable.Group
	boundary int
	width    int
	height   int
	err      error
}

func newDemoModel(g *resizable.Group) demoModel {
	return demoModel{
		group:  g,
		width:  defaultWidth,
		height: heightFor(g.Direction()) + 1,
	}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.boundary = m.cycle(1)
			return m, nil
		case "shift+tab":
			m.boundary = m.cycle(-1)
			return m, nil
		}

		key := resizable.ParseKey(msg.String())
		if key == resizable.KeyNone {
			return m, nil
		}
		_, m.err = m.group.Step(m.boundary, key)
	}
	return m, nil
}

// cycle moves the selected boundary by step, wrapping around.
func (m demoModel) cycle(step int) int {
	n := m.boundaries()
	if n == 0 {
		return 0
	}
	return ((m.boundary+step)%n + n) % n
}

func (m demoModel) boundaries() int {
	return max(len(m.group.Sizes())-1, 0)
}

func (m demoModel) View() string {
	var b strings.Builder

	// One line is kept for the status bar.
	b.WriteString(render.Bars(frameFor(m.group, m.width, max(m.height-1, 1), m.boundary)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		return b.String()
	}
	status := fmt.Sprintf("boundary %d/%d  %s  arrows move, tab next, q quit",
		m.boundary+1, m.boundaries(), formatSizes(m.group.Sizes()))
	b.WriteString(helpStyle.Render(status))
	return b.String()
}
