// Package app owns the root Bubble Tea model and dependency wiring.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/export"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
	"github.com/edukite/pathfinder/internal/screens/intake"
	"github.com/edukite/pathfinder/internal/screens/quiz"
	"github.com/edukite/pathfinder/internal/store"
	"github.com/edukite/pathfinder/internal/ui/layout"
)

// Options are the services the application runs with.
type Options struct {
	Generator quizgen.Generator
	Analyzer  recommend.Analyzer
	Catalog   *catalog.Client
	Exporter  export.Exporter
	Store     *store.Store
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screen factories. Intake and quiz reference each
// other through closures: quiz needs a way back to a fresh intake for
// restart and retake.
func newAppModel(opts Options) AppModel {
	deps := quiz.Deps{
		Generator: opts.Generator,
		Analyzer:  opts.Analyzer,
		Catalog:   opts.Catalog,
		Exporter:  opts.Exporter,
		Store:     opts.Store,
		Logger:    opts.Logger,
	}

	var newIntake func() screen.Screen
	newIntake = func() screen.Screen {
		return intake.New(func(details assessment.UserDetails) screen.Screen {
			return quiz.New(deps, details, newIntake)
		})
	}

	return AppModel{
		router: router.New(newIntake()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
