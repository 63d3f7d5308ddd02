// Package app hosts the root Bubble Tea model that frames every screen
// with the header and footer and routes between them.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/game"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/router"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screen"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screens/gameover"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screens/play"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screens/stageselect"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/screens/welcome"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/stage"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	session *game.Session
	router  *router.Router
	width   int
	height  int
}

// newAppModel wires the screen graph: welcome splash, then the stage
// picker, which pushes play screens that hand off to the summary.
func newAppModel(session *game.Session) AppModel {
	playFactory := func(stageIndex int) screen.Screen {
		return play.New(session, stageIndex, newGameOver)
	}
	splash := welcome.New(func() screen.Screen {
		return stageselect.New(session, playFactory)
	})
	return AppModel{
		session: session,
		router:  router.New(splash),
	}
}

func newGameOver(session *game.Session, result stage.Result, replay func() screen.Screen) screen.Screen {
	return gameover.New(session, result, replay)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
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

	header := layout.RenderHeader(title, m.session.TotalStars(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
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
func Run(session *game.Session) error {
	p := tea.NewProgram(newAppModel(session))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
