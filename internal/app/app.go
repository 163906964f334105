package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/router"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/screen"
	"github.com/finlit/spellbook/internal/screens/home"
	"github.com/finlit/spellbook/internal/screens/quest"
	"github.com/finlit/spellbook/internal/screens/welcome"
	"github.com/finlit/spellbook/internal/topics"
	"github.com/finlit/spellbook/internal/ui/layout"
)

// Options configures the root model.
type Options struct {
	Bank   *quiz.Bank
	Config scoring.Config

	// StartTopic skips the welcome and home screens and jumps straight
	// into a quest when set.
	StartTopic *topics.Topic
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome splash, or
// directly in a quest when a start topic is given.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Bank, opts.Config)
	}

	var initial screen.Screen
	if opts.StartTopic != nil {
		initial = quest.New(opts.Bank, opts.Config, *opts.StartTopic, nil)
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
	}
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

	var points, streak int
	if sp, ok := active.(screen.StatsProvider); ok {
		points, streak = sp.Stats()
	}

	header := layout.RenderHeader(title, points, streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
			footerHints = hints
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
