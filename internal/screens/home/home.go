package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/router"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/screen"
	"github.com/finlit/spellbook/internal/screens/quest"
	"github.com/finlit/spellbook/internal/topics"
	"github.com/finlit/spellbook/internal/ui/components"
	"github.com/finlit/spellbook/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go, compact variant).
const homeTitleFull = `╔═╗╔═╗╔═╗╦  ╦  ╔╗ ╔═╗╔═╗╦╔═
╚═╗╠═╝║╣ ║  ║  ╠╩╗║ ║║ ║╠╩╗
╚═╝╩  ╚═╝╩═╝╩═╝╚═╝╚═╝╚═╝╩ ╩`

const homeTitleCompact = "S · P · E · L · L · B · O · O · K"

// HomeScreen is the topic selection screen.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	spellCount int
	topicCount int
	byTier     map[quiz.Difficulty]int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the loaded question bank.
func New(bank *quiz.Bank, cfg scoring.Config) *HomeScreen {
	all := topics.All()

	menuLabels := make([]string, 0, len(all)+1)
	items := make([]components.MenuItem, 0, len(all)+1)
	for _, t := range all {
		topic := t
		menuLabels = append(menuLabels, strings.ToUpper(topics.Label(topic)))
		items = append(items, components.MenuItem{
			Label: menuLabels[len(menuLabels)-1],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quest.New(bank, cfg, topic, nil),
					}
				}
			},
		})
	}
	menuLabels = append(menuLabels, "CLOSE THE BOOK")
	items = append(items, components.MenuItem{
		Label: "CLOSE THE BOOK",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		spellCount: bank.Len(),
		topicCount: len(all),
		byTier:     bank.CountByDifficulty(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.spellCount, h.topicCount, h.byTier, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.BookFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Choose a Quest"
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	art := homeTitleFull
	if compact {
		art = homeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the bank stats in a bordered box matching content width.
func renderStatsBar(spells, topicCount int, byTier map[quiz.Difficulty]int, cw int, compact bool) string {
	spellStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	topicStyle := lipgloss.NewStyle().Foreground(theme.Spark).Bold(true)
	tierStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			spellStyle.Render(fmt.Sprintf("✦%d", spells)),
			topicStyle.Render(fmt.Sprintf("◆%d", topicCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			spellStyle.Render(fmt.Sprintf("✦ %d SPELLS", spells)),
			topicStyle.Render(fmt.Sprintf("◆ %d QUESTS", topicCount)),
			tierStyle.Render(fmt.Sprintf("%d/%d/%d per tier",
				byTier[quiz.Easy], byTier[quiz.Medium], byTier[quiz.Hard])),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Spark).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each topic as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders topics as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
