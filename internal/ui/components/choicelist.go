package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/finlit/spellbook/internal/ui/theme"
)

// ChoiceList is a vertical list of answer options. It only tracks the
// cursor; the caller decides when to lock it in and how to grade.
type ChoiceList struct {
	Options  []string
	Selected int
	Locked   bool
}

// NewChoiceList creates a choice list with the cursor on the first option.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump straight to an
// option. Ignored once locked.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Selected = i
			}
		}
	}

	return c, nil
}

// View renders the list. Before reveal the cursor row is highlighted.
// After reveal the correct option shows green and a wrong pick shows red.
func (c ChoiceList) View(revealed bool, correctIndex int) string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case revealed && i == correctIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case revealed && i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
