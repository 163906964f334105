package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/finlit/spellbook/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// trailing suffix such as "3/5" or "12/∞".
type ProgressBar struct {
	Label   string
	Percent float64
	Suffix  string
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, suffix string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Suffix:  suffix,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	suffixWidth := 0
	if p.Suffix != "" {
		suffixWidth = lipgloss.Width(p.Suffix) + 2
	}

	barWidth := p.Width - labelWidth - suffixWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.Suffix != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + p.Suffix)
	}

	return result
}
