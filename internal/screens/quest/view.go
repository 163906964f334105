package quest

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/ui/components"
	"github.com/finlit/spellbook/internal/ui/theme"
)

func (q *QuestScreen) View(width, height int) string {
	if q.confirmingQuit {
		return renderQuitConfirm(width)
	}
	if q.state.CurrentQuestion == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  The spellbook is empty...")
	}
	if q.state.IsAnswered {
		return q.renderFeedback(width)
	}
	return q.renderQuestion(width)
}

// renderQuestion renders the active question with its input widget.
func (q *QuestScreen) renderQuestion(width int) string {
	state := q.state
	current := state.CurrentQuestion

	var b strings.Builder

	// Info line: category and tier left, run totals right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", quiz.CategoryDisplayName(current.Category), state.CurrentDifficulty.Label()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d correct",
			state.QuestionsAnswered+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.QuestionsCorrect,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt (centered).
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(current.Prompt))
	b.WriteString("\n\n")

	// Input area.
	switch current.Type {
	case quiz.MultipleChoice, quiz.TrueFalse:
		block := q.choices.View(false, -1)
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("\nArrows or number keys, Enter to cast")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block+hint))

	case quiz.FillInTheBlank:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + q.input.View())
		b.WriteString(answerLine)

	case quiz.Dropdown:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.renderBlanks(current)))
	}

	b.WriteString("\n\n")
	b.WriteString(q.renderMastery(width))

	return b.String()
}

// renderBlanks renders one selector per blank, the active one highlighted.
func (q *QuestScreen) renderBlanks(current *quiz.Question) string {
	var b strings.Builder
	for i, blank := range current.Blanks {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == q.blankCur {
			marker = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%sBlank %d:  ◂ %s ▸", marker, i+1, blank.Options[q.blankSel[i]])))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("\nTab between blanks, arrows to choose, Enter to cast"))
	return b.String()
}

// renderMastery shows per-tier progress toward the mastery thresholds.
func (q *QuestScreen) renderMastery(width int) string {
	barWidth := min(width-8, 48)

	var b strings.Builder
	for _, d := range quiz.AllDifficulties() {
		correct, needed := q.state.MasteryPair(d)
		suffix := fmt.Sprintf("%d/%s", correct, scoring.FormatThreshold(needed))

		bar := components.NewProgressBar(fmt.Sprintf("%-6s", d.Label()), q.state.Progress(d), suffix, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFeedback renders the grading result overlay.
func (q *QuestScreen) renderFeedback(width int) string {
	state := q.state
	current := state.CurrentQuestion

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct!  +%d gold", q.lastAward)))
		if state.Streak >= 2 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("⚡ %d in a row", state.Streak)))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", correctAnswerText(current))))
	}

	b.WriteString("\n\n")

	// Reveal the choices with the right answer marked.
	switch current.Type {
	case quiz.MultipleChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			q.choices.View(true, correctChoiceIndex(current))))
	case quiz.TrueFalse:
		idx := 1
		if current.IsTrue {
			idx = 0
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			q.choices.View(true, idx)))
	}

	// Tier promotion notice.
	if state.LastAnswerCorrect && state.Mastered(state.CurrentDifficulty) {
		b.WriteString("\n")
		if _, ok := state.CurrentDifficulty.Next(); ok {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Gold).
				Bold(true).
				Render(fmt.Sprintf("✦ %s tier mastered! The next tier awaits.", state.CurrentDifficulty.Label())))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Gold).
				Bold(true).
				Render("✦ Final tier mastered! The quest is complete."))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this quest early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your gold stays in the summary."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end quest"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// correctChoiceIndex finds the index of the winning choice.
func correctChoiceIndex(q *quiz.Question) int {
	for i, c := range q.Choices {
		if c.IsCorrect {
			return i
		}
	}
	return -1
}

// correctAnswerText renders the expected answer for the feedback line.
func correctAnswerText(q *quiz.Question) string {
	switch q.Type {
	case quiz.MultipleChoice:
		if i := correctChoiceIndex(q); i >= 0 {
			return q.Choices[i].Text
		}
		return ""
	case quiz.TrueFalse:
		if q.IsTrue {
			return "True"
		}
		return "False"
	case quiz.FillInTheBlank:
		return q.CorrectAnswer
	case quiz.Dropdown:
		parts := make([]string, len(q.Blanks))
		for i, b := range q.Blanks {
			parts[i] = b.CorrectAnswer
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
